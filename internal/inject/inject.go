package inject

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/jmflorez/lienzo/internal/credential"
	"github.com/jmflorez/lienzo/internal/handler"
	"github.com/jmflorez/lienzo/internal/image"
	"github.com/jmflorez/lienzo/internal/log"
	"github.com/jmflorez/lienzo/internal/param"
	"github.com/samber/do"
)

func Setup(ctx context.Context) *do.Injector {
	log := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			log.Info(fmt.Sprintf(format, args...))
		},
	})
	do.Provide[aws.Config](injector, func(i *do.Injector) (aws.Config, error) {
		return config.LoadDefaultConfig(ctx)
	})
	do.Provide[*ssm.Client](injector, func(i *do.Injector) (*ssm.Client, error) {
		return ssm.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})

	do.Provide[param.Fetcher](injector, param.NewParameterStoreFetcher)

	do.ProvideNamedValue[string](injector, "api_key", os.Getenv("GOOGLE_API_KEY"))
	do.ProvideNamedValue[string](injector, "api_key_param", os.Getenv("GOOGLE_API_KEY_PARAM"))
	do.Provide[*credential.Provider](injector, credential.NewProvider)

	do.Provide[image.Generator](injector, image.NewGeminiGenerator)
	do.Provide[*handler.Handler](injector, handler.NewHandler)

	return injector
}
