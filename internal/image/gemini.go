package image

import (
	"context"
	"sync"

	"github.com/jmflorez/lienzo/internal/credential"
	"github.com/jmflorez/lienzo/internal/log"
	"github.com/samber/do"
	"google.golang.org/genai"
)

// models is the slice of *genai.Models this package calls; tests
// substitute a fake.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiGenerator struct {
	credentials *credential.Provider

	mu     sync.Mutex
	models models
}

func NewGeminiGenerator(i *do.Injector) (Generator, error) {
	return &GeminiGenerator{credentials: do.MustInvoke[*credential.Provider](i)}, nil
}

// Generate performs exactly one generate-content call. No local retry,
// no timeout override; the transport's own deadline policy stands.
// Every failure comes back as *UpstreamError.
func (g *GeminiGenerator) Generate(ctx context.Context, params Params) (*genai.GenerateContentResponse, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("gemini").With("model", params.Model)

	models, err := g.connect(ctx)
	if err != nil {
		return nil, asUpstreamError(err)
	}

	var config *genai.GenerateContentConfig
	if params.MimeType != "" {
		config = &genai.GenerateContentConfig{ResponseMIMEType: params.MimeType}
	}

	log.Info("generating content", "mime type", params.MimeType)
	resp, err := models.GenerateContent(ctx, params.Model, params.Contents, config)
	if err != nil {
		return nil, asUpstreamError(err)
	}
	return resp, nil
}

// connect builds the genai client on first use and keeps it for the
// life of the process. The credential is already cached by the
// provider at this point, so no extra lookup happens here.
func (g *GeminiGenerator) connect(ctx context.Context) (models, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.models != nil {
		return g.models, nil
	}

	key, ok := g.credentials.Resolve(ctx)
	if !ok {
		return nil, errMissingKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	g.models = client.Models
	return g.models, nil
}
