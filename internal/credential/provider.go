package credential

import (
	"context"
	"sync"

	"github.com/jmflorez/lienzo/internal/log"
	"github.com/jmflorez/lienzo/internal/param"
	"github.com/samber/do"
)

// Provider resolves the Gemini API key once per process and caches it
// for every warm invocation after that. The key comes from the
// environment directly, or from the parameter store under the name
// configured in the environment.
type Provider struct {
	fetcher   param.Fetcher
	envKey    string
	paramName string

	mu     sync.Mutex
	cached string
}

func NewProvider(i *do.Injector) (*Provider, error) {
	return &Provider{
		fetcher:   do.MustInvoke[param.Fetcher](i),
		envKey:    do.MustInvokeNamed[string](i, "api_key"),
		paramName: do.MustInvokeNamed[string](i, "api_key_param"),
	}, nil
}

// Resolve returns the API key, or false when no key is obtainable.
// Lookup failures are logged and reported as absence; they are never
// propagated and never retried within an invocation. Only a successful
// value is cached, so a transient store fault does not pin a warm
// worker to a missing key.
func (p *Provider) Resolve(ctx context.Context) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != "" {
		return p.cached, true
	}

	if p.envKey != "" {
		p.cached = p.envKey
		return p.cached, true
	}

	log := log.FromContextOrDiscard(ctx).WithGroup("credentials")
	if p.paramName == "" {
		log.Error("no API key in environment and no parameter name configured")
		return "", false
	}

	value, err := p.fetcher.Fetch(ctx, p.paramName)
	if err != nil {
		log.Error("parameter lookup failed", "name", p.paramName, "err", err)
		return "", false
	}
	if value == "" {
		log.Error("parameter lookup returned an empty value", "name", p.paramName)
		return "", false
	}

	p.cached = value
	return p.cached, true
}
