package credential

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	calls int
	name  string
	value string
	err   error
}

func (f *fakeFetcher) Fetch(_ context.Context, name string) (string, error) {
	f.calls++
	f.name = name
	return f.value, f.err
}

func TestResolveFromEnvironment(t *testing.T) {
	fetcher := &fakeFetcher{}
	p := &Provider{fetcher: fetcher, envKey: "env-key", paramName: "/lienzo/api-key"}

	key, ok := p.Resolve(context.Background())

	require.True(t, ok)
	assert.Equal(t, "env-key", key)
	assert.Zero(t, fetcher.calls, "direct key skips the parameter store")
}

func TestResolveFetchesOncePerProcess(t *testing.T) {
	fetcher := &fakeFetcher{value: "stored-key"}
	p := &Provider{fetcher: fetcher, paramName: "/lienzo/api-key"}

	for range 2 {
		key, ok := p.Resolve(context.Background())
		require.True(t, ok)
		assert.Equal(t, "stored-key", key)
	}

	assert.Equal(t, 1, fetcher.calls, "warm invocations reuse the cache")
	assert.Equal(t, "/lienzo/api-key", fetcher.name)
}

func TestResolveWithoutParameterName(t *testing.T) {
	fetcher := &fakeFetcher{value: "stored-key"}
	p := &Provider{fetcher: fetcher}

	_, ok := p.Resolve(context.Background())

	assert.False(t, ok)
	assert.Zero(t, fetcher.calls)
}

func TestResolveSwallowsLookupErrors(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("AccessDeniedException")}
	p := &Provider{fetcher: fetcher, paramName: "/lienzo/api-key"}

	_, ok := p.Resolve(context.Background())
	assert.False(t, ok)

	// A failed lookup is not cached; the next invocation may succeed.
	fetcher.err = nil
	fetcher.value = "stored-key"
	key, ok := p.Resolve(context.Background())
	require.True(t, ok)
	assert.Equal(t, "stored-key", key)
}

func TestResolveRejectsEmptyParameterValue(t *testing.T) {
	fetcher := &fakeFetcher{value: ""}
	p := &Provider{fetcher: fetcher, paramName: "/lienzo/api-key"}

	_, ok := p.Resolve(context.Background())

	assert.False(t, ok)
}
