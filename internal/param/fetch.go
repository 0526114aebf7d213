package param

import "context"

// Fetcher retrieves a single named parameter from the secret store.
type Fetcher interface {
	Fetch(context.Context, string) (string, error)
}
