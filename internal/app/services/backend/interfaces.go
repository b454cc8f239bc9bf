package backend

import "context"

// RestClient is the single choke point for requests to the clinic backend.
// Implementations attach the bearer token when one is supplied and return a
// normalized envelope regardless of which legacy shape the backend used.
type RestClient interface {
	Get(ctx context.Context, path, token string) (*Envelope, error)
	Post(ctx context.Context, path, token string, body interface{}) (*Envelope, error)
	Put(ctx context.Context, path, token string, body interface{}) (*Envelope, error)
	Delete(ctx context.Context, path, token string) (*Envelope, error)
}
