package source

import "time"

// Default per-request timeout for upstream calls.
const defaultTimeout = 30 * time.Second

type options struct {
	baseURL string
	client  *Client
}

// Option applies a configuration option to an adapter.
type Option func(*options)

// WithBaseURL overrides the upstream base URL (used in tests and when
// pointing at mirrors).
func WithBaseURL(u string) Option {
	return func(o *options) {
		if u != "" {
			o.baseURL = u
		}
	}
}

// WithClient supplies a shared HTTP client.
func WithClient(c *Client) Option {
	return func(o *options) {
		if c != nil {
			o.client = c
		}
	}
}

// WithTimeout sets the per-request timeout on a fresh client.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.client = NewClient(d)
		}
	}
}

func buildOptions(defaultBaseURL string, opts []Option) options {
	o := options{
		baseURL: defaultBaseURL,
		client:  NewClient(defaultTimeout),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
