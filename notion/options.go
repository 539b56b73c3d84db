package notion

import "time"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL   string
	timeout   time.Duration
	transport Transport
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL: DefaultBaseURL,
		timeout: 30 * time.Second,
	}
}

// WithBaseURL points the client at another API host.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithTransport replaces the resty transport, mainly for tests.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}
