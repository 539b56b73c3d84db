package notion

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Client fetches Notion pages
type Client struct {
	baseURL   string
	apiKey    string
	transport Transport
	logger    zerolog.Logger
}

// NewClient creates a new Notion client. An empty apiKey fails with
// ErrMissingCredential before any transport is built.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &APIError{Kind: KindMissingCredential}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	transport := o.transport
	if transport == nil {
		transport = NewRestyTransport(o.timeout)
	}

	return &Client{
		baseURL:   o.baseURL,
		apiKey:    apiKey,
		transport: transport,
		logger:    logger,
	}, nil
}

// GetPage fetches a single page and normalizes its body.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Response, error) {
	req := NewRequest(c.baseURL, pageID, c.apiKey)

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Str("notion_version", APIVersion).
		Msg("Making Notion API request")

	start := time.Now()
	outcome := c.transport.Send(ctx, req)

	resp, err := Classify(outcome)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Int("status", outcome.StatusCode).
			Dur("duration", time.Since(start)).
			Msg("Notion API request failed")
		return nil, err
	}

	c.logger.Debug().
		Int("status", outcome.StatusCode).
		Int("bytes", len(outcome.Body)).
		Bool("json", resp.JSON).
		Dur("duration", time.Since(start)).
		Msg("Retrieved page from Notion")

	return resp, nil
}

// Close releases the transport's resources when it holds any.
func (c *Client) Close() {
	if closer, ok := c.transport.(interface{ Close() }); ok {
		closer.Close()
	}
}
