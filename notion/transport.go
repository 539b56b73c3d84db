package notion

import (
	"context"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
)

// Transport performs one HTTP exchange. Failures to get any response are
// reported in Outcome.Err; everything else is a status and a body.
type Transport interface {
	Send(ctx context.Context, req Request) Outcome
}

// RestyTransport sends requests through a resty client.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport creates a transport with the given timeout. A zero
// timeout leaves the client without one.
func NewRestyTransport(timeout time.Duration) *RestyTransport {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &RestyTransport{client: c}
}

// Send executes req. The body is read in full here so a read failure can
// be told apart from a transport failure, and the stream is always closed.
func (t *RestyTransport) Send(ctx context.Context, req Request) Outcome {
	r := t.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	for key, values := range req.Header {
		for _, v := range values {
			r.Header.Add(key, v)
		}
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		if resp != nil && resp.RawBody() != nil {
			resp.RawBody().Close()
		}
		return Outcome{Err: err}
	}

	out := Outcome{StatusCode: resp.StatusCode()}

	body := resp.RawBody()
	if body == nil {
		return out
	}
	defer body.Close()

	out.Body, out.ReadErr = io.ReadAll(body)
	return out
}

// Close releases idle connections held by the underlying client.
func (t *RestyTransport) Close() {
	t.client.GetClient().CloseIdleConnections()
}
