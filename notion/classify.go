package notion

// Outcome is what a Transport reports for one request: either Err is set
// (no response at all) or StatusCode is set, with Body or ReadErr.
type Outcome struct {
	Err        error
	StatusCode int
	Body       []byte
	ReadErr    error
}

// Response is a successfully fetched page.
type Response struct {
	// Data is the pretty-printed JSON, or the raw body when it is not JSON
	Data string
	// Value is the decoded JSON when JSON is true
	Value any
	// JSON reports whether the body decoded as JSON
	JSON bool
}

// Classify maps an Outcome to a Response or an *APIError. Every outcome
// maps to exactly one of the two.
func Classify(o Outcome) (*Response, error) {
	if o.Err != nil {
		return nil, &APIError{Kind: KindConnectionFailed, Err: o.Err}
	}

	code := o.StatusCode
	switch {
	case code == 401 || code == 403:
		return nil, &APIError{Kind: KindUnauthorized, StatusCode: code}
	case code == 404:
		return nil, &APIError{Kind: KindNotFound, StatusCode: code}
	case code >= 500 && code <= 599:
		return nil, &APIError{Kind: KindServerError, StatusCode: code}
	case code >= 200 && code <= 299:
		if o.ReadErr != nil {
			return nil, &APIError{
				Kind:       KindInvalidResponse,
				StatusCode: code,
				Message:    "failed to read response body",
				Err:        o.ReadErr,
			}
		}
		return Normalize(o.Body), nil
	default:
		return nil, &APIError{
			Kind:       KindInvalidResponse,
			StatusCode: code,
			Message:    "request failed",
		}
	}
}
