package notion

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Normalization steps can fail in two named ways; both end in the raw body.
var (
	// ErrNotJSON is returned by ParseJSON when the body is not one JSON document
	ErrNotJSON = errors.New("body is not valid JSON")
	// ErrReprint is returned by PrintPretty when a decoded value cannot be encoded
	ErrReprint = errors.New("failed to pretty-print JSON")
)

// ParseJSON decodes body as a single JSON value. Numbers are kept as
// json.Number so they print back exactly as received.
//
// goccy's validator accepts inputs such as `nul`, `01` and raw control
// characters inside strings, so the strict RFC 8259 check from
// encoding/json gates decoding.
func ParseJSON(body []byte) (any, error) {
	if !stdjson.Valid(body) {
		return nil, ErrNotJSON
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}
	return v, nil
}

// PrintPretty encodes v with two-space indentation and sorted object keys.
// HTML characters are left unescaped.
func PrintPretty(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrReprint, err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Normalize turns a successfully read body into a Response. It never fails:
// parse, then pretty-print, and on either failure keep the raw text.
func Normalize(body []byte) *Response {
	raw := string(body)

	value, err := ParseJSON(body)
	if err != nil {
		return &Response{Data: raw}
	}

	pretty, err := PrintPretty(value)
	if err != nil {
		return &Response{Data: raw}
	}

	return &Response{Data: pretty, Value: value, JSON: true}
}
