package notion

import (
	"net/http"
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is the public Notion API host
	DefaultBaseURL = "https://api.notion.com"

	// APIVersion is the Notion-Version this client was written against
	APIVersion = "2025-09-03"

	// VersionHeader carries APIVersion on every request
	VersionHeader = "Notion-Version"

	defaultUserAgent = "notion-page"
)

// Request is a fully assembled outbound request. It is built once and
// handed to a Transport.
type Request struct {
	Method string
	URL    string
	Header http.Header
}

// NewRequest builds the GET request for a page. The token is placed in the
// Authorization header and nowhere else.
func NewRequest(baseURL, pageID, token string) Request {
	baseURL = strings.TrimRight(baseURL, "/")

	header := make(http.Header)
	header.Set("Authorization", "Bearer "+token)
	header.Set(VersionHeader, APIVersion)
	header.Set("Accept", "application/json")
	header.Set("User-Agent", defaultUserAgent)

	return Request{
		Method: http.MethodGet,
		URL:    baseURL + "/v1/pages/" + url.PathEscape(pageID),
		Header: header,
	}
}
