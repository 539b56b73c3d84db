// Package render turns fetched pages into console output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/notion-page/notion"
)

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Label precedes the page body on stdout
const Label = "Data received:"

// Formatter renders pages in one output format
type Formatter struct {
	format string
}

// NewFormatter creates a formatter; an empty format means JSON.
func NewFormatter(format string) (*Formatter, error) {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		return &Formatter{format: FormatJSON}, nil
	case FormatYAML:
		return &Formatter{format: FormatYAML}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// FormatPage renders a page. Bodies that were not JSON are returned as-is
// whatever the format.
func (f *Formatter) FormatPage(resp *notion.Response) (string, error) {
	if !resp.JSON || f.format == FormatJSON {
		return resp.Data, nil
	}
	return f.FormatValue(resp.Value)
}

// FormatValue renders an arbitrary decoded value, such as a query result.
func (f *Formatter) FormatValue(v any) (string, error) {
	if f.format == FormatYAML {
		out, err := yaml.Marshal(yamlNumbers(v))
		if err != nil {
			return "", fmt.Errorf("failed to encode YAML: %w", err)
		}
		return strings.TrimRight(string(out), "\n"), nil
	}

	out, err := notion.PrintPretty(v)
	if err != nil {
		return "", err
	}
	return out, nil
}

// WriteResult writes the labelled result.
func WriteResult(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", Label, text)
	return err
}

// yamlNumbers replaces json.Number leaves with plain int or float scalars,
// keeping the digits exactly as decoded.
func yamlNumbers(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = yamlNumbers(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = yamlNumbers(item)
		}
		return out
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(val.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val.String()}
	default:
		return v
	}
}
