package query

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/notion-page/notion"
)

const samplePage = `{
  "object": "page",
  "id": "275a1865-b187-807a-adea-ebaf36fb49b0",
  "archived": false,
  "properties": {
    "Name": {
      "id": "title",
      "type": "title",
      "title": [
        {"type": "text", "plain_text": "Weekly "},
        {"type": "text", "plain_text": "Notes"}
      ]
    },
    "Count": {"id": "abc", "type": "number", "number": 42}
  }
}`

func decode(t *testing.T, doc string) any {
	t.Helper()
	v, err := notion.ParseJSON([]byte(doc))
	require.NoError(t, err)
	return v
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "field access",
			expression: "properties.Name.type",
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `icontains("unclosed`,
			wantErr:    true,
		},
		{
			name:       "helper call",
			expression: `icontains(title(), "notes") and not archived`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, q.Expression())
		})
	}
}

func TestEvaluate(t *testing.T) {
	page := decode(t, samplePage)

	tests := []struct {
		name       string
		expression string
		expected   any
	}{
		{name: "top level field", expression: "id", expected: "275a1865-b187-807a-adea-ebaf36fb49b0"},
		{name: "page variable", expression: "page.object", expected: "page"},
		{name: "nested index", expression: "properties.Name.title[1].plain_text", expected: "Notes"},
		{name: "plainText helper", expression: "plainText(properties.Name.title)", expected: "Weekly Notes"},
		{name: "title helper", expression: "upper(title())", expected: "WEEKLY NOTES"},
		{name: "number comparison", expression: "properties.Count.number > 40", expected: true},
		{name: "number value", expression: "properties.Count.number", expected: int64(42)},
		{name: "boolean", expression: `object == "page" and !archived`, expected: true},
		{name: "case-insensitive helper", expression: `icontains(title(), "WEEKLY")`, expected: true},
		{name: "contains operator", expression: `title() contains "Notes"`, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := q.Evaluate(page)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluateNonObject(t *testing.T) {
	q, err := Compile("len(page)")
	require.NoError(t, err)

	got, err := q.Evaluate(decode(t, `[1, 2, 3]`))
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestEvaluateError(t *testing.T) {
	q, err := Compile(`lower(properties)`)
	require.NoError(t, err)

	_, err = q.Evaluate(decode(t, samplePage))
	require.Error(t, err)
	var evalErr *EvaluationError
	assert.ErrorAs(t, err, &evalErr)
}

func TestEvaluateLargeIntegers(t *testing.T) {
	page := decode(t, `{"big":12345678901234567890,"small":7,"ratio":0.5}`)

	tests := []struct {
		expression string
		expected   any
	}{
		{"big", json.Number("12345678901234567890")},
		{"small", int64(7)},
		{"ratio", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			q, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := q.Evaluate(page)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	q, err := Compile("big")
	require.NoError(t, err)
	got, err := q.Evaluate(page)
	require.NoError(t, err)
	out, err := notion.PrintPretty(got)
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567890", out)
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "Weekly Notes", pageTitle(normalizeNumbers(decode(t, samplePage))))
	assert.Equal(t, "", pageTitle("not a page"))
	assert.Equal(t, "", pageTitle(map[string]any{"properties": map[string]any{}}))
}
