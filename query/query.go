// Package query evaluates expr-lang expressions against a decoded Notion page.
package query

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-json"
)

// Query is a compiled expression
type Query struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression. Page fields are resolved at run time, so
// unknown identifiers are allowed here.
func Compile(expression string) (*Query, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(createHelperFunctions()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Query{expression: expression, program: program}, nil
}

// Expression returns the original expression
func (q *Query) Expression() string {
	return q.expression
}

// Evaluate runs the query against a decoded page. Top-level object keys are
// exposed as variables, and the whole document as `page`.
func (q *Query) Evaluate(page any) (any, error) {
	page = normalizeNumbers(page)

	result, err := expr.Run(q.program, createRuntimeEnvironment(page))
	if err != nil {
		return nil, &EvaluationError{
			Expression: q.expression,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}
	return result, nil
}

func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs, nil)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any, page any) {
	// String helpers; `contains` itself is an expr operator
	env["icontains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Notion helpers
	env["plainText"] = plainText
	env["title"] = func() string {
		return pageTitle(page)
	}
}

func createRuntimeEnvironment(page any) map[string]any {
	env := make(map[string]any, 32)
	if obj, ok := page.(map[string]any); ok {
		maps.Copy(env, obj)
	}
	addHelperFunctions(env, page)
	env["page"] = page
	return env
}

// plainText joins the plain_text of a rich text array.
func plainText(richText any) string {
	items, ok := richText.([]any)
	if !ok {
		return ""
	}

	var b strings.Builder
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if s, ok := obj["plain_text"].(string); ok {
			b.WriteString(s)
		}
	}
	return b.String()
}

// pageTitle returns the text of the page's title property, if any.
func pageTitle(page any) string {
	obj, ok := page.(map[string]any)
	if !ok {
		return ""
	}
	props, ok := obj["properties"].(map[string]any)
	if !ok {
		return ""
	}
	for _, p := range props {
		prop, ok := p.(map[string]any)
		if !ok || prop["type"] != "title" {
			continue
		}
		return plainText(prop["title"])
	}
	return ""
}

// normalizeNumbers converts json.Number leaves to int64 or float64 so
// expressions can do arithmetic on them. Integers that overflow int64 stay
// json.Number.
func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeNumbers(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeNumbers(item)
		}
		return out
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if !strings.ContainsAny(val.String(), ".eE") {
			// integer beyond int64; a float would drop digits
			return val
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}
