package buglink

import (
	"fmt"
	"regexp"

	"github.com/gopatchy/buglink/pkg/errors"
)

// Template is an immutable issue template: a title pattern, a body pattern,
// and an optional label list. Patterns contain placeholders of the form
// {name}, where name is one or more letters, digits, or underscores.
// Anything else between braces is not a placeholder and passes through
// untouched.
type Template struct {
	title    string
	body     string
	labels   []string
	required []string
}

// NewTemplate creates a [Template] from title and body patterns. The
// placeholder set is extracted once here.
func NewTemplate(title, body string) *Template {
	return &Template{
		title:    title,
		body:     body,
		required: placeholders(title, body),
	}
}

// WithLabels sets the template's labels and returns the template for
// chaining. Call before registering; registered templates are copies.
func (t *Template) WithLabels(labels ...string) *Template {
	t.labels = append([]string{}, labels...)
	return t
}

// Title returns the title pattern.
func (t *Template) Title() string {
	return t.title
}

// Body returns the body pattern.
func (t *Template) Body() string {
	return t.body
}

// Labels returns a copy of the label list.
func (t *Template) Labels() []string {
	return append([]string{}, t.labels...)
}

// Placeholders returns a copy of the distinct placeholder names across both
// patterns, in first-appearance order (title pattern first).
func (t *Template) Placeholders() []string {
	return append([]string{}, t.required...)
}

func (t *Template) clone() *Template {
	return &Template{
		title:    t.title,
		body:     t.body,
		labels:   append([]string{}, t.labels...),
		required: append([]string{}, t.required...),
	}
}

// fill validates params against the placeholder set, then renders both
// patterns. Validation runs before any substitution so a failure never
// yields partially substituted output.
func (t *Template) fill(name string, params Params) (string, string, error) {
	for _, ph := range t.required {
		if _, found := params.Get(ph); !found {
			return "", "", fmt.Errorf("%s: %s: %w", name, ph, errors.ErrMissingParameter)
		}
	}

	return substitute(t.title, params), substitute(t.body, params), nil
}

var placeholderRE = regexp.MustCompile(`\{[A-Za-z0-9_]+\}`)

// substitute fills placeholders in one left-to-right pass. Values are
// inserted verbatim and never rescanned, so a value containing {other}
// stays literal in the output.
func substitute(pattern string, params Params) string {
	return placeholderRE.ReplaceAllStringFunc(pattern, func(m string) string {
		v, _ := params.Get(m[1 : len(m)-1])
		return v
	})
}

// placeholders returns the distinct placeholder names across patterns, in
// first-appearance order.
func placeholders(patterns ...string) []string {
	names := []string{}
	seen := map[string]bool{}

	for _, pattern := range patterns {
		for _, m := range placeholderRE.FindAllString(pattern, -1) {
			name := m[1 : len(m)-1]
			if seen[name] {
				continue
			}

			seen[name] = true
			names = append(names, name)
		}
	}

	return names
}
