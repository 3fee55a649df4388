package buglink

import (
	"slices"

	xmaps "golang.org/x/exp/maps"
)

// Registry is an immutable mapping from template name to [Template], built
// once by a [Builder]. Safe for concurrent use.
type Registry struct {
	templates map[string]*Template
}

// Template looks up a template by name. The returned template is a copy;
// registered templates cannot be modified.
func (r *Registry) Template(name string) (*Template, bool) {
	t, found := r.templates[name]
	if !found {
		return nil, false
	}

	return t.clone(), true
}

// Names returns the registered template names, sorted.
func (r *Registry) Names() []string {
	names := xmaps.Keys(r.templates)
	slices.Sort(names)

	return names
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.templates)
}
