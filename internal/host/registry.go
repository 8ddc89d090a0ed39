package host

import (
	"cmp"
	"slices"

	"github.com/jask/inspector/core"
)

// Kind describes one object type the editor knows how to create and inspect.
type Kind struct {
	Name  string
	New   func() any
	Panel func(target any) core.Definition
}

// Registry maps kind names to their panel definitions.
type Registry struct {
	kinds map[string]Kind
}

func NewRegistry(kinds ...Kind) *Registry {
	r := &Registry{kinds: map[string]Kind{}}
	for _, k := range kinds {
		r.Register(k)
	}
	return r
}

func (r *Registry) Register(k Kind) {
	if k.Name == "" || k.New == nil {
		return
	}
	r.kinds[k.Name] = k
}

func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.kinds))
	for _, k := range r.kinds {
		out = append(out, k)
	}
	slices.SortFunc(out, func(a, b Kind) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// New builds an empty target of the named kind.
func (r *Registry) New(kind string) (any, bool) {
	k, ok := r.kinds[kind]
	if !ok {
		return nil, false
	}
	return k.New(), true
}

// Definition returns the panel for target, falling back to the field-drawing
// default when the kind has no panel of its own.
func (r *Registry) Definition(target any) core.Definition {
	if k, ok := r.kinds[core.TypeName(target)]; ok && k.Panel != nil {
		return k.Panel(target)
	}
	return core.FieldsDefinition{Target: target}
}
