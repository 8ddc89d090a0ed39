package host

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeGlobal = "global"
	scopeEdit   = "edit"
	scopePlay   = "play"
)

type Action string

const (
	actionQuit        Action = "quit"
	actionSave        Action = "save"
	actionNext        Action = "next"
	actionPrev        Action = "prev"
	actionInstantiate Action = "instantiate"
	actionDestroy     Action = "destroy"
	actionPlay        Action = "play"
)

// Binding maps keys to a scene action. Keys not bound in the active scope
// go to the selected panel.
type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

type KeyRegistry struct {
	bindings []Binding
}

func NewKeyRegistry(bindings []Binding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func DefaultKeyBindings() []Binding {
	return []Binding{
		{Action: actionQuit, Keys: []string{"ctrl+c"}, Help: "quit", Scopes: []string{scopeGlobal}},
		{Action: actionNext, Keys: []string{"pgdown", "ctrl+n"}, Help: "next", Scopes: []string{scopeGlobal}},
		{Action: actionPrev, Keys: []string{"pgup", "ctrl+p"}, Help: "prev", Scopes: []string{scopeGlobal}},
		{Action: actionPlay, Keys: []string{"ctrl+r"}, Help: "play", Scopes: []string{scopeEdit}},
		{Action: actionPlay, Keys: []string{"ctrl+r"}, Help: "stop", Scopes: []string{scopePlay}},
		{Action: actionSave, Keys: []string{"ctrl+s"}, Help: "save", Scopes: []string{scopeEdit}},
		{Action: actionInstantiate, Keys: []string{"ctrl+t"}, Help: "instantiate", Scopes: []string{scopeEdit}},
		{Action: actionDestroy, Keys: []string{"ctrl+d"}, Help: "destroy", Scopes: []string{scopeEdit}},
	}
}

func (r *KeyRegistry) Register(b Binding) {
	r.bindings = append(r.bindings, b)
}

// Lookup finds the binding for msg in scope, falling back to global bindings.
func (r *KeyRegistry) Lookup(msg tea.KeyMsg, scope string) (Binding, bool) {
	for _, s := range []string{scope, scopeGlobal} {
		for _, b := range r.bindings {
			if slices.Contains(b.Scopes, s) && key.Matches(msg, b.Key()) {
				return b, true
			}
		}
	}
	return Binding{}, false
}

// Key is the bubbles binding for b, with its first key shown in help.
func (b Binding) Key() key.Binding {
	if len(b.Keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help))
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if slices.Contains(b.Scopes, scope) {
			out = append(out, b)
		}
	}
	return out
}

// HelpBindings lists scope bindings followed by the global ones.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := append(r.BindingsForScope(scope), r.BindingsForScope(scopeGlobal)...)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if kb := b.Key(); kb.Enabled() {
			out = append(out, kb)
		}
	}
	return out
}
