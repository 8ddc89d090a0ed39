package core

import (
	"strings"
	"testing"
)

type crate struct {
	Label    string
	Sealed   bool
	Weight   int8
	Tags     []string
	internal int
	Secret   string `inspector:"-"`
}

func TestDrawFieldsEditsFocusedField(t *testing.T) {
	c := NewContext(nil, nil)
	target := &crate{Label: "ammo", Weight: 126, Tags: []string{"heavy"}, Secret: "hidden-value"}

	c.BeginPass(60, nil)
	c.DrawFields(target)
	out := c.EndPass()
	for _, want := range []string{"Label", "Sealed", "Weight", "Tags", "[heavy]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
	if strings.Contains(out, "hidden-value") || strings.Contains(out, "Internal") {
		t.Fatalf("skipped fields drawn: %q", out)
	}

	c.BeginPass(60, keys(tab(), enter()))
	changed := c.Track(func() { c.DrawFields(target) })
	c.EndPass()
	if !target.Sealed || !changed {
		t.Fatalf("sealed %v changed %v", target.Sealed, changed)
	}

	c.BeginPass(60, keys(tab(), runes("9")))
	c.DrawFields(target)
	c.EndPass()
	if target.Weight != 126 {
		t.Fatalf("overflowing edit applied: %d", target.Weight)
	}
}

func TestFieldsDefinitionOnNonStruct(t *testing.T) {
	p := NewPanel(FieldsDefinition{Target: 42}, 42, Config{Locate: noLocate})
	if err := p.Attach(); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if f := p.Render(60, nil); !strings.Contains(f.View, "42") {
		t.Fatalf("value missing: %q", f.View)
	}
}
