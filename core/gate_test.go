package core

import (
	"strings"
	"testing"
)

func TestEnablementGateNestedRestore(t *testing.T) {
	var g EnablementGate
	levels := []bool{true, false, true, true}
	var restores []func()
	want := true
	for i, enabled := range levels {
		restores = append(restores, g.Push(enabled))
		want = want && enabled
		if g.Enabled() != want {
			t.Fatalf("level %d: expected %v, got %v", i, want, g.Enabled())
		}
	}
	expect := []bool{true, true, false, false}
	for i := len(restores) - 1; i >= 0; i-- {
		restores[i]()
		if g.Enabled() != expect[i] {
			t.Fatalf("after restoring level %d: expected %v, got %v", i, expect[i], g.Enabled())
		}
	}
	if g.Depth() != 0 {
		t.Fatalf("gate depth %d after restoring all", g.Depth())
	}
}

func TestEnablementGateRestoreIsIdempotent(t *testing.T) {
	var g EnablementGate
	outer := g.Push(false)
	inner := g.Push(true)
	inner()
	inner()
	if g.Depth() != 1 || g.Enabled() {
		t.Fatalf("double restore popped the outer scope: depth %d", g.Depth())
	}
	outer()
	if !g.Enabled() {
		t.Fatalf("expected enabled outside all scopes")
	}
}

func TestContextGateRestoresAfterPanic(t *testing.T) {
	c := NewContext(nil, nil)
	c.BeginPass(40, nil)
	c.EnabledScope(true, func() {
		func() {
			defer func() { _ = recover() }()
			c.EnabledScope(false, func() {
				c.EnabledScope(true, func() {
					if c.Enabled() {
						t.Fatalf("enabled inside a disabled scope")
					}
					panic("boom")
				})
			})
		}()
		if !c.Enabled() {
			t.Fatalf("gate not restored to the enclosing scope after panic")
		}
	})
	c.EndPass()
}

func TestGateDrawsBannerWhenPredicateFails(t *testing.T) {
	c := NewContext(nil, nil)
	c.BeginPass(40, nil)
	calls := 0
	ran := false
	ok := c.Gate(func() bool { calls++; return false }, nil, func() {
		ran = true
		if c.Enabled() {
			t.Fatalf("body should run suppressed")
		}
	})
	out := c.EndPass()
	if ok || !ran || calls != 1 {
		t.Fatalf("gate result %v ran %v predicate calls %d", ok, ran, calls)
	}
	if !strings.Contains(out, DefaultDisabledMessage) {
		t.Fatalf("banner missing: %q", out)
	}
}

func TestGateUsesCustomMessage(t *testing.T) {
	c := NewContext(nil, nil)
	c.BeginPass(60, nil)
	c.Gate(func() bool { return false }, func() string { return "Read only in play mode" }, func() {})
	if out := c.EndPass(); !strings.Contains(out, "Read only in play mode") {
		t.Fatalf("custom message missing: %q", out)
	}
}

func TestDisabledControlsIgnoreInput(t *testing.T) {
	c := NewContext(nil, nil)
	c.BeginPass(40, keys(enter()))
	on := false
	changed := c.Track(func() {
		c.EnabledScope(false, func() {
			c.Toggle("Lit", &on)
		})
	})
	c.EndPass()
	if on || changed {
		t.Fatalf("disabled toggle accepted input")
	}
}
