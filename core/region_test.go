package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func expectViolation(t *testing.T, fn func()) *ContractViolation {
	t.Helper()
	var got *ContractViolation
	func() {
		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok || !errors.As(err, &got) {
				t.Fatalf("expected contract violation panic, got %v", r)
			}
		}()
		fn()
	}()
	return got
}

func TestScopedRegionsBalance(t *testing.T) {
	c := NewContext(nil, nil)
	c.BeginPass(40, nil)
	c.Horizontal(func() {
		c.Vertical(func() {
			if c.Depth() != 2 {
				t.Fatalf("expected depth 2 inside nested scopes, got %d", c.Depth())
			}
			c.Label("alpha")
		})
		c.Label("beta")
	})
	if c.Depth() != 0 {
		t.Fatalf("depth after scopes: %d", c.Depth())
	}
	out := c.EndPass()
	if !strings.Contains(out, "alpha") || !strings.Contains(out, "beta") {
		t.Fatalf("missing labels in %q", out)
	}
}

func TestEndOnEmptyStackIsViolation(t *testing.T) {
	c := NewContext(nil, nil)
	c.BeginPass(40, nil)
	cv := expectViolation(t, c.End)
	if !errors.Is(cv, ErrRegionUnderflow) {
		t.Fatalf("expected underflow, got %v", cv)
	}
}

func TestScopedClosesLeakedRegions(t *testing.T) {
	c := NewContext(nil, nil)
	c.BeginPass(40, nil)
	c.Vertical(func() {
		c.BeginHorizontal()
		c.BeginVertical()
		c.Label("leaked")
	})
	if c.Depth() != 0 {
		t.Fatalf("leaked regions were not closed: depth %d", c.Depth())
	}
	var cv *ContractViolation
	if !errors.As(c.Leak(), &cv) || cv.Op != "vertical" {
		t.Fatalf("leak not recorded: %v", c.Leak())
	}
	if out := c.EndPass(); !strings.Contains(out, "leaked") {
		t.Fatalf("leaked content dropped: %q", out)
	}
	c.BeginPass(40, nil)
	if c.Leak() != nil {
		t.Fatalf("leak survived BeginPass")
	}
	c.BeginVertical()
	c.EndPass()
	if !errors.As(c.Leak(), &cv) || cv.Op != "end pass" {
		t.Fatalf("open region at end of pass not recorded: %v", c.Leak())
	}
}

func TestScopedRejectsBodyClosingItsRegion(t *testing.T) {
	c := NewContext(nil, nil)
	c.BeginPass(40, nil)
	c.BeginVertical()
	expectViolation(t, func() {
		c.Horizontal(func() {
			c.End()
		})
	})
	if c.Depth() != 1 {
		t.Fatalf("outer region should survive, depth %d", c.Depth())
	}
	c.End()
}

func TestScopedUnwindsWhenBodyPanics(t *testing.T) {
	c := NewContext(nil, nil)
	c.BeginPass(40, nil)
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatalf("expected panic to propagate")
			}
		}()
		c.Vertical(func() {
			c.Horizontal(func() {
				c.Label("partial")
				panic("boom")
			})
		})
	}()
	if c.Depth() != 0 {
		t.Fatalf("depth after panic: %d", c.Depth())
	}
	if out := c.EndPass(); !strings.Contains(out, "partial") {
		t.Fatalf("partial output lost: %q", out)
	}
}

func TestFlexibleSpaceFillsWidth(t *testing.T) {
	c := NewContext(nil, nil)
	c.BeginPass(20, nil)
	c.Horizontal(func() {
		c.Label("a")
		c.FlexibleSpace()
		c.Label("b")
	})
	out := c.EndPass()
	if w := lipgloss.Width(out); w != 20 {
		t.Fatalf("expected width 20, got %d (%q)", w, out)
	}
	if !strings.HasPrefix(out, "a") || !strings.HasSuffix(out, "b") {
		t.Fatalf("expected a...b, got %q", out)
	}
}

func TestWidthOptionOverridesSizing(t *testing.T) {
	c := NewContext(nil, nil)
	c.BeginPass(40, nil)
	c.Horizontal(func() {
		c.Label("a")
	}, Width(10))
	out := c.EndPass()
	if w := lipgloss.Width(out); w != 10 {
		t.Fatalf("expected width 10, got %d", w)
	}
}

func TestEndPassClosesLowLevelRegions(t *testing.T) {
	c := NewContext(nil, nil)
	c.BeginPass(40, nil)
	c.BeginVertical()
	c.BeginHorizontal()
	c.Label("open")
	out := c.EndPass()
	if c.Depth() != 0 {
		t.Fatalf("depth after EndPass: %d", c.Depth())
	}
	if !strings.Contains(out, "open") {
		t.Fatalf("content of open regions lost: %q", out)
	}
}
