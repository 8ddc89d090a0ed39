package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRowDistributesFlexibleSpace(t *testing.T) {
	out := Row([]Part{Text("ab"), Flex(), Text("c"), Flex()}, 11, 0)
	if w := lipgloss.Width(out); w != 11 {
		t.Fatalf("width %d", w)
	}
	if out != "ab    c    " {
		t.Fatalf("row %q", out)
	}
}

func TestRowWithoutWidthIgnoresFlex(t *testing.T) {
	out := Row([]Part{Text("a"), Flex(), Text("b")}, 0, 1)
	if out != "a  b" {
		t.Fatalf("row %q", out)
	}
}

func TestColumnFlexNeedsHeight(t *testing.T) {
	parts := []Part{Text("top"), Flex(), Text("bottom")}
	if got := lipgloss.Height(Column(parts, 0, 0)); got != 2 {
		t.Fatalf("unsized column height %d", got)
	}
	if got := lipgloss.Height(Column(parts, 5, 0)); got != 5 {
		t.Fatalf("sized column height %d", got)
	}
}

func TestShareOutByWeight(t *testing.T) {
	got := shareOut(10, []float64{1, 1, 2})
	if got[0]+got[1]+got[2] != 10 || got[2] < got[0] {
		t.Fatalf("split %v", got)
	}
	got = shareOut(7, []float64{1, 1, 1})
	if got[0] != 3 || got[1] != 2 || got[2] != 2 {
		t.Fatalf("remainder should go to the first entries: %v", got)
	}
}

func TestPadRightAndBar(t *testing.T) {
	if got := PadRight("hello", 3); got != "hel" {
		t.Fatalf("truncate %q", got)
	}
	if got := PadRight("hi", 4); got != "hi  " {
		t.Fatalf("pad %q", got)
	}
	bar := Bar(lipgloss.NewStyle(), 8, "a\nb")
	if lipgloss.Width(bar) != 8 || strings.Contains(bar, "\n") {
		t.Fatalf("bar %q", bar)
	}
}
