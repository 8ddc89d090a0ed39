package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Part is one child of a row or column: rendered text, or a flexible spacer.
type Part struct {
	Text   string
	Flex   bool
	Weight float64
}

func Text(s string) Part { return Part{Text: s} }

func Flex() Part { return Part{Flex: true, Weight: 1} }

// Row joins parts left to right. When width is positive, flexible spacers share
// whatever width the fixed parts and gaps leave over.
func Row(parts []Part, width, gap int) string {
	if len(parts) == 0 {
		return ""
	}
	sizes, flex, weights := measure(parts, lipgloss.Width)
	used := gap * (len(parts) - 1)
	for _, s := range sizes {
		used += s
	}
	distribute(sizes, flex, weights, width-used)

	cols := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 && gap > 0 {
			cols = append(cols, strings.Repeat(" ", gap))
		}
		if p.Flex {
			if sizes[i] > 0 {
				cols = append(cols, strings.Repeat(" ", sizes[i]))
			}
			continue
		}
		cols = append(cols, p.Text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// Column joins parts top to bottom. Flexible spacers only grow when height is positive.
func Column(parts []Part, height, gap int) string {
	if len(parts) == 0 {
		return ""
	}
	sizes, flex, weights := measure(parts, lipgloss.Height)
	used := gap * (len(parts) - 1)
	for _, s := range sizes {
		used += s
	}
	distribute(sizes, flex, weights, height-used)

	rows := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 && gap > 0 {
			rows = append(rows, strings.Repeat("\n", gap-1))
		}
		if p.Flex {
			if sizes[i] > 0 {
				rows = append(rows, strings.Repeat("\n", sizes[i]-1))
			}
			continue
		}
		rows = append(rows, p.Text)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func measure(parts []Part, size func(string) int) ([]int, []int, []float64) {
	sizes := make([]int, len(parts))
	var flex []int
	var weights []float64
	for i, p := range parts {
		if p.Flex {
			flex = append(flex, i)
			w := p.Weight
			if w <= 0 {
				w = 1
			}
			weights = append(weights, w)
			continue
		}
		sizes[i] = size(p.Text)
	}
	return sizes, flex, weights
}

func distribute(sizes, flex []int, weights []float64, free int) {
	if len(flex) == 0 || free <= 0 {
		return
	}
	for j, n := range shareOut(free, weights) {
		sizes[flex[j]] = n
	}
}

// shareOut splits free cells by weight. Weights are positive; the cells lost to
// rounding go to the earliest entries.
func shareOut(free int, weights []float64) []int {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	out := make([]int, len(weights))
	left := free
	for i, w := range weights {
		out[i] = int(math.Floor(w / sum * float64(free)))
		left -= out[i]
	}
	for i := 0; left > 0; i++ {
		out[i%len(out)]++
		left--
	}
	return out
}

// PadRight truncates or pads s to exactly width cells.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
