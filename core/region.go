package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/inspector/widgets"
)

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

type regionOptions struct {
	style  string
	width  int
	height int
	gap    int
}

// RegionOption adjusts a single region; nothing leaks to siblings or children.
type RegionOption func(*regionOptions)

func WithStyle(name string) RegionOption {
	return func(o *regionOptions) { o.style = name }
}

// Width fixes the outer width of the region, overriding automatic sizing.
func Width(n int) RegionOption {
	return func(o *regionOptions) { o.width = n }
}

// Height fixes the outer height of the region, overriding automatic sizing.
func Height(n int) RegionOption {
	return func(o *regionOptions) { o.height = n }
}

func Gap(n int) RegionOption {
	return func(o *regionOptions) { o.gap = n }
}

type region struct {
	orient Orientation
	style  *widgets.StyleDescriptor
	width  int
	height int
	gap    int
	avail  int
	parts  []widgets.Part
}

// childAvail is the width a new child of r may use.
func (r *region) childAvail() int {
	if r.orient == Vertical {
		return r.avail
	}
	used := 0
	for i, p := range r.parts {
		if i > 0 {
			used += r.gap
		}
		if !p.Flex {
			used += lipgloss.Width(p.Text)
		}
	}
	if len(r.parts) > 0 {
		used += r.gap
	}
	return max(0, r.avail-used)
}

func (r *region) render() string {
	var body string
	if r.orient == Horizontal {
		body = widgets.Row(r.parts, r.avail, r.gap)
	} else {
		inner := 0
		if r.height > 0 {
			inner = r.height
			if r.style != nil {
				inner -= r.style.VerticalFrame()
			}
		}
		body = widgets.Column(r.parts, inner, r.gap)
	}
	st := lipgloss.NewStyle()
	if r.style != nil {
		st = r.style.Style()
	}
	if r.width > 0 {
		st = st.Width(max(0, r.width-st.GetHorizontalBorderSize())).MaxWidth(r.width)
	}
	if r.height > 0 {
		st = st.Height(max(0, r.height-st.GetVerticalBorderSize())).MaxHeight(r.height)
	}
	if body == "" && r.style == nil && r.width == 0 && r.height == 0 {
		return ""
	}
	return st.Render(body)
}

// RegionStack holds the layout scopes opened during one pass. The root region is
// not on the stack, so Depth is zero outside of any Begin.
type RegionStack struct {
	styles  *widgets.StyleCache
	root    *region
	regions []*region
}

func (s *RegionStack) reset(width int) {
	s.regions = s.regions[:0]
	s.root = &region{orient: Vertical, avail: width}
}

func (s *RegionStack) Depth() int { return len(s.regions) }

func (s *RegionStack) current() *region {
	if n := len(s.regions); n > 0 {
		return s.regions[n-1]
	}
	if s.root == nil {
		s.reset(0)
	}
	return s.root
}

func (s *RegionStack) contains(r *region) bool {
	for _, open := range s.regions {
		if open == r {
			return true
		}
	}
	return false
}

func (s *RegionStack) begin(o Orientation, opts []RegionOption) *region {
	var ro regionOptions
	for _, opt := range opts {
		opt(&ro)
	}
	parent := s.current()
	r := &region{orient: o, width: ro.width, height: ro.height, gap: ro.gap}
	if ro.style != "" && s.styles != nil {
		r.style = s.styles.Get(ro.style)
	}
	avail := parent.childAvail()
	if r.width > 0 {
		avail = r.width
	} else if r.style != nil && r.style.FixedWidth() > 0 {
		avail = r.style.FixedWidth()
	}
	if r.style != nil {
		avail -= r.style.HorizontalFrame()
	}
	r.avail = max(0, avail)
	s.regions = append(s.regions, r)
	return r
}

// end closes the innermost region and hands its output to the parent.
func (s *RegionStack) end(op string) {
	n := len(s.regions)
	if n == 0 {
		panic(violation(op, "no open region", ErrRegionUnderflow))
	}
	r := s.regions[n-1]
	s.regions = s.regions[:n-1]
	out := r.render()
	if out == "" {
		return
	}
	parent := s.current()
	parent.parts = append(parent.parts, widgets.Text(out))
}

// unwind closes regions until Depth equals depth.
func (s *RegionStack) unwind(depth int) int {
	closed := 0
	for len(s.regions) > max(0, depth) {
		s.end("unwind")
		closed++
	}
	return closed
}

func (s *RegionStack) emit(p widgets.Part) {
	r := s.current()
	r.parts = append(r.parts, p)
}

func (s *RegionStack) output() string {
	if s.root == nil {
		return ""
	}
	out := widgets.Column(s.root.parts, 0, 0)
	return strings.TrimRight(out, "\n")
}
