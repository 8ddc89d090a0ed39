package widgets

import (
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jask/inspector/internal/logging"
)

const (
	StyleBox      = "box"
	StylePanel    = "panel"
	StyleHeader   = "header"
	StyleFooter   = "footer"
	StyleTitle    = "title"
	StyleIcon     = "icon"
	StyleBanner   = "banner"
	StyleBody     = "body"
	StyleLabel    = "label"
	StyleButton   = "button"
	StyleFocus    = "focus"
	StyleHelp     = "help"
	StyleDisabled = "disabled"
	StyleDefault  = "default"
)

var knownStyles = []string{
	StyleBox, StylePanel, StyleHeader, StyleFooter, StyleTitle, StyleIcon,
	StyleBanner, StyleBody, StyleLabel, StyleButton, StyleFocus, StyleHelp, StyleDisabled,
}

type Padding struct {
	Top, Right, Bottom, Left int
}

// StyleSpec is the recipe a descriptor is frozen from.
type StyleSpec struct {
	Padding     Padding
	FixedWidth  int
	FixedHeight int
	Foreground  lipgloss.TerminalColor
	Background  lipgloss.TerminalColor
	BorderColor lipgloss.TerminalColor
	Bold        bool
	Faint       bool
	Border      bool
}

// StyleDescriptor is an immutable, named set of visual metrics.
type StyleDescriptor struct {
	name  string
	spec  StyleSpec
	style lipgloss.Style
}

func NewStyleDescriptor(name string, spec StyleSpec) *StyleDescriptor {
	p := spec.Padding
	st := lipgloss.NewStyle().
		Padding(p.Top, p.Right, p.Bottom, p.Left).
		Bold(spec.Bold).
		Faint(spec.Faint)
	if spec.Foreground != nil {
		st = st.Foreground(spec.Foreground)
	}
	if spec.Background != nil {
		st = st.Background(spec.Background)
	}
	if spec.Border {
		st = st.Border(lipgloss.RoundedBorder())
		if spec.BorderColor != nil {
			st = st.BorderForeground(spec.BorderColor)
		}
	}
	if spec.FixedWidth > 0 {
		st = st.Width(spec.FixedWidth).MaxWidth(spec.FixedWidth + st.GetHorizontalBorderSize())
	}
	if spec.FixedHeight > 0 {
		st = st.Height(spec.FixedHeight).MaxHeight(spec.FixedHeight + st.GetVerticalBorderSize())
	}
	return &StyleDescriptor{name: name, spec: spec, style: st}
}

func (d *StyleDescriptor) Name() string          { return d.name }
func (d *StyleDescriptor) Padding() Padding      { return d.spec.Padding }
func (d *StyleDescriptor) FixedWidth() int       { return d.spec.FixedWidth }
func (d *StyleDescriptor) FixedHeight() int      { return d.spec.FixedHeight }
func (d *StyleDescriptor) Bold() bool            { return d.spec.Bold }
func (d *StyleDescriptor) Spec() StyleSpec       { return d.spec }
func (d *StyleDescriptor) Style() lipgloss.Style { return d.style }

// HorizontalFrame is the number of cells padding and border take from a width.
func (d *StyleDescriptor) HorizontalFrame() int {
	return d.style.GetHorizontalFrameSize()
}

func (d *StyleDescriptor) VerticalFrame() int {
	return d.style.GetVerticalFrameSize()
}

// StyleBuilder returns the recipe for a style name, or false when the name is unknown.
type StyleBuilder func(name string, t Theme) (StyleSpec, bool)

// BuildStyle is the default StyleBuilder.
func BuildStyle(name string, t Theme) (StyleSpec, bool) {
	switch name {
	case StyleBox:
		return StyleSpec{Padding: Padding{Right: 1, Left: 1}, Border: true, BorderColor: t.Border}, true
	case StylePanel:
		return StyleSpec{Padding: Padding{Right: 1, Left: 1}, Border: true, BorderColor: t.Muted, Foreground: t.Text}, true
	case StyleHeader:
		return StyleSpec{FixedHeight: 1, Background: t.Container, Foreground: t.Text}, true
	case StyleFooter:
		return StyleSpec{FixedHeight: 1, Padding: Padding{Left: 1}, Background: t.Container, Foreground: t.Text}, true
	case StyleTitle:
		return StyleSpec{Padding: Padding{Right: 1, Left: 1}, Background: t.Container, Foreground: t.Text, Bold: true}, true
	case StyleIcon:
		return StyleSpec{FixedWidth: 3, Padding: Padding{Left: 1}, Background: t.Container, Foreground: t.Accent}, true
	case StyleBanner:
		return StyleSpec{Padding: Padding{Right: 1, Left: 1}, Background: t.Alert, Foreground: t.Base, Bold: true}, true
	case StyleBody:
		return StyleSpec{Padding: Padding{Top: 1, Right: 1, Bottom: 1, Left: 1}}, true
	case StyleLabel:
		return StyleSpec{Foreground: t.Text}, true
	case StyleButton:
		return StyleSpec{Padding: Padding{Right: 1, Left: 1}, Background: t.Surface0, Foreground: t.Accent}, true
	case StyleFocus:
		return StyleSpec{Padding: Padding{Right: 1, Left: 1}, Background: t.Accent, Foreground: t.Base, Bold: true}, true
	case StyleHelp:
		return StyleSpec{Padding: Padding{Right: 1, Left: 1}, Border: true, BorderColor: t.Muted, Foreground: t.Muted}, true
	case StyleDisabled:
		return StyleSpec{Foreground: t.Muted, Faint: true}, true
	case StyleDefault:
		return StyleSpec{}, true
	}
	return StyleSpec{}, false
}

type CacheOption func(*StyleCache)

func WithBuilder(b StyleBuilder) CacheOption {
	return func(c *StyleCache) { c.build = b }
}

func WithLogger(l *log.Logger) CacheOption {
	return func(c *StyleCache) { c.log = l }
}

// StyleCache builds each named descriptor once and hands out the same pointer afterwards.
// It is meant to live as long as the host process and is never reset between passes.
type StyleCache struct {
	mu     sync.Mutex
	theme  Theme
	build  StyleBuilder
	log    *log.Logger
	styles map[string]*StyleDescriptor
}

func NewStyleCache(theme Theme, opts ...CacheOption) *StyleCache {
	c := &StyleCache{
		theme:  theme,
		build:  BuildStyle,
		styles: make(map[string]*StyleDescriptor),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logging.Discard
	}
	return c
}

func (c *StyleCache) Theme() Theme { return c.theme }

// Get never fails: unknown names resolve to the default descriptor and are
// remembered under the unknown name, so each miss is logged once.
func (c *StyleCache) Get(name string) *StyleDescriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get(name)
}

func (c *StyleCache) get(name string) *StyleDescriptor {
	if d, ok := c.styles[name]; ok {
		return d
	}
	if spec, ok := c.build(name, c.theme); ok {
		d := NewStyleDescriptor(name, spec)
		c.styles[name] = d
		return d
	}
	if name == StyleDefault {
		d := NewStyleDescriptor(StyleDefault, StyleSpec{})
		c.styles[name] = d
		return d
	}
	if s := suggestStyle(name); s != "" {
		c.log.Warn("unknown style, using default", "style", name, "suggest", s)
	} else {
		c.log.Warn("unknown style, using default", "style", name)
	}
	d := c.get(StyleDefault)
	c.styles[name] = d
	return d
}

func (c *StyleCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.styles)
}

func suggestStyle(name string) string {
	best, bestDist := "", 3
	for _, known := range knownStyles {
		if d := levenshtein.ComputeDistance(name, known); d < bestDist {
			best, bestDist = known, d
		}
	}
	return best
}
