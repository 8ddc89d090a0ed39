package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jask/inspector/internal/logging"
	"github.com/jask/inspector/widgets"
)

const DefaultLabelWidth = 18

// Context is the state of immediate-mode drawing for one panel. Per-pass state
// (regions, gate, input) is reset by BeginPass; focus and open menus carry over.
type Context struct {
	styles  *widgets.StyleCache
	log     *log.Logger
	regions RegionStack
	gate    EnablementGate
	changes ChangeTracker
	opener  Opener

	width        int
	labelWidth   int
	input        []tea.KeyMsg
	focus        int
	controls     int
	lastControls int
	menus        map[string]bool
	inPass       bool
	leak         *ContractViolation
}

func NewContext(styles *widgets.StyleCache, logger *log.Logger) *Context {
	if styles == nil {
		styles = widgets.NewStyleCache(widgets.DefaultTheme())
	}
	if logger == nil {
		logger = logging.Discard
	}
	return &Context{
		styles:     styles,
		log:        logger,
		regions:    RegionStack{styles: styles},
		labelWidth: DefaultLabelWidth,
		menus:      make(map[string]bool),
	}
}

func (c *Context) SetOpener(o Opener)  { c.opener = o }
func (c *Context) SetLabelWidth(n int) { c.labelWidth = n }

func (c *Context) Styles() *widgets.StyleCache { return c.styles }
func (c *Context) Logger() *log.Logger         { return c.log }
func (c *Context) Width() int                  { return c.width }
func (c *Context) Focus() int                  { return c.focus }
func (c *Context) Depth() int                  { return c.regions.Depth() }
func (c *Context) Changes() *ChangeTracker     { return &c.changes }

// BeginPass starts a draw pass of the given width. Navigation keys move focus
// among the controls counted in the previous pass; everything else is delivered
// to the focused control.
func (c *Context) BeginPass(width int, input []tea.KeyMsg) {
	c.width = width
	c.regions.reset(width)
	c.gate.reset()
	c.lastControls = c.controls
	c.controls = 0
	c.input = c.input[:0]
	c.leak = nil
	for _, k := range input {
		switch k.String() {
		case "tab", "down":
			c.moveFocus(1)
		case "shift+tab", "up":
			c.moveFocus(-1)
		default:
			c.input = append(c.input, k)
		}
	}
	c.inPass = true
}

// EndPass closes anything the pass left open and returns the rendered frame.
func (c *Context) EndPass() string {
	c.noteLeak("end pass", c.regions.unwind(0))
	c.gate.reset()
	c.input = c.input[:0]
	if c.controls > 0 && c.focus >= c.controls {
		c.focus = c.controls - 1
	}
	c.inPass = false
	return c.regions.output()
}

// noteLeak records regions a body left open. They are already closed, so the
// pass goes on; the first leak of the pass is kept for Leak.
func (c *Context) noteLeak(op string, closed int) {
	if closed == 0 {
		return
	}
	c.log.Warn("closed regions left open", "op", op, "count", closed)
	if c.leak == nil {
		c.leak = violation(op, fmt.Sprintf("%d region(s) left open", closed), nil)
	}
}

// Leak is the first region leak of the current or last pass, or nil.
func (c *Context) Leak() error {
	if c.leak == nil {
		return nil
	}
	return c.leak
}

func (c *Context) moveFocus(d int) {
	n := c.lastControls
	if n == 0 {
		return
	}
	c.focus = ((c.focus+d)%n + n) % n
}

// nextControl allocates the next focusable slot. Only the focused, enabled
// control receives the pending keys, and it receives all of them.
func (c *Context) nextControl() (focused bool, keys []tea.KeyMsg) {
	id := c.controls
	c.controls++
	focused = id == c.focus
	if focused && c.Enabled() && len(c.input) > 0 {
		keys = append(keys, c.input...)
		c.input = c.input[:0]
	}
	return focused, keys
}

// Style resolves a named style through the cache, dimmed when interaction is suppressed.
func (c *Context) Style(name string) lipgloss.Style {
	st := c.styles.Get(name).Style()
	if !c.Enabled() {
		st = st.Faint(true)
	}
	return st
}

func (c *Context) emit(s string) {
	c.regions.emit(widgets.Text(s))
}

// Available is the width a control drawn now may use.
func (c *Context) Available() int { return c.regions.current().childAvail() }

// Enabled reports whether controls drawn at this point accept input.
func (c *Context) Enabled() bool { return c.gate.Enabled() }

// ReportChange marks the current tracking scope as modified.
func (c *Context) ReportChange() { c.changes.Report() }

// Track runs body and reports whether any control inside it changed a value.
func (c *Context) Track(body func()) bool { return c.changes.Track(body) }

// Gate evaluates pred once. When it is false a banner with message() is drawn and
// body runs with interaction suppressed. The enclosing state is restored however
// body ends.
func (c *Context) Gate(pred func() bool, message func() string, body func()) bool {
	enabled := pred == nil || pred()
	if !enabled {
		msg := DefaultDisabledMessage
		if message != nil {
			if m := message(); m != "" {
				msg = m
			}
		}
		c.Vertical(func() {
			c.emit(msg)
		}, WithStyle(widgets.StyleBanner), Width(c.Available()))
	}
	restore := c.gate.Push(enabled)
	defer restore()
	body()
	return enabled
}

// EnabledScope runs body with interaction ANDed with enabled.
func (c *Context) EnabledScope(enabled bool, body func()) {
	restore := c.gate.Push(enabled)
	defer restore()
	body()
}

func (c *Context) menuOpen(id string) bool { return c.menus[id] }

func (c *Context) setMenu(id string, open bool) {
	if open {
		c.menus[id] = true
		return
	}
	delete(c.menus, id)
}

// BeginHorizontal opens a left-to-right region. Prefer Horizontal, which cannot leak.
func (c *Context) BeginHorizontal(opts ...RegionOption) {
	c.regions.begin(Horizontal, opts)
}

// BeginVertical opens a top-to-bottom region. Prefer Vertical, which cannot leak.
func (c *Context) BeginVertical(opts ...RegionOption) {
	c.regions.begin(Vertical, opts)
}

// End closes the innermost region opened with BeginHorizontal or BeginVertical.
// With nothing open it panics with a *ContractViolation, which the pass boundary
// turns into an aborted pass.
func (c *Context) End() {
	c.regions.end("end")
}

func (c *Context) Horizontal(body func(), opts ...RegionOption) {
	c.scoped("horizontal", Horizontal, body, opts)
}

func (c *Context) Vertical(body func(), opts ...RegionOption) {
	c.scoped("vertical", Vertical, body, opts)
}

func (c *Context) HorizontalBox(body func(), opts ...RegionOption) {
	c.Horizontal(body, append([]RegionOption{WithStyle(widgets.StyleBox)}, opts...)...)
}

func (c *Context) VerticalBox(body func(), opts ...RegionOption) {
	c.Vertical(body, append([]RegionOption{WithStyle(widgets.StyleBox)}, opts...)...)
}

func (c *Context) VerticalPanel(body func(), opts ...RegionOption) {
	c.Vertical(body, append([]RegionOption{WithStyle(widgets.StylePanel)}, opts...)...)
}

// HorizontalLeftAlign pushes body to the left edge of the available width.
func (c *Context) HorizontalLeftAlign(body func(), opts ...RegionOption) {
	c.Horizontal(func() {
		body()
		c.FlexibleSpace()
	}, opts...)
}

// HorizontalRightAlign pushes body to the right edge of the available width.
func (c *Context) HorizontalRightAlign(body func(), opts ...RegionOption) {
	c.Horizontal(func() {
		c.FlexibleSpace()
		body()
	}, opts...)
}

// scoped guarantees the region it opens is closed exactly once. Regions the body
// leaves open are closed first; a body that closes the scope's own region breaks
// the contract.
func (c *Context) scoped(op string, o Orientation, body func(), opts []RegionOption) {
	r := c.regions.begin(o, opts)
	mark := c.regions.Depth()
	completed := false
	defer func() {
		if !completed {
			c.regions.unwind(mark - 1)
			return
		}
		if !c.regions.contains(r) {
			panic(violation(op, "body closed a region it did not open", ErrRegionUnderflow))
		}
		c.noteLeak(op, c.regions.unwind(mark))
		c.regions.end(op)
	}()
	body()
	completed = true
}
