package core

import (
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/inspector/internal/logging"
	"github.com/jask/inspector/widgets"
)

type State int

const (
	StateUnattached State = iota
	StateActive
	StateDetached
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnattached:
		return "unattached"
	case StateActive:
		return "active"
	case StateDetached:
		return "detached"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Host is the editor environment a panel runs in.
type Host interface {
	IsAsset(target any) bool
	Destroy(target any) error
	MarkDirty(target any)
	Repaint(p *Panel)
}

type Config struct {
	Host       Host
	Ticks      *TickRegistry
	Styles     *widgets.StyleCache
	Logger     *log.Logger
	Opener     Opener
	Locate     Locator
	LabelWidth int
}

// Frame is the result of one draw pass. Err is set without Aborted when the
// body left regions open and the pass closed them.
type Frame struct {
	View       string
	Changed    bool
	Aborted    bool
	Suppressed bool
	Err        error
}

var panelSeq atomic.Uint64

// Panel binds one Definition to one target and drives its lifecycle and draw passes.
type Panel struct {
	def        Definition
	target     any
	host       Host
	ticks      *TickRegistry
	log        *log.Logger
	opener     Opener
	ctx        *Context
	sources    []SourceEntry
	labelWidth int

	state   State
	tickKey string
	changed bool
}

func NewPanel(def Definition, target any, cfg Config) *Panel {
	if cfg.Host == nil {
		cfg.Host = nopHost{}
	}
	if cfg.Ticks == nil {
		cfg.Ticks = NewTickRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard
	}
	if cfg.Locate == nil {
		cfg.Locate = LocateType
	}
	if cfg.LabelWidth <= 0 {
		cfg.LabelWidth = DefaultLabelWidth
	}
	p := &Panel{
		def:        def,
		target:     target,
		host:       cfg.Host,
		ticks:      cfg.Ticks,
		opener:     cfg.Opener,
		ctx:        NewContext(cfg.Styles, cfg.Logger),
		labelWidth: cfg.LabelWidth,
		tickKey:    fmt.Sprintf("panel-%d", panelSeq.Add(1)),
	}
	p.log = cfg.Logger.With("panel", p.Title().Label())
	p.ctx.SetOpener(cfg.Opener)
	if loc, ok := cfg.Locate(target); ok {
		p.sources = append(p.sources, SourceEntry{Label: "Target", Location: loc})
	}
	if loc, ok := cfg.Locate(def); ok {
		p.sources = append(p.sources, SourceEntry{Label: "Panel", Location: loc})
	}
	return p
}

func (p *Panel) State() State           { return p.state }
func (p *Panel) Target() any            { return p.target }
func (p *Panel) Definition() Definition { return p.def }
func (p *Panel) Context() *Context      { return p.ctx }
func (p *Panel) TickKey() string        { return p.tickKey }
func (p *Panel) Changed() bool          { return p.changed }
func (p *Panel) Sources() []SourceEntry { return p.sources }

// Title is the definition's title, or the nicified type name of the target.
func (p *Panel) Title() Content {
	if t, ok := p.def.(Titler); ok {
		if c := t.Title(); !c.IsZero() {
			return c
		}
	}
	return Plain(DefaultTitle(p.target))
}

// Attach activates the panel. Asset-only definitions refuse targets the host has
// not persisted: the target is destroyed and the panel fails for good.
func (p *Panel) Attach() error {
	switch p.state {
	case StateActive:
		err := violation("attach", "panel is already active", nil)
		p.log.Error("attach", "err", err)
		return err
	case StateFailed:
		err := violation("attach", "panel has failed", nil)
		p.log.Error("attach", "err", err)
		return err
	}
	if a, ok := p.def.(AssetOnly); ok && a.AssetOnly() && !p.host.IsAsset(p.target) {
		err := &ConfigurationError{
			Target: TypeName(p.target),
			Reason: "not allowed to instantiate an object that is not a persisted asset",
		}
		err.DestroyErr = p.host.Destroy(p.target)
		p.state = StateFailed
		p.log.Error("attach refused", "err", err)
		return err
	}
	if a, ok := p.def.(Activator); ok {
		a.OnActivate()
	}
	p.ticks.Register(p.tickKey, p.Tick)
	p.state = StateActive
	p.log.Debug("attached", "tick", p.tickKey)
	return nil
}

// Detach deactivates an active panel; in any other state it does nothing.
func (p *Panel) Detach() {
	if p.state != StateActive {
		return
	}
	if d, ok := p.def.(Deactivator); ok {
		d.OnDeactivate()
	}
	p.ticks.Unregister(p.tickKey)
	p.state = StateDetached
	p.log.Debug("detached")
}

// Tick is the per-frame callback registered while the panel is active.
func (p *Panel) Tick() {
	if p.state != StateActive {
		return
	}
	if u, ok := p.def.(Updater); ok {
		if err := p.guard("update", u.Update); err != nil {
			return
		}
	}
	p.guard("repaint", func() { p.host.Repaint(p) })
}

// Render runs one draw pass. Failures inside the pass never escape: they abort
// the pass, are logged, and come back on Frame.Err with whatever was drawn so far.
func (p *Panel) Render(width int, input []tea.KeyMsg) Frame {
	if p.state != StateActive {
		err := violation("render", "panel is "+p.state.String(), ErrNotActive)
		p.log.Error("render refused", "err", err)
		return Frame{Aborted: true, Err: err}
	}
	var f Frame
	c := p.ctx
	c.BeginPass(width, input)
	lw := p.labelWidth
	if l, ok := p.def.(LabelWidther); ok && l.LabelWidth() > 0 {
		lw = l.LabelWidth()
	}
	c.SetLabelWidth(lw)

	depth, gateDepth := c.Depth(), c.gate.Depth()
	before := c.changes.reports
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			f.Aborted = true
			f.Err = asPassError("render", r)
			if n := c.regions.unwind(depth); n > 0 {
				p.log.Warn("closed regions after abort", "count", n)
			}
			c.gate.truncate(gateDepth)
			p.log.Error("pass aborted", "err", f.Err)
		}()
		c.Track(func() { p.draw(&f) })
	}()
	f.View = c.EndPass()
	if f.Err == nil {
		f.Err = c.Leak()
	}
	f.Changed = c.changes.reports != before
	p.changed = f.Changed
	if f.Changed {
		if err := p.guard("change", p.notifyChange); err != nil {
			f.Aborted = true
			if f.Err == nil {
				f.Err = err
			}
		}
	}
	return f
}

// guard runs a call into definition or host code, turning a panic into an error.
func (p *Panel) guard(op string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = asPassError(op, r)
			p.log.Error(op+" failed", "err", err)
		}
	}()
	fn()
	return nil
}

func (p *Panel) draw(f *Frame) {
	c := p.ctx
	pred := func() bool { return true }
	if e, ok := p.def.(Enabler); ok {
		pred = e.Enabled
	}
	var msg func() string
	if m, ok := p.def.(DisabledMessenger); ok {
		msg = m.DisabledMessage
	}
	gated := func() bool {
		ok := pred()
		f.Suppressed = !ok
		return ok
	}
	c.Gate(gated, msg, func() {
		c.Vertical(func() {
			RenderHeader(c, p.header())
			c.Vertical(p.body, WithStyle(widgets.StyleBody))
		}, WithStyle(widgets.StylePanel), Width(c.width))
		if ft, ok := p.def.(Footer); ok {
			RenderFooter(c, func() { ft.Footer(c) })
		}
	})
}

func (p *Panel) body() {
	c := p.ctx
	if s, ok := p.def.(Summarizer); ok {
		if text := s.Summary(); text != "" {
			c.HelpBox(text)
		}
	}
	if b, ok := p.def.(BeforeBody); ok {
		b.BeforeBody(c)
	}
	p.def.Body(c)
	if a, ok := p.def.(AfterBody); ok {
		a.AfterBody(c)
	}
}

func (p *Panel) header() HeaderSpec {
	c := p.ctx
	h := HeaderSpec{Title: p.Title(), Sources: p.sources}
	if i, ok := p.def.(Iconer); ok {
		h.Icon = i.Icon()
	}
	if hc, ok := p.def.(HeaderContent); ok {
		h.Content = func() { hc.HeaderContent(c) }
	}
	if hb, ok := p.def.(HeaderButtons); ok {
		h.Buttons = func() { hb.HeaderButtons(c) }
	}
	if s, ok := p.def.(SupportLinker); ok && p.opener != nil {
		if url := s.SupportURL(); url != "" {
			h.Actions = append(h.Actions, Action{
				Label: Rich("Help", "?", url),
				Run: func() {
					if err := p.opener.OpenURL(url); err != nil {
						p.log.Error("open support url", "url", url, "err", err)
					}
				},
			})
		}
	}
	return h
}

// notifyChange runs the change hook exactly once. The default marks the target dirty.
func (p *Panel) notifyChange() {
	marked := false
	markDirty := func() {
		if marked {
			return
		}
		marked = true
		p.host.MarkDirty(p.target)
	}
	if ch, ok := p.def.(Changer); ok {
		ch.OnChange(markDirty)
		return
	}
	markDirty()
}

type nopHost struct{}

func (nopHost) IsAsset(any) bool  { return true }
func (nopHost) Destroy(any) error { return nil }
func (nopHost) MarkDirty(any)     {}
func (nopHost) Repaint(*Panel)    {}
