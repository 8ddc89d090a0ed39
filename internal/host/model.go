package host

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jask/inspector/core"
	"github.com/jask/inspector/internal/logging"
	"github.com/jask/inspector/widgets"
)

type Options struct {
	Scene        *Scene
	Registry     *Registry
	Styles       *widgets.StyleCache
	Logger       *log.Logger
	Opener       *ExecOpener
	Keys         *KeyRegistry
	Commands     *CommandRegistry
	Locate       core.Locator
	Width        int
	LabelWidth   int
	TickInterval time.Duration
}

// Model is the editor shell: a strip of scene objects above the inspector
// panel of the selected one.
type Model struct {
	scene    *Scene
	registry *Registry
	styles   *widgets.StyleCache
	log      *log.Logger
	opener   *ExecOpener
	keys     *KeyRegistry
	commands *CommandRegistry
	locate   core.Locator
	ticks    *core.TickRegistry
	interval time.Duration

	width      int
	height     int
	panelWidth int
	labelWidth int

	index     int
	panel     *core.Panel
	view      string
	status    string
	statusErr bool
	quitting  bool
}

func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	if opts.Styles == nil {
		opts.Styles = widgets.NewStyleCache(widgets.DefaultTheme(), widgets.WithLogger(opts.Logger))
	}
	if opts.Opener == nil {
		opts.Opener = NewExecOpener()
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if opts.Commands == nil {
		opts.Commands = NewCommandRegistry(DefaultCommands())
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = 250 * time.Millisecond
	}
	if opts.Width <= 0 {
		opts.Width = 72
	}
	m := Model{
		scene:      opts.Scene,
		registry:   opts.Registry,
		styles:     opts.Styles,
		log:        opts.Logger,
		opener:     opts.Opener,
		keys:       opts.Keys,
		commands:   opts.Commands,
		locate:     opts.Locate,
		ticks:      core.NewTickRegistry(),
		interval:   opts.TickInterval,
		panelWidth: opts.Width,
		labelWidth: opts.LabelWidth,
		width:      opts.Width,
		height:     32,
		status:     "Ready",
	}
	m.selectIndex(0)
	return m
}

func (m Model) Init() tea.Cmd { return tickCmd(m.interval) }

func (m Model) Selected() *Object {
	objs := m.scene.Objects()
	if m.index < 0 || m.index >= len(objs) {
		return nil
	}
	return objs[m.index]
}

func (m Model) Panel() *core.Panel { return m.panel }
func (m Model) PanelView() string  { return m.view }
func (m Model) Status() string     { return m.status }

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) scope() string {
	if m.scene.Playing() {
		return scopePlay
	}
	return scopeEdit
}

func (m *Model) detach() {
	if m.panel != nil {
		m.panel.Detach()
	}
	m.panel = nil
	m.view = ""
}

// selectIndex inspects the object at i, wrapping around the scene. Objects
// whose panel refuses them are destroyed by the panel and skipped.
func (m *Model) selectIndex(i int) tea.Cmd {
	m.detach()
	for m.scene.Len() > 0 {
		n := m.scene.Len()
		m.index = ((i % n) + n) % n
		obj := m.scene.Objects()[m.index]
		p := core.NewPanel(m.registry.Definition(obj.Target), obj.Target, core.Config{
			Host:       m.scene,
			Ticks:      m.ticks,
			Styles:     m.styles,
			Logger:     m.log,
			Opener:     m.opener,
			Locate:     m.locate,
			LabelWidth: m.labelWidth,
		})
		err := p.Attach()
		if err == nil {
			m.panel = p
			return m.render(nil)
		}
		m.SetError(err)
		var cfgErr *core.ConfigurationError
		if !errors.As(err, &cfgErr) || cfgErr.DestroyErr != nil || m.scene.Len() == n {
			return nil
		}
		i = m.index
	}
	m.index = 0
	return nil
}

// render runs one draw pass of the selected panel and releases any open
// requests the pass queued.
func (m *Model) render(input []tea.KeyMsg) tea.Cmd {
	if m.panel == nil {
		return nil
	}
	f := m.panel.Render(m.panelWidth, input)
	if f.View != "" {
		m.view = f.View
	}
	if f.Err != nil {
		m.SetError(f.Err)
	}
	return tea.Batch(m.opener.Drain()...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.panelWidth = max(20, msg.Width)
		cmd := m.render(nil)
		return m, cmd
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case openDoneMsg:
		if msg.Err != nil {
			m.SetError(fmt.Errorf("open %s: %w", msg.What, msg.Err))
		}
		return m, nil
	case tickMsg:
		m.ticks.Fire()
		var cmd tea.Cmd
		if m.scene.TakeRepaint() {
			cmd = m.render(nil)
		}
		return m, tea.Batch(cmd, tickCmd(m.interval))
	case tea.KeyMsg:
		var cmd tea.Cmd
		if b, ok := m.keys.Lookup(msg, m.scope()); ok {
			cmd = m.commands.Execute(b.Action, &m)
		} else {
			cmd = m.render([]tea.KeyMsg{msg})
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	tabs := m.renderTabs()
	status := m.renderStatus()
	footer := m.renderFooter(m.keys.HelpBindings(m.scope()))
	body := m.view
	if body == "" {
		body = m.styles.Get(widgets.StyleHelp).Style().Render("Scene is empty")
	}
	available := m.height - lipgloss.Height(tabs) - lipgloss.Height(status) - lipgloss.Height(footer)
	body = widgets.ClipHeight(body, max(1, available))
	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, status, footer)
}

func (m Model) renderTabs() string {
	active := m.styles.Get(widgets.StyleFocus).Style()
	inactive := m.styles.Get(widgets.StyleLabel).Style()
	parts := make([]string, 0, m.scene.Len()+1)
	mode := "edit"
	if m.scene.Playing() {
		mode = "play"
	}
	parts = append(parts, m.styles.Get(widgets.StyleTitle).Style().Render("["+mode+"]"))
	for i, o := range m.scene.Objects() {
		label := o.Name
		if i == m.index {
			parts = append(parts, active.Render(label))
		} else {
			parts = append(parts, inactive.Render(label))
		}
	}
	return widgets.Bar(m.styles.Get(widgets.StyleHeader).Style(), max(1, m.width), strings.Join(parts, " │ "))
}

func (m Model) renderStatus() string {
	style := m.styles.Get(widgets.StyleLabel).Style()
	if m.statusErr {
		style = m.styles.Get(widgets.StyleBanner).Style()
	}
	text := m.status
	if n := m.scene.DirtyCount(); n > 0 {
		text = fmt.Sprintf("%s  (%s unsaved)", text, pluralize(n, "change"))
	}
	return widgets.Bar(style, max(1, m.width), text)
}

func (m Model) renderFooter(bindings []key.Binding) string {
	keyStyle := m.styles.Get(widgets.StyleTitle).Style()
	descStyle := m.styles.Get(widgets.StyleHelp).Style()
	parts := make([]string, 0, len(bindings)+1)
	parts = append(parts, keyStyle.Render("tab")+" "+descStyle.Render("field"))
	for _, b := range bindings {
		help := b.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+" "+descStyle.Render(help.Desc))
	}
	return widgets.TrimToWidth(strings.Join(parts, "  "), max(1, m.width))
}
