package host

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/inspector/core"
)

type clock struct {
	Hour int
}

func noLocate(any) (core.SourceLocation, bool) { return core.SourceLocation{}, false }

func newTestModel(t *testing.T, scene *Scene, reg *Registry) Model {
	t.Helper()
	return NewModel(Options{
		Scene:        scene,
		Registry:     reg,
		Locate:       noLocate,
		Width:        60,
		TickInterval: time.Millisecond,
	})
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, []tea.Cmd) {
	t.Helper()
	var cmds []tea.Cmd
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = next.(Model)
		cmds = append(cmds, cmd)
	}
	return m, cmds
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelSkipsObjectsItsPanelRefuses(t *testing.T) {
	scene, _ := newTestScene(t)
	scene.Add("relic", &relic{Name: "old"})
	g := scene.Add("gadget", &gadget{Name: "g"})

	m := newTestModel(t, scene, testRegistry())
	require.Equal(t, 1, scene.Len())
	require.Same(t, g, m.Selected())
	require.Equal(t, core.StateActive, m.Panel().State())
	require.Contains(t, m.Status(), "not a persisted asset")
}

func TestModelRoutesKeysToPanelAndSaves(t *testing.T) {
	scene, repo := newTestScene(t)
	seedAsset(t, repo, "gadget", "g1", gadget{Name: "g1"})
	require.NoError(t, scene.Load(testRegistry().New))
	m := newTestModel(t, scene, testRegistry())

	m, _ = press(t, m, keyMsg("tab"), keyMsg("enter"))
	g := m.Selected().Target.(*gadget)
	require.True(t, g.On)
	require.Equal(t, 1, scene.DirtyCount())
	require.Contains(t, m.View(), "1 change unsaved")

	m, _ = press(t, m, keyMsg("ctrl+s"))
	require.Zero(t, scene.DirtyCount())
	require.Equal(t, "1 asset saved", m.Status())

	_, cmds := press(t, m, keyMsg("ctrl+s"))
	require.Equal(t, StatusMsg{Text: "Nothing to save"}, cmds[0]())
}

func TestModelInstantiateRefusedByAssetOnlyPanel(t *testing.T) {
	scene, repo := newTestScene(t)
	seedAsset(t, repo, "relic", "r1", relic{Name: "r1"})
	require.NoError(t, scene.Load(testRegistry().New))
	m := newTestModel(t, scene, testRegistry())
	require.Equal(t, core.StateActive, m.Panel().State())

	m, _ = press(t, m, keyMsg("ctrl+t"))
	require.Equal(t, 1, scene.Len())
	require.Contains(t, m.Status(), "not a persisted asset")
	require.Equal(t, core.StateActive, m.Panel().State())
}

func TestModelDestroyAndNavigate(t *testing.T) {
	scene, _ := newTestScene(t)
	scene.Add("a", &gadget{Name: "a"})
	scene.Add("b", &gadget{Name: "b"})
	m := newTestModel(t, scene, testRegistry())
	first := m.Panel()

	m, _ = press(t, m, keyMsg("pgdown"))
	require.Equal(t, "b", m.Selected().Name)
	require.Equal(t, core.StateDetached, first.State())

	m, _ = press(t, m, keyMsg("pgdown"))
	require.Equal(t, "a", m.Selected().Name)

	m, _ = press(t, m, keyMsg("ctrl+d"))
	require.Equal(t, 1, scene.Len())
	require.Equal(t, "b", m.Selected().Name)

	m, _ = press(t, m, keyMsg("ctrl+d"))
	require.Nil(t, m.Selected())
	require.Nil(t, m.Panel())
	require.Contains(t, m.View(), "Scene is empty")
}

func TestModelTickRepaintsUpdatingPanels(t *testing.T) {
	scene, _ := newTestScene(t)
	scene.Add("clock", &clock{})
	ticker := &tickerPanel{}
	reg := NewRegistry(Kind{Name: "clock", New: func() any { return &clock{} }, Panel: func(any) core.Definition { return ticker }})
	m := newTestModel(t, scene, reg)
	require.Contains(t, m.PanelView(), "0")

	m, _ = press(t, m, tickMsg(time.Now()), tickMsg(time.Now()))
	require.Equal(t, 2, ticker.n)
	require.Contains(t, m.PanelView(), "2")
	require.False(t, scene.TakeRepaint())
}

func TestModelPlayModeSwitchesScope(t *testing.T) {
	scene, _ := newTestScene(t)
	scene.Add("g", &gadget{})
	m := newTestModel(t, scene, testRegistry())
	require.Contains(t, m.View(), "[edit]")

	m, _ = press(t, m, keyMsg("ctrl+r"))
	require.True(t, scene.Playing())
	require.Contains(t, m.View(), "[play]")

	// destroy is not bound while playing, so the key reaches the panel
	m, _ = press(t, m, keyMsg("ctrl+d"))
	require.Equal(t, 1, scene.Len())
}

func TestKeyRegistryFallsBackToGlobal(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	b, ok := reg.Lookup(keyMsg("ctrl+s"), scopeEdit)
	require.True(t, ok)
	require.Equal(t, actionSave, b.Action)

	_, ok = reg.Lookup(keyMsg("ctrl+s"), scopePlay)
	require.False(t, ok)

	b, ok = reg.Lookup(tea.KeyMsg{Type: tea.KeyCtrlC}, scopePlay)
	require.True(t, ok)
	require.Equal(t, actionQuit, b.Action)

	help := reg.HelpBindings(scopePlay)
	require.Equal(t, "stop", help[0].Help().Desc)
}

func TestKeyRegistryCustomBindings(t *testing.T) {
	reg := NewKeyRegistry(nil)
	reg.Register(Binding{Action: actionSave, Keys: []string{"f5"}, Help: "save", Scopes: []string{scopeEdit}})
	reg.Register(Binding{Action: actionDestroy, Help: "unbound", Scopes: []string{scopeEdit}})

	b, ok := reg.Lookup(tea.KeyMsg{Type: tea.KeyF5}, scopeEdit)
	require.True(t, ok)
	require.Equal(t, actionSave, b.Action)

	_, ok = reg.Lookup(keyMsg("ctrl+d"), scopeEdit)
	require.False(t, ok)

	help := reg.HelpBindings(scopeEdit)
	require.Len(t, help, 1)
	require.Equal(t, "f5", help[0].Help().Key)
}

func TestExecOpenerQueuesEditorCommands(t *testing.T) {
	o := &ExecOpener{Editor: "true", Browser: "true"}
	file, err := filepath.Abs("opener.go")
	require.NoError(t, err)
	require.NoError(t, o.Open(core.SourceLocation{File: file, Line: 3}))
	require.NoError(t, o.OpenURL("https://example.com"))
	require.ErrorIs(t, o.Open(core.SourceLocation{File: "lib.a"}), ErrNotSource)
	require.Error(t, o.OpenURL(""))

	require.Len(t, o.Drain(), 2)
	require.Empty(t, o.Drain())
}

func TestCommandRegistryUnknownAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{Action: "blocked", Name: "Blocked", Disabled: func(*Model) (bool, string) { return true, "" }},
	})
	m := &Model{}
	require.Equal(t, StatusMsg{Text: "Unknown command: nope"}, reg.Execute("nope", m)())
	require.Equal(t, StatusMsg{Text: "Blocked is disabled"}, reg.Execute("blocked", m)())
}
