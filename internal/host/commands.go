package host

import (
	tea "github.com/charmbracelet/bubbletea"
)

type Command struct {
	Action   Action
	Name     string
	Execute  func(m *Model) tea.Cmd
	Disabled func(m *Model) (bool, string)
}

type CommandRegistry struct {
	commands map[Action]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[Action]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.Action == "" {
		return
	}
	r.commands[c.Action] = c
}

func (r *CommandRegistry) Execute(a Action, m *Model) tea.Cmd {
	c, ok := r.commands[a]
	if !ok {
		return StatusCmd("Unknown command: " + string(a))
	}
	if c.Disabled != nil {
		if disabled, reason := c.Disabled(m); disabled {
			if reason == "" {
				reason = c.Name + " is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}

func noSelection(m *Model) (bool, string) {
	if m.Selected() == nil {
		return true, "Nothing selected"
	}
	return false, ""
}

func DefaultCommands() []Command {
	return []Command{
		{Action: actionQuit, Name: "Quit", Execute: func(m *Model) tea.Cmd {
			m.detach()
			m.quitting = true
			return tea.Quit
		}},
		{Action: actionNext, Name: "Next", Execute: func(m *Model) tea.Cmd { return m.selectIndex(m.index + 1) }},
		{Action: actionPrev, Name: "Previous", Execute: func(m *Model) tea.Cmd { return m.selectIndex(m.index - 1) }},
		{Action: actionPlay, Name: "Play", Execute: func(m *Model) tea.Cmd {
			m.scene.SetPlaying(!m.scene.Playing())
			return m.render(nil)
		}},
		{
			Action: actionSave,
			Name:   "Save",
			Disabled: func(m *Model) (bool, string) {
				if m.scene.DirtyCount() == 0 {
					return true, "Nothing to save"
				}
				return false, ""
			},
			Execute: func(m *Model) tea.Cmd {
				n, err := m.scene.Save()
				if err != nil {
					return ErrorCmd(err)
				}
				m.SetStatus(pluralize(n, "asset") + " saved")
				return nil
			},
		},
		{
			Action:   actionInstantiate,
			Name:     "Instantiate",
			Disabled: noSelection,
			Execute: func(m *Model) tea.Cmd {
				o := m.Selected()
				clone, err := m.scene.Instantiate(o)
				if err != nil {
					return ErrorCmd(err)
				}
				m.SetStatus("Instantiated " + clone.Name)
				return m.selectIndex(m.scene.Len() - 1)
			},
		},
		{
			Action:   actionDestroy,
			Name:     "Destroy",
			Disabled: noSelection,
			Execute: func(m *Model) tea.Cmd {
				o := m.Selected()
				m.detach()
				if err := m.scene.Destroy(o.Target); err != nil {
					return ErrorCmd(err)
				}
				m.SetStatus("Destroyed " + o.Name)
				return m.selectIndex(m.index)
			},
		},
	}
}
