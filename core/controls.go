package core

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/inspector/widgets"
)

func (c *Context) Label(text string) {
	c.emit(c.Style(widgets.StyleLabel).Render(text))
}

func (c *Context) BoldLabel(text string) {
	c.emit(c.Style(widgets.StyleLabel).Bold(true).Render(text))
}

// MiniLabel draws secondary text in the muted colour.
func (c *Context) MiniLabel(text string) {
	c.emit(c.Style(widgets.StyleLabel).Foreground(c.styles.Theme().Muted).Render(text))
}

func (c *Context) Text(content Content) {
	c.Label(content.Label())
}

// LabelValue draws a read-only field row.
func (c *Context) LabelValue(label, value string) {
	c.fieldRow(label, c.Style(widgets.StyleLabel).Render(value), false)
}

// Space inserts n cells along the current region's direction.
func (c *Context) Space(n int) {
	if n <= 0 {
		return
	}
	if c.regions.current().orient == Horizontal {
		c.emit(strings.Repeat(" ", n))
		return
	}
	c.emit(strings.Repeat("\n", n-1))
}

// FlexibleSpace takes whatever room the region's fixed children leave over.
func (c *Context) FlexibleSpace() {
	c.regions.emit(widgets.Flex())
}

func (c *Context) Separator() {
	w := max(1, c.Available())
	c.emit(lipgloss.NewStyle().Foreground(c.styles.Theme().Border).Render(strings.Repeat("─", w)))
}

// HelpBox draws text in a bordered note spanning the available width.
func (c *Context) HelpBox(text string) {
	w := c.Available()
	c.Vertical(func() {
		c.emit(text)
	}, WithStyle(widgets.StyleHelp), Width(w))
}

// Button draws a focusable button and reports whether it was pressed this pass.
// A disabled button is drawn but never pressed.
func (c *Context) Button(content Content) bool {
	focused, keys := c.nextControl()
	pressed := false
	for _, k := range keys {
		if isActivate(k) {
			pressed = true
		}
	}
	name := widgets.StyleButton
	if focused && c.Enabled() {
		name = widgets.StyleFocus
	}
	out := c.Style(name).Render(content.Label())
	if focused && content.Tooltip != "" {
		tip := lipgloss.NewStyle().Foreground(c.styles.Theme().Muted).Render(" " + content.Tooltip)
		out = lipgloss.JoinHorizontal(lipgloss.Top, out, tip)
	}
	c.emit(out)
	return pressed
}

// Toggle draws a checkbox bound to v and reports whether v changed.
func (c *Context) Toggle(label string, v *bool) bool {
	focused, keys := c.nextControl()
	orig := *v
	for _, k := range keys {
		if isActivate(k) {
			*v = !*v
		}
	}
	box := "[ ]"
	if *v {
		box = "[x]"
	}
	c.fieldRow(label, c.valueStyle(focused).Render(box), focused)
	return c.changed(orig != *v)
}

// TextField draws an editable single-line string bound to v.
func (c *Context) TextField(label string, v *string) bool {
	focused, keys := c.nextControl()
	orig := *v
	for _, k := range keys {
		switch k.Type {
		case tea.KeyRunes:
			*v += string(k.Runes)
		case tea.KeySpace:
			*v += " "
		case tea.KeyBackspace:
			if rs := []rune(*v); len(rs) > 0 {
				*v = string(rs[:len(rs)-1])
			}
		case tea.KeyCtrlU:
			*v = ""
		}
	}
	shown := *v
	if focused && c.Enabled() {
		shown += "▏"
	}
	c.fieldRow(label, c.valueStyle(focused).Render(shown), focused)
	return c.changed(orig != *v)
}

// IntField draws an integer bound to v. Left/right and -/+ step by one; digits
// and backspace edit the number in place.
func (c *Context) IntField(label string, v *int) bool {
	focused, keys := c.nextControl()
	orig := *v
	for _, k := range keys {
		switch s := k.String(); {
		case s == "left" || s == "-":
			*v--
		case s == "right" || s == "+":
			*v++
		case s == "backspace":
			*v /= 10
		case len(s) == 1 && s[0] >= '0' && s[0] <= '9':
			d := int(s[0] - '0')
			if *v < 0 {
				*v = *v*10 - d
			} else {
				*v = *v*10 + d
			}
		}
	}
	c.fieldRow(label, c.valueStyle(focused).Render(strconv.Itoa(*v)), focused)
	return c.changed(orig != *v)
}

func (c *Context) changed(ok bool) bool {
	if ok {
		c.ReportChange()
	}
	return ok
}

func (c *Context) valueStyle(focused bool) lipgloss.Style {
	if focused && c.Enabled() {
		return c.Style(widgets.StyleFocus)
	}
	return c.Style(widgets.StyleButton)
}

func (c *Context) fieldRow(label, value string, focused bool) {
	marker := "  "
	if focused {
		marker = "› "
	}
	lbl := widgets.PadRight(marker+label, c.labelWidth)
	c.emit(lipgloss.JoinHorizontal(lipgloss.Top, c.Style(widgets.StyleLabel).Render(lbl), value))
}

func isActivate(k tea.KeyMsg) bool {
	return k.Type == tea.KeyEnter || k.Type == tea.KeySpace
}
