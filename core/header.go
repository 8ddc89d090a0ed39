package core

import "github.com/jask/inspector/widgets"

const sourceMenuID = "header:sources"

// Action is a header button and what it does when pressed.
type Action struct {
	Label Content
	Run   func()
}

// HeaderSpec is rebuilt every pass by the panel that draws it.
type HeaderSpec struct {
	Icon    string
	Title   Content
	Content func()
	Actions []Action
	Buttons func()
	Sources []SourceEntry
}

// RenderHeader draws the title band: icon, title, caller content, actions, then the
// source menu pushed to the right edge. The only state it keeps is whether the
// menu is open.
func RenderHeader(c *Context, h HeaderSpec) {
	title := h.Title
	if title.IsZero() {
		title = Plain(DefaultHeaderTitle)
	}
	sources := openableSources(h.Sources)
	if c.opener == nil {
		sources = nil
	}
	open := c.menuOpen(sourceMenuID)

	c.Horizontal(func() {
		if h.Icon != "" {
			c.emit(c.Style(widgets.StyleIcon).Render(h.Icon))
		}
		c.emit(c.Style(widgets.StyleTitle).Render(title.Label()))
		if h.Content != nil {
			h.Content()
		}
		for _, a := range h.Actions {
			if c.Button(a.Label) && a.Run != nil {
				a.Run()
			}
		}
		if h.Buttons != nil {
			h.Buttons()
		}
		c.FlexibleSpace()
		if len(sources) > 0 && c.Button(Rich("Edit", "✎", "open definition")) {
			open = !open
			c.setMenu(sourceMenuID, open)
		}
	}, WithStyle(widgets.StyleHeader), Width(c.Available()))

	if !open || len(sources) == 0 {
		return
	}
	c.HorizontalRightAlign(func() {
		for _, s := range sources {
			if !c.Button(Plain(s.Label)) {
				continue
			}
			c.setMenu(sourceMenuID, false)
			if err := c.opener.Open(s.Location); err != nil {
				c.log.Error("open source", "location", s.Location.String(), "err", err)
			}
		}
	}, Width(c.Available()))
}

func openableSources(entries []SourceEntry) []SourceEntry {
	var out []SourceEntry
	for _, e := range entries {
		if e.Location.Binary() {
			continue
		}
		out = append(out, e)
	}
	return out
}
