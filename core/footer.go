package core

import "github.com/jask/inspector/widgets"

// RenderFooter draws body left-aligned in a full-width band.
func RenderFooter(c *Context, body func()) {
	c.Horizontal(func() {
		body()
		c.FlexibleSpace()
	}, WithStyle(widgets.StyleFooter), Width(c.Available()))
}
