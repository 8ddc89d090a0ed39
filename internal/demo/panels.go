package demo

import (
	"fmt"
	"strconv"

	"github.com/jask/inspector/core"
)

type LampPanel struct {
	Lamp *Lamp
}

func (p *LampPanel) Title() core.Content { return core.Plain(p.Lamp.Name) }
func (p *LampPanel) Icon() string        { return "💡" }
func (p *LampPanel) Summary() string     { return "Brightness runs from 0 to " + strconv.Itoa(maxBrightness) + "." }

func (p *LampPanel) HeaderButtons(c *core.Context) {
	if c.Button(core.Rich("Max", "", "full brightness")) && p.Lamp.Brightness != maxBrightness {
		p.Lamp.Brightness = maxBrightness
		c.ReportChange()
	}
}

func (p *LampPanel) Body(c *core.Context) {
	c.TextField("Name", &p.Lamp.Name)
	c.Toggle("Lit", &p.Lamp.Lit)
	// dimming only makes sense for a lit lamp
	c.EnabledScope(p.Lamp.Lit, func() {
		if c.IntField("Brightness", &p.Lamp.Brightness) {
			p.Lamp.Brightness = min(max(p.Lamp.Brightness, 0), maxBrightness)
		}
	})
	c.TextField("Color", &p.Lamp.Color)
}

func (p *LampPanel) Footer(c *core.Context) {
	state := "off"
	if p.Lamp.Lit {
		state = fmt.Sprintf("on at %d%%", p.Lamp.Brightness)
	}
	c.MiniLabel(state)
}

// DoorPanel is read-only outside play mode.
type DoorPanel struct {
	Door    *Door
	Playing func() bool
}

func (p *DoorPanel) Icon() string            { return "🚪" }
func (p *DoorPanel) Enabled() bool           { return p.Playing() }
func (p *DoorPanel) DisabledMessage() string { return "Doors can only be operated in play mode." }

func (p *DoorPanel) Body(c *core.Context) {
	c.LabelValue("Name", p.Door.Name)
	c.Toggle("Locked", &p.Door.Locked)
	c.EnabledScope(!p.Door.Locked, func() {
		c.Toggle("Open", &p.Door.Open)
	})
	c.TextField("Key", &p.Door.KeyID)
}

// SpawnerPanel refuses scene instances and counts ticks while active.
type SpawnerPanel struct {
	Spawner *Spawner
	ticks   int
	active  bool
}

func (p *SpawnerPanel) Icon() string       { return "⟳" }
func (p *SpawnerPanel) AssetOnly() bool    { return true }
func (p *SpawnerPanel) SupportURL() string { return "https://example.com/docs/spawner" }
func (p *SpawnerPanel) OnActivate()        { p.active, p.ticks = true, 0 }
func (p *SpawnerPanel) OnDeactivate()      { p.active = false }
func (p *SpawnerPanel) Update()            { p.ticks++ }
func (p *SpawnerPanel) Ticks() int         { return p.ticks }
func (p *SpawnerPanel) Active() bool       { return p.active }

// OnChange keeps the rate positive before the spawner is marked dirty.
func (p *SpawnerPanel) OnChange(markDirty func()) {
	if p.Spawner.Rate < 1 {
		p.Spawner.Rate = 1
	}
	markDirty()
}

func (p *SpawnerPanel) Body(c *core.Context) {
	c.TextField("Name", &p.Spawner.Name)
	c.TextField("Prefab", &p.Spawner.Prefab)
	c.IntField("Rate", &p.Spawner.Rate)
	c.Toggle("Enabled", &p.Spawner.Enabled)
}

func (p *SpawnerPanel) AfterBody(c *core.Context) {
	c.Separator()
	c.MiniLabel(fmt.Sprintf("ticks since selected: %d", p.ticks))
}
