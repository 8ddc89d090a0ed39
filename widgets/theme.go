package widgets

import "github.com/charmbracelet/lipgloss"

// Theme is the palette style descriptors are built from.
type Theme struct {
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Base      lipgloss.Color
	Surface0  lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Alert     lipgloss.Color
	Container lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{
		Text:      "#cdd6f4",
		Muted:     "#a6adc8",
		Border:    "#585b70",
		Base:      "#1e1e2e",
		Surface0:  "#313244",
		Accent:    "#89b4fa",
		Success:   "#a6e3a1",
		Alert:     "#f38ba8",
		Container: "#3f3f59",
	}
}

// Merge returns t with every non-empty colour of o applied on top.
func (t Theme) Merge(o Theme) Theme {
	pick := func(a, b lipgloss.Color) lipgloss.Color {
		if b != "" {
			return b
		}
		return a
	}
	return Theme{
		Text:      pick(t.Text, o.Text),
		Muted:     pick(t.Muted, o.Muted),
		Border:    pick(t.Border, o.Border),
		Base:      pick(t.Base, o.Base),
		Surface0:  pick(t.Surface0, o.Surface0),
		Accent:    pick(t.Accent, o.Accent),
		Success:   pick(t.Success, o.Success),
		Alert:     pick(t.Alert, o.Alert),
		Container: pick(t.Container, o.Container),
	}
}
