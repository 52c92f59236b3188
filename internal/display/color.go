// Package display maps raw financial values to presentation tokens:
// icons, color classes, arrow directions and progress-bar tiers. Every
// function here is pure and total; renderers decide what a color class
// looks like on their medium.
package display

// Color is a presentation color class. The TUI and the plain console
// renderer each translate these to their own palette.
type Color string

const (
	Green  Color = "green"
	Red    Color = "red"
	Blue   Color = "blue"
	Yellow Color = "yellow"
	Gray   Color = "gray"
	Purple Color = "purple"
	Orange Color = "orange"
	Indigo Color = "indigo"
	Teal   Color = "teal"
	Pink   Color = "pink"
)

// HealthColor maps the backend's financial-health label to a color.
// An empty label means "no data yet" and renders muted.
func HealthColor(label string) Color {
	switch label {
	case "Excellent":
		return Green
	case "Poor":
		return Red
	case "":
		return Gray
	default:
		return Yellow
	}
}
