package ui

import "github.com/charmbracelet/lipgloss"

// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color // #4d9375
	Yellow  lipgloss.Color // #e6cc77
	Red     lipgloss.Color // #cb7676
	Muted   lipgloss.Color // #dedcd590
}

// Vitesse is the palette for terminal output.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Red:     lipgloss.Color("#cb7676"),
	Muted:   lipgloss.Color("#dedcd590"),
}

// Status markers. lipgloss drops the color when stdout is not a terminal.
func OK() string   { return lipgloss.NewStyle().Foreground(Vitesse.Primary).Render("✓") }
func Skip() string { return lipgloss.NewStyle().Foreground(Vitesse.Muted).Render("•") }
func Run() string  { return lipgloss.NewStyle().Foreground(Vitesse.Yellow).Render("→") }
func Fail() string { return lipgloss.NewStyle().Foreground(Vitesse.Red).Render("×") }

// Bold renders a tool name in the primary color.
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary).Render(s)
}
