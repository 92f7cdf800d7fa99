// Package tui renders the password generator as an interactive terminal widget.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vaultpass/pwgen-go/internal/crypto"
)

var (
	Slate900 = lipgloss.Color("#0f172a")
	Slate800 = lipgloss.Color("#1e293b")
	Slate700 = lipgloss.Color("#334155")
	Slate400 = lipgloss.Color("#94a3b8")
	Indigo   = lipgloss.Color("#4f46e5")
	Sky      = lipgloss.Color("#93c5fd")
	Emerald  = lipgloss.Color("#10b981")
	Yellow   = lipgloss.Color("#eab308")
	Red      = lipgloss.Color("#ef4444")
	White    = lipgloss.Color("#ffffff")
)

// Styles holds the lipgloss styles used by the widget.
type Styles struct {
	Card      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Password  lipgloss.Style
	Copy      lipgloss.Style
	Copied    lipgloss.Style
	Muted     lipgloss.Style
	ToggleOn  lipgloss.Style
	ToggleOff lipgloss.Style
	Button    lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Particle  lipgloss.Style
	Strength  map[crypto.Label]lipgloss.Style
}

// DefaultStyles returns the widget palette.
func DefaultStyles() Styles {
	return Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Slate700).
			Padding(1, 3),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Sky),
		Subtitle: lipgloss.NewStyle().Foreground(Slate400),
		Password: lipgloss.NewStyle().
			Foreground(White).
			Background(Slate900).
			Padding(0, 1).
			Width(crypto.MaxLength + 2),
		Copy:      lipgloss.NewStyle().Foreground(White).Background(Indigo).Padding(0, 1),
		Copied:    lipgloss.NewStyle().Foreground(White).Background(Emerald).Padding(0, 1),
		Muted:     lipgloss.NewStyle().Foreground(Slate400),
		ToggleOn:  lipgloss.NewStyle().Foreground(Indigo).Bold(true),
		ToggleOff: lipgloss.NewStyle().Foreground(Slate700),
		Button: lipgloss.NewStyle().
			Foreground(White).
			Background(Indigo).
			Bold(true).
			Padding(0, 2),
		Error:    lipgloss.NewStyle().Foreground(Red),
		Success:  lipgloss.NewStyle().Foreground(Emerald),
		Particle: lipgloss.NewStyle().Foreground(Slate700),
		Strength: map[crypto.Label]lipgloss.Style{
			crypto.Weak:   lipgloss.NewStyle().Foreground(Red).Bold(true),
			crypto.Medium: lipgloss.NewStyle().Foreground(Yellow).Bold(true),
			crypto.Strong: lipgloss.NewStyle().Foreground(Emerald).Bold(true),
		},
	}
}
