// Package theme provides color palettes and icon helpers for the TUI.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines all colors used in the application UI, including the
// per-token syntax colors for the command line.
type Theme struct {
	Accent    lipgloss.Color
	AccentFg  lipgloss.Color // foreground for text on an Accent background
	Border    lipgloss.Color
	BorderDim lipgloss.Color
	MutedFg   lipgloss.Color
	TextFg    lipgloss.Color
	SuccessFg lipgloss.Color
	WarnFg    lipgloss.Color
	ErrorFg   lipgloss.Color

	// Syntax colors for the live input line.
	SynCommand  lipgloss.Color
	SynFlag     lipgloss.Color
	SynPath     lipgloss.Color
	SynString   lipgloss.Color
	SynNumber   lipgloss.Color
	SynOperator lipgloss.Color
	SynText     lipgloss.Color
}

// Theme names.
const (
	DraculaName    = "dracula"
	CleanLightName = "clean-light"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#BD93F9"), // Purple (primary accent)
		AccentFg:  lipgloss.Color("#282A36"), // Dark text on accent
		Border:    lipgloss.Color("#6272A4"), // Comment (subtle borders)
		BorderDim: lipgloss.Color("#44475A"), // Darker borders
		MutedFg:   lipgloss.Color("#6272A4"), // Comment (muted text)
		TextFg:    lipgloss.Color("#F8F8F2"), // Foreground (primary text)
		SuccessFg: lipgloss.Color("#50FA7B"), // Green
		WarnFg:    lipgloss.Color("#FFB86C"), // Orange
		ErrorFg:   lipgloss.Color("#FF5555"), // Red

		SynCommand:  lipgloss.Color("#50FA7B"), // Green
		SynFlag:     lipgloss.Color("#FFB86C"), // Orange
		SynPath:     lipgloss.Color("#8BE9FD"), // Cyan
		SynString:   lipgloss.Color("#F1FA8C"), // Yellow
		SynNumber:   lipgloss.Color("#BD93F9"), // Purple
		SynOperator: lipgloss.Color("#FF79C6"), // Pink
		SynText:     lipgloss.Color("#F8F8F2"), // Foreground
	}
}

// CleanLight returns a theme optimized for light terminal backgrounds.
func CleanLight() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#c6dbe5"),
		AccentFg:  lipgloss.Color("#24292F"),
		Border:    lipgloss.Color("#D0D7DE"),
		BorderDim: lipgloss.Color("#E1E4E8"),
		MutedFg:   lipgloss.Color("#6E7781"),
		TextFg:    lipgloss.Color("#24292F"),
		SuccessFg: lipgloss.Color("#1A7F37"),
		WarnFg:    lipgloss.Color("#9A6700"),
		ErrorFg:   lipgloss.Color("#CF222E"),

		SynCommand:  lipgloss.Color("#1A7F37"),
		SynFlag:     lipgloss.Color("#9A6700"),
		SynPath:     lipgloss.Color("#0598BC"),
		SynString:   lipgloss.Color("#D4A72C"),
		SynNumber:   lipgloss.Color("#8250DF"),
		SynOperator: lipgloss.Color("#BF3989"),
		SynText:     lipgloss.Color("#24292F"),
	}
}

// GetTheme returns the theme for name, falling back to Dracula.
func GetTheme(name string) *Theme {
	if NormalizeName(name) == CleanLightName {
		return CleanLight()
	}
	return Dracula()
}

// AvailableThemes lists the supported theme names.
func AvailableThemes() []string {
	return []string{DraculaName, CleanLightName}
}

// NormalizeName returns the canonical theme name, or "" when the name
// is not supported.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case DraculaName, CleanLightName:
		return name
	}
	return ""
}
