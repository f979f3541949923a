// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import (
	"fmt"

	"github.com/fwojciec/diffmend"
)

// Compile-time interface verification.
var _ diffmend.Theme = (*Theme)(nil)

// Theme implements diffmend.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles diffmend.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() diffmend.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme called name ("dark" or "light").
func ThemeByName(name string) (*Theme, error) {
	switch name {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: diffmend.Styles{
			Candidate: diffmend.ColorPair{
				Foreground: "#cdd6f4", // Text
			},
			Selected: diffmend.ColorPair{
				Foreground: "#a6e3a1", // Green
			},
			Cursor: diffmend.ColorPair{
				Foreground: "#cdd6f4",
				Background: "#45475a", // Surface
			},
			Heading: diffmend.ColorPair{
				Foreground: "#f9e2af", // Yellow
			},
			Orphan: diffmend.ColorPair{
				Foreground: "#fab387", // Peach
			},
			Inserted: diffmend.ColorPair{
				Foreground: "#a6e3a1", // Green
				Background: "#004000", // Very dark green
			},
			Context: diffmend.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			LineNumber: diffmend.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			StatusBar: diffmend.ColorPair{
				Foreground: "#a6adc8",
				Background: "#313244", // Dark surface
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: diffmend.Styles{
			Candidate: diffmend.ColorPair{
				Foreground: "#4c4f69", // Text
			},
			Selected: diffmend.ColorPair{
				Foreground: "#40a02b", // Green
			},
			Cursor: diffmend.ColorPair{
				Foreground: "#4c4f69",
				Background: "#ccd0da", // Surface
			},
			Heading: diffmend.ColorPair{
				Foreground: "#df8e1d", // Yellow
			},
			Orphan: diffmend.ColorPair{
				Foreground: "#fe640b", // Peach
			},
			Inserted: diffmend.ColorPair{
				Foreground: "#40a02b", // Green
				Background: "#d4f4d4", // Subtle green background
			},
			Context: diffmend.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
			LineNumber: diffmend.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
			StatusBar: diffmend.ColorPair{
				Foreground: "#6c6f85",
				Background: "#e6e9ef", // Light surface
			},
		},
	}
}
