package home

import (
	"charm.land/lipgloss/v2"

	"github.com/teyvatops/ascend/internal/ui/theme"
)

const bannerArt = `
  █████╗ ███████╗ ██████╗███████╗███╗   ██╗██████╗
 ██╔══██╗██╔════╝██╔════╝██╔════╝████╗  ██║██╔══██╗
 ███████║███████╗██║     █████╗  ██╔██╗ ██║██║  ██║
 ██╔══██║╚════██║██║     ██╔══╝  ██║╚██╗██║██║  ██║
 ██║  ██║███████║╚██████╗███████╗██║ ╚████║██████╔╝
 ╚═╝  ╚═╝╚══════╝ ╚═════╝╚══════╝╚═╝  ╚═══╝╚═════╝`

const bannerCompact = "A S C E N D"

// banner returns the ASCEND banner styled in the primary color, centered.
// Uses a compact fallback for terminals narrower than 54 columns.
func banner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := bannerArt
	if width < 54 {
		art = bannerCompact
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(art))
}
