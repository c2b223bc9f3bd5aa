package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teyvatops/ascend/internal/gamedata"
	"github.com/teyvatops/ascend/internal/planner"
	"github.com/teyvatops/ascend/internal/router"
	"github.com/teyvatops/ascend/internal/screen"
	"github.com/teyvatops/ascend/internal/screens/roster"
	"github.com/teyvatops/ascend/internal/screens/totals"
	"github.com/teyvatops/ascend/internal/ui/components"
	"github.com/teyvatops/ascend/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu     components.Menu
	pl       *planner.Planner
	provider gamedata.Provider
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(pl *planner.Planner, provider gamedata.Provider) *HomeScreen {
	items := []components.MenuItem{
		{Label: "ROSTER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: roster.New(pl, provider)}
			}
		}},
		{Label: "MATERIAL TOTALS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: totals.New(pl, provider)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		pl:       pl,
		provider: provider,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, banner(width))
	sections = append(sections, h.renderStats(width))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) renderStats(width int) string {
	owned := len(h.pl.Owned())
	items, complete := h.pl.Totals()

	mora := 0
	for _, it := range items {
		if it.Name == "Mora" {
			mora = it.Count
		}
	}

	parts := []string{
		theme.Body.Render(fmt.Sprintf("Characters: %d", owned)),
		theme.Body.Render(fmt.Sprintf("Mora needed: %s", formatCount(mora))),
	}
	if !complete {
		parts = append(parts, theme.Warning.Render("some costs unresolved"))
	}

	bar := strings.Join(parts, theme.Hint.Render("  │  "))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(bar))
}

// formatCount groups digits in thousands for readability.
func formatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
