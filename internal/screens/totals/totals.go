// Package totals shows the merged material list for the whole roster and
// can write it out as an xlsx workbook.
package totals

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teyvatops/ascend/internal/costs"
	"github.com/teyvatops/ascend/internal/gamedata"
	"github.com/teyvatops/ascend/internal/output"
	"github.com/teyvatops/ascend/internal/planner"
	"github.com/teyvatops/ascend/internal/router"
	"github.com/teyvatops/ascend/internal/screen"
	"github.com/teyvatops/ascend/internal/ui/components"
	"github.com/teyvatops/ascend/internal/ui/layout"
	"github.com/teyvatops/ascend/internal/ui/theme"
)

// TotalsScreen renders the grand material list across all owned characters.
type TotalsScreen struct {
	pl       *planner.Planner
	provider gamedata.Provider

	scrollOffset int
	status       string
	prompt       *components.TextInput
}

var _ screen.Screen = (*TotalsScreen)(nil)

func New(pl *planner.Planner, provider gamedata.Provider) *TotalsScreen {
	return &TotalsScreen{pl: pl, provider: provider}
}

func (s *TotalsScreen) Init() tea.Cmd {
	return nil
}

func (s *TotalsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.prompt != nil {
		return s.updatePrompt(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.scrollOffset > 0 {
			s.scrollOffset--
		}
	case "down", "j":
		s.scrollOffset++
	case "x":
		prompt := components.NewTextInput("Export to", "totals.xlsx", 120)
		s.prompt = &prompt
		return s, prompt.Init()
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *TotalsScreen) updatePrompt(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.prompt = nil
			return s, nil
		case "enter":
			path, err := output.ExportTotalsXLSX(s.prompt.Value(), s.pl, s.provider)
			if err != nil {
				s.status = "Export failed: " + err.Error()
			} else {
				s.status = "Wrote " + path
			}
			s.prompt = nil
			return s, nil
		}
	}

	prompt, cmd := s.prompt.Update(msg)
	s.prompt = &prompt
	return s, cmd
}

func (s *TotalsScreen) View(width, height int) string {
	if s.prompt != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Card.Render(s.prompt.View()))
	}

	items, complete := s.pl.Totals()

	if len(items) == 0 {
		empty := theme.Hint.Render("Nothing to farm. Every goal is already met.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	lines := make([]string, 0, len(items)+4)
	for _, it := range items {
		lines = append(lines, renderItem(it, width))
	}
	if !complete {
		lines = append(lines, "",
			theme.Warning.Render("  Some costs could not be resolved; totals are a lower bound."))
	}
	if s.status != "" {
		lines = append(lines, "", theme.Hint.Render("  "+s.status))
	}

	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.scrollOffset > maxOffset {
		s.scrollOffset = maxOffset
	}

	end := s.scrollOffset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.scrollOffset:end], "\n")
}

func renderItem(it costs.Item, width int) string {
	name := theme.Body.Render("  " + it.Name)
	count := theme.Selected.Render(fmt.Sprintf("%d", it.Count))

	gap := width - lipgloss.Width(name) - lipgloss.Width(count) - 4
	if gap < 1 {
		gap = 1
	}
	return name + strings.Repeat(" ", gap) + count
}

func (s *TotalsScreen) ModalOpen() bool {
	return s.prompt != nil
}

func (s *TotalsScreen) Title() string {
	return "Material Totals"
}

func (s *TotalsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "x", Description: "Export xlsx"},
		{Key: "Esc", Description: "Back"},
	}
}
