// Package roster lists the owned characters and is the entry point into
// per-character goal editing.
package roster

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teyvatops/ascend/internal/gamedata"
	"github.com/teyvatops/ascend/internal/planner"
	"github.com/teyvatops/ascend/internal/router"
	"github.com/teyvatops/ascend/internal/screen"
	"github.com/teyvatops/ascend/internal/screens/goalsedit"
	"github.com/teyvatops/ascend/internal/ui/components"
	"github.com/teyvatops/ascend/internal/ui/layout"
	"github.com/teyvatops/ascend/internal/ui/theme"
)

// RosterScreen shows the owned characters with a one-line goal summary each.
type RosterScreen struct {
	pl       *planner.Planner
	provider gamedata.Provider

	cursor       int
	scrollOffset int
	adding       *components.Picker
}

var _ screen.Screen = (*RosterScreen)(nil)

func New(pl *planner.Planner, provider gamedata.Provider) *RosterScreen {
	return &RosterScreen{pl: pl, provider: provider}
}

func (s *RosterScreen) Init() tea.Cmd {
	return nil
}

func (s *RosterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.adding != nil {
		return s.updateAdding(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	owned := s.pl.Owned()

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(owned)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(owned) {
			id := owned[s.cursor]
			s.pl.Select(id)
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: goalsedit.New(s.pl, s.provider, id)}
			}
		}
	case "a":
		s.openAddPicker()
	case "d":
		if s.cursor < len(owned) {
			s.pl.RemoveCharacter(owned[s.cursor])
			if s.cursor > 0 {
				s.cursor--
			}
		}
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *RosterScreen) updateAdding(msg tea.Msg) (screen.Screen, tea.Cmd) {
	picker, cmd := s.adding.Update(msg)
	s.adding = &picker

	switch {
	case picker.Cancelled:
		s.adding = nil
	case picker.Submitted:
		s.pl.AddCharacter(picker.Value())
		s.adding = nil
	}
	return s, cmd
}

func (s *RosterScreen) openAddPicker() {
	var options []components.PickerOption
	for _, id := range s.provider.CharacterIDs() {
		if s.pl.IsOwned(id) {
			continue
		}
		options = append(options, components.PickerOption{
			Label: s.provider.CharacterName(id),
			Value: id,
		})
	}
	if len(options) == 0 {
		return
	}
	p := components.NewPicker("Add character", options, "")
	s.adding = &p
}

func (s *RosterScreen) View(width, height int) string {
	if s.adding != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			s.adding.View(height-6))
	}

	owned := s.pl.Owned()
	if len(owned) == 0 {
		empty := theme.Hint.Render("No characters yet. Press 'a' to add one.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, id := range owned {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		lines = append(lines, s.renderRow(id, i == s.cursor, width))
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *RosterScreen) renderRow(id string, selected bool, width int) string {
	name := s.provider.CharacterName(id)
	if name == "" {
		name = id
	}

	summary := ""
	if r := s.pl.Goal(id); r != nil {
		summary = fmt.Sprintf("Lv %d → %d", r.CurrentLevel, r.TargetLevel)
		if r.Weapon != "" {
			w := s.provider.WeaponName(r.Weapon)
			if w == "" {
				w = r.Weapon
			}
			summary += "   " + w
		}
	}

	prefix := "  "
	nameStyle := theme.Unselected
	if selected {
		prefix = "▸ "
		nameStyle = theme.Selected
	}

	left := prefix + nameStyle.Render(name)
	right := theme.Hint.Render(summary)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *RosterScreen) adjustScroll(height int) {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *RosterScreen) ModalOpen() bool {
	return s.adding != nil
}

func (s *RosterScreen) Title() string {
	return "Roster"
}

func (s *RosterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Plan"},
		{Key: "a", Description: "Add"},
		{Key: "d", Description: "Remove"},
		{Key: "Esc", Description: "Back"},
	}
}
