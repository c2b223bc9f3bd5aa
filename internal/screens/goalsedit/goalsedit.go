// Package goalsedit is the per-character goal editor: level, weapon,
// talent and artifact targets, with a live material cost panel.
package goalsedit

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teyvatops/ascend/internal/ascension"
	"github.com/teyvatops/ascend/internal/gamedata"
	"github.com/teyvatops/ascend/internal/goals"
	"github.com/teyvatops/ascend/internal/planner"
	"github.com/teyvatops/ascend/internal/router"
	"github.com/teyvatops/ascend/internal/screen"
	"github.com/teyvatops/ascend/internal/ui/components"
	"github.com/teyvatops/ascend/internal/ui/layout"
	"github.com/teyvatops/ascend/internal/ui/theme"
)

type pickerMode int

const (
	pickerNone pickerMode = iota
	pickerWeapon
	pickerMainStat
	pickerSubstats
)

// GoalsScreen edits one character's upgrade goals.
type GoalsScreen struct {
	pl       *planner.Planner
	provider gamedata.Provider
	id       string

	rows         []row
	cursor       int
	scrollOffset int

	picker     *components.Picker
	pickerMode pickerMode
	pickerSlot goals.ArtifactSlot
}

var _ screen.Screen = (*GoalsScreen)(nil)

func New(pl *planner.Planner, provider gamedata.Provider, id string) *GoalsScreen {
	// Rapid left/right adjustments would snapshot on every keypress, so
	// batch writes while the editor is open. The app restores write-through
	// (flushing anything pending) when the screen is left.
	pl.SetDeferred(true)

	s := &GoalsScreen{pl: pl, provider: provider, id: id}
	s.rows = s.buildRows()
	s.cursor = firstEditable(s.rows)
	return s
}

func (s *GoalsScreen) Init() tea.Cmd {
	return nil
}

func (s *GoalsScreen) record() *goals.Record {
	s.pl.Ensure(s.id)
	return s.pl.Goal(s.id)
}

func (s *GoalsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.picker != nil {
		return s.updatePicker(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.moveCursor(-1)
	case "down", "j":
		s.moveCursor(1)
	case "left", "h":
		s.adjust(-1)
	case "right", "l":
		s.adjust(1)
	case "enter":
		s.activate()
	case "q":
		s.pl.SetDeferred(false)
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *GoalsScreen) moveCursor(dir int) {
	for i := s.cursor + dir; i >= 0 && i < len(s.rows); i += dir {
		if s.rows[i].editable {
			s.cursor = i
			return
		}
	}
}

func (s *GoalsScreen) adjust(delta int) {
	r := s.rows[s.cursor]
	if r.adjust != nil {
		r.adjust(delta)
	}
}

func (s *GoalsScreen) activate() {
	r := s.rows[s.cursor]
	if r.activate != nil {
		r.activate()
	}
}

func (s *GoalsScreen) updatePicker(msg tea.Msg) (screen.Screen, tea.Cmd) {
	picker, cmd := s.picker.Update(msg)
	s.picker = &picker

	switch {
	case picker.Cancelled:
		s.closePicker()
	case picker.Submitted:
		value := picker.Value()
		switch s.pickerMode {
		case pickerWeapon:
			s.pl.SetWeapon(s.id, value)
			s.closePicker()
		case pickerMainStat:
			s.pl.SetArtifactMainStat(s.id, s.pickerSlot, value)
			s.closePicker()
		case pickerSubstats:
			// Toggle and keep the picker open for further selection.
			s.pl.ToggleSubstat(s.id, s.pickerSlot, value)
			s.openSubstatPicker(s.pickerSlot, value)
		}
	}
	return s, cmd
}

func (s *GoalsScreen) closePicker() {
	s.picker = nil
	s.pickerMode = pickerNone
}

func (s *GoalsScreen) openWeaponPicker() {
	rec := s.record()
	var options []components.PickerOption
	for _, id := range s.provider.WeaponIDs() {
		options = append(options, components.PickerOption{
			Label: s.provider.WeaponName(id),
			Value: id,
		})
	}
	p := components.NewPicker("Weapon", options, rec.Weapon)
	s.picker = &p
	s.pickerMode = pickerWeapon
}

func (s *GoalsScreen) openMainStatPicker(slot goals.ArtifactSlot) {
	rec := s.record()
	choices := goals.MainStatChoices(slot)
	if len(choices) == 0 {
		return
	}
	options := make([]components.PickerOption, 0, len(choices))
	for _, stat := range choices {
		options = append(options, components.PickerOption{Label: stat, Value: stat})
	}
	p := components.NewPicker(slot.DisplayName()+" main stat", options, rec.Artifacts[slot].MainStat)
	s.picker = &p
	s.pickerMode = pickerMainStat
	s.pickerSlot = slot
}

func (s *GoalsScreen) openSubstatPicker(slot goals.ArtifactSlot, current string) {
	rec := s.record()
	chosen := make(map[string]bool, len(rec.Artifacts[slot].DesiredSubstats))
	for _, stat := range rec.Artifacts[slot].DesiredSubstats {
		chosen[stat] = true
	}

	var options []components.PickerOption
	for _, stat := range goals.SubstatChoices() {
		if stat == rec.Artifacts[slot].MainStat {
			continue
		}
		options = append(options, components.PickerOption{
			Label:  stat,
			Value:  stat,
			Marked: chosen[stat],
		})
	}
	p := components.NewPicker(slot.DisplayName()+" substats", options, current)
	s.picker = &p
	s.pickerMode = pickerSubstats
	s.pickerSlot = slot
}

func (s *GoalsScreen) View(width, height int) string {
	if s.picker != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			s.picker.View(height-6))
	}

	listWidth := width
	showCosts := width >= layout.CompactWidthThreshold
	if showCosts {
		listWidth = width * 3 / 5
	}

	list := s.renderRows(listWidth, height)

	if !showCosts {
		return list
	}

	costs := s.renderCostPanel(width - listWidth - 2)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", costs)
}

func (s *GoalsScreen) renderRows(width, height int) string {
	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		lines = append(lines, s.renderRow(r, i == s.cursor, width))
		visible++
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (s *GoalsScreen) renderRow(r row, selected bool, width int) string {
	if r.header {
		return theme.Subtitle.Align(lipgloss.Left).Render("── " + r.label + " ──")
	}

	prefix := "    "
	labelStyle := theme.Unselected
	if selected {
		prefix = "  ▸ "
		labelStyle = theme.Selected
	}

	left := prefix + labelStyle.Render(r.label)
	right := theme.Body.Render(r.value())

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *GoalsScreen) renderCostPanel(width int) string {
	gc, ok := s.pl.GoalCost(s.id)
	if !ok {
		return ""
	}

	rec := s.record()
	var b strings.Builder

	b.WriteString(theme.Title.Align(lipgloss.Left).Render("Materials") + "\n\n")

	bar := components.NewProgressBar("Lv", levelProgress(rec), true, width-6)
	b.WriteString(bar.View() + "\n\n")

	items := gc.Total()
	if len(items) == 0 {
		b.WriteString(theme.Hint.Render("Everything is at its goal."))
	}
	for _, it := range items {
		line := fmt.Sprintf("%-28s %10d", it.Name, it.Count)
		b.WriteString(theme.Body.Render(line) + "\n")
	}
	if !gc.Complete {
		b.WriteString("\n" + theme.Warning.Render("Some costs unresolved."))
	}

	return theme.Card.Width(width).Render(b.String())
}

func levelProgress(rec *goals.Record) float64 {
	if rec.TargetLevel <= 1 {
		return 1
	}
	return float64(rec.CurrentLevel) / float64(rec.TargetLevel)
}

func (s *GoalsScreen) adjustScroll(height int) {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *GoalsScreen) ModalOpen() bool {
	return s.picker != nil
}

func (s *GoalsScreen) Title() string {
	name := s.provider.CharacterName(s.id)
	if name == "" {
		name = s.id
	}
	return "Plan · " + name
}

func (s *GoalsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Enter", Description: "Choose"},
		{Key: "Esc", Description: "Back"},
	}
}

// stepMilestone returns the milestone level delta steps away from v.
func stepMilestone(v, delta int) int {
	ms := ascension.Milestones
	idx := 0
	for i, m := range ms {
		if m <= v {
			idx = i
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ms) {
		idx = len(ms) - 1
	}
	return ms[idx]
}

// stepArtifactLevel returns the artifact level delta steps away from v.
func stepArtifactLevel(v, delta int) int {
	ls := goals.ArtifactLevels
	idx := 0
	for i, l := range ls {
		if l <= v {
			idx = i
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ls) {
		idx = len(ls) - 1
	}
	return ls[idx]
}
