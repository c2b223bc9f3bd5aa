package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teyvatops/ascend/internal/ui/theme"
)

// PickerOption is a single selectable entry.
type PickerOption struct {
	Label string
	Value string
	// Marked options render with a check, used for already-chosen substats.
	Marked bool
}

// Picker is a scrollable single-selection list shown as a modal overlay.
type Picker struct {
	Title    string
	Options  []PickerOption
	Selected int
	scroll   int

	Submitted bool
	Cancelled bool
}

// NewPicker creates a picker with the cursor on the option whose value
// matches current, when present.
func NewPicker(title string, options []PickerOption, current string) Picker {
	p := Picker{Title: title, Options: options}
	for i, opt := range options {
		if opt.Value == current {
			p.Selected = i
			break
		}
	}
	return p
}

// Value returns the selected option's value, or "" before submission.
func (p Picker) Value() string {
	if !p.Submitted || p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected].Value
}

// Update handles keyboard navigation and selection.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if p.Submitted || p.Cancelled {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	case "enter":
		if len(p.Options) > 0 {
			p.Submitted = true
		}
	case "esc", "q":
		p.Cancelled = true
	}

	return p, nil
}

// View renders the picker as a bordered card of at most maxRows options.
func (p Picker) View(maxRows int) string {
	if maxRows < 3 {
		maxRows = 3
	}

	// Keep the cursor inside the visible window.
	if p.Selected < p.scroll {
		p.scroll = p.Selected
	}
	if p.Selected >= p.scroll+maxRows {
		p.scroll = p.Selected - maxRows + 1
	}

	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Title) + "\n\n"

	end := p.scroll + maxRows
	if end > len(p.Options) {
		end = len(p.Options)
	}
	for i := p.scroll; i < end; i++ {
		opt := p.Options[i]
		mark := "  "
		if opt.Marked {
			mark = "✓ "
		}
		line := mark + opt.Label
		if i == p.Selected {
			s += theme.Selected.Render("▸ "+line) + "\n"
		} else {
			s += theme.Unselected.Render("  "+line) + "\n"
		}
	}

	return theme.Card.Render(s)
}
