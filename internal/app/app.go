package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teyvatops/ascend/internal/gamedata"
	"github.com/teyvatops/ascend/internal/planner"
	"github.com/teyvatops/ascend/internal/router"
	"github.com/teyvatops/ascend/internal/screen"
	"github.com/teyvatops/ascend/internal/screens/home"
	"github.com/teyvatops/ascend/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Planner  *planner.Planner
	Provider gamedata.Provider
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	pl       *planner.Planner
	provider gamedata.Provider
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Planner, opts.Provider)
	return AppModel{
		router:   router.New(homeScreen),
		pl:       opts.Planner,
		provider: opts.Provider,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.pl.Flush()
			return m, tea.Quit
		case "esc":
			if mo, ok := m.router.Active().(screen.ModalOwner); ok && mo.ModalOpen() {
				break
			}
			if m.router.Depth() > 1 {
				// Leaving a screen ends any batched-edit session: restore
				// write-through, which flushes pending mutations.
				m.pl.SetDeferred(false)
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	selected := ""
	if id := m.pl.Selected(); id != "" {
		selected = m.provider.CharacterName(id)
		if selected == "" {
			selected = id
		}
	}

	header := layout.RenderHeader(title, len(m.pl.Owned()), selected, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
