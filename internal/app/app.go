package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/problemgen"
	"github.com/abhisek/mathplay/internal/rewards"
	"github.com/abhisek/mathplay/internal/router"
	"github.com/abhisek/mathplay/internal/screen"
	"github.com/abhisek/mathplay/internal/screens/game"
	"github.com/abhisek/mathplay/internal/screens/home"
	"github.com/abhisek/mathplay/internal/screens/welcome"
	"github.com/abhisek/mathplay/internal/store"
	"github.com/abhisek/mathplay/internal/ui/layout"
)

// Deps wires the screens to the engine and the store.
type Deps struct {
	Generator *problemgen.Generator

	// Results may be nil to play without saving anything.
	Results store.ResultRepo

	Logger        *slog.Logger
	FeedbackDelay time.Duration

	// Rounds overrides every game's round count when positive.
	Rounds int
}

// Start jumps straight into one game instead of showing the welcome
// screen. Leaving the game lands on the home screen.
type Start struct {
	Game  catalog.Game
	Level int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	start  screen.Screen
	stars  int
	width  int
	height int
}

// newAppModel creates a new AppModel. Without start it opens on the
// welcome screen.
func newAppModel(deps Deps, start *Start) AppModel {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Generator == nil {
		deps.Generator = problemgen.New()
	}
	svc := rewards.NewService(deps.Results, deps.Logger)

	launch := func(g catalog.Game, level int) screen.Screen {
		return game.New(g, level, game.Options{
			Generator:     deps.Generator,
			Rewards:       svc,
			Answers:       deps.Results,
			Logger:        deps.Logger,
			FeedbackDelay: deps.FeedbackDelay,
			Rounds:        deps.Rounds,
		})
	}
	newHome := func() screen.Screen {
		return home.New(home.Deps{
			Rewards: svc,
			Results: deps.Results,
			Launch:  launch,
			Logger:  deps.Logger,
		})
	}

	if start != nil {
		return AppModel{
			router: router.New(newHome(), router.WithLogger(deps.Logger)),
			start:  launch(start.Game, start.Level),
		}
	}
	return AppModel{
		router: router.New(welcome.New(newHome), router.WithLogger(deps.Logger)),
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.start != nil {
		cmds = append(cmds, m.router.Push(m.start))
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StarsMsg:
		m.stars = msg.Total
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if eh, ok := m.router.Active().(screen.EscapeHandler); ok && eh.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
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
	v.SetContent(m.render())
	return v
}

// render draws the header, active screen and footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	h := layout.Header{Stars: m.stars}
	if active != nil {
		h.Title = active.Title()
		if rp, ok := active.(screen.RoundProvider); ok {
			h.Round = rp.RoundLabel()
		}
	}

	header := layout.RenderHeader(h, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if khp, ok := active.(screen.KeyHintProvider); ok {
		if hints := khp.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program. A non-nil start opens that game
// directly.
func Run(deps Deps, start *Start) error {
	p := tea.NewProgram(newAppModel(deps, start))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
