package home

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/rewards"
	"github.com/abhisek/mathplay/internal/router"
	"github.com/abhisek/mathplay/internal/screen"
	"github.com/abhisek/mathplay/internal/screens/history"
	"github.com/abhisek/mathplay/internal/store"
	"github.com/abhisek/mathplay/internal/ui/components"
	"github.com/abhisek/mathplay/internal/ui/layout"
)

// Launcher builds the screen that plays game at level.
type Launcher func(game catalog.Game, level int) screen.Screen

// Deps holds the home screen's dependencies. Results may be nil, in
// which case progress and history are not available.
type Deps struct {
	Rewards *rewards.Service
	Results store.ResultRepo
	Launch  Launcher
	Logger  *slog.Logger
}

// HomeScreen is the game picker.
type HomeScreen struct {
	deps     Deps
	games    []catalog.Game
	selected int
	levels   map[string]int
	opened   map[string]int
	progress rewards.Progress
	mascot   MascotVariant
	note     string
	warn     bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen and loads the learner's progress.
func New(deps Deps) *HomeScreen {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Rewards == nil {
		deps.Rewards = rewards.NewService(deps.Results, deps.Logger)
	}
	h := &HomeScreen{
		deps:   deps,
		games:  catalog.All(),
		levels: make(map[string]int),
		opened: make(map[string]int),
	}
	h.reload()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.starsCmd()
}

// Resume reloads progress after a game or history screen closes.
func (h *HomeScreen) Resume() tea.Cmd {
	h.reload()
	return h.starsCmd()
}

func (h *HomeScreen) starsCmd() tea.Cmd {
	total := h.progress.TotalStars()
	return func() tea.Msg { return screen.StarsMsg{Total: total} }
}

func (h *HomeScreen) reload() {
	ctx := context.Background()

	p, err := h.deps.Rewards.Progress(ctx)
	if err != nil {
		h.deps.Logger.Warn("progress not loaded", "error", err)
	}
	h.progress = p

	// A new unlock moves the cursor up; otherwise the picked level stays.
	for _, g := range h.games {
		top := p.HighestUnlocked(g.ID)
		if top > h.opened[g.ID] {
			h.levels[g.ID] = top
		}
		h.opened[g.ID] = top
	}

	h.mascot = MascotIdle
	if h.deps.Results == nil {
		return
	}
	recent, err := h.deps.Results.QueryPlayResults(ctx, store.QueryOpts{Limit: 1})
	if err != nil {
		h.deps.Logger.Warn("recent play not loaded", "error", err)
		return
	}
	if len(recent) > 0 {
		h.mascot = mascotFor(&recent[0])
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Game"},
		{Key: "←→", Description: "Level"},
		{Key: "Enter", Description: "Play"},
	}
	if h.deps.Results != nil {
		hints = append(hints, layout.KeyHint{Key: "H", Description: "History"})
	}
	return append(hints, layout.KeyHint{Key: "Q", Description: "Quit"})
}

// Selected returns the highlighted game and level.
func (h *HomeScreen) Selected() (catalog.Game, int) {
	g := h.games[h.selected]
	return g, h.levels[g.ID]
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(h.games) == 0 {
		return h, nil
	}

	g, level := h.Selected()
	h.note, h.warn = "", false

	switch kmsg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(h.games)-1 {
			h.selected++
		}
	case "left":
		if level > g.Levels()[0] {
			h.levels[g.ID] = level - 1
		}
	case "right":
		if level < g.Levels()[len(g.Levels())-1] {
			h.levels[g.ID] = level + 1
		}
	case "enter", "space", " ":
		return h, h.play(g, level)
	case "h", "H":
		if h.deps.Results != nil {
			return h, func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.deps.Results)}
			}
		}
	case "q", "Q":
		return h, tea.Quit
	}
	return h, nil
}

var errNoLauncher = errors.New("no game launcher configured")

func (h *HomeScreen) play(g catalog.Game, level int) tea.Cmd {
	if !h.progress.Unlocked(g.ID, level) {
		h.note = fmt.Sprintf("Earn %d stars on level %d to unlock level %d.", rewards.UnlockStars, level-1, level)
		h.warn = true
		return nil
	}
	if h.deps.Launch == nil {
		h.deps.Logger.Error("cannot start game", "game", g.ID, "error", errNoLauncher)
		return nil
	}
	next := h.deps.Launch(g, level)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	sections = append(sections, renderStatsBar(h.progress, h.games, cw, compact))

	// Whatever height is left goes to the game list.
	used := 0
	for _, s := range sections {
		used += strings.Count(s, "\n") + 1
	}
	rows := max(height-used-len(sections)*2-8, 3)

	if len(h.games) > 0 {
		g, level := h.Selected()
		sections = append(sections, renderGameList(h.games, h.selected, h.progress, cw, rows))
		sections = append(sections, renderLevelRow(g, level, h.progress, cw))

		note := h.note
		if note == "" {
			note = g.Description
		}
		sections = append(sections, renderNote(note, cw, h.warn))
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}
