package router

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplay/internal/screen"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen, e.g. a finished game for its
// results, without growing the stack.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router keeps the screen stack. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
	log   *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger reports navigation at DEBUG.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a Router rooted at initial. Init is not called on initial;
// the program does that through the app model.
func New(initial screen.Screen, opts ...Option) *Router {
	r := &Router{
		stack: []screen.Screen{initial},
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Push adds s on top and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	r.stack = append(r.stack, s)
	r.log.Debug("screen pushed", "screen", s.Title(), "depth", len(r.stack))
	return s.Init()
}

// Pop drops the top screen unless it is the root. The screen underneath
// is resumed if it implements screen.Resumer.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	popped := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.log.Debug("screen popped", "screen", popped.Title(), "depth", len(r.stack))

	if res, ok := r.Active().(screen.Resumer); ok {
		return res.Resume()
	}
	return nil
}

// Replace swaps the top screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	top := len(r.stack) - 1
	r.log.Debug("screen replaced", "from", r.stack[top].Title(), "to", s.Title())
	r.stack[top] = s
	return s.Init()
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	top := len(r.stack) - 1
	if top < 0 {
		return nil
	}
	updated, cmd := r.stack[top].Update(msg)
	r.stack[top] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
