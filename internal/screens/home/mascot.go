package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/store"
	"github.com/abhisek/mathplay/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // no plays yet, or an ordinary one
	MascotCelebrating                      // last play earned every star
	MascotAlert                            // last play was stopped or starless
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ +-× │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ +-× │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ ?
│  ○  │
│ +-× │
└─────┘`

// mascotFor picks the mascot mood from the most recent play, if any.
func mascotFor(last *store.PlayResultRecord) MascotVariant {
	switch {
	case last == nil:
		return MascotIdle
	case last.Stars == 3:
		return MascotCelebrating
	case !last.Completed || last.Stars == 0:
		return MascotAlert
	}
	return MascotIdle
}

// MascotLine is what the mascot says under its art.
func MascotLine(v MascotVariant) string {
	switch v {
	case MascotCelebrating:
		return "Three stars! You're a math star!"
	case MascotAlert:
		return "Let's give it another go!"
	default:
		return "Pick a game and let's play!"
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
