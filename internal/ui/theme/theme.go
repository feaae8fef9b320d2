package theme

import (
	"image/color"
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/problemgen"
)

// Arcade palette: neon on navy, readable for young players.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Cabinet purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark slate
	Border    = lipgloss.Color("#334155") // Slate rule

	ArcadeYellow = lipgloss.Color("#FACC15") // Marquee gold
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Neon cyan
	ArcadePink   = lipgloss.Color("#EC4899") // Neon pink
	Locked       = lipgloss.Color("#475569") // Greyed-out level
)

// Game screen
var (
	Prompt = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Expression = lipgloss.NewStyle().
			Foreground(ArcadeCyan).
			Bold(true)

	Caption = lipgloss.NewStyle().
		Foreground(TextDim)

	Rule = lipgloss.NewStyle().
		Foreground(Border)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	HintItem = lipgloss.NewStyle().
			Foreground(ArcadeYellow)
)

// Rewards
var (
	Star = lipgloss.NewStyle().
		Foreground(ArcadeYellow)

	LockedLevel = lipgloss.NewStyle().
			Foreground(Locked)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// OperationColor gives each operation its own neon so mixed batches are
// easy to tell apart at a glance.
func OperationColor(op problemgen.Operation) color.Color {
	switch op {
	case problemgen.OpAdd:
		return Success
	case problemgen.OpSubtract:
		return Accent
	case problemgen.OpMultiply:
		return ArcadePink
	case problemgen.OpDivide:
		return ArcadeYellow
	default:
		return Text
	}
}

// RenderExpression draws "a op b" with the operator in its operation color.
func RenderExpression(p problemgen.Problem) string {
	op := lipgloss.NewStyle().Foreground(OperationColor(p.Op)).Bold(true).Render(p.Op.Symbol())
	return Expression.Render(strconv.Itoa(p.First)+" ") + op + Expression.Render(" "+strconv.Itoa(p.Second))
}
