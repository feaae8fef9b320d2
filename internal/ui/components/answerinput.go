package components

import (
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplay/internal/problemgen"
	"github.com/abhisek/mathplay/internal/ui/theme"
)

// AnswerInput is a short numeric field for typing an answer instead of
// picking a choice. Letters and symbols are dropped as they are typed;
// spaces pass through and are trimmed when the answer is parsed.
type AnswerInput struct {
	Model textinput.Model

	marked  bool
	correct bool
}

// NewAnswerInput creates a focused input holding at most maxDigits characters.
func NewAnswerInput(maxDigits int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.Prompt = "› "
	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}
	ti.Focus()
	return AnswerInput{Model: ti}
}

func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update forwards msg to the field unless it is answered or msg types a
// character that cannot be part of a number.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.marked {
		return a, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && !acceptsText(kmsg.Text) {
		return a, nil
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

func acceptsText(text string) bool {
	for _, r := range text {
		if !unicode.IsDigit(r) && r != ' ' {
			return false
		}
	}
	return true
}

func (a AnswerInput) View() string {
	view := a.Model.View()
	if !a.marked {
		return view
	}
	if a.correct {
		return view + " " + theme.Correct.Render("✓")
	}
	return view + " " + theme.Incorrect.Render("✗")
}

func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Answer parses the typed value.
func (a AnswerInput) Answer() (int, error) {
	return problemgen.ParseAnswer(a.Model.Value())
}

// Mark freezes the field and shows whether the answer was correct.
func (a *AnswerInput) Mark(correct bool) {
	a.marked = true
	a.correct = correct
}

// Marked reports whether the field is showing a graded answer.
func (a AnswerInput) Marked() bool {
	return a.marked
}

// Reset clears the field for the next round.
func (a *AnswerInput) Reset() {
	a.Model.Reset()
	a.marked = false
	a.correct = false
}
