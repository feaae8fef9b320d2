package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoice_NumberKey(t *testing.T) {
	m := NewMultiChoice([]int{3, 5, 7, 9}, 2)
	m, _ = m.Update(keyPress('3'))

	v, ok := m.Chosen()
	if !ok || v != 7 {
		t.Fatalf("Chosen = %d, %v; want 7, true", v, ok)
	}
	if !m.IsCorrect() {
		t.Error("expected correct choice")
	}
}

func TestMultiChoice_ArrowsAndEnter(t *testing.T) {
	m := NewMultiChoice([]int{3, 5, 7, 9}, 0)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.ChosenIndex != 1 {
		t.Errorf("ChosenIndex = %d, want 1", m.ChosenIndex)
	}
	if m.IsCorrect() {
		t.Error("index 1 is not the correct choice")
	}
}

func TestMultiChoice_IgnoresOutOfRangeAndRepeat(t *testing.T) {
	m := NewMultiChoice([]int{1, 2}, 0)
	m, _ = m.Update(keyPress('4'))
	if m.Submitted {
		t.Fatal("key 4 should not pick from two options")
	}

	m, _ = m.Update(keyPress('1'))
	m, _ = m.Update(keyPress('2'))
	if m.ChosenIndex != 0 {
		t.Errorf("second pick should be ignored, ChosenIndex = %d", m.ChosenIndex)
	}
}

func TestMultiChoice_View(t *testing.T) {
	m := NewMultiChoice([]int{10, 20, 30, 40}, 3)
	view := m.View()
	for _, want := range []string{"1)  10", "4)  40", "▸"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "locked", Disabled: true},
		{Label: "a"},
		{Label: "locked too", Disabled: true},
		{Label: "b"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down should skip disabled, got %d", m.Selected)
	}
}

func TestProgressBar_View(t *testing.T) {
	half := NewProgressBar("", 0.5, true, 20).View()
	if !strings.Contains(half, "50%") {
		t.Errorf("percent label missing from %q", half)
	}
	empty := NewProgressBar("Round", -1, false, 20).View()
	if !strings.Contains(empty, "Round") {
		t.Errorf("label missing from %q", empty)
	}
}

func TestRoundDots(t *testing.T) {
	dots := RoundDots([]bool{true, false}, 3, 5)
	if got := strings.Count(dots, "●"); got != 2 {
		t.Errorf("answered markers = %d, want 2", got)
	}
	if !strings.Contains(dots, "◉") {
		t.Error("current round marker missing")
	}
	if got := strings.Count(dots, "○"); got != 2 {
		t.Errorf("pending markers = %d, want 2", got)
	}
}

func TestMenu_DetailAndDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Level 1", Detail: "★★☆"},
		{Label: "Level 2", Detail: "locked", Disabled: true},
	})
	m.LabelWidth = 10
	view := m.View()
	if !strings.Contains(view, "Level 1     ★★☆") {
		t.Errorf("detail not aligned in %q", view)
	}
	if !strings.Contains(view, "locked") {
		t.Error("disabled item missing")
	}
}

func TestButtonRow(t *testing.T) {
	row := ButtonRow([]string{"Yes", "No"}, 1)
	if !strings.Contains(row, "▸ No") {
		t.Errorf("active marker missing in %q", row)
	}
	if strings.Contains(row, "▸ Yes") {
		t.Errorf("inactive button marked in %q", row)
	}
	if strings.Contains(ButtonRow([]string{"Yes", "No"}, 5), "▸") {
		t.Error("out-of-range active should mark nothing")
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "Play again", Action: func() tea.Cmd { ran = "again"; return nil }},
		{Label: "Next level", Disabled: true, Action: func() tea.Cmd { ran = "next"; return nil }},
		{Label: "Back", Action: func() tea.Cmd { ran = "back"; return nil }},
	})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if ran != "back" {
		t.Errorf("ran %q, want back", ran)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("cursor moved past the end: %d", m.Selected)
	}
}

func TestBanner_CompactFallback(t *testing.T) {
	style := lipgloss.NewStyle()
	if got := Banner(40, style); !strings.Contains(got, "M · A · T · H") {
		t.Errorf("narrow banner = %q", got)
	}
	if got := Banner(BannerWidth, style); !strings.Contains(got, "███") {
		t.Error("wide banner should use block letters")
	}
}

func TestContentWidth_Bounds(t *testing.T) {
	if got := ContentWidth(10); got != 20 {
		t.Errorf("ContentWidth(10) = %d, want 20", got)
	}
	if got := ContentWidth(200); got != BannerWidth+2 {
		t.Errorf("ContentWidth(200) = %d, want %d", got, BannerWidth+2)
	}
}

func TestLevelBadge(t *testing.T) {
	if got := LevelBadge(2, "★★☆", true, false); !strings.Contains(got, "Lv 2 ★★☆") {
		t.Errorf("unlocked badge = %q", got)
	}
	if got := LevelBadge(3, "★★☆", false, true); strings.Contains(got, "★") {
		t.Errorf("locked badge should hide stars: %q", got)
	}
}

func TestAnswerInput_FiltersLetters(t *testing.T) {
	in := NewAnswerInput(6)
	in, _ = in.Update(keyPress('x'))
	in, _ = in.Update(keyPress('4'))
	in, _ = in.Update(keyPress('-'))
	in, _ = in.Update(keyPress('2'))

	if in.Value() != "42" {
		t.Fatalf("Value = %q, want %q", in.Value(), "42")
	}
	v, err := in.Answer()
	if err != nil || v != 42 {
		t.Errorf("Answer = %d, %v; want 42, nil", v, err)
	}
}

func TestAnswerInput_MarkAndReset(t *testing.T) {
	in := NewAnswerInput(6)
	in.Model.SetValue("7")
	in.Mark(false)

	if !in.Marked() {
		t.Fatal("expected marked input")
	}
	if !strings.Contains(in.View(), "✗") {
		t.Error("wrong answer should show ✗")
	}
	in, _ = in.Update(keyPress('1'))
	if in.Value() != "7" {
		t.Errorf("marked input accepted typing: %q", in.Value())
	}

	in.Reset()
	if in.Marked() || in.Value() != "" {
		t.Errorf("Reset left marked=%v value=%q", in.Marked(), in.Value())
	}
	if _, err := in.Answer(); err == nil {
		t.Error("empty input should not parse")
	}
}
