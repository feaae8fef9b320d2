package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/rewards"
	"github.com/abhisek/mathplay/internal/router"
	"github.com/abhisek/mathplay/internal/screen"
	"github.com/abhisek/mathplay/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		SessionID:     "s-1",
		Phase:         session.PhaseComplete,
		TotalRounds:   8,
		RoundsReached: 8,
		Answered:      8,
		Correct:       7,
		Accuracy:      88,
		Duration:      95 * time.Second,
	}
}

func testGame(t *testing.T) catalog.Game {
	t.Helper()
	g, err := catalog.Get("apple-orchard")
	if err != nil {
		t.Fatalf("catalog.Get: %v", err)
	}
	return g
}

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "" }
func (stubScreen) Title() string                             { return "stub" }

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testGame(t), 1, testSummary(), rewards.Award{Stars: 2}, nil)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testGame(t), 1, testSummary(), rewards.Award{Stars: 2, NewBest: true, UnlockedLevel: 2}, nil)
	view := s.View(80, 24)
	for _, want := range []string{"Apple Orchard", "★★☆", "7/8", "88%", "1:35", "New best", "Level 2 unlocked"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_UnlockHint(t *testing.T) {
	s := New(testGame(t), 2, testSummary(), rewards.Award{Stars: 1}, nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "unlock level 3") {
		t.Errorf("expected unlock hint, got %q", view)
	}

	top := New(testGame(t), 4, testSummary(), rewards.Award{Stars: 1}, nil)
	if strings.Contains(top.View(80, 24), "unlock level") {
		t.Error("no unlock hint past the last level")
	}
}

func TestSummaryScreen_EscGoesHome(t *testing.T) {
	s := New(testGame(t), 1, testSummary(), rewards.Award{}, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected command for esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSummaryScreen_EnterWithoutLauncher(t *testing.T) {
	s := New(testGame(t), 1, testSummary(), rewards.Award{}, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command for enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("the only item should lead home")
	}
}

// recordingLauncher returns a launcher that records requested levels.
func recordingLauncher(levels *[]int) Launcher {
	return func(level int) screen.Screen {
		*levels = append(*levels, level)
		return stubScreen{}
	}
}

func TestSummaryScreen_Replay(t *testing.T) {
	var levels []int
	s := New(testGame(t), 1, testSummary(), rewards.Award{}, recordingLauncher(&levels))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected replay command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := msg.Screen.(stubScreen); !ok || len(levels) != 1 || levels[0] != 1 {
		t.Errorf("replay screen = %T, levels = %v", msg.Screen, levels)
	}

	noReplay := New(testGame(t), 1, testSummary(), rewards.Award{}, nil)
	if _, cmd := noReplay.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); cmd != nil {
		t.Error("replay should be disabled without a launcher")
	}
}

func TestSummaryScreen_NextLevel(t *testing.T) {
	var levels []int
	s := New(testGame(t), 2, testSummary(), rewards.Award{Stars: 3, UnlockedLevel: 3}, recordingLauncher(&levels))
	if !strings.Contains(s.View(80, 30), "Next level") {
		t.Fatal("menu should offer the next level")
	}

	// The cursor starts on the next level when it was earned.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a launch command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if len(levels) != 1 || levels[0] != 3 {
		t.Errorf("launched levels = %v, want [3]", levels)
	}
}

func TestSummaryScreen_NextLevelLocked(t *testing.T) {
	var levels []int
	s := New(testGame(t), 1, testSummary(), rewards.Award{Stars: 1}, recordingLauncher(&levels))
	if !strings.Contains(s.View(80, 30), "needs ★★") {
		t.Error("locked next level should say what it needs")
	}

	// Down skips the locked item and lands on the way home.
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
	if len(levels) != 0 {
		t.Errorf("nothing should launch, got %v", levels)
	}
}

func TestSummaryScreen_LastLevelHasNoNext(t *testing.T) {
	var levels []int
	s := New(testGame(t), 4, testSummary(), rewards.Award{Stars: 3}, recordingLauncher(&levels))
	if strings.Contains(s.View(80, 30), "Next level") {
		t.Error("no next level after the last one")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	var levels []int
	s := New(testGame(t), 1, testSummary(), rewards.Award{}, recordingLauncher(&levels))
	hints := s.KeyHints()
	if len(hints) != 4 {
		t.Fatalf("hints = %d, want 4", len(hints))
	}
	if hints[2].Key != "R" {
		t.Errorf("third hint = %q, want R", hints[2].Key)
	}
	if got := len(New(testGame(t), 1, testSummary(), rewards.Award{}, nil).KeyHints()); got != 3 {
		t.Errorf("hints without launcher = %d, want 3", got)
	}
}
