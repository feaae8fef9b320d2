package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/problemgen"
	"github.com/abhisek/mathplay/internal/router"
	"github.com/abhisek/mathplay/internal/screen"
	"github.com/abhisek/mathplay/internal/screens/game"
	"github.com/abhisek/mathplay/internal/screens/home"
	"github.com/abhisek/mathplay/internal/screens/welcome"
)

func testDeps() Deps {
	return Deps{Generator: problemgen.New(problemgen.WithSeed(3))}
}

func startGame(t *testing.T) *Start {
	t.Helper()
	g, err := catalog.Get("bubble-pop")
	if err != nil {
		t.Fatalf("catalog.Get: %v", err)
	}
	return &Start{Game: g, Level: 1}
}

func TestNewAppModel_Welcome(t *testing.T) {
	m := newAppModel(testDeps(), nil)
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("active = %T, want welcome", m.router.Active())
	}
}

func TestNewAppModel_StartGame(t *testing.T) {
	m := newAppModel(testDeps(), startGame(t))
	m.Init()
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if _, ok := m.router.Active().(*game.GameScreen); !ok {
		t.Errorf("active = %T, want game", m.router.Active())
	}

	// Popping lands on home.
	m.router.Pop()
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("below game = %T, want home", m.router.Active())
	}
}

func TestEscapeGoesToGame(t *testing.T) {
	m := newAppModel(testDeps(), startGame(t))
	m.Init()

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(AppModel)
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Fatal("esc in a game should open the quit dialog, not pop")
		}
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.router.Depth())
	}
	hints := m.router.Active().(screen.KeyHintProvider).KeyHints()
	if hints[0].Key != "Y" {
		t.Errorf("expected quit dialog hints, got %+v", hints)
	}
}

func TestEscapePopsOtherScreens(t *testing.T) {
	m := newAppModel(testDeps(), nil)
	m.router.Replace(home.New(home.Deps{}))
	m.router.Push(welcome.New(func() screen.Screen { return nil }))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestStarsInHeader(t *testing.T) {
	m := newAppModel(testDeps(), startGame(t))
	m.Init()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	updated, _ = updated.(AppModel).Update(screen.StarsMsg{Total: 17})
	m = updated.(AppModel)

	if m.stars != 17 {
		t.Fatalf("stars = %d, want 17", m.stars)
	}
	view := m.render()
	if !strings.Contains(view, "★ 17") {
		t.Error("header should show the star total")
	}
	if !strings.Contains(view, "Round 1/10") {
		t.Error("header should show the round label")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testDeps(), nil)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
