package rewards

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/session"
	"github.com/abhisek/mathplay/internal/store"
)

// mockResultRepo implements store.ResultRepo for rewards tests.
type mockResultRepo struct {
	results   []store.PlayResultData
	best      map[store.LevelKey]int
	appendErr error
}

func (m *mockResultRepo) AppendPlayResult(_ context.Context, data store.PlayResultData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.results = append(m.results, data)
	key := store.LevelKey{GameID: data.GameID, Level: data.Level}
	if data.Stars > m.best[key] {
		m.best[key] = data.Stars
	}
	return nil
}
func (m *mockResultRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockResultRepo) QueryPlayResults(_ context.Context, _ store.QueryOpts) ([]store.PlayResultRecord, error) {
	return nil, nil
}
func (m *mockResultRepo) LatestPlayResult(_ context.Context, _ string) (*store.PlayResultRecord, error) {
	return nil, store.ErrNotFound
}
func (m *mockResultRepo) SessionAnswers(_ context.Context, _ string) ([]store.AnswerEventRecord, error) {
	return nil, nil
}
func (m *mockResultRepo) BestStars(_ context.Context) (map[store.LevelKey]int, error) {
	out := make(map[store.LevelKey]int, len(m.best))
	for k, v := range m.best {
		out[k] = v
	}
	return out, nil
}
func (m *mockResultRepo) Reset(_ context.Context) (int, error) {
	n := len(m.results)
	m.results = nil
	m.best = map[store.LevelKey]int{}
	return n, nil
}

func newTestService() (*Service, *mockResultRepo) {
	repo := &mockResultRepo{best: map[store.LevelKey]int{}}
	return NewService(repo, nil), repo
}

// play runs a full session with the given answers.
func play(answers ...bool) session.Summary {
	s := session.New(len(answers))
	s.Start()
	for _, a := range answers {
		s.SubmitAnswer(a)
		s.NextRound()
	}
	return s.Summary()
}

func mustGame(t *testing.T, id string) catalog.Game {
	t.Helper()
	g, err := catalog.Get(id)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	return g
}

func TestRecord_CompletedSession(t *testing.T) {
	svc, repo := newTestService()
	game := mustGame(t, "apple-orchard")

	sum := play(true, true, true, true, true, true, true, false) // 88%
	award, err := svc.Record(context.Background(), game, 1, sum)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if award.Stars != 2 {
		t.Errorf("stars = %d, want 2", award.Stars)
	}
	if !award.NewBest {
		t.Error("first play should be a new best")
	}
	if award.UnlockedLevel != 2 {
		t.Errorf("unlocked = %d, want 2", award.UnlockedLevel)
	}

	if len(repo.results) != 1 {
		t.Fatalf("persisted %d results, want 1", len(repo.results))
	}
	r := repo.results[0]
	if r.GameID != "apple-orchard" || r.Family != "add" || r.Level != 1 {
		t.Errorf("persisted %+v", r)
	}
	if r.Accuracy != 88 || r.Correct != 7 || r.Answered != 8 || !r.Completed {
		t.Errorf("persisted counts %+v", r)
	}
}

func TestRecord_NoSecondUnlock(t *testing.T) {
	svc, _ := newTestService()
	game := mustGame(t, "apple-orchard")
	ctx := context.Background()

	svc.Record(ctx, game, 1, play(true, true))
	award, _ := svc.Record(ctx, game, 1, play(true, true))
	if award.UnlockedLevel != 0 {
		t.Errorf("level 2 was already open, got unlock %d", award.UnlockedLevel)
	}
	if award.NewBest {
		t.Error("equal rating is not a new best")
	}
}

func TestRecord_LowScoreDoesNotUnlock(t *testing.T) {
	svc, _ := newTestService()
	award, err := svc.Record(context.Background(), mustGame(t, "cookie-jar"), 1, play(true, false, false, true))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if award.Stars != 1 {
		t.Errorf("stars = %d, want 1", award.Stars)
	}
	if award.UnlockedLevel != 0 {
		t.Errorf("unlocked = %d, want 0", award.UnlockedLevel)
	}
}

func TestRecord_TopLevelUnlocksNothing(t *testing.T) {
	svc, _ := newTestService()
	award, _ := svc.Record(context.Background(), mustGame(t, "math-maze"), 4, play(true))
	if award.Stars != 3 || award.UnlockedLevel != 0 {
		t.Errorf("award = %+v", award)
	}
}

func TestRecord_AbandonedEarnsNothing(t *testing.T) {
	svc, repo := newTestService()
	s := session.New(8)
	s.Start()
	s.SubmitAnswer(true)

	award, err := svc.Record(context.Background(), mustGame(t, "bubble-pop"), 1, s.Summary())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if award.Stars != 0 {
		t.Errorf("stars = %d, want 0", award.Stars)
	}
	if len(repo.results) != 1 || repo.results[0].Completed {
		t.Errorf("abandoned play should be stored as incomplete: %+v", repo.results)
	}
}

func TestRecord_PersistFailureKeepsAward(t *testing.T) {
	svc, repo := newTestService()
	repo.appendErr = errors.New("disk full")

	award, err := svc.Record(context.Background(), mustGame(t, "pizza-party"), 1, play(true, true))
	if err == nil {
		t.Fatal("expected error")
	}
	if award.Stars != 3 {
		t.Errorf("stars = %d, want 3 despite error", award.Stars)
	}
}

func TestRecord_NilRepo(t *testing.T) {
	svc := NewService(nil, nil)
	award, err := svc.Record(context.Background(), mustGame(t, "train-station"), 1, play(true))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if award.Stars != 3 {
		t.Errorf("stars = %d", award.Stars)
	}
}

func TestProgress_Unlocks(t *testing.T) {
	p := NewProgress(map[store.LevelKey]int{
		{GameID: "g", Level: 1}: 3,
		{GameID: "g", Level: 2}: 2,
		{GameID: "g", Level: 3}: 1,
	})

	tests := []struct {
		level int
		want  bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{3, true},
		{4, false},
		{5, false},
	}
	for _, tt := range tests {
		if got := p.Unlocked("g", tt.level); got != tt.want {
			t.Errorf("Unlocked(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
	if got := p.HighestUnlocked("g"); got != 3 {
		t.Errorf("HighestUnlocked = %d, want 3", got)
	}
	if got := p.HighestUnlocked("fresh"); got != 1 {
		t.Errorf("fresh game HighestUnlocked = %d, want 1", got)
	}
	if got := p.GameStars("g"); got != 6 {
		t.Errorf("GameStars = %d, want 6", got)
	}
	if got := p.TotalStars(); got != 6 {
		t.Errorf("TotalStars = %d, want 6", got)
	}
}

func TestProgress_NilMap(t *testing.T) {
	p := NewProgress(nil)
	if p.Stars("x", 1) != 0 || !p.Unlocked("x", 1) || p.Unlocked("x", 2) {
		t.Error("empty progress should only open level 1")
	}
}

func TestRecord_DurationPersisted(t *testing.T) {
	svc, repo := newTestService()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := session.New(1, session.WithClock(func() time.Time { return now }))
	s.Start()
	s.SubmitAnswer(true)
	now = now.Add(12 * time.Second)
	s.NextRound()

	svc.Record(context.Background(), mustGame(t, "garden-rows"), 2, s.Summary())
	if repo.results[0].Duration != 12*time.Second {
		t.Errorf("duration = %v, want 12s", repo.results[0].Duration)
	}
}
