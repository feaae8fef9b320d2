package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathplay/internal/problemgen"
)

func TestCatalog_Valid(t *testing.T) {
	require.NoError(t, Validate())
}

func TestCatalog_TwelveGames(t *testing.T) {
	assert.Len(t, All(), 12)
	assert.Len(t, IDs(), 12)
}

func TestCatalog_EveryFamilyHasGames(t *testing.T) {
	for _, f := range problemgen.AllFamilies() {
		assert.NotEmpty(t, ByFamily(f), "family %s", f)
	}
}

func TestGet(t *testing.T) {
	g, err := Get("pizza-party")
	require.NoError(t, err)
	assert.Equal(t, problemgen.FamilyDivide, g.Family)

	_, err = Get("nope")
	assert.True(t, errors.Is(err, ErrUnknownGame))
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Title = "changed"
	assert.NotEqual(t, "changed", All()[0].Title)
}

func TestValidateGames_ReportsProblems(t *testing.T) {
	err := validateGames([]Game{
		{ID: "a", Title: "A", Family: problemgen.FamilyAdd},
		{ID: "a", Title: "A again", Family: problemgen.FamilyAdd},
		{ID: "b", Title: "B", Family: "fractions"},
		{ID: "c", Family: problemgen.FamilyAdd, Prompt: "only %d"},
	})
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `duplicate game ID: "a"`)
	assert.Contains(t, msg, `unknown family "fractions"`)
	assert.Contains(t, msg, `game "c" has no title`)
	assert.Contains(t, msg, "exactly two %d verbs")
}

func TestGame_LevelsAndRounds(t *testing.T) {
	g := Game{}
	assert.Equal(t, []int{1, 2, 3, 4}, g.Levels())
	assert.Equal(t, DefaultRounds, g.RoundCount())
	g.Rounds = 12
	assert.Equal(t, 12, g.RoundCount())
}

func TestPromptFor(t *testing.T) {
	pizza, err := Get("pizza-party")
	require.NoError(t, err)
	p := problemgen.Problem{First: 12, Second: 3, Op: problemgen.OpDivide, Answer: 4}
	assert.Equal(t, "12 slices are shared by 3 friends. How many slices each?", pizza.PromptFor(p))

	maze, err := Get("math-maze")
	require.NoError(t, err)
	assert.Equal(t, p.Text(), maze.PromptFor(p))

	plain := Game{Family: problemgen.FamilyDivide}
	assert.Equal(t, p.Text(), plain.PromptFor(p))
}
