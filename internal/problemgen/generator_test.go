package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_AllFamiliesValid(t *testing.T) {
	g := New(WithSeed(42))
	for _, family := range AllFamilies() {
		for level := -1; level <= MaxLevel+2; level++ {
			batch := g.Generate(family, level, 40)
			require.Len(t, batch, 40, "%s level %d", family, level)

			idx, err := ValidateBatch(batch)
			require.NoError(t, err, "%s level %d problem %d: %+v", family, level, idx, batchAt(batch, idx))
		}
	}
}

func TestGenerate_CountEdgeCases(t *testing.T) {
	g := New(WithSeed(1))
	assert.Empty(t, g.Generate(FamilyAdd, 1, 0))
	assert.Empty(t, g.Generate(FamilyMixed, 1, -5))
	assert.Len(t, g.Generate(FamilyMixed, 1, 1), 1)
}

func TestGenerate_Reproducible(t *testing.T) {
	a := New(WithSeed(99)).Generate(FamilyAllOps, 3, 20)
	b := New(WithSeed(99)).Generate(FamilyAllOps, 3, 20)
	assert.Equal(t, a, b)
}

func TestAddition_Bounds(t *testing.T) {
	g := New(WithSeed(5))
	for level := MinLevel; level <= MaxLevel; level++ {
		for _, p := range g.Addition(level, 100) {
			assert.Equal(t, OpAdd, p.Op)
			assert.GreaterOrEqual(t, p.Answer, 1)
			assert.LessOrEqual(t, p.Answer, SumBound(level), "level %d", level)
			assert.Nil(t, p.Hint)
		}
	}
	assert.Equal(t, 5, SumBound(1))
	assert.Equal(t, 20, SumBound(4))
}

func TestSubtraction_NeverNegative(t *testing.T) {
	g := New(WithSeed(6))
	for level := MinLevel; level <= MaxLevel; level++ {
		for _, p := range g.Subtraction(level, 100) {
			assert.Equal(t, OpSubtract, p.Op)
			assert.GreaterOrEqual(t, p.First, p.Second)
			assert.GreaterOrEqual(t, p.Answer, 0)
			assert.LessOrEqual(t, p.First, MinuendBound(level))
		}
	}
}

func TestMultiplication_HintMatchesFactors(t *testing.T) {
	g := New(WithSeed(7))
	swapped := 0
	for _, p := range g.Multiplication(2, 200) {
		require.NotNil(t, p.Hint)
		assert.Equal(t, p.Answer, p.Hint.GroupCount*p.Hint.ItemsPerGroup)
		assert.GreaterOrEqual(t, p.Hint.GroupCount, 4)
		assert.LessOrEqual(t, p.Hint.GroupCount, 5)
		assert.GreaterOrEqual(t, p.Hint.ItemsPerGroup, 1)
		assert.LessOrEqual(t, p.Hint.ItemsPerGroup, 10)
		if p.First != p.Hint.GroupCount {
			swapped++
		}
	}
	assert.Positive(t, swapped, "display order should sometimes differ from the hint order")
}

func TestDivision_LevelOneBand(t *testing.T) {
	g := New(WithSeed(8))
	for _, p := range g.Division(1, 50) {
		assert.Equal(t, OpDivide, p.Op)
		assert.Contains(t, []int{2, 3}, p.Second, "divisor")
		assert.GreaterOrEqual(t, p.Answer, 1)
		assert.LessOrEqual(t, p.Answer, 10)
		assert.Equal(t, p.Second*p.Answer, p.First)
		assert.Zero(t, p.First%p.Second)
		require.NotNil(t, p.Hint)
		assert.Equal(t, VisualHint{GroupCount: p.Second, ItemsPerGroup: p.Answer}, *p.Hint)
	}
}

func TestDivision_UnknownLevelUsesLowestBand(t *testing.T) {
	g := New(WithSeed(9))
	for _, level := range []int{0, -3, 5, 99} {
		for _, p := range g.Division(level, 30) {
			assert.Contains(t, []int{2, 3}, p.Second, "level %d", level)
		}
	}
}

func TestMixed_HalfAndHalf(t *testing.T) {
	g := New(WithSeed(10))
	for _, count := range []int{1, 7, 10} {
		batch := g.Mixed(2, count)
		var adds, subs int
		for _, p := range batch {
			switch p.Op {
			case OpAdd:
				adds++
			case OpSubtract:
				subs++
			default:
				t.Fatalf("unexpected op %s in mixed batch", p.Op)
			}
		}
		assert.Equal(t, (count+1)/2, adds, "count %d", count)
		assert.Equal(t, count/2, subs, "count %d", count)
	}
}

func TestMixed_Shuffled(t *testing.T) {
	g := New(WithSeed(12))
	batch := g.Mixed(1, 40)
	firstHalfAllAdds := true
	for _, p := range batch[:20] {
		if p.Op != OpAdd {
			firstHalfAllAdds = false
		}
	}
	assert.False(t, firstHalfAllAdds, "mixed batch should not be ordered by operation")
}

func TestAllOperations_LevelGating(t *testing.T) {
	g := New(WithSeed(13))
	tests := []struct {
		level int
		want  []Operation
	}{
		{1, []Operation{OpAdd, OpSubtract}},
		{2, []Operation{OpAdd, OpSubtract, OpMultiply}},
		{3, []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}},
		{4, []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}},
		{7, []Operation{OpAdd, OpSubtract}},
	}
	for _, tt := range tests {
		seen := map[Operation]bool{}
		for _, p := range g.AllOperations(tt.level, 300) {
			seen[p.Op] = true
		}
		var got []Operation
		for op := range seen {
			got = append(got, op)
		}
		assert.ElementsMatch(t, tt.want, got, "level %d", tt.level)
	}
}

func TestGenerate_UnknownFamilyIsAddition(t *testing.T) {
	g := New(WithSeed(14))
	for _, p := range g.Generate(Family("bogus"), 1, 10) {
		assert.Equal(t, OpAdd, p.Op)
	}
}

func TestOperations_ReturnsCopy(t *testing.T) {
	ops := Operations(1)
	ops[0] = OpDivide
	assert.Equal(t, OpAdd, Operations(1)[0])
}

func batchAt(batch []Problem, i int) Problem {
	if i < 0 || i >= len(batch) {
		return Problem{}
	}
	return batch[i]
}
