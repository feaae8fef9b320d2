package problemgen

import (
	"math/rand/v2"
	"sync"
)

// Generator produces batches of arithmetic problems. All randomness comes
// from its own source, so a seeded Generator yields reproducible batches.
// A Generator is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand uses r as the randomness source. The generator takes ownership
// of r; callers must not use it concurrently.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// New creates a Generator. Without options it is seeded randomly.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Generate returns count problems of the given family at level. Unknown
// families are treated as addition and unknown levels as level 1.
// A non-positive count yields an empty batch.
func (g *Generator) Generate(family Family, level, count int) []Problem {
	if count <= 0 {
		return []Problem{}
	}
	level = NormalizeLevel(level)

	g.mu.Lock()
	defer g.mu.Unlock()

	switch family {
	case FamilySubtract:
		return g.batch(count, func() Problem { return g.subtraction(level) })
	case FamilyMultiply:
		return g.batch(count, func() Problem { return g.multiplication(level) })
	case FamilyDivide:
		return g.batch(count, func() Problem { return g.division(level) })
	case FamilyMixed:
		return g.mixed(level, count)
	case FamilyAllOps:
		return g.allOperations(level, count)
	default:
		return g.batch(count, func() Problem { return g.addition(level) })
	}
}

// Addition returns count addition problems at level.
func (g *Generator) Addition(level, count int) []Problem {
	return g.Generate(FamilyAdd, level, count)
}

// Subtraction returns count subtraction problems at level.
func (g *Generator) Subtraction(level, count int) []Problem {
	return g.Generate(FamilySubtract, level, count)
}

// Multiplication returns count multiplication problems at level.
func (g *Generator) Multiplication(level, count int) []Problem {
	return g.Generate(FamilyMultiply, level, count)
}

// Division returns count exact-division problems at level.
func (g *Generator) Division(level, count int) []Problem {
	return g.Generate(FamilyDivide, level, count)
}

// Mixed returns an interleaved, shuffled batch of addition and subtraction.
func (g *Generator) Mixed(level, count int) []Problem {
	return g.Generate(FamilyMixed, level, count)
}

// AllOperations returns problems whose operation is drawn per problem
// from the set unlocked at level.
func (g *Generator) AllOperations(level, count int) []Problem {
	return g.Generate(FamilyAllOps, level, count)
}

// Distractors returns count wrong answers for answer using the
// generator's source. See the package-level Distractors.
func (g *Generator) Distractors(answer, count int) []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Distractors(g.rng, answer, count)
}

func (g *Generator) batch(count int, next func() Problem) []Problem {
	out := make([]Problem, count)
	for i := range out {
		out[i] = next()
	}
	return out
}

func (g *Generator) addition(level int) Problem {
	sum := g.between(1, SumBound(level))
	a := g.between(0, sum)
	return g.finish(Problem{First: a, Second: sum - a, Op: OpAdd, Answer: sum})
}

func (g *Generator) subtraction(level int) Problem {
	minuend := g.between(1, MinuendBound(level))
	subtrahend := g.between(0, minuend)
	return g.finish(Problem{First: minuend, Second: subtrahend, Op: OpSubtract, Answer: minuend - subtrahend})
}

func (g *Generator) multiplication(level int) Problem {
	band := FactorBand(level)
	groups := g.between(band.Lo, band.Hi)
	items := g.between(multiplierBand.Lo, multiplierBand.Hi)

	// Display order is free; the hint keeps the sampled roles.
	a, b := groups, items
	if g.rng.IntN(2) == 0 {
		a, b = b, a
	}
	return g.finish(Problem{
		First:  a,
		Second: b,
		Op:     OpMultiply,
		Answer: groups * items,
		Hint:   &VisualHint{GroupCount: groups, ItemsPerGroup: items},
	})
}

func (g *Generator) division(level int) Problem {
	band := FactorBand(level)
	divisor := g.between(band.Lo, band.Hi)
	quotient := g.between(multiplierBand.Lo, multiplierBand.Hi)
	return g.finish(Problem{
		First:  divisor * quotient,
		Second: divisor,
		Op:     OpDivide,
		Answer: quotient,
		Hint:   &VisualHint{GroupCount: divisor, ItemsPerGroup: quotient},
	})
}

func (g *Generator) mixed(level, count int) []Problem {
	out := make([]Problem, 0, count)
	adds := (count + 1) / 2
	for i := 0; i < count; i++ {
		if i < adds {
			out = append(out, g.addition(level))
		} else {
			out = append(out, g.subtraction(level))
		}
	}
	g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (g *Generator) allOperations(level, count int) []Problem {
	ops := Operations(level)
	return g.batch(count, func() Problem {
		switch ops[g.rng.IntN(len(ops))] {
		case OpSubtract:
			return g.subtraction(level)
		case OpMultiply:
			return g.multiplication(level)
		case OpDivide:
			return g.division(level)
		default:
			return g.addition(level)
		}
	})
}

// finish attaches shuffled choices to p.
func (g *Generator) finish(p Problem) Problem {
	choices := append([]int{p.Answer}, Distractors(g.rng, p.Answer, ChoiceCount-1)...)
	g.rng.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })
	p.Choices = choices
	return p
}

// between samples uniformly from [lo, hi]. An empty or inverted range
// collapses to lo.
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}
