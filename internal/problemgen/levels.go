package problemgen

import "slices"

// MinLevel and MaxLevel bound the difficulty tables. Anything outside
// falls back to MinLevel, the most lenient band.
const (
	MinLevel = 1
	MaxLevel = 4
)

// Band is an inclusive integer range.
type Band struct {
	Lo int
	Hi int
}

var (
	// sumBounds caps the sum of an addition problem per level.
	sumBounds = map[int]int{1: 5, 2: 10, 3: 15, 4: 20}

	// minuendBounds caps the minuend of a subtraction problem per level.
	minuendBounds = map[int]int{1: 5, 2: 10, 3: 15, 4: 20}

	// factorBands selects the "times table" factor for multiply and the
	// divisor for divide.
	factorBands = map[int]Band{
		1: {Lo: 2, Hi: 3},
		2: {Lo: 4, Hi: 5},
		3: {Lo: 6, Hi: 7},
		4: {Lo: 8, Hi: 9},
	}

	// operationsByLevel gates which operations the all-ops family may pick.
	operationsByLevel = map[int][]Operation{
		1: {OpAdd, OpSubtract},
		2: {OpAdd, OpSubtract, OpMultiply},
		3: {OpAdd, OpSubtract, OpMultiply, OpDivide},
		4: {OpAdd, OpSubtract, OpMultiply, OpDivide},
	}
)

// multiplierBand is the range of the second factor and of the quotient.
var multiplierBand = Band{Lo: 1, Hi: 10}

// NormalizeLevel maps any level onto a defined table row.
func NormalizeLevel(level int) int {
	if level < MinLevel || level > MaxLevel {
		return MinLevel
	}
	return level
}

// SumBound returns the maximum addition sum for level.
func SumBound(level int) int {
	return sumBounds[NormalizeLevel(level)]
}

// MinuendBound returns the maximum subtraction minuend for level.
func MinuendBound(level int) int {
	return minuendBounds[NormalizeLevel(level)]
}

// FactorBand returns the multiply factor / divide divisor band for level.
func FactorBand(level int) Band {
	return factorBands[NormalizeLevel(level)]
}

// MultiplierBand returns the range of the free factor and of quotients.
func MultiplierBand() Band {
	return multiplierBand
}

// Operations returns the operations all-ops may draw from at level.
func Operations(level int) []Operation {
	return slices.Clone(operationsByLevel[NormalizeLevel(level)])
}
