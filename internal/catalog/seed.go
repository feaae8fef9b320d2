package catalog

import "github.com/abhisek/mathplay/internal/problemgen"

// games is the built-in mini-game list in display order.
var games = []Game{
	{
		ID:          "apple-orchard",
		Title:       "Apple Orchard",
		Description: "Fill the basket by adding apples from two trees.",
		Family:      problemgen.FamilyAdd,
		Rounds:      8,
		Prompt:      "One tree drops %d apples and another drops %d. How many apples in the basket?",
	},
	{
		ID:          "bubble-pop",
		Title:       "Bubble Pop",
		Description: "Pop the bubble with the right sum.",
		Family:      problemgen.FamilyAdd,
		Rounds:      10,
	},
	{
		ID:          "rocket-countdown",
		Title:       "Rocket Countdown",
		Description: "Count down to launch by taking away.",
		Family:      problemgen.FamilySubtract,
		Rounds:      8,
		Prompt:      "The countdown is at %d. It drops by %d. Where is it now?",
	},
	{
		ID:          "cookie-jar",
		Title:       "Cookie Jar",
		Description: "Work out how many cookies are left in the jar.",
		Family:      problemgen.FamilySubtract,
		Rounds:      8,
		Prompt:      "The jar has %d cookies and you eat %d. How many are left?",
	},
	{
		ID:          "garden-rows",
		Title:       "Garden Rows",
		Description: "Plant equal rows of flowers and count them all.",
		Family:      problemgen.FamilyMultiply,
		Rounds:      8,
	},
	{
		ID:          "toy-factory",
		Title:       "Toy Factory",
		Description: "Pack toys into boxes and count the total.",
		Family:      problemgen.FamilyMultiply,
		Rounds:      10,
	},
	{
		ID:          "pizza-party",
		Title:       "Pizza Party",
		Description: "Share pizza slices fairly between friends.",
		Family:      problemgen.FamilyDivide,
		Rounds:      8,
		Prompt:      "%d slices are shared by %d friends. How many slices each?",
	},
	{
		ID:          "treasure-split",
		Title:       "Treasure Split",
		Description: "Split the pirate gold into equal piles.",
		Family:      problemgen.FamilyDivide,
		Rounds:      8,
	},
	{
		ID:          "market-day",
		Title:       "Market Day",
		Description: "Buy and sell at the market, adding and taking away.",
		Family:      problemgen.FamilyMixed,
		Rounds:      10,
	},
	{
		ID:          "train-station",
		Title:       "Train Station",
		Description: "Passengers get on and off the train.",
		Family:      problemgen.FamilyMixed,
		Rounds:      8,
	},
	{
		ID:          "math-maze",
		Title:       "Math Maze",
		Description: "Solve every kind of problem to find the exit.",
		Family:      problemgen.FamilyAllOps,
		Rounds:      10,
	},
	{
		ID:          "number-castle",
		Title:       "Number Castle",
		Description: "Storm the castle with all four operations.",
		Family:      problemgen.FamilyAllOps,
		Rounds:      12,
	},
}

func init() {
	c = buildCatalog(games)
}
