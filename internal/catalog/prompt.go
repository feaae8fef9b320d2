package catalog

import (
	"fmt"

	"github.com/abhisek/mathplay/internal/problemgen"
)

// PromptFor phrases p in the game's story when the game defines a prompt
// for its operation, falling back to the plain question text.
func (g Game) PromptFor(p problemgen.Problem) string {
	if g.Prompt == "" || !g.promptFits(p.Op) {
		return p.Text()
	}
	return fmt.Sprintf(g.Prompt, p.First, p.Second)
}

// promptFits reports whether the story prompt was written for op. Mixed
// and all-ops games see several operations, so their prompts never apply.
func (g Game) promptFits(op problemgen.Operation) bool {
	switch g.Family {
	case problemgen.FamilyAdd:
		return op == problemgen.OpAdd
	case problemgen.FamilySubtract:
		return op == problemgen.OpSubtract
	case problemgen.FamilyMultiply:
		return op == problemgen.OpMultiply
	case problemgen.FamilyDivide:
		return op == problemgen.OpDivide
	}
	return false
}
