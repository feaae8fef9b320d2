package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathplay/internal/problemgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a generated problem batch (no database)",
	Long: `Generate a batch of problems for one operation family and print them.

This is a stateless developer tool: no database, no stars, no events.
Useful for eyeballing difficulty bands and distractors. With --check every
problem is run through the validators and the command fails on the first
invalid one.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("family", "add", "Operation family: add, subtract, multiply, divide, mixed, all-ops")
	previewCmd.Flags().Int("level", problemgen.MinLevel, "Difficulty level")
	previewCmd.Flags().Int("count", 8, "Number of problems to generate")
	previewCmd.Flags().Uint64("seed", 0, "Seed for reproducible output (overrides MATHPLAY_SEED)")
	previewCmd.Flags().Bool("check", false, "Validate every problem")
}

func runPreview(cmd *cobra.Command, args []string) error {
	familyVal, _ := cmd.Flags().GetString("family")
	level, _ := cmd.Flags().GetInt("level")
	count, _ := cmd.Flags().GetInt("count")
	check, _ := cmd.Flags().GetBool("check")
	seed := cfg.Seed
	if v, _ := cmd.Flags().GetUint64("seed"); v != 0 {
		seed = v
	}

	family, err := problemgen.ParseFamily(familyVal)
	if err != nil {
		return err
	}

	problems := newGenerator(seed).Generate(family, level, count)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s, level %d, %d problems\n", family.DisplayName(), problemgen.NormalizeLevel(level), len(problems))
	fmt.Fprintln(out, strings.Repeat("─", 56))
	for i, p := range problems {
		choices := make([]string, len(p.Choices))
		for j, c := range p.Choices {
			choices[j] = fmt.Sprintf("%3d", c)
			if j == p.CorrectIndex() {
				choices[j] = fmt.Sprintf("%3d*", c)
			}
		}
		line := fmt.Sprintf("%3d. %-12s = %-4d  choices: %s", i+1, p.Expression(), p.Answer, strings.Join(choices, " "))
		if p.Hint != nil {
			line += fmt.Sprintf("  (%d×%d)", p.Hint.GroupCount, p.Hint.ItemsPerGroup)
		}
		fmt.Fprintln(out, line)
	}

	if !check {
		return nil
	}
	if idx, err := problemgen.ValidateBatch(problems); err != nil {
		return fmt.Errorf("problem %d (%s): %w", idx+1, problems[idx].Expression(), err)
	}
	fmt.Fprintln(out, "\nAll problems valid.")
	return nil
}
