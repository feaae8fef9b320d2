package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/rewards"
	"github.com/abhisek/mathplay/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent plays and stars per game",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		gameID, _ := cmd.Flags().GetString("game")
		if gameID != "" {
			if _, err := catalog.Get(gameID); err != nil {
				return err
			}
		}

		logger, closer, err := newLogger(false)
		if err != nil {
			return err
		}
		defer closer.Close()

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.ResultRepo()
		results, err := repo.QueryPlayResults(ctx, store.QueryOpts{Limit: limit, GameID: gameID})
		if err != nil {
			return fmt.Errorf("query play results: %w", err)
		}
		progress, err := rewards.NewService(repo, logger).Progress(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No games played yet.")
		} else {
			fmt.Fprintf(out, "%-5s  %-16s  %-16s  %-3s  %-7s  %-4s  %-6s  %s\n",
				"ID", "Played", "Game", "Lv", "Score", "Acc", "Time", "Stars")
			fmt.Fprintln(out, strings.Repeat("─", 80))
			for _, r := range results {
				stars := rewards.StarString(r.Stars)
				if !r.Completed {
					stars = "stopped"
				}
				fmt.Fprintf(out, "%-5d  %-16s  %-16s  %-3d  %-7s  %3d%%  %-6s  %s\n",
					r.ID,
					r.Timestamp.Local().Format("2006-01-02 15:04"),
					r.GameID,
					r.Level,
					fmt.Sprintf("%d/%d", r.Correct, r.TotalRounds),
					r.Accuracy,
					fmt.Sprintf("%d:%02d", int(r.Duration.Minutes()), int(r.Duration.Seconds())%60),
					stars,
				)
			}
		}

		if gameID != "" {
			last, err := repo.LatestPlayResult(ctx, gameID)
			switch {
			case errors.Is(err, store.ErrNotFound):
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "\nLast played %s at level %d: %d/%d\n",
					last.Timestamp.Local().Format("2006-01-02 15:04"), last.Level, last.Correct, last.TotalRounds)
			}
		}

		fmt.Fprintf(out, "\nStars: %d\n", progress.TotalStars())
		for _, g := range catalog.All() {
			if gameID != "" && g.ID != gameID {
				continue
			}
			var levels []string
			for _, lv := range g.Levels() {
				if !progress.Unlocked(g.ID, lv) {
					levels = append(levels, fmt.Sprintf("L%d locked", lv))
					continue
				}
				levels = append(levels, fmt.Sprintf("L%d %s", lv, rewards.StarString(progress.Stars(g.ID, lv))))
			}
			fmt.Fprintf(out, "  %-16s %s\n", g.Title, strings.Join(levels, "  "))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 20, "Max number of recent plays to show")
	statsCmd.Flags().String("game", "", "Only show one game")
}
