package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathplay/internal/app"
	"github.com/abhisek/mathplay/internal/logging"
	"github.com/abhisek/mathplay/internal/problemgen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, start *app.Start) error {
	logger, closer, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()
	ctx := logging.WithContext(cmd.Context(), logger)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	logging.FromContext(ctx).Info("starting", "db", cfg.DBPath, "seed", cfg.Seed)

	return app.Run(app.Deps{
		Generator:     newGenerator(cfg.Seed),
		Results:       st.ResultRepo(),
		Logger:        logger,
		FeedbackDelay: cfg.FeedbackDelay,
		Rounds:        roundsFlag(cmd),
	}, start)
}

// newGenerator returns a seeded generator, or a random one for seed 0.
func newGenerator(seed uint64) *problemgen.Generator {
	if seed == 0 {
		return problemgen.New()
	}
	return problemgen.New(problemgen.WithSeed(seed))
}

func roundsFlag(cmd *cobra.Command) int {
	if f := cmd.Flags().Lookup("rounds"); f != nil {
		n, _ := cmd.Flags().GetInt("rounds")
		return n
	}
	return 0
}
