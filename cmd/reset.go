package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathplay/internal/logging"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all play history and stars",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()

		if !yes {
			fmt.Fprint(out, "Delete all play history and stars? [y/N] ")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if !scanner.Scan() {
				fmt.Fprintln(out, "\nAborted.")
				return nil
			}
			switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
			case "y", "yes":
			default:
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		logger, closer, err := newLogger(false)
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

		n, err := st.ResultRepo().Reset(ctx)
		if err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		logging.FromContext(ctx).Info("play history reset", "db", cfg.DBPath, "results", n)
		fmt.Fprintf(out, "Deleted %d play results.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
