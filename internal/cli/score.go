package cli

import (
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score submission commands",
	}

	cmd.AddCommand(newScoreSubmitCmd())

	return cmd
}

func newScoreSubmitCmd() *cobra.Command {
	var playerUUID string
	var date string
	var mistakes int

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a daily score to all of a player's leagues",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"player_uuid": playerUUID,
				"date":        date,
				"mistakes":    mistakes,
			}

			var result SubmitScoreResult

			if err := client.Post("/api/v1/scores", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerUUID, "player", "", "Player UUID (required)")
	cmd.Flags().StringVar(&date, "date", "", "Puzzle date, YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&mistakes, "mistakes", 0, "Mistake count (required)")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("mistakes")

	return cmd
}
