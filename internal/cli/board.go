package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newBoardCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "board <league-id>",
		Short: "Show a league's leaderboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			path := fmt.Sprintf("/api/v1/leagues/%s/leaderboard", id)
			if date != "" {
				path += "?date=" + url.QueryEscape(date)
			}

			var result Leaderboard

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Puzzle date, YYYY-MM-DD (default: today)")

	return cmd
}
