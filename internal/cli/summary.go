package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <player-uuid>",
		Short: "Show a player's leagues with member and played counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uuid := args[0]

			var result PlayerLeagues

			if err := client.Get(fmt.Sprintf("/api/v1/players/%s/leagues", uuid), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
