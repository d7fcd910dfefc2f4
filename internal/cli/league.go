package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLeagueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "league",
		Short: "League management commands",
	}

	cmd.AddCommand(newLeagueCreateCmd())
	cmd.AddCommand(newLeagueGetCmd())
	cmd.AddCommand(newLeagueJoinCmd())

	return cmd
}

func newLeagueCreateCmd() *cobra.Command {
	var playerUUID string
	var displayName string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new league",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": args[0]}
			if playerUUID != "" {
				req["player_uuid"] = playerUUID
				req["display_name"] = displayName
			}

			var result League

			if err := client.Post("/api/v1/leagues", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerUUID, "player", "", "Creator player UUID (joins the new league)")
	cmd.Flags().StringVar(&displayName, "name-as", "", "Creator display name")

	return cmd
}

func newLeagueGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get league details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result League

			if err := client.Get(fmt.Sprintf("/api/v1/leagues/%s", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLeagueJoinCmd() *cobra.Command {
	var playerUUID string
	var displayName string

	cmd := &cobra.Command{
		Use:   "join <id>",
		Short: "Join a league",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			req := map[string]string{
				"player_uuid":  playerUUID,
				"display_name": displayName,
			}

			var result Player

			if err := client.Post(fmt.Sprintf("/api/v1/leagues/%s/join", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerUUID, "player", "", "Player UUID (required)")
	cmd.Flags().StringVar(&displayName, "name-as", "", "Display name (required)")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("name-as")

	return cmd
}
