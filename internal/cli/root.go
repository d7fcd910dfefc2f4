package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "leaguectl",
		Short: "CLI tool for the daily puzzle league API",
		Long: `leaguectl is a CLI tool for interacting with the league scoring JSON API.

It supports league management, score submission, leaderboards, player
summaries, and puzzle content import.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = NewClient(cfg.ServerURL)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: LEAGUES_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newLeagueCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newPuzzleCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
