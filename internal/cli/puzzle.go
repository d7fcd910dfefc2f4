package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPuzzleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Puzzle content commands",
	}

	cmd.AddCommand(newPuzzleGetCmd())
	cmd.AddCommand(newPuzzleImportCmd())

	return cmd
}

func newPuzzleGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <date>",
		Short: "Get the puzzle for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]

			var result Puzzle

			if err := client.Get(fmt.Sprintf("/api/v1/puzzles/%s", date), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPuzzleImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import puzzles from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer func() { _ = f.Close() }()

			var result ImportResult

			if err := client.PostRaw("/api/v1/puzzles/import", "text/csv", f, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
