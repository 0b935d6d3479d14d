package main

import "github.com/spf13/cobra"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game immediately, skipping the menu",
	Long: `Start a game right away with the last-used options (or the
configured defaults when nothing is stored).

Examples:
  slither play
  slither play --config ./config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return launch(true)
	},
}
