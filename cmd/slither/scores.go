package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/slithergame/slither/internal/config"
	"github.com/slithergame/slither/internal/game"
	"github.com/slithergame/slither/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the best score recorded for every option combination that
has been played.

Examples:
  slither scores
  slither scores --db ./slither.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Files.DB = flagDBPath
	}

	store, err := storage.Open(cfg.Files.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.LoadScores()
	if err != nil {
		return err
	}

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet. Run 'slither' to play.")
		return nil
	}

	type row struct {
		opts  game.Options
		score int
	}
	rows := make([]row, 0, len(scores))
	for opts, score := range scores {
		rows = append(rows, row{opts, score})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].score > rows[j].score })

	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}

	w := os.Stdout
	fmt.Fprintf(w, "  %-6s  %-8s  %-12s  %-11s  %-8s\n", "Score", "Size", "Wraparound", "Obstacles", "Fruits")
	fmt.Fprintf(w, "  %-6s  %-8s  %-12s  %-11s  %-8s\n", "-----", "----", "----------", "---------", "------")
	for _, r := range rows {
		fmt.Fprintf(w, "  %-6d  %-8s  %-12s  %-11s  %-8d\n",
			r.score, r.opts.Size, onOff(r.opts.Wraparound), onOff(r.opts.Obstacles), r.opts.Fruits)
	}
	return nil
}
