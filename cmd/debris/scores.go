package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-debris/internal/platform/tui"
	"github.com/vovakirdan/space-debris/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresTUI    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, latest year reached first.

Examples:
  debris scores
  debris scores --limit 25
  debris scores --player ada
  debris scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show the runs of one player")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the runs interactively")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := terminalSize()
		player := flagScoresPlayer
		if player == "" {
			player = playerName()
		}
		if _, err := tui.RunScoreboard(store, player, width, height); err != nil {
			store.Close()
			fatal("%v", err)
		}
		return
	}

	var runs []storage.Run
	if flagScoresPlayer != "" {
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		store.Close()
		fatal("retrieving runs: %v", err)
	}

	fmt.Println("High Scores - Space Debris")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'debris play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %-9s  %s\n", "Rank", "Player", "Year", "Years", "Destroyed", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %-9s  %s\n", "----", "------", "----", "-----", "---------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-6d  %-5d  %-9d  %s\n",
			i+1, r.Player, r.YearReached, r.YearsSurvived(), r.Destroyed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if year, err := store.HighYear(); err == nil {
		fmt.Fprintf(os.Stdout, "Best: reached %d\n", year)
	}
}
