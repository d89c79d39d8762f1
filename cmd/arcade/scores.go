package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresClear  bool
	flagScoresLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores for the specified game.

With --player, lists that player's most recent runs across all games.
Without a game, shows a summary for every game played.

Examples:
  arcade scores bomber
  arcade scores maze --limit 20
  arcade scores --player ann
  arcade scores
  arcade scores collision --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show recent runs for this player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresPlayer != "":
		err = printPlayerScores(store, flagScoresPlayer)
	case len(args) == 0:
		err = printSummary(store)
	default:
		err = printGameScores(store, args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printGameScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %s\n", "Rank", "Player", "Level", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %s\n", "----", "------", "-----", "-----", "----")
	for i, entry := range scores {
		level := "-"
		if entry.Level > 0 {
			level = fmt.Sprintf("%d", entry.Level)
		}
		fmt.Printf("  %-4d  %-12s  %-5s  %-8d  %s\n",
			i+1, entry.Player, level, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printPlayerScores(store *storage.Store, player string) error {
	scores, err := store.PlayerScores(player, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent runs - %s\n", player)
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-10s  %-5s  %-8s  %s\n", "Game", "Level", "Score", "Date")
	fmt.Printf("  %-10s  %-5s  %-8s  %s\n", "----", "-----", "-----", "----")
	for _, entry := range scores {
		fmt.Printf("  %-10s  %-5d  %-8d  %s\n",
			entry.GameID, entry.Level, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Println("Scores summary")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-8s  %-10s  %s\n", "Game", "Games", "Best", "Best level", "Last played")
	fmt.Printf("  %-10s  %-6s  %-8s  %-10s  %s\n", "----", "-----", "----", "----------", "-----------")
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-10s  %-6d  %-8s  %-10s  %s\n", g.ID, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-8d  %-10d  %s\n",
			g.ID, s.GamesCount, s.HighScore, s.BestLevel, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
