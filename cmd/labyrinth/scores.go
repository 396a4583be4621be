package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-labyrinth/internal/registry"
	"github.com/vovakirdan/tui-labyrinth/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for a game, a summary for every game when no
game is given, or the recent runs of one player with --player.

Examples:
  labyrinth scores
  labyrinth scores maze
  labyrinth scores chase --limit 20
  labyrinth scores --player ana
  labyrinth scores maze --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show runs of a single player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresPlayer != "" {
		entries, err := store.PlayerScores(flagScoresPlayer, flagScoresLimit)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Runs - %s\n\n", flagScoresPlayer)
		printEntries(out, entries, true)
		return nil
	}

	if len(args) == 0 {
		return printSummary(out, store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'labyrinth list' to see available games)", gameID)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s\n", gameID)
		return nil
	}

	entries, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", registry.MustCreate(gameID).Title())
	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'labyrinth play %s' to set the first high score!\n", gameID)
		return nil
	}
	printEntries(out, entries, false)
	return nil
}

func printEntries(out io.Writer, entries []storage.ScoreEntry, withGame bool) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-12s  %7s  %5s  %6s  %s\n", "Rank", "Game", "Player", "Score", "Moves", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-12s  %7s  %5s  %6s  %s\n", "----", "----", "------", "-----", "-----", "----", "----")
	for i, e := range entries {
		game := e.GameID
		if !withGame {
			game = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-8s  %-12s  %7d  %5d  %3d:%02d  %s\n",
			i+1, game, e.Player, e.Score, e.Moves,
			e.DurationSecs/60, e.DurationSecs%60,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printSummary(out io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-8s  %5s  %7s  %7s  %5s  %s\n", "Game", "Runs", "Best", "Avg", "Moves", "Last played")
	for _, id := range ids {
		s := stats[id]
		fmt.Fprintf(out, "  %-8s  %5d  %7d  %7.1f  %5d  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.BestMoves,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
