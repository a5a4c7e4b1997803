package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/greed/internal/platform/tui"
	"github.com/vovakirdan/greed/internal/storage"
)

var (
	flagLimit int
	flagCSV   string
	flagStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best sessions recorded in the scores database.

In a terminal the scores open in an interactive table; otherwise they are
printed as plain text.

Examples:
  greed scores
  greed scores --limit 25
  greed scores --stats
  greed scores --csv scores.csv
  greed scores --csv - | column -s, -t`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().StringVar(&flagCSV, "csv", "", "Export every session as CSV to this path (- for stdout)")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Print score statistics over every session")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	runErr := showScores(store)
	store.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func showScores(store *storage.Store) error {
	switch {
	case flagCSV != "":
		return exportScores(store, flagCSV)
	case flagStats:
		return printStats(store)
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return tui.RunScoreboard(store, flagLimit, w, h)
	}
	return printScores(store)
}

// exportScores writes every session as CSV to path, or stdout for "-".
func exportScores(store *storage.Store, path string) error {
	entries, err := store.AllScores()
	if err != nil {
		return err
	}

	if path == "-" {
		return storage.WriteCSV(os.Stdout, entries)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if err := storage.WriteCSV(f, entries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Exported %d sessions to %s\n", len(entries), path)
	return nil
}

func printStats(store *storage.Store) error {
	entries, err := store.AllScores()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}
	fmt.Println(tui.SummaryLine(storage.Summarize(entries)))
	return nil
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Greed")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'greed play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Frames", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-6s  %s\n", "----", "------", "-----", "------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-6d  %-6d  %s\n", i+1, entry.Player, entry.Score, entry.Frames, dateStr)
	}

	// Show high score
	fmt.Println()
	if best, ok, err := store.HighScore(); err == nil && ok {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
