package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/greed/internal/config"
	"github.com/vovakirdan/greed/internal/registry"
	"github.com/vovakirdan/greed/internal/storage"
)

var (
	flagBackend string
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Greed. The game runs until you quit; the final score
is saved to the scores database.

Controls:
  Arrows/WASD  - Move the robot one cell
  Q/Esc        - Quit
  Ctrl+S       - Save a screenshot (tui backend)

Backends:
  tui       - Bubble Tea in the terminal (default)
  terminal  - tcell in the terminal
  window    - Native raylib window (honors fullscreen)

Examples:
  greed play
  greed play --backend terminal --seed 42
  greed play --backend window --player alice
  greed play --config ./my-greed.yaml --log greed.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Display backend: tui, terminal, window")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name recorded with the score (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) {
	backend, err := registry.Create(flagBackend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q\n", flagBackend)
		fmt.Fprintln(os.Stderr, "Available backends:")
		for _, b := range registry.List() {
			fmt.Fprintf(os.Stderr, "  %-10s %s\n", b.Name, b.Title)
		}
		os.Exit(1)
	}

	cfg := loadConfig()

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	if backend.InTerminal() {
		warnSmallTerminal(cfg.Window)
	}

	score, runErr := backend.Play(registry.Session{
		Config: cfg,
		Store:  store,
		Player: player,
		Seed:   flagSeed,
		Logger: logger,
	})

	// Close store and log before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Printf("Final score: %d\n", score)
}

// warnSmallTerminal warns when the terminal cannot show the whole field.
func warnSmallTerminal(w config.WindowConfig) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	// One extra row for the status line
	if width < w.Columns() || height < w.Rows()+1 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the field needs %dx%d\n",
			width, height, w.Columns(), w.Rows()+1)
	}
}
