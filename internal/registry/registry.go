// Package registry provides a global registry for display backends.
// Backends register themselves in init() functions, allowing the command
// line to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/greed/internal/config"
	"github.com/vovakirdan/greed/internal/directing"
	"github.com/vovakirdan/greed/internal/storage"
)

// Backend runs one game of Greed on some display.
type Backend interface {
	// Name returns the identifier used by --backend (e.g., "tui", "window").
	Name() string

	// Title returns a short description for help output.
	Title() string

	// InTerminal reports whether the backend draws in the terminal,
	// so the caller can check the terminal size first.
	InTerminal() bool

	// Play runs a game until the player quits and returns the final score.
	Play(s Session) (int, error)
}

// Session carries what every backend needs to run one game.
type Session struct {
	Config config.GreedConfig
	Store  *storage.Store // Nil disables saving
	Player string
	Seed   int64
	Logger *log.Logger // Nil discards events
}

// logger returns the session logger or a discarding one.
func (s Session) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// RunDirector plays a game on a blocking backend with StartGame and records
// the final score. A store failure is logged and does not fail the game.
func (s Session) RunDirector(keyboard directing.KeyboardService, video directing.VideoService) (int, error) {
	logger := s.logger()
	director := directing.NewDirector(keyboard, video, s.Config,
		directing.WithSeed(s.Seed),
		directing.WithLogger(logger),
	)
	runErr := director.StartGame(directing.NewCast(s.Config))

	points := director.Score().Points()
	if s.Store != nil {
		_, err := s.Store.SaveScore(storage.ScoreEntry{
			Player: s.Player,
			Score:  points,
			Frames: director.Frames(),
		})
		if err != nil {
			logger.Warn("could not save score", "error", err)
		}
	}
	return points, runErr
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name       string
	Title      string
	InTerminal bool
}

// Factory is a function that creates a new instance of a backend.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]BackendInfo)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f

	// Get metadata by creating a temporary instance
	b := f()
	infos[name] = BackendInfo{
		Name:       name,
		Title:      b.Title(),
		InTerminal: b.InTerminal(),
	}
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new backend by its name.
// Returns an error if the name is not registered.
func Create(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return f(), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
