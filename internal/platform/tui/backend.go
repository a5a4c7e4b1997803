package tui

import "github.com/vovakirdan/greed/internal/registry"

func init() {
	registry.Register("tui", func() registry.Backend { return backend{} })
}

// backend plays in a Bubble Tea program on the current terminal.
type backend struct{}

func (backend) Name() string     { return "tui" }
func (backend) Title() string    { return "Bubble Tea in the terminal" }
func (backend) InTerminal() bool { return true }

func (backend) Play(s registry.Session) (int, error) {
	m, err := Run(s.Config, Options{
		Store:  s.Store,
		Player: s.Player,
		Seed:   s.Seed,
		Logger: s.Logger,
	})
	return m.Score(), err
}
