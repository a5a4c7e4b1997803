package terminal

import "github.com/vovakirdan/greed/internal/registry"

func init() {
	registry.Register("terminal", func() registry.Backend { return backend{} })
}

// backend plays on a tcell screen with the Director's own loop.
type backend struct{}

func (backend) Name() string     { return "terminal" }
func (backend) Title() string    { return "tcell in the terminal" }
func (backend) InTerminal() bool { return true }

func (backend) Play(s registry.Session) (int, error) {
	t, err := New(s.Config.Window)
	if err != nil {
		return 0, err
	}
	return s.RunDirector(t, t)
}
