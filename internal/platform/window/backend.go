package window

import "github.com/vovakirdan/greed/internal/registry"

func init() {
	registry.Register("window", func() registry.Backend { return backend{} })
}

// backend plays in a native raylib window.
type backend struct{}

func (backend) Name() string     { return "window" }
func (backend) Title() string    { return "native raylib window" }
func (backend) InTerminal() bool { return false }

func (backend) Play(s registry.Session) (int, error) {
	w := New(s.Config.Window)
	return s.RunDirector(w, w)
}
