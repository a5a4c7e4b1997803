package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/greed/internal/casting"
	"github.com/vovakirdan/greed/internal/config"
	"github.com/vovakirdan/greed/internal/directing"
	"github.com/vovakirdan/greed/internal/storage"
)

// Options configures a game model.
type Options struct {
	// Store receives the final score. Nil disables saving.
	Store *storage.Store

	// Player is recorded with the score.
	Player string

	// Seed for mineral spawning. Zero seeds from the clock.
	Seed int64

	// Logger receives game events. Nil discards them.
	Logger *log.Logger
}

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Model is the Bubble Tea model for playing Greed.
type Model struct {
	director  *directing.Director
	cast      *casting.Cast
	video     *FrameVideo
	keyboard  *FrameKeyboard
	keyMapper *KeyMapper
	store     *storage.Store
	logger    *log.Logger
	config    config.GreedConfig
	player    string
	sessionID string
	width     int
	height    int
	quitting  bool
	record    *record
	err       error
}

// record is shared by every copy of a Model so the score is saved once,
// whether the game ends from Update or after the program exits.
type record struct {
	mu    sync.Mutex
	saved bool
}

// NewModel creates a new Bubble Tea model with a fresh cast.
func NewModel(cfg config.GreedConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	video := NewFrameVideo(cfg.Window)
	keyboard := NewFrameKeyboard(cfg.Window.CellSize)
	director := directing.NewDirector(keyboard, video, cfg,
		directing.WithSeed(opts.Seed),
		directing.WithLogger(logger),
	)

	return Model{
		director:  director,
		cast:      directing.NewCast(cfg),
		video:     video,
		keyboard:  keyboard,
		keyMapper: NewKeyMapper(),
		store:     opts.Store,
		logger:    logger,
		config:    cfg,
		player:    opts.Player,
		sessionID: storage.NewSessionID(),
		record:    &record{},
	}
}

// Init opens the window and starts the tick loop.
func (m Model) Init() tea.Cmd {
	// video is shared by pointer so the open state survives the value receiver
	//nolint:errcheck // FrameVideo never fails to open
	m.video.OpenWindow()
	return tickCmd(m.config.Window.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	dir, quit := m.keyMapper.MapKey(msg)
	if quit {
		return m.stop(nil), tea.Quit
	}
	m.keyboard.Press(dir)
	return m, nil
}

// handleTick plays one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if !m.video.IsWindowOpen() {
		return m.stop(nil), tea.Quit
	}

	if err := m.director.PlayFrame(m.cast); err != nil {
		return m.stop(err), tea.Quit
	}

	return m, tickCmd(m.config.Window.FrameRate)
}

// stop closes the window and saves the final score once.
func (m Model) stop(err error) Model {
	m.video.CloseWindow()
	m.quitting = true
	m.err = err

	if err != nil {
		m.logger.Error("game stopped", "error", err)
	} else {
		m.logger.Info("game over", "score", m.Score(), "frames", m.Frames())
	}

	m.Finish()
	return m
}

// Finish saves the score reached so far. Only the first call on a model
// or any of its copies writes to the store.
func (m Model) Finish() {
	if m.store == nil || m.record == nil || m.director == nil {
		return
	}

	m.record.mu.Lock()
	defer m.record.mu.Unlock()
	if m.record.saved {
		return
	}
	m.record.saved = true

	_, err := m.store.SaveScore(storage.ScoreEntry{
		SessionID: m.sessionID,
		Player:    m.player,
		Score:     m.Score(),
		Frames:    m.Frames(),
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current frame as plain text.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".greed", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("greed_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.video.Screen().String()), 0o600)
}

// View renders the last flushed frame with a status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := footerStyle.Render(fmt.Sprintf("%s  arrows/wasd move  q quit  ctrl+s screenshot", m.config.Window.Caption))
	content := lipgloss.JoinVertical(lipgloss.Left, m.video.Frame(), footer)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Score returns the current points.
func (m Model) Score() int {
	if m.director == nil {
		return 0
	}
	return m.director.Score().Points()
}

// Frames returns the number of frames played.
func (m Model) Frames() int {
	if m.director == nil {
		return 0
	}
	return m.director.Frames()
}

// SessionID returns the identifier the score is saved under.
func (m Model) SessionID() string {
	return m.sessionID
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until the game ends.
// It returns the final model so callers can report the score.
func Run(cfg config.GreedConfig, opts Options) (Model, error) {
	p := tea.NewProgram(
		NewModel(cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	return finishProgram(p)
}

// finishProgram runs p to completion and saves the final score, covering
// programs stopped by Quit or Kill without a quit key reaching Update.
func finishProgram(p *tea.Program) (Model, error) {
	final, err := p.Run()
	m, ok := final.(Model)
	if !ok {
		if err != nil {
			return Model{}, err
		}
		return Model{}, fmt.Errorf("tui: unexpected model type %T", final)
	}

	m.Finish()
	if err != nil {
		return m, err
	}
	if m.err != nil {
		return m, m.err
	}
	return m, nil
}
