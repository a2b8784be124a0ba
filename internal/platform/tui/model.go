package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pixelhop/runner-arcade/internal/config"
	"github.com/pixelhop/runner-arcade/internal/engine"
	"github.com/pixelhop/runner-arcade/internal/input"
	"github.com/pixelhop/runner-arcade/internal/storage"
)

// runStore adapts the sqlite store to the engine's high-score interface,
// enriching the engine's bare score save with full run details.
type runStore struct {
	store *storage.Store
	meta  func() storage.Run
}

func (r *runStore) SaveScore(score int) error {
	run := r.meta()
	run.Score = score
	_, err := r.store.RecordRun(run)
	return err
}

func (r *runStore) HighScore() (int, error) {
	return r.store.HighScore()
}

func (r *runStore) ResetHighScore() error {
	return r.store.ResetHighScore()
}

// Model is the Bubble Tea model running one engine session.
type Model struct {
	engine   *engine.Engine
	keys     *KeyMapper
	preset   config.Preset
	alpha    float64
	quitting bool
}

// NewModel creates a model for a width×height terminal. store may be nil;
// scores then live only for the session. seed 0 means a time-based seed.
func NewModel(store *storage.Store, cfg config.RunnerConfig, preset config.Preset, seed int64, width, height int, logger *log.Logger) Model {
	cfg.Apply(preset)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ec := cfg.Engine(width, height)
	ec.Seed = seed

	var hs engine.HighScoreStore
	var rs *runStore
	if store != nil {
		rs = &runStore{store: store}
		hs = rs
	}

	eng := engine.New(ec, logger, hs)
	if rs != nil {
		rs.meta = func() storage.Run {
			return storage.Run{
				Distance: eng.Distance(),
				Duration: int(eng.Elapsed()),
				Preset:   string(preset),
			}
		}
	}
	eng.Initialize()

	return Model{
		engine: eng,
		keys:   NewKeyMapper(),
		preset: preset,
	}
}

// Init starts the engine and the display frame loop.
func (m Model) Init() tea.Cmd {
	m.engine.Start()
	return frameCmd()
}

// Update handles messages and advances the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.engine.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		m.alpha = m.engine.Tick(time.Time(msg))
		return m, frameCmd()
	}

	return m, nil
}

// handleKey routes keyboard input into the engine's trigger path.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, special := m.keys.MapKey(msg)

	switch special {
	case SpecialQuit:
		m.quitting = true
		m.engine.Destroy()
		return m, tea.Quit

	case SpecialRestart:
		if m.engine.GameOver() {
			m.engine.Restart()
		}
		return m, nil

	case SpecialMute:
		m.engine.Audio().SetMuted(!m.engine.Audio().Muted())
		return m, nil

	case SpecialScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	if action != input.ActionNone {
		if !m.engine.Running() && !m.engine.GameOver() && action == input.ActionJump {
			// Jump doubles as "press any key to start" on the idle screen
			m.engine.Start()
			return m, nil
		}
		m.engine.Input().Trigger(action)
	}

	return m, nil
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	screen := m.engine.Render(m.alpha)
	if screen == nil {
		return
	}

	dir := filepath.Join(os.Getenv("HOME"), ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(screen.String()), 0o600)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	screen := m.engine.Render(m.alpha)
	if screen == nil {
		return ""
	}
	return RenderScreen(screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(store *storage.Store, cfg config.RunnerConfig, preset config.Preset, seed int64, width, height int, logger *log.Logger) error {
	model := NewModel(store, cfg, preset, seed, width, height, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
