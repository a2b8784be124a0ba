package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pixelhop/runner-arcade/internal/config"
	"github.com/pixelhop/runner-arcade/internal/platform/tui"
	"github.com/pixelhop/runner-arcade/internal/storage"
)

var (
	flagPreset   string
	flagSeed     int64
	flagShowFPS  bool
	flagHitboxes bool
	flagMuted    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  M          - Mute/unmute audio
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Preset options:
  easy   - Fewer obstacles, lower top speed
  normal - The standard run
  hard   - Dense spawns, higher top speed
  fixed  - No progression, constant pace

Examples:
  runner play
  runner play --preset easy
  runner play --preset hard --show-fps
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "normal", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Show the frame rate in the HUD")
	playCmd.Flags().BoolVar(&flagHitboxes, "hitboxes", false, "Outline entity hitboxes (debug)")
	playCmd.Flags().BoolVar(&flagMuted, "muted", false, "Start with audio disabled")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	preset := config.ParsePreset(flagPreset)

	if flagShowFPS {
		cfg.Render.ShowFPS = true
	}
	if flagHitboxes {
		cfg.Render.ShowHitboxes = true
	}
	if flagMuted {
		cfg.Audio.Enabled = false
	}

	// Get terminal size for the play field
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger := newFileLogger()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	runErr := tui.Run(store, cfg, preset, flagSeed, width, height, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newFileLogger logs to ~/.runner/runner.log. Writing to stderr would
// tear the alternate screen, so without a home directory logs are dropped.
func newFileLogger() *log.Logger {
	var w io.Writer = io.Discard
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".runner")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			if f, err := os.OpenFile(filepath.Join(dir, "runner.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				w = f
			}
		}
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
}
