package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ghost-catcher/internal/config"
	"github.com/vovakirdan/ghost-catcher/internal/core"
	"github.com/vovakirdan/ghost-catcher/internal/games/ghostcatch"
	"github.com/vovakirdan/ghost-catcher/internal/platform/tui"
	"github.com/vovakirdan/ghost-catcher/internal/registry"
	"github.com/vovakirdan/ghost-catcher/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Ghost Catcher",
	Long: `Start a Ghost Catcher session in this terminal.

Controls:
  Mouse click  - Tap a sprite
  Enter/Space  - Start (and play again after time's up)
  R            - Restart the round
  C            - Copy the last round summary
  Ctrl+S       - Save a screenshot
  Q/Esc        - Quit

Without --difficulty a picker is shown first.

Difficulty options:
  easy   - Slower spawns
  normal - Default pacing
  hard   - Starts three ramp steps in
  fixed  - No ramp during the round

Examples:
  ghostcatcher play
  ghostcatcher play --difficulty easy
  ghostcatcher play --config ./my-ghostcatch.yaml
  ghostcatcher play --seed 42 --db ./rounds.db`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file while playing (default ~/.ghostcatcher/ghostcatcher.log)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger("ghostcatcher")

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	// Fail before the alt screen takes over the terminal.
	if _, err := config.LoadGhostCatch(flagConfig); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if flagDifficulty == "" {
		chosen, updatedCfg, ok, selErr := tui.RunDifficultySelector(cfg)
		if selErr != nil {
			return selErr
		}
		if !ok {
			return nil
		}
		preset, cfg = chosen, updatedCfg
	}

	ghostcatch.SetConfigPath(flagConfig)
	ghostcatch.SetDifficultyPreset(preset)

	game, err := registry.Create(ghostcatch.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			// The game still works without the journal.
			logger.Warn("could not open round journal", "path", flagDBPath, "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	// The game owns the terminal from here on, so logs go to a file.
	logPath := flagLogFile
	if logPath == "" {
		logPath = tui.DefaultLogPath()
	}
	gameLogger, logFile, err := tui.OpenLogFile(logPath, logLevel())
	if err != nil {
		logger.Warn("playing without a log file", "error", err)
		gameLogger = nil
	} else {
		defer logFile.Close()
	}

	if gameLogger != nil {
		gameLogger.Debug("starting", "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH), "fps", flagFPS, "difficulty", preset)
	}
	if err := tui.Run(game, cfg, tui.Options{
		Store:     store,
		Logger:    gameLogger,
		Clipboard: true,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
