package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memoris/internal/audio"
	"github.com/vovakirdan/tui-memoris/internal/config"
	"github.com/vovakirdan/tui-memoris/internal/core"
	"github.com/vovakirdan/tui-memoris/internal/game"
	"github.com/vovakirdan/tui-memoris/internal/platform/tui"
	"github.com/vovakirdan/tui-memoris/internal/series"
	"github.com/vovakirdan/tui-memoris/internal/storage"
)

var (
	flagLevel int
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play [level|serie]",
	Short: "Play a level file or a serie",
	Long: `Play a single .level file, a serie directory, or a serie installed under
the series root. Without an argument the default serie is played.

Controls:
  Arrows/WASD/HJKL - Move
  P/Esc            - Pause
  R                - Restart the level (lives are reset)
  Q/Ctrl+C         - Quit

Examples:
  memoris play
  memoris play tutorial
  memoris play ./levels/tutorial --level 3
  memoris play ./custom.level --preset easy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level, 1-based (0 = choose)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// resolveSerie finds what arg names: a path on disk first, then a serie
// under the configured root.
func resolveSerie(arg string, cfg config.GameplayConfig) (*series.Serie, error) {
	if arg == "" {
		arg = cfg.DefaultSerie
	} else if _, err := os.Stat(arg); err == nil {
		return series.Open(arg)
	}
	loader := series.Loader{Root: config.ExpandHome(cfg.SeriesRoot)}
	return loader.Find(arg)
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	serie, err := resolveSerie(arg, cfg.Gameplay)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open records database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()

	start := flagLevel - 1
	if flagLevel == 0 {
		start = 0
		if serie.Count() > 1 {
			start, err = tui.RunPicker(serie, store, width, height)
			if err != nil {
				return err
			}
			if start < 0 {
				return nil
			}
		}
	}
	if start < 0 || start >= serie.Count() {
		return fmt.Errorf("level %d out of range 1..%d", flagLevel, serie.Count())
	}

	sounds := openAudio(cfg.Audio)
	if m, ok := sounds.(*audio.Manager); ok {
		defer m.Close()
	}

	g, err := game.New(serie, cfg.Gameplay, sounds, start)
	if err != nil {
		return err
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.FPS,
	}
	return tui.Run(g, store, rc, cfg.Display.ShowHelp, logger)
}

// openAudio returns the speaker when sound is enabled and available.
func openAudio(cfg config.AudioConfig) audio.Player {
	if flagMute || !cfg.Enabled {
		return audio.Nop{}
	}
	m := audio.NewManager(cfg.Volume)
	if err := m.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return audio.Nop{}
	}
	return m
}
