// memoris is a memory maze game for the terminal: watch a level, remember
// it, then cross it blind while mirrors and rotations reshape the floors.
//
// Usage:
//
//	memoris play [level|serie]   - Play a level file or a serie
//	memoris list [root]          - List installed series
//	memoris check <files...>     - Validate level files
//	memoris legend               - Show the cell legend
//	memoris records [level]      - Show best times
//	memoris serve [serie]        - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Frames per second (default: from config)
//	--db <path>        - Records database (default: ~/.memoris/records.db)
//	--config <path>    - Custom config YAML
//	--preset <name>    - Difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memoris/internal/config"
)

var (
	flagFPS    int
	flagDBPath string
	flagConfig string
	flagPreset string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "memoris"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memoris",
	Short: "Memoris - a memory maze in your terminal",
	Long: `Memoris shows you a level for a few seconds, hides it, and asks you to
reach the arrival with every star collected. Mirrors and rotations reshape
the floor under your feet.

Available commands:
  play     - Play a level or a serie
  list     - Show installed series
  check    - Validate level files
  legend   - Show what every cell is
  records  - View best times
  serve    - Start SSH server for remote play

Examples:
  memoris play
  memoris play ./levels/tutorial
  memoris play ./my.level --preset hard
  memoris records tutorial/1`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.memoris/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(legendCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration and applies the global flags.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.GameConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	cfg.Normalize()
	return cfg, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
