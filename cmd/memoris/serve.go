package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memoris/internal/config"
	"github.com/vovakirdan/tui-memoris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve [serie]",
	Short: "Start the memoris SSH server",
	Long: `Start an SSH server that lets users connect and play a serie.

Each SSH connection picks a level and plays with its own game.
Results are stored per-server (all users share the same best times).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key_path from config (relative to home)

Examples:
  memoris serve                           # Default serie on the configured port
  memoris serve ./levels/tutorial         # Serve a serie directory
  memoris serve --ssh :2222               # Listen on port 2222

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, args []string) error {
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

	addr := flagSSHAddr
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	hostKey := flagHostKey
	if hostKey == "" && cfg.Server.HostKeyPath != "" {
		hostKey = cfg.Server.HostKeyPath
		if !filepath.IsAbs(hostKey) && !strings.HasPrefix(hostKey, "~") {
			hostKey = "~/" + hostKey
		}
		hostKey = config.ExpandHome(hostKey)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     addr,
		HostKeyPath: hostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Gameplay:    cfg.Gameplay,
		FPS:         cfg.Display.FPS,
		ShowHelp:    cfg.Display.ShowHelp,
	}, serie)
	if err != nil {
		return err
	}

	fmt.Printf("Serving %q (%d levels) on %s\n", serie.Name, serie.Count(), addr)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
