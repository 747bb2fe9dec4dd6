package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memoris/internal/config"
	"github.com/vovakirdan/tui-memoris/internal/series"
)

var listCmd = &cobra.Command{
	Use:   "list [root]",
	Short: "List installed series",
	Long:  `Shows every serie found under the series root (from config by default).`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	root := config.ExpandHome(cfg.Gameplay.SeriesRoot)
	if len(args) > 0 {
		root = args[0]
	}

	all, errs := series.Loader{Root: root}.LoadAll()
	for _, e := range errs {
		logger.Warn("skipped", "error", e)
	}

	if len(all) == 0 {
		fmt.Printf("No series found under %s.\n", root)
		return nil
	}

	fmt.Printf("Series in %s:\n\n", root)

	maxNameLen := 4 // "Name" header
	for _, s := range all {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Levels")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "------")
	for _, s := range all {
		fmt.Printf("  %-*s  %d\n", maxNameLen, s.Name, s.Count())
	}

	fmt.Println()
	fmt.Println("Run 'memoris play <name>' to play a serie.")
	return nil
}
