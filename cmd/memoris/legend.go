package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memoris/internal/game"
	"github.com/vovakirdan/tui-memoris/internal/level"
	"github.com/vovakirdan/tui-memoris/internal/registry"
)

var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Show what every cell is",
	Long:  `Lists the cell types with their level file symbol and on-screen glyph.`,
	Args:  cobra.NoArgs,
	Run:   runLegend,
}

func runLegend(_ *cobra.Command, _ []string) {
	fmt.Println("Cells:")
	fmt.Println()
	fmt.Printf("  %-6s  %-5s  %s\n", "Symbol", "Glyph", "Cell")
	fmt.Printf("  %-6s  %-5s  %s\n", "------", "-----", "----")
	for _, t := range level.CellTypes() {
		fmt.Printf("  %-6c  %-5s  %s\n", t.Symbol(), game.GlyphOf(t).Text, t)
	}

	fmt.Println()
	fmt.Println("Floor transforms:")
	fmt.Println()
	for _, info := range registry.List() {
		fmt.Printf("  %c  %s\n", info.Trigger.Symbol(), info.Name)
	}
}
