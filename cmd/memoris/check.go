package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memoris/internal/game"
	"github.com/vovakirdan/tui-memoris/internal/level"
	"github.com/vovakirdan/tui-memoris/internal/series"
)

var checkCmd = &cobra.Command{
	Use:   "check <files...>",
	Short: "Validate level files",
	Long: `Parses each level file (or every level of a serie directory) and reports
its stars, playable floors and time limit.

Examples:
  memoris check ./levels/tutorial/1.level
  memoris check ./levels/tutorial`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			s, err := series.Load(arg)
			if err != nil {
				return err
			}
			paths = append(paths, s.LevelPaths()...)
			continue
		}
		paths = append(paths, arg)
	}

	failed := 0
	for _, path := range paths {
		lvl, err := level.Load(path)
		if err != nil {
			failed++
			fmt.Printf("FAIL  %v\n", err)
			continue
		}
		limit := int64(-1)
		if d := lvl.TimeLimit(); d > 0 {
			limit = d.Milliseconds()
		}
		fmt.Printf("ok    %s  stars=%d floors=%d time=%s\n",
			path, lvl.StarsAmount(), lvl.PlayableFloors(), game.FormatRemaining(limit))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d levels are invalid", failed, len(paths))
	}
	return nil
}
