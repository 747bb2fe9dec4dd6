package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memoris/internal/platform/tui"
	"github.com/vovakirdan/tui-memoris/internal/storage"
)

var (
	flagPlain   bool
	flagHistory bool
	flagClear   bool
)

var recordsCmd = &cobra.Command{
	Use:   "records [level]",
	Short: "View best times",
	Long: `Shows the fastest completions of a level. Level IDs are serie/file, as
printed by 'memoris records --plain'.

Examples:
  memoris records
  memoris records tutorial/1
  memoris records tutorial/1 --plain --history
  memoris records tutorial/1 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the interactive table")
	recordsCmd.Flags().BoolVar(&flagHistory, "history", false, "With --plain, list recent attempts instead of best times")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every result of the level")
}

func runRecords(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var levelID string
	if len(args) > 0 {
		levelID = args[0]
	}

	if flagClear {
		if levelID == "" {
			return fmt.Errorf("--clear needs a level")
		}
		if err := store.ClearResults(levelID); err != nil {
			return err
		}
		fmt.Printf("Cleared results of %s.\n", levelID)
		return nil
	}

	if !flagPlain {
		w, h := terminalSize()
		return tui.RunRecords(store, levelID, w, h)
	}

	if levelID == "" {
		ids, err := store.LevelIDs()
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Println("No results recorded yet.")
			return nil
		}
		for _, id := range ids {
			printStats(store, id)
		}
		return nil
	}
	return printResults(store, levelID)
}

func printStats(store *storage.Store, levelID string) {
	stats, err := store.Stats(levelID)
	if err != nil {
		logger.Warn("no stats", "level", levelID, "error", err)
		return
	}
	best := "-"
	if stats.Wins > 0 {
		best = stats.Best.String()
	}
	fmt.Printf("  %-24s  attempts=%d wins=%d best=%s\n", levelID, stats.Attempts, stats.Wins, best)
}

func printResults(store *storage.Store, levelID string) error {
	var (
		results []storage.Result
		err     error
		title   = "Best times"
	)
	if flagHistory {
		title = "Recent attempts"
		results, err = store.History(levelID, 20)
	} else {
		results, err = store.BestTimes(levelID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n\n", title, levelID)
	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Finish the level to set the first time!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-4s  %-5s  %-5s  %s\n", "Rank", "Time", "Won", "Stars", "Lives", "Date")
	fmt.Printf("  %-4s  %-10s  %-4s  %-5s  %-5s  %s\n", "----", "----", "---", "-----", "-----", "----")
	for i, r := range results {
		won := "no"
		if r.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-10s  %-4s  %-5d  %-5d  %s\n",
			i+1, r.Elapsed, won, r.Stars, r.Lives, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
