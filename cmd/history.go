package cmd

import (
	"fmt"
	"time"

	"github.com/jayeshbali/readrabbit/internal/config"
	"github.com/jayeshbali/readrabbit/internal/history"
	"github.com/jayeshbali/readrabbit/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagHistoryLimit   int
	flagPruneOlderThan string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your local reading history",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := history.Open(config.HistoryPath())
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer log.Close()

		events, err := log.Recent(flagHistoryLimit)
		if err != nil {
			return fmt.Errorf("reading history: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No history yet.")
			return nil
		}

		table := output.NewTable([]string{"When", "Action", "Title", "Source"})
		for _, e := range events {
			table.AddRow([]string{
				e.CreatedAt.Local().Format("Jan 2 15:04"),
				e.Action,
				e.Title,
				e.Source,
			})
		}
		table.Render()

		counts, err := log.Counts()
		if err != nil {
			return nil
		}
		fmt.Println()
		output.Infof("opened %d · saved %d · dismissed %d",
			counts[history.ActionOpened], counts[history.ActionSaved], counts[history.ActionDismissed])
		return nil
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old history events",
	Long: `Delete reading history older than the retention period and reclaim disk
space. Uses the retention value from config (default: 90d) unless overridden
with --older-than.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, err := history.Open(config.HistoryPath())
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer log.Close()

		retention := cfg.RetentionDuration()
		if flagPruneOlderThan != "" {
			d, err := parseRetention(flagPruneOlderThan)
			if err != nil {
				return fmt.Errorf("invalid --older-than value: %w", err)
			}
			retention = d
		}

		deleted, err := log.Prune(retention)
		if err != nil {
			return fmt.Errorf("pruning: %w", err)
		}

		if deleted == 0 {
			fmt.Println("Nothing to prune.")
		} else {
			fmt.Printf("Pruned %d event(s) older than %s.\n", deleted, formatDuration(retention))
		}
		return nil
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show history database statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.HistoryPath()
		log, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer log.Close()

		count, size, err := log.Stats(dbPath)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		fmt.Printf("History: %s\n", dbPath)
		fmt.Printf("Events: %d\n", count)
		fmt.Printf("Size: %s\n", formatBytes(size))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 50, "number of recent events to show")
	historyPruneCmd.Flags().StringVar(&flagPruneOlderThan, "older-than", "", "override retention period (e.g., 30d, 720h)")

	historyCmd.AddCommand(historyPruneCmd)
	historyCmd.AddCommand(historyStatsCmd)
}

// parseRetention accepts Go durations plus a day suffix (e.g., 30d).
func parseRetention(s string) (time.Duration, error) {
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	return time.ParseDuration(s)
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
