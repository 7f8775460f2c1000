package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagServer string
	flagCount  int
	flagView   string
)

var rootCmd = &cobra.Command{
	Use:   "readrabbit",
	Short: "Personal article discovery client",
	Long: `readrabbit deals you a small random hand of articles from your personal
catalog. Read them, save them, or dismiss them for good — then deal again.`,
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "backend URL (overrides config)")
	rootCmd.Flags().IntVar(&flagCount, "count", 0, "number of articles per deal")
	rootCmd.Flags().StringVar(&flagView, "view", "", "starting view: deck or list")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(savedCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(historyCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("readrabbit %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
