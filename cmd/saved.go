package cmd

import (
	"fmt"

	"github.com/jayeshbali/readrabbit/internal/config"
	"github.com/jayeshbali/readrabbit/internal/output"
	"github.com/jayeshbali/readrabbit/internal/saved"
	"github.com/spf13/cobra"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage your saved articles",
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := saved.Open(config.SavedPath())
		if err != nil {
			return fmt.Errorf("opening saved articles: %w", err)
		}

		articles := store.All()
		if len(articles) == 0 {
			fmt.Println("No saved articles.")
			return nil
		}

		table := output.NewTable([]string{"#", "Title", "Source", "Read", "URL"})
		for i, a := range articles {
			table.AddRow([]string{
				fmt.Sprintf("%d", i+1),
				a.Title,
				a.Source,
				a.ReadTimeLabel(),
				a.URL,
			})
		}
		table.Render()
		return nil
	},
}

var savedRemoveCmd = &cobra.Command{
	Use:   "remove <id|url>",
	Short: "Remove an article from the saved list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := saved.Open(config.SavedPath())
		if err != nil {
			return fmt.Errorf("opening saved articles: %w", err)
		}

		id := args[0]
		// Accept a URL too; the TUI shows URLs more prominently than ids
		if !store.Contains(id) {
			for _, a := range store.All() {
				if a.URL == id {
					id = a.ID
					break
				}
			}
		}

		removed, err := store.Remove(id)
		if err != nil {
			return fmt.Errorf("removing: %w", err)
		}
		if !removed {
			return fmt.Errorf("no saved article matches %q", args[0])
		}
		output.Successf("removed")
		return nil
	},
}

var savedClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all saved articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := saved.Open(config.SavedPath())
		if err != nil {
			return fmt.Errorf("opening saved articles: %w", err)
		}

		n := store.Len()
		if n == 0 {
			fmt.Println("Nothing to clear.")
			return nil
		}
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing: %w", err)
		}
		output.Successf("cleared %d article(s)", n)
		return nil
	},
}

func init() {
	savedCmd.AddCommand(savedListCmd)
	savedCmd.AddCommand(savedRemoveCmd)
	savedCmd.AddCommand(savedClearCmd)
}
