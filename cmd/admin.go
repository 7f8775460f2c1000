package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jayeshbali/readrabbit/internal/feedimport"
	"github.com/jayeshbali/readrabbit/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagAdminLimit   int
	flagAddPreview   bool
	flagImportLimit  int
	flagImportDryRun bool
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Curate the article catalog",
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.TimeoutDuration())
		defer cancel()

		stats, err := client.AdminStats(ctx)
		if err != nil {
			return fmt.Errorf("fetching stats: %w", err)
		}

		output.Titlef("Catalog: %d articles", stats.Total)

		table := output.NewTable([]string{"Status", "Count"})
		for _, status := range []string{"Unread", "Read", "Dismissed"} {
			table.AddRow([]string{status, fmt.Sprintf("%d", stats.ByStatus[status])})
		}
		table.Render()

		fmt.Println()
		table = output.NewTable([]string{"Source Type", "Count"})
		for _, st := range []string{"Manual", "AI Suggested", "Imported"} {
			table.AddRow([]string{st, fmt.Sprintf("%d", stats.BySourceType[st])})
		}
		table.Render()
		return nil
	},
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.TimeoutDuration())
		defer cancel()

		articles, err := client.ListArticles(ctx, flagAdminLimit)
		if err != nil {
			return fmt.Errorf("listing articles: %w", err)
		}
		if len(articles) == 0 {
			fmt.Println("Catalog is empty.")
			return nil
		}

		table := output.NewTable([]string{"ID", "Title", "Source", "Type", "Status"})
		for _, a := range articles {
			table.AddRow([]string{a.ID, a.Title, a.Source, a.SourceType, a.Status})
		}
		table.Render()
		return nil
	},
}

var adminAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add an article by URL",
	Long: `Add an article to the catalog. The backend fetches the page and extracts
title, summary, topics, and read time, so only the URL is needed.

With --preview, show the extracted metadata without inserting anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		fmt.Println("Extracting metadata...")
		// The backend runs an LLM extraction, which can take a while
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if flagAddPreview {
			meta, err := client.ExtractMetadata(ctx, args[0])
			if err != nil {
				return fmt.Errorf("extracting metadata: %w", err)
			}
			output.Titlef("%s", meta.Title)
			fmt.Printf("Source:  %s\n", meta.Source)
			if meta.Author != "" {
				fmt.Printf("Author:  %s\n", meta.Author)
			}
			fmt.Printf("Read:    %d min\n", meta.ReadTime)
			if len(meta.Topics) > 0 {
				fmt.Printf("Topics:  %s\n", strings.Join(meta.Topics, ", "))
			}
			fmt.Printf("Summary: %s\n", meta.Summary)
			return nil
		}

		created, err := client.AddArticleSmart(ctx, args[0])
		if err != nil {
			return fmt.Errorf("adding article: %w", err)
		}
		output.Successf("added: %s (%s)", created.Title, created.Source)
		return nil
	},
}

var adminRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete an article from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.TimeoutDuration())
		defer cancel()

		if err := client.DeleteArticle(ctx, args[0]); err != nil {
			return fmt.Errorf("deleting article: %w", err)
		}
		output.Successf("deleted %s", args[0])
		return nil
	},
}

var adminImportCmd = &cobra.Command{
	Use:   "import <feed-url>",
	Short: "Import articles from an RSS or Atom feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.TimeoutDuration())
		defer cancel()

		articles, err := feedimport.Fetch(ctx, args[0])
		if err != nil {
			return fmt.Errorf("fetching feed: %w", err)
		}
		if len(articles) == 0 {
			fmt.Println("Feed has no importable entries.")
			return nil
		}
		if flagImportLimit > 0 && len(articles) > flagImportLimit {
			articles = articles[:flagImportLimit]
		}

		if flagImportDryRun {
			table := output.NewTable([]string{"Title", "Read", "Topics"})
			for _, a := range articles {
				table.AddRow([]string{a.Title, a.ReadTimeLabel(), strings.Join(a.Topics, ", ")})
			}
			table.Render()
			fmt.Printf("\n%d article(s) would be imported.\n", len(articles))
			return nil
		}

		added := 0
		for _, a := range articles {
			if _, err := client.CreateArticle(ctx, a); err != nil {
				output.Warnf("skipping %q: %v", a.Title, err)
				continue
			}
			added++
		}
		output.Successf("imported %d of %d article(s)", added, len(articles))
		return nil
	},
}

func init() {
	adminListCmd.Flags().IntVar(&flagAdminLimit, "limit", 100, "maximum number of articles to list")
	adminAddCmd.Flags().BoolVar(&flagAddPreview, "preview", false, "show extracted metadata without adding")
	adminImportCmd.Flags().IntVar(&flagImportLimit, "limit", 20, "maximum number of feed entries to import")
	adminImportCmd.Flags().BoolVar(&flagImportDryRun, "dry-run", false, "show what would be imported without writing")

	adminCmd.AddCommand(adminStatsCmd)
	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminAddCmd)
	adminCmd.AddCommand(adminRemoveCmd)
	adminCmd.AddCommand(adminImportCmd)
}
