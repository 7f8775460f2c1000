package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jayeshbali/readrabbit/internal/api"
	"github.com/jayeshbali/readrabbit/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagDiscoverType string
	flagDiscoverMax  int
	flagDiscoverSave []int
)

var discoverCmd = &cobra.Command{
	Use:   "discover <url-or-text>",
	Short: "Find similar articles with the discovery agent",
	Long: `Give the agent an article URL, a podcast or tweet link, or a free-text
description of what you want to read. It extracts the themes, searches the
web, and returns a ranked list of recommendations.

Use --save to add picks to the catalog by their position in the list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		inputType := cfg.AgentInputType()
		if flagDiscoverType != "" {
			switch flagDiscoverType {
			case "article", "podcast", "tweet", "text":
				inputType = flagDiscoverType
			default:
				return fmt.Errorf("invalid --type value %q (use article, podcast, tweet, or text)", flagDiscoverType)
			}
		}
		maxResults := cfg.AgentMaxResults()
		if flagDiscoverMax > 0 {
			maxResults = flagDiscoverMax
		}

		fmt.Println("Searching and evaluating (this takes a minute)...")
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		result, err := client.Discover(ctx, api.DiscoverRequest{
			Input:      strings.Join(args, " "),
			InputType:  inputType,
			MaxResults: maxResults,
		})
		if err != nil {
			return fmt.Errorf("discovery: %w", err)
		}
		if !result.Success {
			if result.Message != "" {
				return fmt.Errorf("discovery failed: %s", result.Message)
			}
			return fmt.Errorf("discovery failed")
		}

		if len(result.Themes.MainTopics) > 0 {
			output.Titlef("Themes: %s", strings.Join(result.Themes.MainTopics, " · "))
		}
		output.Infof("%d searches · %d results evaluated", result.SearchesPerformed, result.ResultsEvaluated)
		fmt.Println()

		table := output.NewTable([]string{"#", "Quality", "Title", "Source", "Read", "Why"})
		for i, rec := range result.Recommendations {
			table.AddRow([]string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d/10", rec.QualityScore),
				rec.Title,
				rec.Source,
				fmt.Sprintf("%d min", rec.ReadTime),
				rec.Reason,
			})
		}
		table.Render()

		for _, n := range flagDiscoverSave {
			if n < 1 || n > len(result.Recommendations) {
				output.Warnf("no recommendation #%d to save", n)
				continue
			}
			rec := result.Recommendations[n-1]
			created, err := client.SaveRecommendation(ctx, rec)
			if err != nil {
				output.Warnf("saving #%d: %v", n, err)
				continue
			}
			output.Successf("added to catalog: %s", created.Title)
		}
		return nil
	},
}

func init() {
	discoverCmd.Flags().StringVar(&flagDiscoverType, "type", "", "input type: article, podcast, tweet, or text")
	discoverCmd.Flags().IntVar(&flagDiscoverMax, "max", 0, "maximum recommendations to return")
	discoverCmd.Flags().IntSliceVar(&flagDiscoverSave, "save", nil, "positions of recommendations to add to the catalog (e.g., 1,3)")
}
