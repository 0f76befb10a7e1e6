package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/CryptoTanAI/TechBlog/pkg/automation"
	"github.com/CryptoTanAI/TechBlog/pkg/config"
	"github.com/CryptoTanAI/TechBlog/pkg/db"
	"github.com/CryptoTanAI/TechBlog/pkg/openai"
	storegorm "github.com/CryptoTanAI/TechBlog/pkg/server/store/gorm"
	"github.com/CryptoTanAI/TechBlog/pkg/social"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a blog post now",
	Long: `Generate one blog post immediately, outside the daily schedule.

The country and technology are chosen by the configured rotation
strategy unless overridden with --country-id and --technology-id.
Posts that meet the quality threshold are published and queued for
social sharing; the rest are saved as drafts.

Example:
  techsouthctl generate
  techsouthctl generate --country-id 3 --technology-id 7`,
	Run: func(cmd *cobra.Command, args []string) {
		countryID, _ := cmd.Flags().GetUint("country-id")
		technologyID, _ := cmd.Flags().GetUint("technology-id")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		if err := generateOnce(countryID, technologyID, dryRun); err != nil {
			fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Uint("country-id", 0, "country to write about (default: rotation strategy)")
	generateCmd.Flags().Uint("technology-id", 0, "technology to write about (default: rotation strategy)")
	generateCmd.Flags().Bool("dry-run", false, "generate and score the article without saving it")
}

func generateOnce(countryID, technologyID uint, dryRun bool) error {
	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		return err
	}

	database, err := db.Connect(db.Config{URL: cfg.DatabaseURL})
	if err != nil {
		return err
	}

	posts := storegorm.NewPostsStore(database)
	countries := storegorm.NewCountriesStore(database)
	technologies := storegorm.NewTechnologiesStore(database)
	settings := storegorm.NewSettingsStore(database)
	shares := storegorm.NewSharesStore(database)
	media := storegorm.NewMediaStore(database)

	client := openai.NewClient(cfg.OpenAIAPIKey, openai.WithModel(cfg.OpenAIModel))
	generator := automation.NewGenerator(posts, countries, technologies, settings, client, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if dryRun {
		result, err := generator.Preview(ctx, countryID, technologyID)
		if err != nil {
			return err
		}
		fmt.Printf("Title:   %s\n", result.Post.Title)
		fmt.Printf("Quality: %.2f\n", result.Report.Score)
		fmt.Println("Dry run, post not saved")
		return nil
	}

	publisher := social.NewPublisher(shares, posts, nil, cfg.SiteURL)
	mediaGen := automation.NewMediaGenerator(media, posts, nil, nil)
	scheduler := automation.NewScheduler(generator, publisher, mediaGen, settings, posts, nil)

	result, err := scheduler.TriggerNow(ctx, countryID, technologyID)
	if err != nil {
		return err
	}

	fmt.Printf("Title:   %s\n", result.Post.Title)
	fmt.Printf("Quality: %.2f\n", result.Report.Score)
	fmt.Printf("Status:  %s\n", result.Post.Status)
	if !result.Published {
		fmt.Println("Quality below threshold, saved as draft")
	}
	return nil
}
