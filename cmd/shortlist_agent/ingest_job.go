package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hirepulse/shortlist-engine/internal/config"
	"github.com/hirepulse/shortlist-engine/internal/db"
	"github.com/hirepulse/shortlist-engine/internal/fetch"
	"github.com/hirepulse/shortlist-engine/internal/types"
	"github.com/spf13/cobra"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Fetch a job posting and store it for predictions",
	Long:  "Fetches a job posting from a URL or reads it from a file, extracts the posting text, and stores it in the database. Required skills are derived on first prediction if not provided.",
	RunE:  runIngestJob,
}

var (
	ingestURL        string
	ingestFile       string
	ingestJobID      string
	ingestTitle      string
	ingestLevel      string
	ingestSkills     []string
	ingestConfigFile string
	ingestUseBrowser bool
)

func init() {
	ingestJobCmd.Flags().StringVar(&ingestURL, "url", "", "URL to fetch the posting from")
	ingestJobCmd.Flags().StringVar(&ingestFile, "file", "", "Path to a posting text file")
	ingestJobCmd.Flags().StringVar(&ingestJobID, "job-id", "", "Job identifier (generated if omitted)")
	ingestJobCmd.Flags().StringVar(&ingestTitle, "title", "", "Job title (required)")
	ingestJobCmd.Flags().StringVar(&ingestLevel, "level", "entry", "Experience level: entry, mid, or senior")
	ingestJobCmd.Flags().StringSliceVar(&ingestSkills, "skill", nil, "Required skill (repeatable)")
	ingestJobCmd.Flags().StringVarP(&ingestConfigFile, "config", "c", "", "Path to JSON config file")
	ingestJobCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Render JavaScript-heavy pages in a headless browser")
	_ = ingestJobCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(_ *cobra.Command, _ []string) error {
	if (ingestURL == "") == (ingestFile == "") {
		return fmt.Errorf("exactly one of --url or --file is required")
	}

	cfg, err := resolveConfig(ingestConfigFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	description, err := loadPostingText(ctx, cfg)
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(description)) < types.MinDescriptionLength {
		return fmt.Errorf("posting text is too short (%d chars, need %d)",
			len(strings.TrimSpace(description)), types.MinDescriptionLength)
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or 'database_url' in config)")
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	jobID := ingestJobID
	if jobID == "" {
		jobID = uuid.NewString()
	}

	job := &types.JobPosting{
		ID:              jobID,
		Title:           ingestTitle,
		Description:     description,
		RequiredSkills:  ingestSkills,
		ExperienceLevel: types.ExperienceLevel(ingestLevel),
	}
	if err := database.CreateJob(ctx, job); err != nil {
		return err
	}

	fmt.Printf("Stored job %s (%d chars of description)\n", jobID, len(description))
	return nil
}

// loadPostingText reads the posting from a file or fetches it from a URL,
// falling back to headless browser rendering when the static HTML holds
// too little text.
func loadPostingText(ctx context.Context, cfg *config.Config) (string, error) {
	if ingestFile != "" {
		content, err := os.ReadFile(ingestFile)
		if err != nil {
			return "", fmt.Errorf("failed to read posting file: %w", err)
		}
		return string(content), nil
	}

	result, err := fetch.JobPosting(ctx, ingestURL, nil)
	if err != nil {
		return "", err
	}

	if (ingestUseBrowser || cfg.UseBrowser) && fetch.ShouldUseBrowser(result.Text) {
		html, err := fetch.RenderWithBrowser(ctx, ingestURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
		if err != nil {
			return "", err
		}
		text, err := fetch.ExtractPostingText(html)
		if err != nil {
			return "", err
		}
		return text, nil
	}

	return result.Text, nil
}
