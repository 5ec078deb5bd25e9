package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/venuepulse/gigcal/internal/app"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape all enabled venues",
	Long: `Scrape fetches every enabled venue's calendar page (through the
response cache), extracts and normalizes its listings, and saves new
events to the database. A venue that fails is skipped; the rest keep
going.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		if err := application.Run(context.Background()); err != nil {
			return fmt.Errorf("scrape failed: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
