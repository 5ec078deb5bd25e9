package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/venuepulse/gigcal/internal/app"
	"github.com/venuepulse/gigcal/internal/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export stored events to a CSV file",
	Long: `Export writes stored upcoming events as CSV, one event per row. The
layout matches the format accepted back by golden-data tooling.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		filter := domain.EventFilter{FutureOnly: true}
		if all, _ := cmd.Flags().GetBool("all"); all {
			filter.FutureOnly = false
		}
		if venue, _ := cmd.Flags().GetString("venue"); venue != "" {
			filter.Venue = venue
		}

		count, err := application.ExportEvents(context.Background(), filter, args[0])
		if err != nil {
			return fmt.Errorf("failed to export events: %w", err)
		}

		fmt.Printf("exported %d events to %s\n", count, args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().Bool("all", false, "include past events")
	exportCmd.Flags().String("venue", "", "limit to a single venue")
	rootCmd.AddCommand(exportCmd)
}
