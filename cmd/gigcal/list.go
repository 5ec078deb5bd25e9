package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/venuepulse/gigcal/internal/app"
	"github.com/venuepulse/gigcal/internal/domain"
	"github.com/venuepulse/gigcal/internal/format"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored events",
	Long: `List prints stored upcoming events ordered by date and time. With
--calendar the view is limited to the current and next month.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		filter := domain.EventFilter{FutureOnly: true}

		if calendar, _ := cmd.Flags().GetBool("calendar"); calendar {
			from, until := app.CalendarWindow(time.Now())
			filter.From = &from
			filter.Until = &until
			filter.FutureOnly = false
		}
		if venue, _ := cmd.Flags().GetString("venue"); venue != "" {
			filter.Venue = venue
		}
		if starred, _ := cmd.Flags().GetBool("starred"); starred {
			filter.StarredOnly = true
		}

		events, err := application.ListEvents(context.Background(), filter)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		fmt.Print(format.EventList(events))

		return nil
	},
}

func init() {
	listCmd.Flags().Bool("calendar", false, "limit to the current and next month")
	listCmd.Flags().String("venue", "", "limit to a single venue")
	listCmd.Flags().Bool("starred", false, "limit to starred venues")
	rootCmd.AddCommand(listCmd)
}
