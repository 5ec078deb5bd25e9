package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/venuepulse/gigcal/internal/app"
)

var starCmd = &cobra.Command{
	Use:   "star VENUE",
	Short: "Star a venue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStarred(args[0], true)
	},
}

var unstarCmd = &cobra.Command{
	Use:   "unstar VENUE",
	Short: "Unstar a venue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStarred(args[0], false)
	},
}

func setStarred(name string, starred bool) error {
	application, err := app.NewApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer application.Close()

	if err := application.StarVenue(context.Background(), name, starred); err != nil {
		return err
	}

	if starred {
		fmt.Printf("Starred %s\n", name)
	} else {
		fmt.Printf("Unstarred %s\n", name)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(starCmd)
	rootCmd.AddCommand(unstarCmd)
}
