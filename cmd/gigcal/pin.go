package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/venuepulse/gigcal/internal/app"
)

var pinCmd = &cobra.Command{
	Use:   "pin EVENT_ID",
	Short: "Pin an event",
	Long: `Pin marks a stored event so it stands out in listings. The flag
survives re-scrapes; re-ingesting the same event never clears it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unpin, _ := cmd.Flags().GetBool("remove")
		return setPinned(args[0], !unpin)
	},
}

func setPinned(arg string, pinned bool) error {
	eventID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid event id %q", arg)
	}

	application, err := app.NewApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer application.Close()

	if err := application.PinEvent(context.Background(), eventID, pinned); err != nil {
		return err
	}

	if pinned {
		fmt.Printf("Pinned event %d\n", eventID)
	} else {
		fmt.Printf("Unpinned event %d\n", eventID)
	}
	return nil
}

func init() {
	pinCmd.Flags().Bool("remove", false, "unpin instead of pin")
	rootCmd.AddCommand(pinCmd)
}
