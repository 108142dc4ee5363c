package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/emotion-dashboard/internal/core"
	"github.com/julien-sobczak/emotion-dashboard/internal/dashboard"
	"github.com/julien-sobczak/emotion-dashboard/internal/emotion"
	"github.com/julien-sobczak/emotion-dashboard/pkg/clock"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

// Run locally:
//
//	$ go run ./cmd/emotion-dashboard show stressed
var showCmd = &cobra.Command{
	Use:   "show [emotion]",
	Short: "Print an emotion without opening the dashboard",
	Long:  "Print an emotion (happy, calm, sad, stressed) without opening the dashboard. Default to calm.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		state := dashboard.NewState(clock.Now())
		if len(args) == 1 {
			e, err := emotion.Parse(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			state = dashboard.Next(state, dashboard.SelectEmotion{Emotion: e, At: clock.Now()})
		}

		layout := dashboard.TimeLayout12h
		if core.CurrentConfig().Uses24hClock() {
			layout = dashboard.TimeLayout24h
		}
		PrintRecord(cmd.OutOrStdout(), state.Record(), state.LastUpdate, layout)
	},
}
