package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/emotion-dashboard/internal/core"
	"github.com/julien-sobczak/emotion-dashboard/internal/dashboard"
)

var direct bool
var logFile string

func init() {
	runCmd.Flags().BoolVarP(&direct, "direct", "d", false, "open the dashboard without the home menu")
	runCmd.Flags().StringVarP(&logFile, "log-file", "", "emotion-dashboard.log", "file receiving logs when a verbose flag is set")
	// Accept the same flags when the command is omitted
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.AddCommand(runCmd)
}

// Run locally:
//
//	$ go run ./cmd/emotion-dashboard run
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive dashboard",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			fmt.Println("No argument expected")
			os.Exit(1)
		}

		config := core.CurrentConfig()

		// The terminal belongs to Bubble Tea from now on
		if core.CurrentLogger().VerboseLevel() > core.VerboseOff {
			f, err := tea.LogToFile(logFile, "emotion-dashboard")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Unable to open log file %q: %v\n", logFile, err)
				os.Exit(1)
			}
			defer f.Close()
			core.CurrentLogger().SetOutput(f)
		}

		openDashboard := NewDashboardFactory(config)
		var first tea.Model
		if direct || !config.ConfigFile.Navigation.Home {
			first = openDashboard()
		} else {
			first = NewHomeModel(openDashboard)
		}

		var options []tea.ProgramOption
		if config.ConfigFile.Display.AltScreen {
			options = append(options, tea.WithAltScreen())
		}
		if _, err := tea.NewProgram(NewRouter(first), options...).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// NewDashboardFactory returns a function creating dashboards configured for the router.
func NewDashboardFactory(config *core.Config) func() tea.Model {
	layout := dashboard.TimeLayout12h
	if config.Uses24hClock() {
		layout = dashboard.TimeLayout24h
	}
	return func() tea.Model {
		return dashboard.New(
			dashboard.WithNavigator(History{}),
			dashboard.WithTimeLayout(layout),
		)
	}
}
