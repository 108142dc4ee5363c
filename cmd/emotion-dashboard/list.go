package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/emotion-dashboard/internal/emotion"
)

var listFormat string
var listQuery string

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "output format: text, yaml, json")
	listCmd.Flags().StringVarP(&listQuery, "jq", "", "", "jq expression evaluated on the JSON output")
	rootCmd.AddCommand(listCmd)
}

// Run locally:
//
//	$ go run ./cmd/emotion-dashboard list --jq '.[].actionLabel'
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported emotions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		if listQuery != "" {
			values, err := QueryRecords(ExportRecords(), listQuery)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if err := PrintQueryResults(out, values); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}

		if listFormat == "text" {
			var records []emotion.Record
			for _, e := range emotion.All() {
				records = append(records, emotion.Lookup(e))
			}
			PrintTable(out, records)
			return
		}

		content, err := FormatRecords(ExportRecords(), listFormat)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprint(out, content)
	},
}
