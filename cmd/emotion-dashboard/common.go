package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"

	"github.com/julien-sobczak/emotion-dashboard/internal/emotion"
)

// RecordExport is the serializable form of an emotion record.
type RecordExport struct {
	ID          string   `yaml:"id" json:"id"`
	Emoji       string   `yaml:"emoji" json:"emoji"`
	Name        string   `yaml:"name" json:"name"`
	Color       string   `yaml:"color" json:"color"`
	GlowColor   string   `yaml:"glowColor" json:"glowColor"`
	Message     string   `yaml:"message" json:"message"`
	Suggestion  string   `yaml:"suggestion" json:"suggestion"`
	ActionLabel string   `yaml:"actionLabel" json:"actionLabel"`
	Gradient    []string `yaml:"gradient" json:"gradient"`
}

func NewRecordExport(r emotion.Record) RecordExport {
	return RecordExport{
		ID:          r.ID.String(),
		Emoji:       r.Emoji,
		Name:        r.Name,
		Color:       string(r.Color),
		GlowColor:   string(r.GlowColor),
		Message:     r.Message,
		Suggestion:  r.Suggestion,
		ActionLabel: r.ActionLabel,
		Gradient:    []string{string(r.Gradient[0]), string(r.Gradient[1])},
	}
}

// ExportRecords returns all records in display order.
func ExportRecords() []RecordExport {
	var results []RecordExport
	for _, e := range emotion.All() {
		results = append(results, NewRecordExport(emotion.Lookup(e)))
	}
	return results
}

// FormatRecords serializes records using the format "yaml" or "json".
func FormatRecords(records []RecordExport, format string) (string, error) {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(records)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case "json":
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out) + "\n", nil
	}
	return "", fmt.Errorf("unsupported format %q", format)
}

// QueryRecords evaluates a jq expression on the JSON representation of records.
func QueryRecords(records []RecordExport, expr string) ([]any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression %q: %v", expr, err)
	}

	// gojq only works on generic values (maps, slices, ...)
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}

	iter := query.Run(data)
	var values []any
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// PrintQueryResults prints one line per result. Strings are printed raw.
func PrintQueryResults(w io.Writer, values []any) error {
	for _, v := range values {
		if s, ok := v.(string); ok {
			fmt.Fprintln(w, s)
			continue
		}
		out, err := json.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(out))
	}
	return nil
}

// terminalColor approximates the color of an emotion with the 8 ANSI colors.
func terminalColor(e emotion.Emotion) *color.Color {
	switch e {
	case emotion.Happy:
		return color.New(color.FgYellow, color.Bold)
	case emotion.Calm:
		return color.New(color.FgCyan, color.Bold)
	case emotion.Sad:
		return color.New(color.FgBlue, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// PrintRecord prints a record the way the dashboard displays it.
func PrintRecord(w io.Writer, r emotion.Record, lastUpdate time.Time, layout string) {
	faint := color.New(color.Faint)
	terminalColor(r.ID).Fprintf(w, "%s %s\n", r.Emoji, r.Name)
	fmt.Fprintln(w, r.Message)
	faint.Fprintf(w, "Last updated: %s\n", lastUpdate.Format(layout))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "🧠 %s\n", r.Suggestion)
	color.New(color.Bold).Fprintf(w, "[ %s ]\n", r.ActionLabel)
}

// PrintTable prints one line per record.
func PrintTable(w io.Writer, records []emotion.Record) {
	nameWidth := 0
	for _, r := range records {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
	}
	for i, r := range records {
		name := r.Name + strings.Repeat(" ", nameWidth-len(r.Name))
		fmt.Fprintf(w, "%d  %s ", i+1, r.Emoji)
		terminalColor(r.ID).Fprint(w, name)
		fmt.Fprintf(w, "  %s\n", r.ActionLabel)
	}
}
