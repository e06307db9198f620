package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MikeBiancalana/quickdate/internal/dateparse"
	"github.com/MikeBiancalana/quickdate/internal/display"
	"github.com/MikeBiancalana/quickdate/internal/suggest"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatTSV  OutputFormat = "tsv"
	FormatCSV  OutputFormat = "csv"
)

func parseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "tsv":
		return FormatTSV, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, json, tsv, csv)", s)
	}
}

// parseOutput is the serialised form of a parse
type parseOutput struct {
	Input          string               `json:"input"`
	Date           time.Time            `json:"date"`
	Editable       string               `json:"editable"`
	Display        string               `json:"display"`
	Relative       string               `json:"relative"`
	Day            string               `json:"day"`
	Confidence     float64              `json:"confidence"`
	ConfidenceText string               `json:"confidence_text"`
	Tier           display.Tier         `json:"tier"`
	Components     dateparse.Components `json:"components"`
}

func newParseOutput(r dateparse.Result, now time.Time, layout string) parseOutput {
	hasTime := r.Components.Time != ""
	shown := display.FormatForDisplay(r.Date, layout)
	if hasTime {
		shown += " " + display.FormatForDisplay(r.Date, display.LayoutClock)
	}
	return parseOutput{
		Input:          r.Input,
		Date:           r.Date,
		Editable:       display.FormatForEditing(r.Date, hasTime),
		Display:        shown,
		Relative:       display.RelativeTimeText(r.Date, now),
		Day:            display.Describe(r.Date, now),
		Confidence:     r.Confidence,
		ConfidenceText: display.ConfidencePercentText(r.Confidence),
		Tier:           display.ConfidenceTier(r.Confidence),
		Components:     r.Components,
	}
}

// componentText renders components as "family=match" pairs
func componentText(c dateparse.Components) string {
	var parts []string
	for _, kv := range [][2]string{
		{"relative", c.Relative},
		{"weekday", c.Weekday},
		{"date", c.Date},
		{"time", c.Time},
	} {
		if kv[1] != "" {
			parts = append(parts, kv[0]+"="+kv[1])
		}
	}
	if len(c.Modifiers) > 0 {
		parts = append(parts, "modifiers="+strings.Join(c.Modifiers, ","))
	}
	return strings.Join(parts, " ")
}

func formatParseText(w io.Writer, p parseOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Input:\t%s\n", p.Input)
	fmt.Fprintf(tw, "Date:\t%s\n", p.Display)
	fmt.Fprintf(tw, "Editable:\t%s\n", p.Editable)
	fmt.Fprintf(tw, "Relative:\t%s (%s)\n", p.Relative, p.Day)
	fmt.Fprintf(tw, "Confidence:\t%s (%s)\n", display.RenderConfidence(p.Confidence), p.Tier)
	fmt.Fprintf(tw, "Components:\t%s\n", componentText(p.Components))
	return tw.Flush()
}

func formatParseJSON(w io.Writer, p parseOutput) error {
	return json.NewEncoder(w).Encode(p)
}

func formatParseTSV(w io.Writer, p parseOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintln(tw, "INPUT\tDATE\tCONFIDENCE\tCOMPONENTS")
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Input, p.Editable, p.ConfidenceText, componentText(p.Components))
	return tw.Flush()
}

func formatParseCSV(w io.Writer, p parseOutput) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"INPUT", "DATE", "CONFIDENCE", "COMPONENTS"})
	record := []string{p.Input, p.Editable, fmt.Sprintf("%.2f", p.Confidence), componentText(p.Components)}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("failed to write CSV record: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func writeParse(w io.Writer, format OutputFormat, p parseOutput) error {
	switch format {
	case FormatJSON:
		return formatParseJSON(w, p)
	case FormatTSV:
		return formatParseTSV(w, p)
	case FormatCSV:
		return formatParseCSV(w, p)
	default:
		return formatParseText(w, p)
	}
}

func formatSuggestionsText(w io.Writer, list []suggest.Suggestion) error {
	if len(list) == 0 {
		fmt.Fprintln(w, "No suggestions")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Label, display.RenderConfidence(s.Confidence), s.Category, s.Preview)
	}
	return tw.Flush()
}

func formatSuggestionsJSON(w io.Writer, list []suggest.Suggestion) error {
	if list == nil {
		list = []suggest.Suggestion{}
	}
	return json.NewEncoder(w).Encode(list)
}

func formatSuggestionsTSV(w io.Writer, list []suggest.Suggestion) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintln(tw, "VALUE\tCONFIDENCE\tCATEGORY\tPREVIEW")
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Value, display.ConfidencePercentText(s.Confidence), s.Category, s.Preview)
	}
	return tw.Flush()
}

func formatSuggestionsCSV(w io.Writer, list []suggest.Suggestion) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"VALUE", "CONFIDENCE", "CATEGORY", "PREVIEW"})
	for _, s := range list {
		record := []string{s.Value, fmt.Sprintf("%.2f", s.Confidence), s.Category.String(), s.Preview}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeSuggestions(w io.Writer, format OutputFormat, list []suggest.Suggestion) error {
	switch format {
	case FormatJSON:
		return formatSuggestionsJSON(w, list)
	case FormatTSV:
		return formatSuggestionsTSV(w, list)
	case FormatCSV:
		return formatSuggestionsCSV(w, list)
	default:
		return formatSuggestionsText(w, list)
	}
}

// dueOutput is the serialised form of a due-date check
type dueOutput struct {
	Input string          `json:"input"`
	Due   display.DueInfo `json:"due"`
	Date  *time.Time      `json:"date,omitempty"`
}

func writeDue(w io.Writer, format OutputFormat, d dueOutput) error {
	date := ""
	if d.Date != nil {
		date = display.FormatForEditing(*d.Date, true)
	}

	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(d)
	case FormatTSV:
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
		fmt.Fprintln(tw, "INPUT\tSTATUS\tDATE\tTEXT")
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Input, d.Due.Status, date, d.Due.Text)
		return tw.Flush()
	case FormatCSV:
		cw := csv.NewWriter(w)
		cw.Write([]string{"INPUT", "STATUS", "DATE", "TEXT"})
		if err := cw.Write([]string{d.Input, d.Due.Status.String(), date, d.Due.Text}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
		cw.Flush()
		return cw.Error()
	default:
		fmt.Fprintln(w, d.Due.Style.Style().Render(d.Due.Text))
		return nil
	}
}
