package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
)

// Output formats for record listings.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

const markerWidth = 10

// renderer prints records for people (colored text) or for programs
// (JSON, YAML).
type renderer struct {
	priority [4]lipgloss.Style
	done     lipgloss.Style
}

// newRenderer styles output for out. color is one of the todo.Color* modes;
// auto leaves detection to termenv.
func newRenderer(out io.Writer, color string) *renderer {
	lr := lipgloss.NewRenderer(out)

	switch color {
	case todo.ColorAlways:
		lr.SetColorProfile(termenv.ANSI)
	case todo.ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	}

	marker := lr.NewStyle().Width(markerWidth).Align(lipgloss.Center)

	return &renderer{
		priority: [4]lipgloss.Style{
			todo.PriorityLow:      marker,
			todo.PriorityMedium:   marker.Foreground(lipgloss.Color("6")),
			todo.PriorityHigh:     marker.Foreground(lipgloss.Color("3")),
			todo.PriorityCritical: marker.Foreground(lipgloss.Color("1")),
		},
		done: marker.Foreground(lipgloss.Color("2")),
	}
}

// marker returns the fixed-width tag shown before a description.
func (r *renderer) marker(rec *todo.Record) string {
	if rec.Done {
		return r.done.Render("(done)")
	}

	return r.priority[rec.Priority].Render("(" + rec.Priority.String() + ")")
}

// line formats rec as "<n>. <marker> <text>", with n right-aligned to width
// digits.
func (r *renderer) line(rec *todo.Record, width int) string {
	return fmt.Sprintf("%*d. %s %s", width, rec.Ordinal+1, r.marker(rec), rec.Text)
}

// recordView is the structured form of a record.
type recordView struct {
	Number           int    `json:"number"            yaml:"number"`
	Text             string `json:"text"              yaml:"text"`
	Priority         string `json:"priority"          yaml:"priority"`
	PriorityExplicit bool   `json:"priority_explicit" yaml:"priority_explicit"`
	Done             bool   `json:"done"              yaml:"done"`
}

func viewOf(rec *todo.Record) recordView {
	return recordView{
		Number:           rec.Ordinal + 1,
		Text:             rec.Text,
		Priority:         rec.Priority.String(),
		PriorityExplicit: rec.PriorityExplicit,
		Done:             rec.Done,
	}
}

// Records prints records in the given order. total is the document's
// record count and sets the number column width.
func (r *renderer) Records(o *IO, format string, records []todo.Record, total int) error {
	switch format {
	case formatJSON:
		views := make([]recordView, 0, len(records))
		for i := range records {
			views = append(views, viewOf(&records[i]))
		}

		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}

		o.Println(string(data))
	case formatYAML:
		views := make([]recordView, 0, len(records))
		for i := range records {
			views = append(views, viewOf(&records[i]))
		}

		data, err := yaml.Marshal(views)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}

		o.Printf("%s", data)
	default:
		width := len(strconv.Itoa(max(total, 1)))

		for i := range records {
			o.Println(r.line(&records[i], width))
		}
	}

	return nil
}

// Selected prints the records of list chosen by mask in document order.
func (r *renderer) Selected(o *IO, list *todo.List, mask todo.Mask) {
	width := len(strconv.Itoa(max(list.Len(), 1)))

	for _, rec := range list.Selected(mask) {
		o.Println(r.line(rec, width))
	}
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return invalidArg(format, "format (text, json, yaml)")
	}
}
