// Package export renders the task list into document formats.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jung-kurt/gofpdf"

	"github.com/hay-kot/todolist/internal/core/task"
	"github.com/hay-kot/todolist/internal/store/jsonfile"
)

// Format names an export format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatCSV, FormatMarkdown, FormatPDF}

// ParseFormat resolves a user supplied format name. "md" is accepted as an
// alias for markdown.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "md" {
		return FormatMarkdown, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Binary reports whether the format must not be written to a terminal.
func (f Format) Binary() bool {
	return f == FormatPDF
}

// Exporter renders tasks using the due date placeholder for absent dates.
type Exporter struct {
	placeholder string
}

// New creates an Exporter.
func New(placeholder string) *Exporter {
	return &Exporter{placeholder: placeholder}
}

// Export renders tasks in the given format. JSON output is the task file
// document itself, so it can be imported back unchanged.
func (e *Exporter) Export(tasks []task.Task, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return jsonfile.EncodeDocument(tasks)
	case FormatCSV:
		return e.csv(tasks)
	case FormatMarkdown:
		return []byte(e.Markdown(tasks)), nil
	case FormatPDF:
		return e.pdf(tasks)
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

// Markdown renders tasks as a GitHub style checklist.
func (e *Exporter) Markdown(tasks []task.Task) string {
	var b strings.Builder
	b.WriteString("# Tasks\n\n")

	if len(tasks) == 0 {
		b.WriteString("_No tasks._\n")
		return b.String()
	}

	for _, t := range tasks {
		box := " "
		if t.Completed {
			box = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s _(due: %s)_\n", box, t.Description, t.DueOr(e.placeholder))
	}

	return b.String()
}

// RenderMarkdown styles markdown for a terminal of the given width using a
// glamour standard style name.
func RenderMarkdown(md, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func (e *Exporter) csv(tasks []task.Task) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"position", "description", "due_date", "completed"})
	// An absent due date gets the placeholder so it can be told apart from
	// one stored as "".
	for i, t := range tasks {
		due := e.placeholder
		if t.HasDueDate() {
			due = *t.DueDate
		}
		_ = w.Write([]string{fmt.Sprint(i + 1), t.Description, due, fmt.Sprint(t.Completed)})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) pdf(tasks []task.Task) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "To-Do List")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 11)

	if len(tasks) == 0 {
		pdf.MultiCell(0, 6, "No tasks.", "0", "L", false)
	}
	for i, t := range tasks {
		pdf.MultiCell(0, 7, tr(t.Format(i+1, e.placeholder)), "0", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
