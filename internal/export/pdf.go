// Package export renders finalized journal entries to PDF files. It is a
// presentation-side consumer of the entry data and never mutates it.
package export

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/apavlova/daybook/internal/journal"
	"github.com/apavlova/daybook/internal/models"
	"github.com/go-pdf/fpdf"
)

var (
	htmlTagRe      = regexp.MustCompile(`<[^>]*>`)
	unsafeFileRe   = regexp.MustCompile(`[^A-Za-z0-9 _-]+`)
	collapseSpaces = regexp.MustCompile(`\s+`)
)

// Exporter writes PDF files into a fixed export directory, creating it on
// first use.
type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// ExportEntry renders a single entry to "<date>_<sanitized title>.pdf" and
// returns the written file path.
func (x *Exporter) ExportEntry(entry *models.Entry) (string, error) {
	if err := os.MkdirAll(x.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.pdf", entry.Date.Format(journal.DayFormat), sanitizeFileName(entry.Title))
	path := filepath.Join(x.dir, name)

	pdf := newDocument()
	writeEntry(pdf, entry)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write pdf: %w", err)
	}
	return path, nil
}

// ExportEntries renders the entries newest-first into one document, with an
// optional date range reflected in the file name. Fails when entries is
// empty.
func (x *Exporter) ExportEntries(entries []models.Entry, from, to *time.Time) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("no entries to export")
	}

	if err := os.MkdirAll(x.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	path := filepath.Join(x.dir, multiFileName(len(entries), from, to))

	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })

	pdf := newDocument()
	for i := range sorted {
		if i > 0 {
			pdf.AddPage()
		}
		writeEntry(pdf, &sorted[i])
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write pdf: %w", err)
	}
	return path, nil
}

func newDocument() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	return pdf
}

func writeEntry(pdf *fpdf.Fpdf, entry *models.Entry) {
	title := entry.Title
	if title == "" {
		title = "Untitled"
	}

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 10, title, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(102, 102, 102)
	pdf.MultiCell(0, 6, entry.Date.Format("Monday, January 02, 2006"), "", "L", false)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 6, "Mood: "+entry.Mood, "", "L", false)

	if len(entry.Tags) > 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, "Tags: "+strings.Join(entry.Tags, ", "), "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 6, StripHTML(entry.Content), "", "L", false)
}

// StripHTML reduces rich-text markup to plain text: tags removed, entities
// decoded, whitespace collapsed.
func StripHTML(content string) string {
	text := htmlTagRe.ReplaceAllString(content, " ")
	text = html.UnescapeString(text)
	return strings.TrimSpace(collapseSpaces.ReplaceAllString(text, " "))
}

func sanitizeFileName(title string) string {
	name := unsafeFileRe.ReplaceAllString(title, "")
	name = strings.TrimSpace(collapseSpaces.ReplaceAllString(name, " "))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" {
		name = "Untitled"
	}
	return name
}

func multiFileName(count int, from, to *time.Time) string {
	switch {
	case from != nil && to != nil:
		return fmt.Sprintf("Journal_%s_to_%s.pdf",
			from.Format(journal.DayFormat), to.Format(journal.DayFormat))
	case from != nil:
		return fmt.Sprintf("Journal_from_%s.pdf", from.Format(journal.DayFormat))
	case to != nil:
		return fmt.Sprintf("Journal_until_%s.pdf", to.Format(journal.DayFormat))
	default:
		return fmt.Sprintf("Journal_%d_entries.pdf", count)
	}
}
