package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/apavlova/daybook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(dateStr, title string) models.Entry {
	d, _ := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	return models.Entry{
		Title:   title,
		Date:    d,
		Mood:    "Happy",
		Content: "<p>Hello &amp; <b>goodbye</b></p>",
		Tags:    []string{"test"},
	}
}

func TestExportEntry(t *testing.T) {
	dir := t.TempDir()
	x := NewExporter(filepath.Join(dir, "exports"))

	e := entry("2024-03-15", "A lovely day!")
	path, err := x.ExportEntry(&e)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15_A_lovely_day.pdf", filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportEntry_UntitledFallback(t *testing.T) {
	x := NewExporter(t.TempDir())

	e := entry("2024-03-15", "!!!")
	path, err := x.ExportEntry(&e)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15_Untitled.pdf", filepath.Base(path))
}

func TestExportEntries(t *testing.T) {
	x := NewExporter(t.TempDir())

	list := []models.Entry{entry("2024-03-14", "one"), entry("2024-03-15", "two")}
	from := list[0].Date
	to := list[1].Date

	path, err := x.ExportEntries(list, &from, &to)
	require.NoError(t, err)
	assert.Equal(t, "Journal_2024-03-14_to_2024-03-15.pdf", filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportEntries_Empty(t *testing.T) {
	x := NewExporter(t.TempDir())
	_, err := x.ExportEntries(nil, nil, nil)
	assert.Error(t, err)
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>hello</p>", "hello"},
		{"<b>a</b> <i>b</i>", "a b"},
		{"no markup", "no markup"},
		{"x &amp; y", "x & y"},
		{"<div>line<br/>break</div>", "line break"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripHTML(tt.in), "input %q", tt.in)
	}
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "Cafe_visit_2", sanitizeFileName("Cafe visit #2"))
	assert.Equal(t, "Untitled", sanitizeFileName(""))
	assert.Equal(t, "Untitled", sanitizeFileName("???"))
}
