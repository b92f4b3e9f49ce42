package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/extraction"
)

func TestCleanText(t *testing.T) {
	input := "Senior   Engineer\r\n\r\n\r\n\r\nRequirements:\r\n  - Go   experience\r\n  - Docker\r\n"
	want := "Senior Engineer\n\nRequirements:\n  - Go experience\n  - Docker"

	assert.Equal(t, want, CleanText(input))
}

func TestCleanTextEmpty(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n\t\n  "))
}

func TestCleanTextPreservesBulletIndent(t *testing.T) {
	input := "Tasks:\n    • build   services\nplain  line"
	assert.Equal(t, "Tasks:\n    • build services\nplain line", CleanText(input))
}

func TestReadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("resume b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF-"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("skip me"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	documents, err := ReadDirectory(dir)
	require.NoError(t, err)
	require.Len(t, documents, 2, "unsupported files and directories are skipped")

	// os.ReadDir returns entries sorted by name.
	assert.Equal(t, "a.pdf", documents[0].FileName)
	assert.Equal(t, extraction.FormatPDF, documents[0].Format)
	assert.Equal(t, "b.txt", documents[1].FileName)
	assert.Equal(t, []byte("resume b"), documents[1].Raw)
}

func TestReadDirectoryMissing(t *testing.T) {
	_, err := ReadDirectory(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestReadDirectoryEmpty(t *testing.T) {
	documents, err := ReadDirectory(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, documents)
}

func TestJobFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Go   Engineer\r\n\r\n\r\nBerlin"), 0o644))

	text, err := JobFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Go Engineer\n\nBerlin", text)
}

func TestJobFromFileMissing(t *testing.T) {
	_, err := JobFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestJobFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<nav>Menu</nav>
			<div class="job-description">
				<h1>Go Engineer</h1>
				<p>We need   Docker experience.</p>
			</div>
			<footer>Legal</footer>
		</body></html>`))
	}))
	defer srv.Close()

	text, err := JobFromURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Go Engineer")
	assert.Contains(t, text, "We need Docker experience.")
	assert.NotContains(t, text, "Menu")
	assert.NotContains(t, text, "Legal")
}

func TestJobFromURLRequestFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobFromURL(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestJobFromURLInvalid(t *testing.T) {
	_, err := JobFromURL(context.Background(), "not-a-url")
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}
