package export

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/clubkitty/internal/config"
	"github.com/akyairhashvil/clubkitty/internal/models"
)

func TestWritePDFWithCoreFontFallback(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	// Empty font URL forces the Arial fallback without touching the network.
	path, err := WritePDF(sampleData(), "£", "")
	if err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("report file is empty")
	}
}

func TestWritePDFSkipsTaskPageWhenNoTasks(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	data := models.AppData{
		Events:          []models.EventExpense{},
		IncomeSources:   []models.IncomeSource{},
		CentralTasks:    []models.EventTask{},
		BadmintonConfig: models.NewBadmintonConfig(),
	}
	path, err := WritePDF(data, "£", "")
	if err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("report not written: %v", err)
	}
}

func TestEnsureFontDownloadsOnce(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("not really a font"))
	}))
	defer srv.Close()

	first, err := ensureFont(srv.URL)
	if err != nil {
		t.Fatalf("ensureFont: %v", err)
	}
	second, err := ensureFont(srv.URL)
	if err != nil {
		t.Fatalf("ensureFont (cached): %v", err)
	}
	if first != second {
		t.Errorf("cache path changed: %q vs %q", first, second)
	}
	if hits != 1 {
		t.Errorf("font fetched %d times, want 1", hits)
	}
	want := filepath.Join(dataHome, config.AppName, config.ReportFontFile)
	if first != want {
		t.Errorf("font cached at %q, want %q", first, want)
	}
}

func TestEnsureFontFailsClosed(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := ensureFont(srv.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
	if _, err := ensureFont(""); err == nil {
		t.Fatal("expected error for empty URL")
	}
}
