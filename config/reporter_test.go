package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer zr.Close()

	res := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		res[f.Name] = string(data)
	}
	return res
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}

	book := filepath.Join(dir, "book.yaml")
	if err := os.WriteFile(book, []byte("styles: []\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	r.Store("stylebook/book.yaml", book)
	r.Store("missing.log", filepath.Join(dir, "missing.log"))
	r.StoreData("styles.css", []byte(".a {}\n"))
	r.StoreData("styles.css", []byte(".b {}\n"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, conf.Destination)
	if files["stylebook/book.yaml"] != "styles: []\n" {
		t.Errorf("stored file content = %q", files["stylebook/book.yaml"])
	}
	if files["styles.css"] != ".a {}\n" {
		t.Errorf("stored data content = %q", files["styles.css"])
	}
	if _, ok := files["missing.log"]; ok {
		t.Error("absent files must be skipped")
	}
	if len(files) != 4 {
		t.Errorf("expected MANIFEST, 2 data entries and 1 file, got %d entries", len(files))
	}
	if !strings.Contains(files["MANIFEST"], "stylebook/book.yaml") {
		t.Errorf("MANIFEST does not list stored file:\n%s", files["MANIFEST"])
	}
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("c", nil)
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() on nil report = %q", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
