package archive

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := writer.Create(name)
		if err != nil {
			t.Fatalf("Failed to create zip entry %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write zip entry %s: %v", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractTextFiles(t *testing.T) {
	t.Run("readme is sorted first", func(t *testing.T) {
		data := buildZip(t, map[string]string{
			"src/main.go":     "package main",
			"docs/notes.md":   "notes",
			"README.md":       "# My project",
			"config/app.yaml": "port: 8080",
		})

		files, err := ExtractTextFiles(data)
		if err != nil {
			t.Fatalf("ExtractTextFiles() error = %v", err)
		}
		if len(files) != 4 {
			t.Fatalf("expected 4 files, got %d", len(files))
		}
		if files[0].Name != "README.md" {
			t.Errorf("first file = %s, want README.md", files[0].Name)
		}
		if files[0].Content != "# My project" {
			t.Errorf("readme content = %q", files[0].Content)
		}
	})

	t.Run("binary and disallowed entries are skipped", func(t *testing.T) {
		data := buildZip(t, map[string]string{
			"main.go":    "package main",
			"logo.png":   "\x89PNG fake",
			"app.db":     "sqlite",
			"sneaky.txt": "text\x00with null",
		})

		files, err := ExtractTextFiles(data)
		if err != nil {
			t.Fatalf("ExtractTextFiles() error = %v", err)
		}
		if len(files) != 1 || files[0].Name != "main.go" {
			t.Errorf("unexpected files: %+v", files)
		}
	})

	t.Run("extensionless readme still counts", func(t *testing.T) {
		data := buildZip(t, map[string]string{
			"README": "plain readme",
		})

		files, err := ExtractTextFiles(data)
		if err != nil {
			t.Fatalf("ExtractTextFiles() error = %v", err)
		}
		if len(files) != 1 || files[0].Name != "README" {
			t.Errorf("unexpected files: %+v", files)
		}
	})

	t.Run("total content is capped", func(t *testing.T) {
		big := strings.Repeat("a", 400*1024)
		data := buildZip(t, map[string]string{
			"one.txt": big,
			"two.txt": big,
		})

		files, err := ExtractTextFiles(data)
		if err != nil {
			t.Fatalf("ExtractTextFiles() error = %v", err)
		}
		total := 0
		for _, f := range files {
			total += len(f.Content)
		}
		if total > 500*1024 {
			t.Errorf("total content %d exceeds the 500KB cap", total)
		}
	})

	t.Run("no usable files is an error", func(t *testing.T) {
		data := buildZip(t, map[string]string{
			"photo.jpg": "\xff\xd8 fake",
		})

		if _, err := ExtractTextFiles(data); err == nil {
			t.Fatal("expected error for archive with no text files")
		}
	})

	t.Run("not a zip is an error", func(t *testing.T) {
		if _, err := ExtractTextFiles([]byte("definitely not a zip")); err == nil {
			t.Fatal("expected error for malformed archive")
		}
	})
}
