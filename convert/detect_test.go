package convert

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectSheet(t *testing.T) {
	dir := t.TempDir()
	wxmx := writeWxmxSheet(t, dir, "good.wxmx")

	tests := []struct {
		name    string
		file    string
		content string
		want    sheetKind
	}{
		{name: "worksheet xml", file: "sheet.xml", content: sampleSheet, want: sheetXML},
		{name: "upper case extension", file: "SHEET.XML", content: sampleSheet, want: sheetXML},
		{name: "other xml", file: "other.xml", content: "<html><body/></html>", want: sheetNone},
		{name: "wrong extension", file: "sheet.txt", content: sampleSheet, want: sheetNone},
		{name: "wxmx not a zip", file: "bad.wxmx", content: "definitely not zip", want: sheetNone},
		{name: "empty wxmx", file: "empty.wxmx", content: "", want: sheetNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}
			got, err := detectSheet(path)
			if err != nil {
				t.Fatalf("detectSheet() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("detectSheet() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("wxmx container", func(t *testing.T) {
		got, err := detectSheet(wxmx)
		if err != nil {
			t.Fatalf("detectSheet() error = %v", err)
		}
		if got != sheetWxmx {
			t.Errorf("detectSheet() = %v, want %v", got, sheetWxmx)
		}
	})
}

func TestDetectSheet_NonExistent(t *testing.T) {
	if _, err := detectSheet("/nonexistent/file.wxmx"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
	// unknown extensions are not even opened
	if _, err := detectSheet("/nonexistent/file.txt"); err != nil {
		t.Errorf("detectSheet() error = %v", err)
	}
}
