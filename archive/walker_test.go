package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

type entry struct {
	name    string
	content string
}

func createZip(t *testing.T, entries []entry) string {
	t.Helper()

	zipPath := filepath.Join(t.TempDir(), "test.wxmx")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for _, e := range entries {
		fw, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", e.name, err)
		}
		if _, err := fw.Write([]byte(e.content)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	return zipPath
}

func TestWalk(t *testing.T) {
	zipPath := createZip(t, []entry{
		{"mimetype", MimeType},
		{"content.xml", "<wxMaximaDocument/>"},
		{"image10.png", "10"},
		{"image2.png", "2"},
		{"image1.png", "1"},
		{"data/plot.gnuplot", "plot x"},
	})

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"images in natural order", "image", []string{"image1.png", "image2.png", "image10.png"}},
		{"subdirectory", "data/", []string{"data/plot.gnuplot"}},
		{"no match", "nonexistent/", nil},
		{"everything", "", []string{"content.xml", "data/plot.gnuplot", "image1.png", "image2.png", "image10.png", "mimetype"}},
		{"case sensitive", "Image", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visited []string
			err := Walk(zipPath, tt.pattern, func(archive string, file *zip.File) error {
				if archive != zipPath {
					t.Errorf("archive = %s, want %s", archive, zipPath)
				}
				visited = append(visited, file.Name)
				return nil
			})
			if err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			if !slices.Equal(visited, tt.want) {
				t.Errorf("visited %v, want %v", visited, tt.want)
			}
		})
	}
}

func TestWalk_InvalidArchive(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		err := Walk("/nonexistent/file.wxmx", "", func(archive string, file *zip.File) error {
			return nil
		})
		if err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	t.Run("invalid zip file", func(t *testing.T) {
		invalidZip := filepath.Join(t.TempDir(), "invalid.wxmx")
		if err := os.WriteFile(invalidZip, []byte("not a zip file"), 0644); err != nil {
			t.Fatalf("Failed to create invalid zip: %v", err)
		}
		err := Walk(invalidZip, "", func(archive string, file *zip.File) error {
			return nil
		})
		if err == nil {
			t.Error("Expected error for invalid zip file")
		}
	})

	t.Run("path traversal", func(t *testing.T) {
		zipPath := createZip(t, []entry{
			{"content.xml", "<wxMaximaDocument/>"},
			{"../evil.png", "x"},
		})
		var visited int
		err := Walk(zipPath, "", func(archive string, file *zip.File) error {
			visited++
			return nil
		})
		if err == nil {
			t.Error("Expected error for unsafe entry")
		}
		if visited != 0 {
			t.Errorf("visited %d files before rejecting archive", visited)
		}
	})
}

func TestWalk_WithDirectories(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "test.wxmx")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(zipFile)
	dirHeader := &zip.FileHeader{Name: "mydir/"}
	dirHeader.SetMode(os.ModeDir | 0755)
	if _, err := w.CreateHeader(dirHeader); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	fw, err := w.Create("mydir/file.txt")
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	fw.Write([]byte("content"))
	w.Close()
	zipFile.Close()

	var visited []string
	err = Walk(zipPath, "mydir/", func(archive string, file *zip.File) error {
		visited = append(visited, file.Name)
		return nil
	})
	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}
	if !slices.Equal(visited, []string{"mydir/file.txt"}) {
		t.Errorf("visited %v, want file only, not directory", visited)
	}
}

func TestWalk_EarlyTermination(t *testing.T) {
	var entries []entry
	for i := range 5 {
		entries = append(entries, entry{"files/file" + string(rune('0'+i)) + ".txt", "content"})
	}
	zipPath := createZip(t, entries)

	var visited int
	stopErr := errors.New("stop walking")
	err := Walk(zipPath, "files/", func(archive string, file *zip.File) error {
		visited++
		if visited == 2 {
			return stopErr
		}
		return nil
	})
	if !errors.Is(err, stopErr) {
		t.Errorf("Walk() error = %v, want %v", err, stopErr)
	}
	if visited != 2 {
		t.Errorf("visited %d files, want 2 (early termination)", visited)
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"content.xml", true},
		{"images/image1.png", true},
		{"a..b.png", true},
		{"/etc/passwd", false},
		{`\windows\system.ini`, false},
		{"../up.png", false},
		{"images/../../up.png", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSafePath(tt.name); got != tt.want {
				t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
