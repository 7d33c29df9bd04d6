// Package archive reads and writes wxmx worksheet containers on top of
// "archive/zip".
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to Walk.
// The file argument is the zip.File structure for file in archive which satisfies
// match condition. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk walks all files in the archive with names starting with pattern in
// natural name order, calling walkFn for each item. Archives with absolute
// entry names or names containing ".." are rejected.
func Walk(archive, pattern string, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	files, err := sortedFiles(&r.Reader)
	if err != nil {
		return err
	}
	for _, f := range files {
		if strings.HasPrefix(f.Name, pattern) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// sortedFiles checks entry names and returns regular files ordered
// naturally, so "image2.png" comes before "image10.png".
func sortedFiles(r *zip.Reader) ([]*zip.File, error) {
	byName := make(map[string]*zip.File, len(r.File))
	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return nil, fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		if _, ok := byName[name]; !ok {
			names = append(names, name)
		}
		byName[name] = f
	}
	sortNatural(names)

	files := make([]*zip.File, 0, len(names))
	for _, name := range names {
		files = append(files, byName[name])
	}
	return files, nil
}

func sortNatural(names []string) {
	sort.Sort(natural.StringSlice(names))
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
