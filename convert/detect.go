package convert

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

type sheetKind int

const (
	sheetNone sheetKind = iota
	sheetXML
	sheetWxmx
)

// enough to see past xml declaration and leading comment
const detectHeadSize = 4096

var documentTag = []byte("<wxMaximaDocument")

// detectSheet checks if file at path is a worksheet, extension selects
// expected kind and file content must agree with it.
func detectSheet(path string) (sheetKind, error) {
	var want sheetKind
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wxmx":
		want = sheetWxmx
	case ".xml":
		want = sheetXML
	default:
		return sheetNone, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return sheetNone, err
	}
	defer f.Close()

	head := make([]byte, detectHeadSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return sheetNone, err
	}
	head = head[:n]

	switch want {
	case sheetWxmx:
		if !filetype.Is(head, "zip") {
			return sheetNone, nil
		}
	case sheetXML:
		if !bytes.Contains(head, documentTag) {
			return sheetNone, nil
		}
	}
	return want, nil
}
