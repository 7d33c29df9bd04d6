package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/multierr"
)

const (
	// MimeType is stored uncompressed as the first entry of every wxmx file.
	MimeType = "text/x-wxmathml"
	// ContentName is the worksheet document inside the container.
	ContentName = "content.xml"

	mimetypeName = "mimetype"
)

var (
	ErrNoContent = errors.New("archive has no " + ContentName)
	ErrMimeType  = errors.New("archive is not a wxmx worksheet")
)

// Wxmx is an opened worksheet container.
type Wxmx struct {
	rc      *zip.ReadCloser
	names   []string
	Content []byte
}

// OpenWxmx opens the container, checks its entries and reads the worksheet
// document. The caller must Close the result.
func OpenWxmx(name string) (_ *Wxmx, err error) {
	rc, err := zip.OpenReader(name)
	if err != nil {
		return nil, fmt.Errorf("unable to open archive (%s): %w", name, err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, rc.Close())
		}
	}()

	files, err := sortedFiles(&rc.Reader)
	if err != nil {
		return nil, err
	}

	w := &Wxmx{rc: rc}
	for _, f := range files {
		switch f.Name {
		case mimetypeName:
			data, err := readEntry(f)
			if err != nil {
				return nil, err
			}
			if string(data) != MimeType {
				return nil, fmt.Errorf("%w: mimetype %q", ErrMimeType, data)
			}
		case ContentName:
			if w.Content, err = readEntry(f); err != nil {
				return nil, err
			}
		}
		w.names = append(w.names, f.Name)
	}
	if w.Content == nil {
		return nil, ErrNoContent
	}
	return w, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("unable to open archive entry (%s): %w", f.Name, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read archive entry (%s): %w", f.Name, err)
	}
	return data, nil
}

// FS exposes container entries, images referenced by the document are read
// from here.
func (w *Wxmx) FS() fs.FS {
	return w.rc
}

// Names lists regular entries in natural order.
func (w *Wxmx) Names() []string {
	return w.names
}

func (w *Wxmx) Close() error {
	return w.rc.Close()
}

// WriteWxmx creates a worksheet container at name. Entries of files are
// stored in natural name order after the document. With fix set the
// archive is rewritten without data descriptors, some zip readers cannot
// handle them.
func WriteWxmx(name string, content []byte, files map[string][]byte, fix bool) error {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if !fix {
		return writeWxmx(name, content, files)
	}

	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	if err := writeWxmx(tmpName, content, files); err != nil {
		return err
	}
	return copyZipWithoutDataDescriptors(tmpName, name)
}

func writeWxmx(name string, content []byte, files map[string][]byte) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	zw := zip.NewWriter(f)
	defer func() {
		err = multierr.Append(err, zw.Close())
	}()

	if err := writeMimetype(zw); err != nil {
		return fmt.Errorf("unable to write mimetype: %w", err)
	}
	if err := writeDataToZip(zw, ContentName, content); err != nil {
		return fmt.Errorf("unable to write document: %w", err)
	}

	names := make([]string, 0, len(files))
	for n := range files {
		if n == mimetypeName || n == ContentName {
			continue
		}
		if !isSafePath(n) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", n)
		}
		names = append(names, n)
	}
	sortNatural(names)
	for _, n := range names {
		if err := writeDataToZip(zw, n, files[n]); err != nil {
			return fmt.Errorf("unable to write file %s: %w", n, err)
		}
	}
	return nil
}

func writeMimetype(zw *zip.Writer) error {
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   mimetypeName,
		Method: zip.Store,
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, MimeType)
	return err
}

func writeDataToZip(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func copyZipWithoutDataDescriptors(from, to string) (err error) {

	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer func() {
		err = multierr.Append(err, w.Close())
	}()

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}
