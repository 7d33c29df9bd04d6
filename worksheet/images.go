package worksheet

import (
	"bytes"
	"fmt"
	"path"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"mxc/cell"
	"mxc/utils/images"
)

// Images collects data of every picture in the document for storing next
// to it in a container. Pictures without original bytes are encoded,
// pictures loaded from outside the container get fresh names.
func (d *Document) Images() (map[string][]byte, error) {
	files := make(map[string][]byte)
	n := 0
	store := func(pic *cell.Picture) error {
		if pic == nil {
			return nil
		}
		if pic.Data == nil && pic.Image == nil {
			d.log.Warn("Skipping broken image", zap.String("name", pic.Name), zap.String("reason", pic.Err))
			return nil
		}
		if _, dup := files[pic.Name]; dup || !containerName(pic.Name) {
			for {
				n++
				name := "image" + strconv.Itoa(n) + "." + pictureExt(pic)
				if _, taken := files[name]; !taken {
					pic.Name = name
					break
				}
			}
		}
		data := pic.Data
		if data == nil {
			var buf bytes.Buffer
			if err := images.Encode(&buf, pic.Image, pic.Name); err != nil {
				return fmt.Errorf("unable to store image %s: %w", pic.Name, err)
			}
			data = buf.Bytes()
		}
		files[pic.Name] = data
		return nil
	}

	for c := range cell.Tree(d.head()) {
		switch c := c.(type) {
		case *cell.ImgCell:
			if err := store(c.Picture()); err != nil {
				return nil, err
			}
		case *cell.SlideShowCell:
			for _, f := range c.Frames() {
				if err := store(f); err != nil {
					return nil, err
				}
			}
		}
	}
	return files, nil
}

// containerName reports whether name can be used as is inside container:
// plain relative name with an extension.
func containerName(name string) bool {
	if name == "" || strings.ContainsAny(name, `/\:`) {
		return false
	}
	return path.Ext(name) != ""
}

func pictureExt(pic *cell.Picture) string {
	if pic.Data == nil {
		return "png"
	}
	return images.Extension(pic.Format)
}
