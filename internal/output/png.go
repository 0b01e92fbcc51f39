package output

import (
	"image"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/pkg/errors"
)

// PNGWriter persists images as PNG files.
type PNGWriter struct{}

// Save encodes img as PNG at path, replacing any existing file.
func (PNGWriter) Save(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", dir)
	}
	return nil
}
