// Encodes rasterized images into files, choosing the
// format from the file extension.
package svgout

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Stdout is the output path designating the standard output.
const Stdout = "-"

// ErrUnsupportedFormat is returned for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Encoder describes how to encode an image into a writer.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image) error { return png.Encode(w, img) }

type jpegEncoder struct{}

func (jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
}

type bmpEncoder struct{}

func (bmpEncoder) Encode(w io.Writer, img image.Image) error { return bmp.Encode(w, img) }

type tiffEncoder struct{}

func (tiffEncoder) Encode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

var (
	PNG  Encoder = pngEncoder{}
	JPEG Encoder = jpegEncoder{}
	BMP  Encoder = bmpEncoder{}
	TIFF Encoder = tiffEncoder{}
)

var encoders = map[string]Encoder{
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
}

// ForPath returns the encoder matching the extension of `path`.
// PNG is used for paths without extension and for the standard output.
func ForPath(path string) (Encoder, error) {
	if path == Stdout {
		return PNG, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return PNG, nil
	}
	enc, ok := encoders[ext]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}
	return enc, nil
}

// WriteFile encodes `img` into the file `path`, created or truncated.
// The Stdout path writes to the standard output.
func WriteFile(path string, img image.Image, enc Encoder) error {
	if path == Stdout {
		return errors.Wrap(enc.Encode(os.Stdout, img), "can't encode image")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "can't create output file")
	}
	if err = enc.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "can't encode image to %s", path)
	}
	return errors.Wrapf(f.Close(), "can't write %s", path)
}
