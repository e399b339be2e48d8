// Package images is the image collaborator: it validates uploads, scales
// them down and writes them to the upload directory.
package images

import (
	"errors"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// MaxBytes is the largest accepted upload.
	MaxBytes = 5 * 1024 * 1024
	// MaxDimension bounds the stored width and height.
	MaxDimension = 1200
	jpegQuality  = 80
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ErrUnsupportedType is returned for content types outside the allowed set.
var ErrUnsupportedType = errors.New("unsupported image type")

// ValidType reports whether the declared content type is accepted.
func ValidType(contentType string) bool {
	return allowedTypes[contentType]
}

// Process decodes an upload, scales it to fit MaxDimension and stores it as
// a JPEG under dir with a random name. Returns the public URL path.
func Process(r io.Reader, dir string) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst := scaleToFit(src, MaxDimension)

	filename := uuid.NewString() + ".jpg"
	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := jpeg.Encode(f, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

// scaleToFit shrinks img so neither side exceeds max. Images already small
// enough are returned unchanged.
func scaleToFit(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}

	if w > h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
