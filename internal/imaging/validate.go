// Package imaging validates inbound product images and fetches them
// from remote URLs.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// MaxImageSize is the byte ceiling for inbound images (10 MiB).
const MaxImageSize = 10 * 1024 * 1024

// Validation failures are client-caused and never retried.
var (
	ErrInvalidFormat = errors.New("invalid image format")
	ErrTooLarge      = errors.New("image too large")
	ErrDecode        = errors.New("image could not be decoded")
)

// supportedExtensions is the allow-list applied when a filename is present.
var supportedExtensions = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
	"webp": true,
}

// Image is the validated result. Bytes are the original, untouched
// request bytes; RGB is the decoded image normalized to three channels
// and exists only as a decode sanity check.
type Image struct {
	Bytes       []byte
	ContentType string
	Format      string
	RGB         *image.RGBA
}

// Validate checks the declared content type, the filename extension (when
// a filename is given), the size ceiling, and that the bytes decode as a
// raster image. Local and deterministic, no retries.
func Validate(filename, contentType string, data []byte) (*Image, error) {
	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: content type %q is not image/*", ErrInvalidFormat, contentType)
	}

	if filename != "" {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
		if !supportedExtensions[ext] {
			return nil, fmt.Errorf("%w: unsupported extension %q, supported: jpeg, jpg, png, gif, bmp, webp", ErrInvalidFormat, ext)
		}
	}

	if len(data) > MaxImageSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d bytes", ErrTooLarge, len(data), MaxImageSize)
	}

	decoded, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &Image{
		Bytes:       data,
		ContentType: contentType,
		Format:      format,
		RGB:         normalizeRGB(decoded),
	}, nil
}

// normalizeRGB redraws the decoded image into an RGBA buffer over an
// opaque background, discarding any alpha channel.
func normalizeRGB(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Over)
	return dst
}

// IsValidationError reports whether err belongs to the client-caused
// validation taxonomy. Service boundaries use it to pick between
// invalid-argument and internal error envelopes.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrTooLarge) ||
		errors.Is(err, ErrDecode) ||
		errors.Is(err, ErrNotImage) ||
		errors.Is(err, ErrEmptyURL) ||
		errors.Is(err, ErrDownload)
}
