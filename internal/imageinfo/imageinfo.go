// Package imageinfo validates cover image bytes and measures them.
//
// A cover is only handed to TagLib after it fully decodes. The decoded image
// supplies the width, height and bits-per-pixel that FLAC and Xiph picture
// blocks record alongside the data.
package imageinfo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmpty is returned for a zero-length buffer.
var ErrEmpty = errors.New("empty image data")

// Info describes a decoded image.
type Info struct {
	Format   string // decoder name: "png", "jpeg", "gif", "bmp", "tiff", "webp"
	MIMEType string
	Width    int
	Height   int
	Depth    int // bits per pixel
}

var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"webp": "image/webp",
}

// Decode fully decodes data and reports its format and measurements.
func Decode(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, ErrEmpty
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("decode: %w", err)
	}

	bounds := img.Bounds()
	mime, ok := mimeTypes[format]
	if !ok {
		mime = "image/" + format
	}

	return Info{
		Format:   format,
		MIMEType: mime,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Depth:    Depth(img),
	}, nil
}

// SameMIME reports whether two MIME strings name the same image encoding.
// "image/jpg" is a common misspelling of "image/jpeg" and is accepted.
func SameMIME(a, b string) bool {
	return canonicalMIME(a) == canonicalMIME(b)
}

func canonicalMIME(m string) string {
	if m == "image/jpg" {
		return "image/jpeg"
	}
	return m
}

// Depth returns the bits per pixel of img as it would be stored uncompressed.
// Fully opaque images are counted without an alpha channel.
func Depth(img image.Image) int {
	switch im := img.(type) {
	case *image.Gray, *image.Alpha:
		return 8
	case *image.Gray16, *image.Alpha16:
		return 16
	case *image.RGBA:
		return withAlpha(im.Opaque(), 24, 32)
	case *image.NRGBA:
		return withAlpha(im.Opaque(), 24, 32)
	case *image.RGBA64:
		return withAlpha(im.Opaque(), 48, 64)
	case *image.NRGBA64:
		return withAlpha(im.Opaque(), 48, 64)
	case *image.YCbCr:
		return 24
	case *image.NYCbCrA, *image.CMYK:
		return 32
	case *image.Paletted:
		return withAlpha(paletteOpaque(im.Palette), 24, 32)
	default:
		return 32
	}
}

func withAlpha(opaque bool, without, with int) int {
	if opaque {
		return without
	}
	return with
}

func paletteOpaque(p color.Palette) bool {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return false
		}
	}
	return true
}
