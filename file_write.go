package coverart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/simonhull/coverart/internal/imageinfo"
	"github.com/simonhull/coverart/internal/taglib"
	"github.com/simonhull/coverart/internal/types"
)

// WriteCover replaces the file's cover art with data and saves the file.
//
// data must decode as an image (PNG, JPEG, GIF, BMP, TIFF or WebP);
// otherwise an *ImageDecodeError is returned and the file is not touched.
// The decoded width, height and bit depth are stored alongside the picture
// where the container has room for them (FLAC and Xiph picture blocks).
//
// An empty mime is replaced by the type detected from data. Existing covers
// are removed, so a following ReadCover returns exactly data and mime.
//
// Example:
//
//	err := file.WriteCover(jpegBytes, "image/jpeg",
//	    coverart.WithBackup(".bak"),
//	    coverart.WithValidation(),
//	)
func (f *File) WriteCover(data []byte, mime string, opts ...WriteOption) error { //nolint:gocyclo // sequential write steps
	if f.native == nil {
		return ErrClosed
	}

	options := defaultWriteOptions()
	for _, opt := range opts {
		opt(options)
	}

	info, err := imageinfo.Decode(data)
	if err != nil {
		return &ImageDecodeError{Err: err}
	}

	switch {
	case mime == "":
		mime = info.MIMEType
	case !utf8.ValidString(mime) || strings.ContainsRune(mime, 0):
		return &UTF8Error{Path: f.Path, What: "mime type"}
	case options.strictMIME && !imageinfo.SameMIME(mime, info.MIMEType):
		return &MIMEMismatchError{Declared: mime, Detected: info.MIMEType}
	}

	// Get original file's mod time if we need to preserve it
	var origInfo os.FileInfo
	if options.preserveModTime {
		if stat, err := os.Stat(f.Path); err == nil {
			origInfo = stat
		}
	}

	if options.backupSuffix != "" {
		if err := copyFile(f.Path, f.Path+options.backupSuffix); err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
	}

	meta := taglib.Meta{Width: info.Width, Height: info.Height, Depth: info.Depth}
	if status := f.native.WriteCover(data, mime, meta); status != taglib.StatusOK {
		kind := types.KindFromStatus(int(status))
		f.log.Debug("write cover failed", "status", int(status), "kind", kind.String())
		return &TagLibError{Path: f.Path, Op: "write cover", Kind: kind}
	}

	f.log.Debug("wrote cover", "mime", mime, "bytes", len(data),
		"width", info.Width, "height", info.Height, "depth", info.Depth)

	if origInfo != nil {
		_ = os.Chtimes(f.Path, origInfo.ModTime(), origInfo.ModTime()) //nolint:errcheck // Non-fatal: cover was written successfully
	}

	if options.validate {
		if err := validateWrittenCover(f.Path, data, mime); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenCover re-opens the file and compares the stored cover.
func validateWrittenCover(path string, data []byte, mime string) error {
	native, err := openNative(path)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}
	defer native.Close()

	got, status := native.ReadCover()
	if status != taglib.StatusOK {
		return &TagLibError{Path: path, Op: "read cover", Kind: types.KindFromStatus(int(status))}
	}
	if !bytes.Equal(got.Data, data) {
		return fmt.Errorf("cover mismatch: got %d bytes, want %d", len(got.Data), len(data))
	}
	// MP4 stores a format code rather than a MIME string.
	if !imageinfo.SameMIME(got.MIMEType, mime) && got.MIMEType != "" {
		return fmt.Errorf("mime mismatch: got %q, want %q", got.MIMEType, mime)
	}
	return nil
}

// WriteCoverFile opens path, writes the cover and closes it.
func WriteCoverFile(path string, data []byte, mime string, opts ...WriteOption) error {
	file, err := Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return file.WriteCover(data, mime, opts...)
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	stat, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, stat.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	_, err = io.Copy(out, in)
	return err
}
