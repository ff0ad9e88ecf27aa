package coverart

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/coverart/internal/imageinfo"
	"github.com/simonhull/coverart/internal/taglib"
	"github.com/simonhull/coverart/internal/types"
)

// nativeFile is the part of *taglib.File that File depends on.
type nativeFile interface {
	ReadCover() (taglib.Picture, taglib.Status)
	WriteCover(data []byte, mime string, meta taglib.Meta) taglib.Status
	Close() bool
}

// openNative opens the native handle. Tests replace it.
var openNative = func(path string) (nativeFile, error) {
	f, err := taglib.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// File is an audio file opened through TagLib.
//
// File holds one native handle, released by Close. Always call Close when
// done:
//
//	file, err := coverart.Open("song.flac")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//
// A File is not safe for concurrent use. Open one File per goroutine.
type File struct {
	// Path to the audio file
	Path string

	// Container format sniffed from magic bytes (informational)
	Format Format

	// File size in bytes
	Size int64

	native nativeFile
	opts   *openOptions
	log    *slog.Logger
}

// Open opens an audio file with TagLib.
//
// Any failure to open is an *InvalidPathError (errors.Is ErrInvalidPath):
// an empty name, a name containing a NUL byte, a missing or unreadable
// file, a directory, or a file TagLib does not recognize.
//
// Example:
//
//	file, err := coverart.Open("song.flac")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//
//	pic, err := file.ReadCover()
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if path == "" {
		return nil, &InvalidPathError{Path: path, Reason: "empty file name"}
	}
	if strings.ContainsRune(path, 0) {
		return nil, &InvalidPathError{Path: path, Reason: "file name contains NUL byte"}
	}

	format, size, err := sniff(path)
	if err != nil {
		return nil, err
	}

	native, err := openNative(path)
	if err != nil {
		return nil, &InvalidPathError{Path: path, Reason: "not a recognized media file", Err: err}
	}

	log := options.logger.With("path", path, "format", format.String())
	log.Debug("opened file", "size", size)

	return &File{
		Path:   path,
		Format: format,
		Size:   size,
		native: native,
		opts:   options,
		log:    log,
	}, nil
}

// sniff stats path and detects its container from magic bytes. Only the
// stat can fail; an unknown signature is left for TagLib to judge.
func sniff(path string) (Format, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, 0, &InvalidPathError{Path: path, Reason: "open file", Err: err}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return FormatUnknown, 0, &InvalidPathError{Path: path, Reason: "stat file", Err: err}
	}
	if stat.IsDir() {
		return FormatUnknown, 0, &InvalidPathError{Path: path, Reason: "is a directory"}
	}

	format, err := types.DetectFormat(f, stat.Size(), path)
	if err != nil {
		format = FormatUnknown
	}
	return format, stat.Size(), nil
}

// OpenContext opens a file with context support for cancellation.
//
// This is a thin wrapper around Open() that checks context before starting.
// TagLib calls themselves cannot be interrupted.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// ReadCover reads the embedded cover.
//
// When the file has several pictures the front cover is preferred. A file
// without a cover yields a *TagLibError whose kind names the container
// (see IsNoCover).
func (f *File) ReadCover() (*Picture, error) {
	if f.native == nil {
		return nil, ErrClosed
	}

	raw, status := f.native.ReadCover()
	if status != taglib.StatusOK {
		kind := types.KindFromStatus(int(status))
		f.log.Debug("read cover failed", "status", int(status), "kind", kind.String())
		return nil, &TagLibError{Path: f.Path, Op: "read cover", Kind: kind}
	}

	if !utf8.ValidString(raw.MIMEType) {
		return nil, &UTF8Error{Path: f.Path, What: "mime type"}
	}
	if limit := f.opts.maxCoverSize; limit > 0 && len(raw.Data) > limit {
		return nil, &CoverTooLargeError{Path: f.Path, Size: len(raw.Data), Limit: limit}
	}

	pic := &Picture{
		Data:     raw.Data,
		MIMEType: raw.MIMEType,
		Type:     PictureType(raw.Type),
	}

	if f.opts.measure {
		info, err := imageinfo.Decode(pic.Data)
		if err != nil {
			f.log.Debug("measure cover failed", "error", err)
		} else {
			pic.Width, pic.Height, pic.Depth = info.Width, info.Height, info.Depth
		}
	}

	f.log.Debug("read cover", "mime", pic.MIMEType, "bytes", len(pic.Data))
	return pic, nil
}

// Close releases the native handle.
//
// Close is idempotent: only the first call frees the handle.
func (f *File) Close() error {
	if f.native == nil {
		return nil
	}
	f.native.Close()
	f.native = nil
	f.log.Debug("closed file")
	return nil
}

// ReadCoverFile opens path, reads its cover and closes it.
func ReadCoverFile(path string, opts ...Option) (*Picture, error) {
	file, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return file.ReadCover()
}

// CoverResult is the outcome of reading one file in ReadCovers.
type CoverResult struct {
	Path    string
	Picture *Picture
	Err     error
}

// ReadCovers reads covers from multiple files concurrently.
//
// Files are read in parallel using up to runtime.NumCPU() goroutines, each
// with its own native handle. Results are returned in the same order as the
// input paths. A file that fails to open or read reports its error in
// CoverResult.Err; only cancellation of ctx fails the whole call.
//
// Example:
//
//	results, err := coverart.ReadCovers(ctx, paths)
//	if err != nil {
//		return err
//	}
//	for _, r := range results {
//		if r.Err != nil {
//			continue
//		}
//		fmt.Println(r.Path, r.Picture)
//	}
func ReadCovers(ctx context.Context, paths []string, opts ...Option) ([]CoverResult, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]CoverResult, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			pic, err := ReadCoverFile(path, opts...)
			results[i] = CoverResult{Path: path, Picture: pic, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("read covers: %w", err)
	}
	return results, nil
}
