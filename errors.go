package coverart

import (
	"errors"

	"github.com/simonhull/coverart/internal/types"
)

// InvalidPathError is an alias to types.InvalidPathError.
// Re-exporting from internal/types to maintain public API.
type InvalidPathError = types.InvalidPathError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
type UnsupportedFormatError = types.UnsupportedFormatError

// TagLibError is an alias to types.TagLibError.
// Re-exporting from internal/types to maintain public API.
type TagLibError = types.TagLibError

// TagErrorKind is an alias to types.TagErrorKind.
type TagErrorKind = types.TagErrorKind

// Re-export all tag error kinds.
const (
	KindUnknown           = types.KindUnknown
	KindMP3NoID3v2        = types.KindMP3NoID3v2
	KindMP4NoCoverFrame   = types.KindMP4NoCoverFrame
	KindMP4EmptyCoverList = types.KindMP4EmptyCoverList
	KindASFNoCoverArt     = types.KindASFNoCoverArt
	KindID3v2NoCoverArt   = types.KindID3v2NoCoverArt
	KindXiphNoCoverArt    = types.KindXiphNoCoverArt
	KindUnsupportedFile   = types.KindUnsupportedFile
	KindNoID3v2OrXiph     = types.KindNoID3v2OrXiph
	KindSaveFailed        = types.KindSaveFailed
)

// UTF8Error is an alias to types.UTF8Error.
type UTF8Error = types.UTF8Error

// ImageDecodeError is an alias to types.ImageDecodeError.
type ImageDecodeError = types.ImageDecodeError

// MIMEMismatchError is an alias to types.MIMEMismatchError.
type MIMEMismatchError = types.MIMEMismatchError

// CoverTooLargeError is an alias to types.CoverTooLargeError.
type CoverTooLargeError = types.CoverTooLargeError

var (
	// ErrInvalidPath matches every *InvalidPathError.
	ErrInvalidPath = types.ErrInvalidPath

	// ErrClosed is returned by methods called on a closed File.
	ErrClosed = types.ErrClosed
)

// Sentinels for errors.Is. Each matches any *TagLibError of the same kind,
// whatever its Path and Op.
var (
	ErrNoID3v2Tag        error = &TagLibError{Kind: KindMP3NoID3v2}
	ErrNoMP4CoverFrame   error = &TagLibError{Kind: KindMP4NoCoverFrame}
	ErrEmptyMP4CoverList error = &TagLibError{Kind: KindMP4EmptyCoverList}
	ErrNoASFCoverArt     error = &TagLibError{Kind: KindASFNoCoverArt}
	ErrNoID3v2CoverArt   error = &TagLibError{Kind: KindID3v2NoCoverArt}
	ErrNoXiphCoverArt    error = &TagLibError{Kind: KindXiphNoCoverArt}
	ErrUnsupportedFile   error = &TagLibError{Kind: KindUnsupportedFile}
	ErrNoID3v2OrXiph     error = &TagLibError{Kind: KindNoID3v2OrXiph}
	ErrSaveFailed        error = &TagLibError{Kind: KindSaveFailed}
	ErrUnknown           error = &TagLibError{Kind: KindUnknown}
)

// IsNoCover reports whether err means the file simply carries no cover,
// as opposed to a broken or unsupported file.
//
//	pic, err := coverart.ReadCoverFile(path)
//	if coverart.IsNoCover(err) {
//		// fall back to a folder image
//	}
func IsNoCover(err error) bool {
	var tagErr *TagLibError
	if errors.As(err, &tagErr) {
		return tagErr.Kind.NoCover()
	}
	return false
}
