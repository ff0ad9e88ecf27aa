package types

import (
	"errors"
	"fmt"
)

// ErrInvalidPath matches every *InvalidPathError with errors.Is.
var ErrInvalidPath = errors.New("invalid file name")

// ErrClosed is returned when a File is used after Close.
var ErrClosed = errors.New("file already closed")

// InvalidPathError is returned when a path cannot be opened by TagLib:
// the name is malformed, the file is missing or unreadable, or TagLib does
// not recognize it as a media file.
type InvalidPathError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InvalidPathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid file name: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: invalid file name: %s", e.Path, e.Reason)
}

func (e *InvalidPathError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidPath.
func (e *InvalidPathError) Is(target error) bool { return target == ErrInvalidPath }

// UnsupportedFormatError is returned when format sniffing finds no known signature.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// TagErrorKind enumerates the failures reported by the native tagging layer.
type TagErrorKind int

const (
	// KindUnknown covers any status code the binding does not recognize.
	KindUnknown TagErrorKind = iota
	// KindMP3NoID3v2 means an MPEG file carries no ID3v2 tag.
	KindMP3NoID3v2
	// KindMP4NoCoverFrame means an MP4 file has no covr item.
	KindMP4NoCoverFrame
	// KindMP4EmptyCoverList means the covr item holds no pictures.
	KindMP4EmptyCoverList
	// KindASFNoCoverArt means an ASF file has no WM/Picture attribute.
	KindASFNoCoverArt
	// KindID3v2NoCoverArt means the ID3v2 tag has no APIC frame.
	KindID3v2NoCoverArt
	// KindXiphNoCoverArt means the Xiph comment or FLAC metadata has no picture.
	KindXiphNoCoverArt
	// KindUnsupportedFile means TagLib opened a file type the binding cannot handle.
	KindUnsupportedFile
	// KindNoID3v2OrXiph means the file has neither an ID3v2 tag nor a Xiph comment.
	KindNoID3v2OrXiph
	// KindSaveFailed means TagLib could not write the modified tag back to disk.
	KindSaveFailed
)

var kindMessages = map[TagErrorKind]string{
	KindUnknown:           "unknown internal error",
	KindMP3NoID3v2:        "mp3 file does not include id3v2 tag",
	KindMP4NoCoverFrame:   "mp4 file does not include covr frame",
	KindMP4EmptyCoverList: "covr frame in mp4 file is empty",
	KindASFNoCoverArt:     "asf file does not include cover art",
	KindID3v2NoCoverArt:   "id3v2 tag does not include cover art",
	KindXiphNoCoverArt:    "xiph tag does not include cover art",
	KindUnsupportedFile:   "unsupported file format",
	KindNoID3v2OrXiph:     "both id3v2 and xiph tag not included",
	KindSaveFailed:        "failed to save file",
}

func (k TagErrorKind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return kindMessages[KindUnknown]
}

// NoCover reports whether the kind means the file simply has no picture,
// as opposed to a file the binding cannot handle or a failed write.
func (k TagErrorKind) NoCover() bool {
	switch k {
	case KindMP3NoID3v2, KindMP4NoCoverFrame, KindMP4EmptyCoverList,
		KindASFNoCoverArt, KindID3v2NoCoverArt, KindXiphNoCoverArt, KindNoID3v2OrXiph:
		return true
	default:
		return false
	}
}

// KindFromStatus maps a native status code to its error kind.
//
// Status 0 is success and has no kind; callers must check it first. Codes
// outside the documented set map to KindUnknown.
func KindFromStatus(code int) TagErrorKind {
	switch code {
	case 1:
		return KindMP3NoID3v2
	case 11:
		return KindMP4NoCoverFrame
	case 12:
		return KindMP4EmptyCoverList
	case 21:
		return KindASFNoCoverArt
	case 31:
		return KindID3v2NoCoverArt
	case 41:
		return KindXiphNoCoverArt
	case 91:
		return KindUnsupportedFile
	case 92:
		return KindNoID3v2OrXiph
	case 93:
		return KindSaveFailed
	default:
		return KindUnknown
	}
}

// TagLibError is a failure reported by the native tagging layer.
type TagLibError struct {
	Path string
	Op   string // "read cover" or "write cover"
	Kind TagErrorKind
}

func (e *TagLibError) Error() string {
	if e.Path == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Op, e.Kind)
}

// Is matches another *TagLibError of the same kind, so package-level
// sentinels work with errors.Is regardless of Path and Op.
func (e *TagLibError) Is(target error) bool {
	t, ok := target.(*TagLibError)
	return ok && t.Kind == e.Kind
}

// UTF8Error is returned when a string handed back by TagLib is not valid UTF-8.
type UTF8Error struct {
	Path string
	What string
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("%s: an error occurred while parsing %s: invalid utf-8", e.Path, e.What)
}

// ImageDecodeError is returned when cover bytes do not decode as an image.
type ImageDecodeError struct {
	Err error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("an error occurred while loading image: %v", e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }

// MIMEMismatchError is returned in strict mode when the declared MIME type
// does not match the decoded image.
type MIMEMismatchError struct {
	Declared string
	Detected string
}

func (e *MIMEMismatchError) Error() string {
	return fmt.Sprintf("declared mime type %q does not match image data (%s)", e.Declared, e.Detected)
}

// CoverTooLargeError is returned when a cover exceeds the configured size limit.
type CoverTooLargeError struct {
	Path  string
	Size  int
	Limit int
}

func (e *CoverTooLargeError) Error() string {
	return fmt.Sprintf("%s: cover of %d bytes exceeds limit of %d bytes", e.Path, e.Size, e.Limit)
}
