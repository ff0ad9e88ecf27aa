package types

import (
	"bytes"
	"io"

	"github.com/simonhull/coverart/internal/binary"
)

// Format is the container format sniffed from a file's leading bytes.
//
// TagLib makes its own decision when opening a file; Format is reported for
// callers and logs and never decides which native code path runs.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatFLAC represents FLAC audio files.
	FormatFLAC
	// FormatMP3 represents MPEG audio files.
	FormatMP3
	// FormatM4A represents MP4 audio files.
	FormatM4A
	// FormatM4B represents MP4 audiobook files.
	FormatM4B
	// FormatOgg represents Ogg Vorbis audio files.
	FormatOgg
	// FormatOpus represents Ogg Opus audio files.
	FormatOpus
	// FormatWAV represents RIFF WAVE audio files.
	FormatWAV
	// FormatAIFF represents AIFF and AIFF-C audio files.
	FormatAIFF
	// FormatASF represents ASF containers (WMA).
	FormatASF
)

var formatNames = map[Format]string{
	FormatUnknown: "Unknown",
	FormatFLAC:    "FLAC",
	FormatMP3:     "MP3",
	FormatM4A:     "M4A",
	FormatM4B:     "M4B",
	FormatOgg:     "Ogg Vorbis",
	FormatOpus:    "Opus",
	FormatWAV:     "WAV",
	FormatAIFF:    "AIFF",
	FormatASF:     "ASF",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "Unknown"
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatFLAC:
		return []string{".flac"}
	case FormatMP3:
		return []string{".mp3"}
	case FormatM4A:
		return []string{".m4a", ".mp4", ".m4p"}
	case FormatM4B:
		return []string{".m4b"}
	case FormatOgg:
		return []string{".ogg", ".oga"}
	case FormatOpus:
		return []string{".opus"}
	case FormatWAV:
		return []string{".wav"}
	case FormatAIFF:
		return []string{".aiff", ".aif"}
	case FormatASF:
		return []string{".wma", ".asf"}
	default:
		return nil
	}
}

// asfHeaderGUID is the ASF Header Object GUID in its on-disk byte order.
var asfHeaderGUID = []byte{
	0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11,
	0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C,
}

// DetectFormat determines the container format by examining magic bytes.
//
// Detection only looks at signatures at the start of the file and does not
// validate the rest of the structure.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) { //nolint:gocyclo // one branch per signature
	if size < 4 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)

	magic, err := sr.Bytes(0, 4, "file magic bytes")
	if err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	switch {
	case string(magic) == "fLaC":
		return FormatFLAC, nil
	case string(magic[:3]) == "ID3":
		return FormatMP3, nil
	case magic[0] == 0xFF && (magic[1]&0xE0) == 0xE0:
		return FormatMP3, nil
	case string(magic) == "OggS":
		return detectOgg(sr), nil
	}

	if size >= 12 {
		tag, err := sr.Bytes(8, 4, "RIFF/FORM type")
		if err == nil {
			if string(magic) == "RIFF" && string(tag) == "WAVE" {
				return FormatWAV, nil
			}
			if string(magic) == "FORM" && (string(tag) == "AIFF" || string(tag) == "AIFC") {
				return FormatAIFF, nil
			}
		}
	}

	if size >= int64(len(asfHeaderGUID)) {
		guid, err := sr.Bytes(0, len(asfHeaderGUID), "ASF header GUID")
		if err == nil && bytes.Equal(guid, asfHeaderGUID) {
			return FormatASF, nil
		}
	}

	return detectMP4(sr, path)
}

// detectOgg distinguishes Opus from other Ogg streams by the first packet.
func detectOgg(sr *binary.SafeReader) Format {
	// 27 byte page header, segment table, then the first packet.
	segCount, err := binary.Read[uint8](sr, 26, "segment count")
	if err != nil {
		return FormatOgg
	}
	packetOffset := int64(27 + int(segCount))
	codec, err := sr.Bytes(packetOffset, 8, "codec magic")
	if err == nil && string(codec) == "OpusHead" {
		return FormatOpus
	}
	return FormatOgg
}

// detectMP4 checks for an ftyp atom and classifies its major brand.
func detectMP4(sr *binary.SafeReader, path string) (Format, error) {
	const (
		ftypMagic = uint32(0x66747970) // "ftyp"
		m4bBrand  = uint32(0x4D344220) // "M4B "
		m4aBrand  = uint32(0x4D344120) // "M4A "
		mp42Brand = uint32(0x6D703432) // "mp42"
		isomBrand = uint32(0x69736F6D) // "isom"
	)

	atomType, err := binary.Read[uint32](sr, 4, "ftyp atom type")
	if err != nil || atomType != ftypMagic {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "unrecognized file signature",
		}
	}

	atomSize, err := binary.Read[uint32](sr, 0, "ftyp atom size")
	if err != nil || atomSize < 16 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "ftyp atom too small",
		}
	}

	brand, err := binary.Read[uint32](sr, 8, "major brand")
	if err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read major brand",
		}
	}

	switch brand {
	case m4bBrand:
		return FormatM4B, nil
	case m4aBrand, mp42Brand, isomBrand:
		return FormatM4A, nil
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "unsupported file brand",
	}
}
