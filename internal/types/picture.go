package types

import "fmt"

// Picture is an embedded cover image.
//
// Data and MIMEType are always set on a successful read. Width, Height and
// Depth are filled when the image was decoded (always on write, on read only
// when measuring was requested).
type Picture struct {
	// Image binary data, owned by Go memory.
	Data []byte

	// MIME type as stored in the tag, e.g. "image/jpeg".
	MIMEType string

	// Picture role as stored in the tag. MP4 covers are always front covers.
	Type PictureType

	// Dimensions in pixels.
	Width  int
	Height int

	// Color depth in bits per pixel.
	Depth int
}

// PictureType categorizes the purpose of a picture.
//
// Values follow the ID3v2 APIC picture types, which FLAC and ASF share.
type PictureType int

const (
	PictureOther             PictureType = iota // Other
	PictureFileIcon                             // File icon (32x32 PNG)
	PictureOtherFileIcon                        // Other file icon
	PictureFrontCover                           // Front cover
	PictureBackCover                            // Back cover
	PictureLeaflet                              // Leaflet page
	PictureMedia                                // Media (CD/vinyl label)
	PictureLeadArtist                           // Lead artist/performer/soloist
	PictureArtist                               // Artist/performer
	PictureConductor                            // Conductor
	PictureBand                                 // Band/orchestra
	PictureComposer                             // Composer
	PictureLyricist                             // Lyricist/text writer
	PictureRecordingLocation                    // Recording location
	PictureDuringRecording                      // During recording
	PictureDuringPerformance                    // During performance
	PictureVideoCapture                         // Movie/video screen capture
	PictureBrightFish                           // A bright colored fish
	PictureIllustration                         // Illustration
	PictureBandLogotype                         // Band/artist logotype
	PicturePublisherLogotype                    // Publisher/studio logotype
)

var pictureTypeNames = [...]string{
	"Other",
	"File icon",
	"Other file icon",
	"Front cover",
	"Back cover",
	"Leaflet page",
	"Media",
	"Lead artist",
	"Artist",
	"Conductor",
	"Band",
	"Composer",
	"Lyricist",
	"Recording location",
	"During recording",
	"During performance",
	"Video capture",
	"Bright colored fish",
	"Illustration",
	"Band logotype",
	"Publisher logotype",
}

func (t PictureType) String() string {
	if t < 0 || int(t) >= len(pictureTypeNames) {
		return fmt.Sprintf("PictureType(%d)", int(t))
	}
	return pictureTypeNames[t]
}

// String returns a human-readable description of the picture.
//
// Example output: "Front cover (1200x1200 JPEG, 245KB)"
func (p Picture) String() string {
	dims := ""
	if p.Width > 0 && p.Height > 0 {
		dims = fmt.Sprintf("%dx%d ", p.Width, p.Height)
	}
	return fmt.Sprintf("%s (%s%s, %s)", p.Type, dims, MIMEName(p.MIMEType), formatSize(len(p.Data)))
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// MIMEName converts a MIME type to a short format name.
func MIMEName(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "image/tiff":
		return "TIFF"
	case "image/webp":
		return "WebP"
	default:
		return "Image"
	}
}

// MIMEExtension returns the file extension conventionally used for mime,
// or ".bin" when it is not an image type we know.
func MIMEExtension(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	case "image/tiff":
		return ".tiff"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
