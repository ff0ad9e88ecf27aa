// Package testaudio builds small media and image fixtures for tests.
//
// Fixtures are synthesized in memory rather than checked in, so every test
// states exactly which tags the file starts with.
package testaudio

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/go-flac/v2"
	"golang.org/x/image/tiff"
)

// MPEG-1 Layer III, 128 kbit/s, 44.1 kHz, no padding, joint stereo.
var mpegFrameHeader = []byte{0xFF, 0xFB, 0x90, 0x44}

// mpegFrameSize is 144 * bitrate / samplerate for the header above.
const mpegFrameSize = 417

// MP3 returns bare MPEG audio frames with no tags at all.
func MP3(frames int) []byte {
	buf := make([]byte, 0, frames*mpegFrameSize)
	for range frames {
		frame := make([]byte, mpegFrameSize)
		copy(frame, mpegFrameHeader)
		buf = append(buf, frame...)
	}
	return buf
}

// MP3WithID3v2 returns MPEG frames preceded by an ID3v2.4 tag that carries a
// title but no picture.
func MP3WithID3v2(t testing.TB, title string) []byte {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	tag.SetVersion(4)
	tag.SetTitle(title)

	var buf bytes.Buffer
	if _, err := tag.WriteTo(&buf); err != nil {
		t.Fatalf("write id3v2 tag: %v", err)
	}
	buf.Write(MP3(16))
	return buf.Bytes()
}

// FLAC returns a FLAC stream with only a STREAMINFO block: no Vorbis comment,
// no pictures and no audio frames.
func FLAC() []byte {
	f := &flac.File{
		Meta: []*flac.MetaDataBlock{
			{Type: flac.StreamInfo, Data: streamInfo()},
		},
	}
	var buf bytes.Buffer
	_, _ = f.WriteTo(&buf)
	return buf.Bytes()
}

// streamInfo encodes 44.1 kHz, stereo, 16-bit, zero samples.
func streamInfo() []byte {
	b := make([]byte, 34)
	b[0], b[1] = 0x10, 0x00 // min block size 4096
	b[2], b[3] = 0x10, 0x00 // max block size 4096
	// sample rate (20 bits) | channels-1 (3 bits) | bps-1 (5 bits) | total samples (36 bits)
	b[10] = 0x0A
	b[11] = 0xC4
	b[12] = 0x42
	b[13] = 0xF0
	return b
}

// OggVorbis returns an Ogg Vorbis stream with identification, comment and
// setup headers on their own pages, followed by one page of dummy audio.
// The comment header carries a title and no pictures.
func OggVorbis(title string) []byte {
	const serial = 0x00C0FFEE

	ident := &bytes.Buffer{}
	ident.WriteByte(0x01)
	ident.WriteString("vorbis")
	binary.Write(ident, binary.LittleEndian, uint32(0))      // version
	ident.WriteByte(2)                                       // channels
	binary.Write(ident, binary.LittleEndian, uint32(44100))  // sample rate
	binary.Write(ident, binary.LittleEndian, uint32(0))      // bitrate maximum
	binary.Write(ident, binary.LittleEndian, uint32(128000)) // bitrate nominal
	binary.Write(ident, binary.LittleEndian, uint32(0))      // bitrate minimum
	ident.WriteByte(0xB8)                                    // blocksizes 256/2048
	ident.WriteByte(0x01)                                    // framing

	comment := &bytes.Buffer{}
	comment.WriteByte(0x03)
	comment.WriteString("vorbis")
	vendor := "coverart"
	binary.Write(comment, binary.LittleEndian, uint32(len(vendor)))
	comment.WriteString(vendor)
	binary.Write(comment, binary.LittleEndian, uint32(1))
	field := "TITLE=" + title
	binary.Write(comment, binary.LittleEndian, uint32(len(field)))
	comment.WriteString(field)
	comment.WriteByte(0x01)

	setup := []byte("\x05vorbis\x01")

	var buf bytes.Buffer
	buf.Write(oggPage(0x02, 0, serial, 0, ident.Bytes()))
	buf.Write(oggPage(0x00, 0, serial, 1, comment.Bytes()))
	buf.Write(oggPage(0x00, 0, serial, 2, setup))
	buf.Write(oggPage(0x04, 44100, serial, 3, make([]byte, 100)))
	return buf.Bytes()
}

// oggPage wraps one complete packet in a page. The checksum is left zero.
func oggPage(headerType byte, granule uint64, serial, sequence uint32, packet []byte) []byte {
	var segments []byte
	n := len(packet)
	for n >= 255 {
		segments = append(segments, 255)
		n -= 255
	}
	segments = append(segments, byte(n))

	page := &bytes.Buffer{}
	page.WriteString("OggS")
	page.WriteByte(0x00)
	page.WriteByte(headerType)
	binary.Write(page, binary.LittleEndian, granule)
	binary.Write(page, binary.LittleEndian, serial)
	binary.Write(page, binary.LittleEndian, sequence)
	binary.Write(page, binary.LittleEndian, uint32(0))
	page.WriteByte(byte(len(segments)))
	page.Write(segments)
	page.Write(packet)
	return page.Bytes()
}

// M4A returns an MP4 file made of an "M4A " ftyp atom and an empty moov
// atom: no metadata and no tracks.
func M4A() []byte {
	var buf bytes.Buffer
	buf.Write(mp4Atom("ftyp", []byte("M4A \x00\x00\x00\x00M4A isom")))
	buf.Write(mp4Atom("moov", nil))
	return buf.Bytes()
}

func mp4Atom(name string, body []byte) []byte {
	atom := make([]byte, 8, 8+len(body))
	binary.BigEndian.PutUint32(atom, uint32(8+len(body)))
	copy(atom[4:], name)
	return append(atom, body...)
}

// PNG returns an opaque w x h PNG.
func PNG(t testing.TB, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, opaque(w, h)); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// TransparentPNG returns a w x h PNG with a translucent pixel.
func TransparentPNG(t testing.TB, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// JPEG returns a w x h JPEG.
func JPEG(t testing.TB, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, opaque(w, h), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

// GIF returns a w x h GIF with an opaque two-color palette.
func GIF(t testing.TB, w, h int) []byte {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, w, h), color.Palette{color.Black, color.White})
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	return buf.Bytes()
}

// TIFF returns an opaque w x h TIFF.
func TIFF(t testing.TB, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := tiff.Encode(&buf, opaque(w, h), nil); err != nil {
		t.Fatalf("encode tiff: %v", err)
	}
	return buf.Bytes()
}

func opaque(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 200, A: 255})
		}
	}
	return img
}

// WriteFile writes data to name inside a fresh temp dir and returns the path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
