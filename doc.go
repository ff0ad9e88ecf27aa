// Package coverart reads and writes embedded cover art through TagLib.
//
// coverart is a thin cgo binding: TagLib parses every container and does
// all file I/O. The Go side owns the native handle, copies pictures into Go
// memory, validates images before they are written, and turns native
// status codes into typed errors.
//
// # Quick Start
//
// Reading a cover:
//
//	file, err := coverart.Open("song.flac")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	pic, err := file.ReadCover()
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("cover"+coverart.MIMEExtension(pic.MIMEType), pic.Data, 0o644)
//
// Writing a cover:
//
//	data, _ := os.ReadFile("front.jpg")
//	err := coverart.WriteCoverFile("song.mp3", data, "image/jpeg")
//
// # Supported Formats
//
//   - MP3: ID3v2 APIC frames
//   - M4A/M4B: the covr item
//   - FLAC: picture blocks, or ID3v2 when the file carries one
//   - Ogg Vorbis, Opus, Speex, Ogg FLAC: METADATA_BLOCK_PICTURE comments
//   - WMA/ASF: WM/Picture attributes
//   - WAV, AIFF: ID3v2 chunks
//
// # Building
//
// The package needs TagLib headers and libraries visible to pkg-config
// (package "taglib") and a C++17 compiler. TagLib 1.12 and 2.x are
// supported.
//
// # Error Handling
//
// Every failure has a typed error:
//
//   - *InvalidPathError: the file could not be opened (errors.Is ErrInvalidPath)
//   - *TagLibError: TagLib reported a status; Kind tells which one
//   - *ImageDecodeError: the bytes given to WriteCover are not an image
//
// A missing cover is not exceptional for most callers. IsNoCover reports
// whether an error only means "this file has no picture":
//
//	pic, err := coverart.ReadCoverFile(path)
//	switch {
//	case coverart.IsNoCover(err):
//		// no artwork
//	case err != nil:
//		return err
//	}
//
// Each kind also has a sentinel for errors.Is, e.g. ErrNoXiphCoverArt.
//
// # Concurrency
//
// A File is not safe for concurrent use. ReadCovers reads many files in
// parallel, one native handle per goroutine.
package coverart
