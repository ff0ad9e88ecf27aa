// Package taglib is the cgo boundary to TagLib.
//
// The C++ side (shim.cpp) does all container parsing and file I/O. This
// package owns the native file handle, copies native scratch memory into Go
// memory, and reports raw status codes. Mapping those codes to errors is the
// caller's job.
package taglib

/*
#cgo pkg-config: taglib
#cgo CXXFLAGS: -std=c++17
#include <stdlib.h>
#include "shim.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"unsafe"
)

// ErrOpen is returned when TagLib cannot open or recognize a file.
var ErrOpen = errors.New("taglib could not open file")

// Status is a status code reported by the native shim.
type Status int

const (
	StatusOK              Status = C.COVERART_OK
	StatusMP3NoID3v2      Status = C.COVERART_MP3_NO_ID3V2
	StatusMP4NoCoverFrame Status = C.COVERART_MP4_NO_COVR
	StatusMP4EmptyCover   Status = C.COVERART_MP4_EMPTY_COVR
	StatusASFNoPicture    Status = C.COVERART_ASF_NO_PICTURE
	StatusID3v2NoPicture  Status = C.COVERART_ID3V2_NO_APIC
	StatusXiphNoPicture   Status = C.COVERART_XIPH_NO_PICTURE
	StatusUnsupportedFile Status = C.COVERART_UNSUPPORTED_FILE
	StatusNoID3v2OrXiph   Status = C.COVERART_NO_ID3V2_OR_XIPH
	StatusSaveFailed      Status = C.COVERART_SAVE_FAILED
	StatusInternal        Status = -1
)

// Picture is a cover copied out of native memory.
type Picture struct {
	Data     []byte
	MIMEType string
	Type     int
}

// Meta carries the measurements stored with FLAC and Xiph picture blocks.
type Meta struct {
	Width  int
	Height int
	Depth  int
}

// File is an open TagLib file reference.
//
// A File is not safe for concurrent use.
type File struct {
	handle  *C.coverart_file
	cleanup runtime.Cleanup
}

// Open asks TagLib to open path. Audio properties are not read.
func Open(path string) (*File, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	handle := C.coverart_open_file(cpath)
	if handle == nil {
		return nil, ErrOpen
	}

	f := &File{handle: handle}
	f.cleanup = runtime.AddCleanup(f, func(h *C.coverart_file) {
		C.coverart_free_file(h)
	}, handle)
	return f, nil
}

// ReadCover reads the preferred cover. Picture is only meaningful when the
// status is StatusOK.
func (f *File) ReadCover() (Picture, Status) {
	if f.handle == nil {
		return Picture{}, StatusInternal
	}

	pic := C.coverart_read_cover(f.handle)
	status := Status(pic.status)

	var out Picture
	if status == StatusOK {
		if n, ok := cLen(uint64(pic.data_len)); ok {
			out.Data = C.GoBytes(unsafe.Pointer(pic.data), n)
			out.MIMEType = C.GoString(pic.mimetype)
			out.Type = int(pic._type)
		} else {
			status = StatusInternal
		}
	}
	// Copied above; the native buffers are released only after that.
	C.coverart_free_picture(&pic)

	runtime.KeepAlive(f)
	return out, status
}

// WriteCover replaces the file's covers with data as a single front cover
// and saves the file.
func (f *File) WriteCover(data []byte, mime string, meta Meta) Status {
	if f.handle == nil {
		return StatusInternal
	}
	if _, ok := cLen(uint64(len(data))); !ok {
		return StatusInternal
	}

	cdata := C.CBytes(data)
	defer C.free(cdata)
	cmime := C.CString(mime)
	defer C.free(unsafe.Pointer(cmime))

	cmeta := C.coverart_picture_meta{
		width:  C.int(meta.Width),
		height: C.int(meta.Height),
		depth:  C.int(meta.Depth),
	}

	status := C.coverart_write_cover(f.handle, (*C.char)(cdata), C.uint(len(data)), cmime, cmeta)
	runtime.KeepAlive(f)
	return Status(status)
}

// Close releases the native handle. It reports whether this call released
// it; later calls are no-ops.
func (f *File) Close() bool {
	if f.handle == nil {
		return false
	}
	f.cleanup.Stop()
	C.coverart_free_file(f.handle)
	f.handle = nil
	return true
}

// Version returns the TagLib version the shim was compiled against.
func Version() string {
	var major, minor, patch C.int
	C.coverart_taglib_version(&major, &minor, &patch)
	return fmt.Sprintf("%d.%d.%d", int(major), int(minor), int(patch))
}

// cLen converts a native buffer length to the C.int that GoBytes takes.
// Lengths above math.MaxInt32 are rejected.
func cLen(n uint64) (C.int, bool) {
	if n > math.MaxInt32 {
		return 0, false
	}
	return C.int(n), true
}
