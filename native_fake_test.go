package coverart

import (
	"sync"
	"testing"

	"github.com/simonhull/coverart/internal/taglib"
)

// fakeNative stands in for a TagLib handle.
type fakeNative struct {
	mu sync.Mutex

	pic         taglib.Picture
	readStatus  taglib.Status
	writeStatus taglib.Status
	onWrite     func(data []byte, mime string)

	reads    int
	writes   int
	closes   int
	lastData []byte
	lastMIME string
	lastMeta taglib.Meta
}

func (n *fakeNative) ReadCover() (taglib.Picture, taglib.Status) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reads++
	return n.pic, n.readStatus
}

func (n *fakeNative) WriteCover(data []byte, mime string, meta taglib.Meta) taglib.Status {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.writes++
	n.lastData, n.lastMIME, n.lastMeta = data, mime, meta
	if n.writeStatus == taglib.StatusOK {
		n.pic = taglib.Picture{Data: data, MIMEType: mime, Type: 3}
	}
	if n.onWrite != nil {
		n.onWrite(data, mime)
	}
	return n.writeStatus
}

func (n *fakeNative) Close() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closes++
	return n.closes == 1
}

// fakeBackend counts native opens and hands out one shared fakeNative.
type fakeBackend struct {
	mu      sync.Mutex
	native  *fakeNative
	openErr error
	opens   int
}

func (b *fakeBackend) openCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.opens
}

// useFake routes openNative to a fake for the duration of the test.
func useFake(t *testing.T, native *fakeNative) *fakeBackend {
	t.Helper()

	backend := &fakeBackend{native: native}
	orig := openNative
	openNative = func(string) (nativeFile, error) {
		backend.mu.Lock()
		defer backend.mu.Unlock()
		backend.opens++
		if backend.openErr != nil {
			return nil, backend.openErr
		}
		return backend.native, nil
	}
	t.Cleanup(func() { openNative = orig })
	return backend
}
