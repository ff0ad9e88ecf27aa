// Package coverstore keeps extracted covers on disk, addressed by content.
//
// Identical artwork shared by every track of an album is stored once.
package coverstore

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// ErrInvalidKey is returned for keys that are not produced by Key.
var ErrInvalidKey = errors.New("coverstore: invalid key")

type Store struct {
	RootPath string
}

func NewStore(rootPath string) *Store {
	return &Store{
		RootPath: rootPath,
	}
}

// Key is the hex SHA-256 of data followed by ext, e.g. "3fa9...c1.jpg".
func Key(data []byte, ext string) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]) + ext
}

// ImagePath shards images by the first character of their key.
func (s *Store) ImagePath(key string) (string, error) {
	if len(key) < 2 || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.RootPath, key[:1], key), nil
}

// Put stores data under its content key and returns the key. Storing the
// same bytes again is a no-op.
func (s *Store) Put(data []byte, ext string) (key string, created bool, err error) {
	key = Key(data, ext)

	if ok, err := s.Has(key); err != nil {
		return "", false, err
	} else if ok {
		return key, false, nil
	}

	if err := s.WriteImage(key, data); err != nil {
		return "", false, err
	}
	return key, true, nil
}

// Has reports whether key is present.
func (s *Store) Has(key string) (bool, error) {
	fpath, err := s.ImagePath(key)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(fpath)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// WriteImage writes data under key through a temp file and rename, so
// readers never see a partial image.
func (s *Store) WriteImage(key string, data []byte) error {
	fpath, err := s.ImagePath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fpath), dirPermissions); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fpath), ".coverstore-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, filePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, fpath)
}

func (s *Store) ReadImage(key string) ([]byte, error) {
	fpath, err := s.ImagePath(key)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(fpath)
}
