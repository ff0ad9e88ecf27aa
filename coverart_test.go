package coverart_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhowden/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/coverart"
	"github.com/simonhull/coverart/internal/testaudio"
)

// These tests go through the real TagLib shim.

func TestOpen_NotFound(t *testing.T) {
	_, err := coverart.Open(filepath.Join(t.TempDir(), "nope.mp3"))
	require.ErrorIs(t, err, coverart.ErrInvalidPath)
}

func TestOpen_NotMedia(t *testing.T) {
	path := testaudio.WriteFile(t, "readme.txt", []byte("plain text, no audio here"))

	_, err := coverart.Open(path)
	require.ErrorIs(t, err, coverart.ErrInvalidPath)
}

func TestReadCover_NoCover(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		data     []byte
		sentinel error
	}{
		{name: "mp3 without tag", file: "bare.mp3", data: testaudio.MP3(16), sentinel: coverart.ErrNoID3v2Tag},
		{name: "mp3 without picture", file: "tagged.mp3", data: testaudio.MP3WithID3v2(t, "Title"), sentinel: coverart.ErrNoID3v2CoverArt},
		{name: "flac without picture", file: "plain.flac", data: testaudio.FLAC(), sentinel: coverart.ErrNoXiphCoverArt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testaudio.WriteFile(t, tt.file, tt.data)

			pic, err := coverart.ReadCoverFile(path)
			assert.Nil(t, pic)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.True(t, coverart.IsNoCover(err))
		})
	}
}

func TestWriteCover_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		data   []byte
		format coverart.Format
	}{
		{name: "mp3", file: "song.mp3", data: testaudio.MP3(16), format: coverart.FormatMP3},
		{name: "mp3 with tag", file: "tagged.mp3", data: testaudio.MP3WithID3v2(t, "Title"), format: coverart.FormatMP3},
		{name: "flac", file: "song.flac", data: testaudio.FLAC(), format: coverart.FormatFLAC},
	}

	png := testaudio.PNG(t, 1, 1)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testaudio.WriteFile(t, tt.file, tt.data)

			file, err := coverart.Open(path)
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, tt.format, file.Format)

			require.NoError(t, file.WriteCover(png, "image/png"))
			require.NoError(t, file.Close())

			pic, err := coverart.ReadCoverFile(path, coverart.WithCoverMeasure())
			require.NoError(t, err)
			assert.Equal(t, png, pic.Data)
			assert.Equal(t, "image/png", pic.MIMEType)
			assert.Equal(t, coverart.PictureFrontCover, pic.Type)
			assert.Equal(t, 1, pic.Width)
			assert.Equal(t, 1, pic.Height)
		})
	}
}

func TestWriteCover_ReadableByOtherTools(t *testing.T) {
	path := testaudio.WriteFile(t, "song.mp3", testaudio.MP3(16))
	jpeg := testaudio.JPEG(t, 4, 4)

	require.NoError(t, coverart.WriteCoverFile(path, jpeg, "", coverart.WithValidation()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	m, err := tag.ReadFrom(f)
	require.NoError(t, err)
	require.NotNil(t, m.Picture())
	assert.Equal(t, "image/jpeg", m.Picture().MIMEType)
	assert.Equal(t, jpeg, m.Picture().Data)
}

func TestWriteCover_InvalidImageLeavesFileUntouched(t *testing.T) {
	orig := testaudio.MP3WithID3v2(t, "Title")
	path := testaudio.WriteFile(t, "song.mp3", orig)

	err := coverart.WriteCoverFile(path, []byte("GIF89a but not really"), "image/gif")

	var decodeErr *coverart.ImageDecodeError
	require.ErrorAs(t, err, &decodeErr)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig, after)
}

func TestWriteCover_ReplacesPreviousCover(t *testing.T) {
	path := testaudio.WriteFile(t, "song.flac", testaudio.FLAC())

	require.NoError(t, coverart.WriteCoverFile(path, testaudio.PNG(t, 2, 2), "image/png"))
	gif := testaudio.GIF(t, 3, 3)
	require.NoError(t, coverart.WriteCoverFile(path, gif, "image/gif"))

	pic, err := coverart.ReadCoverFile(path)
	require.NoError(t, err)
	assert.Equal(t, gif, pic.Data)
	assert.Equal(t, "image/gif", pic.MIMEType)
}

func TestReadCovers(t *testing.T) {
	png := testaudio.PNG(t, 1, 1)

	withCover := testaudio.WriteFile(t, "a.mp3", testaudio.MP3(8))
	require.NoError(t, coverart.WriteCoverFile(withCover, png, "image/png"))
	without := testaudio.WriteFile(t, "b.flac", testaudio.FLAC())

	paths := []string{withCover, without, withCover}
	results, err := coverart.ReadCovers(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, png, results[0].Picture.Data)
	assert.True(t, coverart.IsNoCover(results[1].Err))
	assert.NoError(t, results[2].Err)
}

func TestTagLibVersion(t *testing.T) {
	assert.NotEmpty(t, coverart.TagLibVersion())
	assert.Equal(t, coverart.TagLibVersion(), coverart.GetVersionInfo().TagLibVersion)
}
