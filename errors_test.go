package coverart

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNoCover(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"xiph", &TagLibError{Path: "a.flac", Op: "read cover", Kind: KindXiphNoCoverArt}, true},
		{"wrapped mp4", fmt.Errorf("album: %w", &TagLibError{Kind: KindMP4EmptyCoverList}), true},
		{"neither tag", &TagLibError{Kind: KindNoID3v2OrXiph}, true},
		{"unsupported", &TagLibError{Kind: KindUnsupportedFile}, false},
		{"save failed", &TagLibError{Kind: KindSaveFailed}, false},
		{"invalid path", &InvalidPathError{Path: "x", Reason: "empty file name"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNoCover(tt.err); got != tt.want {
				t.Errorf("IsNoCover(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestSentinels(t *testing.T) {
	err := fmt.Errorf("scan: %w", &TagLibError{Path: "a.mp3", Op: "read cover", Kind: KindID3v2NoCoverArt})

	if !errors.Is(err, ErrNoID3v2CoverArt) {
		t.Error("expected ErrNoID3v2CoverArt to match")
	}
	if errors.Is(err, ErrNoID3v2Tag) {
		t.Error("ErrNoID3v2Tag must not match a different kind")
	}
	if ErrNoXiphCoverArt.Error() != "xiph tag does not include cover art" {
		t.Errorf("unexpected sentinel message %q", ErrNoXiphCoverArt.Error())
	}
}
