package coverart

import (
	"bytes"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"flac", []byte("fLaC\x00\x00\x00\x22"), FormatFLAC},
		{"id3", []byte("ID3\x03\x00\x00\x00\x00\x00\x00"), FormatMP3},
		{"wav", []byte("RIFF\x24\x00\x00\x00WAVEfmt "), FormatWAV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := DetectFormat(bytes.NewReader(tt.data), int64(len(tt.data)), "test")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if format != tt.want {
				t.Errorf("expected %v, got %v", tt.want, format)
			}
		})
	}
}

func TestDetectFormat_Invalid(t *testing.T) {
	data := []byte("\x00\x00\x00\x08XXXXnothing")

	format, err := DetectFormat(bytes.NewReader(data), int64(len(data)), "test.bin")
	if err == nil {
		t.Fatal("expected error for invalid file")
	}
	if format != FormatUnknown {
		t.Errorf("expected FormatUnknown, got %v", format)
	}
}
