package coverart

import "log/slog"

// Option configures how files are opened and read.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := coverart.Open("song.flac",
//	    coverart.WithMaxCoverSize(10<<20),
//	    coverart.WithCoverMeasure(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	logger       *slog.Logger
	maxCoverSize int  // Maximum cover size in bytes (0 = no limit)
	measure      bool // Decode read covers to fill Width, Height and Depth
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		logger:       slog.New(slog.DiscardHandler),
		maxCoverSize: 0, // No limit
		measure:      false,
	}
}

// WithLogger sets the logger used for debug records on open, read, write
// and close. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *openOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxCoverSize sets a maximum size limit for read covers.
//
// A cover larger than this (in bytes) makes ReadCover fail with
// *CoverTooLargeError. This protects against excessively large embedded
// images.
//
// Default is 0 (no limit).
//
// Example:
//
//	// Limit covers to 10MB
//	pic, err := coverart.ReadCoverFile("song.mp3",
//	    coverart.WithMaxCoverSize(10*1024*1024),
//	)
func WithMaxCoverSize(bytes int) Option {
	return func(o *openOptions) {
		o.maxCoverSize = bytes
	}
}

// WithCoverMeasure decodes covers after reading them to fill
// Picture.Width, Height and Depth.
//
// A cover that does not decode is still returned, with zero measurements.
func WithCoverMeasure() Option {
	return func(o *openOptions) {
		o.measure = true
	}
}
