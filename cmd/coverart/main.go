// Command coverart extracts and embeds cover art in audio files.
//
// Usage:
//
//	coverart extract song.flac -o cover.jpg
//	coverart embed front.jpg *.mp3 --backup .bak
//	coverart info album/*.flac
//	coverart batch ~/Music --store ./covers
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
