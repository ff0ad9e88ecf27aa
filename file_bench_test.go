package coverart_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/simonhull/coverart"
	"github.com/simonhull/coverart/internal/testaudio"
)

// createBenchmarkMP3 writes an MP3 with a small PNG cover.
func createBenchmarkMP3(b *testing.B) string {
	b.Helper()

	path := testaudio.WriteFile(b, "bench.mp3", testaudio.MP3(32))
	if err := coverart.WriteCoverFile(path, testaudio.PNG(b, 64, 64), "image/png"); err != nil {
		b.Fatal(err)
	}
	return path
}

// BenchmarkOpen measures the performance of opening a single audio file.
func BenchmarkOpen(b *testing.B) {
	path := createBenchmarkMP3(b)

	b.ReportAllocs()

	for b.Loop() {
		file, err := coverart.Open(path)
		if err != nil {
			b.Fatal(err)
		}
		file.Close()
	}
}

// BenchmarkReadCover measures open, read and close of one file.
func BenchmarkReadCover(b *testing.B) {
	path := createBenchmarkMP3(b)

	b.ReportAllocs()

	for b.Loop() {
		if _, err := coverart.ReadCoverFile(path); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkReadCovers measures concurrent reads.
func BenchmarkReadCovers(b *testing.B) {
	for _, n := range []int{1, 10, 50} {
		b.Run(fmt.Sprintf("%d_files", n), func(b *testing.B) {
			paths := make([]string, n)
			for i := range paths {
				paths[i] = createBenchmarkMP3(b)
			}

			ctx := context.Background()
			b.ReportAllocs()

			for b.Loop() {
				if _, err := coverart.ReadCovers(ctx, paths); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDetectFormat measures format detection performance.
func BenchmarkDetectFormat(b *testing.B) {
	data := testaudio.MP3(4)
	r := bytes.NewReader(data)

	b.ReportAllocs()

	for b.Loop() {
		if _, err := coverart.DetectFormat(r, int64(len(data)), "bench.mp3"); err != nil {
			b.Fatal(err)
		}
	}
}
