package coverart

import (
	"log/slog"
	"testing"
)

func TestWriteOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := defaultWriteOptions()

		if opts.backupSuffix != "" {
			t.Errorf("expected empty backupSuffix, got %q", opts.backupSuffix)
		}
		if opts.validate {
			t.Error("expected validate to be false")
		}
		if opts.preserveModTime {
			t.Error("expected preserveModTime to be false")
		}
		if opts.strictMIME {
			t.Error("expected strictMIME to be false")
		}
	})

	t.Run("all options combined", func(t *testing.T) {
		opts := defaultWriteOptions()

		options := []WriteOption{
			WithBackup(".backup"),
			WithValidation(),
			WithPreserveModTime(),
			WithStrictMIME(),
		}
		for _, opt := range options {
			opt(opts)
		}

		if opts.backupSuffix != ".backup" {
			t.Errorf("expected backupSuffix %q, got %q", ".backup", opts.backupSuffix)
		}
		if !opts.validate || !opts.preserveModTime || !opts.strictMIME {
			t.Errorf("expected all flags set, got %+v", opts)
		}
	})
}

func TestOpenOptions(t *testing.T) {
	opts := defaultOptions()
	if opts.logger == nil {
		t.Fatal("expected a default logger")
	}
	if opts.maxCoverSize != 0 || opts.measure {
		t.Errorf("unexpected defaults: %+v", opts)
	}

	custom := slog.New(slog.DiscardHandler)
	for _, opt := range []Option{WithLogger(custom), WithMaxCoverSize(1 << 20), WithCoverMeasure()} {
		opt(opts)
	}
	if opts.logger != custom {
		t.Error("expected custom logger")
	}
	if opts.maxCoverSize != 1<<20 {
		t.Errorf("expected maxCoverSize %d, got %d", 1<<20, opts.maxCoverSize)
	}
	if !opts.measure {
		t.Error("expected measure to be true")
	}

	WithLogger(nil)(opts)
	if opts.logger != custom {
		t.Error("nil logger must be ignored")
	}
}
