// Package config loads settings for the coverart command.
//
// Values come from defaults, then an optional TOML file, then COVERART_*
// environment variables, each layer overriding the previous one.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const (
	DefaultConfigPath = "coverart.toml"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultStoreDir   = "covers"
	EnvPrefix         = "COVERART_"
)

// DefaultExtensions are the file extensions batch mode scans for.
var DefaultExtensions = []string{
	".mp3", ".flac", ".m4a", ".m4b", ".mp4", ".ogg", ".oga", ".opus",
	".wma", ".asf", ".wav", ".aiff", ".aif",
}

type Config struct {
	Log     LogConfig     `toml:"log" envPrefix:"LOG_"`
	Extract ExtractConfig `toml:"extract" envPrefix:"EXTRACT_"`
	Embed   EmbedConfig   `toml:"embed" envPrefix:"EMBED_"`
	Batch   BatchConfig   `toml:"batch" envPrefix:"BATCH_"`
}

type LogConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"`
}

type ExtractConfig struct {
	OutputDir    string `toml:"output_dir" env:"OUTPUT_DIR"`
	MaxCoverSize int    `toml:"max_cover_size" env:"MAX_COVER_SIZE"` // bytes, 0 = no limit
	Measure      bool   `toml:"measure" env:"MEASURE"`
}

type EmbedConfig struct {
	BackupSuffix    string `toml:"backup_suffix" env:"BACKUP_SUFFIX"`
	StrictMIME      bool   `toml:"strict_mime" env:"STRICT_MIME"`
	PreserveModTime bool   `toml:"preserve_mod_time" env:"PRESERVE_MOD_TIME"`
	Validate        bool   `toml:"validate" env:"VALIDATE"`
}

type BatchConfig struct {
	StoreDir   string   `toml:"store_dir" env:"STORE_DIR"`
	Extensions []string `toml:"extensions" env:"EXTENSIONS" envSeparator:","`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Batch: BatchConfig{
			StoreDir:   DefaultStoreDir,
			Extensions: append([]string(nil), DefaultExtensions...),
		},
	}
}

// Load reads path on top of the defaults and applies environment overrides.
//
// An empty path means DefaultConfigPath, which may be absent. An explicit
// path that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	} else if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("environment overrides: %w", err)
	}

	return cfg, nil
}
