package config

import (
	"fmt"
	"path/filepath"

	"github.com/einzigartigerName/bitwise-io/shared"
	"github.com/spacemeshos/smutil"
)

const (
	MaxBufSize = 1 << 20
	MinBufSize = 1

	MaxItemBitSize = 64
	MinItemBitSize = 1

	MinMaxFileSize = 1 << 10
)

const (
	DefaultDataDirName = "data"

	// In bytes. Window size of the reader, capacity of the writer queue.
	DefaultBufSize = 1 << 10

	DefaultItemBitSize = 1
	DefaultPadZero     = true

	// In bytes. 16MB per data file.
	DefaultMaxFileSize = 1 << 24
)

var (
	DefaultDataDir = filepath.Join(smutil.GetUserHomeDirectory(), "bitwise-io", DefaultDataDirName)
)

type Config struct {
	DataDir string `mapstructure:"datadir"`
	BufSize uint   `mapstructure:"bufsize"`

	// Stream params.
	ItemBitSize uint   `mapstructure:"itemsize"`
	PadZero     bool   `mapstructure:"padzero"`
	MaxFileSize uint64 `mapstructure:"maxfilesize"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:     DefaultDataDir,
		BufSize:     DefaultBufSize,
		ItemBitSize: DefaultItemBitSize,
		PadZero:     DefaultPadZero,
		MaxFileSize: DefaultMaxFileSize,
	}
}

func (cfg *Config) Validate() error {
	if cfg.BufSize < MinBufSize {
		return fmt.Errorf("invalid `BufSize`; expected: >= %d, given: %d", MinBufSize, cfg.BufSize)
	}

	if cfg.BufSize > MaxBufSize {
		return fmt.Errorf("invalid `BufSize`; expected: <= %d, given: %d", MaxBufSize, cfg.BufSize)
	}

	if !shared.IsPowerOfTwo(uint64(cfg.BufSize)) {
		return fmt.Errorf("invalid `BufSize`; expected: a power of 2, given: %d", cfg.BufSize)
	}

	if cfg.ItemBitSize < MinItemBitSize {
		return fmt.Errorf("invalid `ItemBitSize`; expected: >= %d, given: %d", MinItemBitSize, cfg.ItemBitSize)
	}

	if cfg.ItemBitSize > MaxItemBitSize {
		return fmt.Errorf("invalid `ItemBitSize`; expected: <= %d, given: %d", MaxItemBitSize, cfg.ItemBitSize)
	}

	if cfg.MaxFileSize < MinMaxFileSize {
		return fmt.Errorf("invalid `MaxFileSize`; expected: >= %d, given: %d", MinMaxFileSize, cfg.MaxFileSize)
	}

	return nil
}
