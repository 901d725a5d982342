package config_test

import (
	"testing"

	"github.com/einzigartigerName/bitwise-io/config"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	req := require.New(t)

	cfg := config.DefaultConfig()
	req.NoError(cfg.Validate())

	cfg = config.DefaultConfig()
	cfg.BufSize = 0
	req.Error(cfg.Validate())

	cfg = config.DefaultConfig()
	cfg.BufSize = 100
	req.Error(cfg.Validate())

	cfg = config.DefaultConfig()
	cfg.ItemBitSize = 65
	req.Error(cfg.Validate())

	cfg = config.DefaultConfig()
	cfg.MaxFileSize = 1
	req.Error(cfg.Validate())
}

func TestDeriveFilesLayout(t *testing.T) {
	req := require.New(t)

	cfg := config.DefaultConfig()
	cfg.ItemBitSize = 8
	cfg.MaxFileSize = 1 << 10

	// Evenly divisible.
	layout := config.DeriveFilesLayout(cfg, 2048)
	req.Equal(uint(2), layout.NumFiles)
	req.Equal(uint64(1024), layout.FileNumItems)
	req.Equal(uint64(1024), layout.LastFileNumItems)

	// With remainder.
	layout = config.DeriveFilesLayout(cfg, 2049)
	req.Equal(uint(3), layout.NumFiles)
	req.Equal(uint64(1024), layout.FileNumItems)
	req.Equal(uint64(1), layout.LastFileNumItems)
}
