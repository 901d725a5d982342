package persistence

import (
	"path/filepath"
	"testing"

	"github.com/einzigartigerName/bitwise-io/shared"
	"github.com/stretchr/testify/require"
)

func TestMetadata(t *testing.T) {
	req := require.New(t)

	filename := filepath.Join(tempdir, "meta-0")
	meta := &StreamMetadata{
		NumBits:     13,
		ItemBitSize: 1,
		PadZero:     true,
	}

	err := PersistMetadata(filename, meta)
	req.NoError(err)

	fetched, err := FetchMetadata(filename)
	req.NoError(err)
	req.Equal(meta, fetched)

	_, err = FetchMetadata(filepath.Join(tempdir, "meta-missing"))
	req.Equal(shared.ErrMetadataNotExist, err)
}
