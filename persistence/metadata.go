package persistence

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/einzigartigerName/bitwise-io/shared"
	"github.com/nullstyle/go-xdr/xdr3"
)

// MetadataSuffix is appended to a data file name to form its metadata
// sidecar file name.
const MetadataSuffix = ".meta"

// StreamMetadata describes the payload layout of a padded bit stream, so a
// reader can tell payload bits from trailing pad bits.
type StreamMetadata struct {
	NumBits     uint64
	ItemBitSize uint32
	PadZero     bool
}

// PersistMetadata writes the metadata sidecar file for the given data file.
func PersistMetadata(filename string, meta *StreamMetadata) error {
	var w bytes.Buffer
	if _, err := xdr.Marshal(&w, meta); err != nil {
		return fmt.Errorf("serialization failure: %v", err)
	}

	if err := ioutil.WriteFile(filename+MetadataSuffix, w.Bytes(), shared.OwnerReadWrite); err != nil {
		return fmt.Errorf("write to disk failure: %v", err)
	}

	return nil
}

// FetchMetadata reads the metadata sidecar file of the given data file.
func FetchMetadata(filename string) (*StreamMetadata, error) {
	data, err := ioutil.ReadFile(filename + MetadataSuffix)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, shared.ErrMetadataNotExist
		}
		return nil, fmt.Errorf("read file failure: %v", err)
	}

	meta := &StreamMetadata{}
	if _, err := xdr.Unmarshal(bytes.NewReader(data), meta); err != nil {
		return nil, err
	}

	return meta, nil
}
