package persistence

import (
	"bufio"
	"fmt"
	"os"

	"github.com/einzigartigerName/bitwise-io/shared"
)

type FileReader struct {
	file     *os.File
	gsReader *shared.GranSpecificReader
	itemSize uint
}

// A compile time check to ensure that FileReader fully implements the Reader interface.
var _ Reader = (*FileReader)(nil)

// NewFileReader returns a reader yielding items of itemSize bits from the
// given file.
func NewFileReader(name string, itemSize uint) (*FileReader, error) {
	file, err := os.OpenFile(name, os.O_RDONLY, shared.OwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open file for items reader: %v", err)
	}

	gsReader, err := shared.NewGranSpecificReader(bufio.NewReader(file), itemSize)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	return &FileReader{
		file:     file,
		gsReader: gsReader,
		itemSize: itemSize,
	}, nil
}

// ReadNext returns the next item. Trailing pad bits of the final partial
// byte are not distinguished here; callers use the stream metadata to know
// where the payload ends.
func (r *FileReader) ReadNext() ([]byte, error) {
	return r.gsReader.ReadNext()
}

// ReadNextUintBE returns the next item as uint64 in Big-Endian byte order.
func (r *FileReader) ReadNextUintBE() (uint64, error) {
	return r.gsReader.ReadNextUintBE()
}

// Width returns the number of whole items the file holds.
func (r *FileReader) Width() (uint64, error) {
	info, err := r.file.Stat()
	if err != nil {
		return 0, err
	}
	return uint64(info.Size()) * 8 / uint64(r.itemSize), nil
}

func (r *FileReader) Close() error {
	r.gsReader = nil
	return r.file.Close()
}
