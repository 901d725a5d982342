package persistence

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/einzigartigerName/bitwise-io/shared"
	"github.com/stretchr/testify/require"
)

const groupItemSize = 8

func writeItemsFile(t *testing.T, name string, items []byte) {
	req := require.New(t)

	writer, err := NewFileWriter(name, groupItemSize)
	req.NoError(err)
	for _, item := range items {
		req.NoError(writer.Write([]byte{item}))
	}
	_, err = writer.Close()
	req.NoError(err)
}

func TestGroupReader(t *testing.T) {
	req := require.New(t)

	dir := filepath.Join(tempdir, "group")
	req.NoError(os.MkdirAll(dir, shared.OwnerReadWriteExec))

	chunks := [][]byte{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9},
	}
	for i, chunk := range chunks {
		writeItemsFile(t, filepath.Join(dir, "blob-"+string(rune('0'+i))), chunk)
	}

	readers, err := NewReadersFromDir(dir, groupItemSize)
	req.NoError(err)
	req.Len(readers, 3)

	merged, err := Merge(readers)
	req.NoError(err)

	width, err := merged.Width()
	req.NoError(err)
	req.Equal(uint64(10), width)

	for i := byte(0); i < 10; i++ {
		item, err := merged.ReadNext()
		req.NoError(err)
		req.Equal([]byte{i}, item)
	}
	_, err = merged.ReadNext()
	req.Equal(io.EOF, err)

	req.NoError(merged.Close())
}

func TestGroup_Errors(t *testing.T) {
	req := require.New(t)

	dir := filepath.Join(tempdir, "group-errors")
	req.NoError(os.MkdirAll(dir, shared.OwnerReadWriteExec))

	writeItemsFile(t, filepath.Join(dir, "blob-0"), []byte{0, 1, 2, 3})
	writeItemsFile(t, filepath.Join(dir, "blob-1"), []byte{4, 5})
	writeItemsFile(t, filepath.Join(dir, "blob-2"), []byte{6, 7, 8, 9})

	readers, err := NewReadersFromDir(dir, groupItemSize)
	req.NoError(err)

	// Only the last reader may have a different width.
	_, err = Group(readers)
	req.EqualError(err, "readers width mismatch")

	_, err = Group(readers[:1])
	req.EqualError(err, "number of readers must be at least 2")

	_, err = Group([]Reader{readers[0], nil})
	req.EqualError(err, "nil readers are not allowed")

	for _, r := range readers {
		req.NoError(r.Close())
	}
}
