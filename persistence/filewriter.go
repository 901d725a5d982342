package persistence

import (
	"bufio"
	"fmt"
	"os"

	"github.com/einzigartigerName/bitwise-io/shared"
)

type FileWriter struct {
	file     *os.File
	buf      *bufio.Writer
	gsWriter *shared.GranSpecificWriter
	itemSize uint
	logger   shared.Logger
}

// A compile time check to ensure that FileWriter fully implements the Writer interface.
var _ Writer = (*FileWriter)(nil)

// NewFileWriter returns a writer appending items of itemSize bits to the
// given file.
func NewFileWriter(filename string, itemSize uint) (*FileWriter, error) {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, shared.OwnerReadWrite)
	if err != nil {
		return nil, err
	}

	buf := bufio.NewWriter(f)
	return &FileWriter{
		file:     f,
		buf:      buf,
		gsWriter: shared.NewGranSpecificWriter(buf, itemSize),
		itemSize: itemSize,
		logger:   shared.NoopLogger{},
	}, nil
}

func (w *FileWriter) SetLogger(logger shared.Logger) {
	w.logger = logger
}

func (w *FileWriter) Write(item []byte) error {
	return w.gsWriter.Write(item)
}

// WriteUintBE writes an item given as uint64 in Big-Endian byte order.
func (w *FileWriter) WriteUintBE(v uint64) error {
	return w.gsWriter.WriteUintBE(v)
}

// Width returns the number of whole items written to disk so far.
func (w *FileWriter) Width() (uint64, error) {
	info, err := w.file.Stat()
	if err != nil {
		return 0, err
	}
	return uint64(info.Size()) * 8 / uint64(w.itemSize), nil
}

// Flush forces buffered whole bytes to disk. Bits pending below the byte
// boundary stay queued until Close pads them.
func (w *FileWriter) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush disk writer: %v", err)
	}
	return nil
}

// Close pads and drains any pending bits, flushes the file and closes it.
func (w *FileWriter) Close() (*os.FileInfo, error) {
	if err := w.gsWriter.Flush(); err != nil {
		return nil, err
	}
	if err := w.buf.Flush(); err != nil {
		return nil, err
	}
	w.buf = nil
	w.gsWriter = nil

	info, err := w.file.Stat()
	if err != nil {
		return nil, err
	}
	w.logger.Info("closing file %v, bytes written: %v", info.Name(), info.Size())

	if err := w.file.Close(); err != nil {
		return nil, err
	}
	w.file = nil

	return &info, nil
}
