// Package persistence provides bit-granular item readers and writers backed
// by data files, including grouping of split files into one continuous
// stream and metadata sidecar files describing the stream layout.
package persistence

// Reader is a sequential item reader.
type Reader interface {
	ReadNext() ([]byte, error)
	Width() (uint64, error)
	Close() error
}

// Writer is a sequential item writer.
type Writer interface {
	Write(item []byte) error
	Flush() error
}
