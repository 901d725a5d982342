package persistence

import (
	"io/ioutil"
	"os"
)

// NumBytesWritten sums the sizes of the files in dir accepted by the
// predicate.
func NumBytesWritten(dir string, predicate func(os.FileInfo) bool) (uint64, error) {
	allFiles, err := ioutil.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	var numBytesWritten uint64
	for _, file := range allFiles {
		if predicate(file) {
			numBytesWritten += uint64(file.Size())
		}
	}

	return numBytesWritten, nil
}
