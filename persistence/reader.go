package persistence

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// NewReadersFromDir returns a reader per data file in dir, sorted by the
// numerical suffix of the filenames.
func NewReadersFromDir(dir string, itemSize uint) ([]Reader, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("data directory not found: %v", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("data directory (%v) is empty", dir)
	}
	sort.Sort(numericalSorter(files))

	readers := make([]Reader, 0)
	for _, file := range files {
		if file.IsDir() || strings.HasSuffix(file.Name(), MetadataSuffix) {
			continue
		}
		reader, err := NewFileReader(filepath.Join(dir, file.Name()), itemSize)
		if err != nil {
			return nil, err
		}
		readers = append(readers, reader)
	}

	return readers, nil
}

// Merge merges a slice of readers into one continuous reader. If the data
// was split into multiple files, they are grouped into one unified reader.
func Merge(readers []Reader) (Reader, error) {
	if len(readers) == 1 {
		return readers[0], nil
	}
	return Group(readers)
}

type numericalSorter []os.FileInfo

// A compile time check to ensure that numericalSorter fully implements sort.Interface.
var _ sort.Interface = (*numericalSorter)(nil)

func (s numericalSorter) Len() int      { return len(s) }
func (s numericalSorter) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s numericalSorter) Less(i, j int) bool {
	pathA := s[i].Name()
	pathB := s[j].Name()

	// Get the integer values of each filename, placed after the delimiter.
	a, err1 := strconv.ParseInt(pathA[strings.Index(pathA, "-")+1:], 10, 64)
	b, err2 := strconv.ParseInt(pathB[strings.Index(pathB, "-")+1:], 10, 64)

	// If any were not numbers, sort lexicographically.
	if err1 != nil || err2 != nil {
		return pathA < pathB
	}

	return a < b
}
