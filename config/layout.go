package config

// FilesLayout describes how a stream of items is split across data files.
// All files hold the same number of items, except the last one.
type FilesLayout struct {
	NumFiles         uint
	FileNumItems     uint64
	LastFileNumItems uint64
}

// DeriveFilesLayout derives the files layout for the given total number of
// items, bounded by cfg.MaxFileSize per file.
func DeriveFilesLayout(cfg *Config, numItems uint64) FilesLayout {
	maxFileSizeBits := cfg.MaxFileSize * 8
	maxFileNumItems := maxFileSizeBits / uint64(cfg.ItemBitSize)
	numFiles := numItems / maxFileNumItems

	lastFileNumItems := maxFileNumItems
	remainder := numItems % maxFileNumItems
	if remainder > 0 {
		numFiles++
		lastFileNumItems = remainder
	}

	return FilesLayout{
		NumFiles:         uint(numFiles),
		FileNumItems:     maxFileNumItems,
		LastFileNumItems: lastFileNumItems,
	}
}
