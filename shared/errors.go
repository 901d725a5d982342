package shared

import (
	"errors"
)

var (
	ErrMetadataNotExist = errors.New("stream metadata doesn't exist")
)
