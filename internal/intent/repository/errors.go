package repository

import "errors"

var (
	ErrFailedToRead      = errors.New("failed to read catalog source")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)
