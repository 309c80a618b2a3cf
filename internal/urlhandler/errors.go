package urlhandler

import "errors"

// Errors returned by address canonicalization.
var (
	ErrUnsupportedScheme  = errors.New("address has a non-http scheme")
	ErrUnparseableAddress = errors.New("address is not parseable as a URL")
	ErrMissingHost        = errors.New("address lacks a hostname")
)

// Errors returned by input file handling.
var (
	ErrFileNotFound   = errors.New("input file not found")
	ErrFilePermission = errors.New("permission denied reading input file")
	ErrFileEmpty      = errors.New("input file is empty")
	ErrReadingFile    = errors.New("error reading input file")
)
