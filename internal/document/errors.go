package document

import "errors"

// Session errors. Returned errors wrap one of these; test with errors.Is.
var (
	// ErrRead indicates the file could not be read or is not valid UTF-8 text.
	ErrRead = errors.New("read failed")

	// ErrWrite indicates the file could not be written.
	ErrWrite = errors.New("write failed")

	// ErrNoBackingPath indicates Save was called on a session with no file.
	ErrNoBackingPath = errors.New("no file associated with document")
)
