package document

import "os"

// FileSystem is the raw file I/O capability a Session reads and writes through.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// OSFileSystem reads and writes the local filesystem.
type OSFileSystem struct{}

// ReadFile reads the whole file.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile replaces the file's contents, creating it with mode 0644.
func (OSFileSystem) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
