package fsx

import "context"

// FileReader reads file contents from a storage backend
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileWriter writes file contents to a storage backend
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

// FileSystem combines read and write access
type FileSystem interface {
	FileReader
	FileWriter
	Exists(ctx context.Context, path string) (bool, error)
	Delete(ctx context.Context, path string) error
}
