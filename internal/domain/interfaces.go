package domain

import "time"

// TextExtractor is the strategy interface over the underlying PDF library.
// Implementations must recover PageCount from the container's page table
// even when no usable text is found, and must wrap a totally unreadable
// container in ErrCorruptInput.
type TextExtractor interface {
	Extract(data []byte) (ExtractionResult, error)
	Name() string
}

// FileStorage is the external storage collaborator. Put persists one output
// and returns a caller-facing locator; retention/cleanup of stored files is
// the collaborator's responsibility, not the pipeline's.
type FileStorage interface {
	Put(data []byte, filename string) (string, error)
}

// FileResolver maps a stored file name back to a local path for download.
type FileResolver interface {
	Open(filename string) (string, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetStoragePath() string
	GetPublicBaseURL() string
	GetMaxFileSize() int64
	GetFileRetention() time.Duration
	GetLogLevel() string
	GetExtractor() string
}
