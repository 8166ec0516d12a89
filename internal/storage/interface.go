package storage

import (
	"context"
	"time"
)

// Client defines the interface for report artifact storage.
type Client interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a report artifact under the report folder for the
	// given timestamp and returns the stored path
	StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) (string, error)

	// GetFile retrieves a stored artifact by path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListReports lists recent report documents, newest first
	ListReports(ctx context.Context, limit int) ([]string, error)
}
