package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LocalClient handles local file system storage operations.
type LocalClient struct {
	baseDir string
}

// NewLocalClient creates a local storage client rooted at baseDir.
func NewLocalClient(baseDir string) (*LocalClient, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}
	return &LocalClient{baseDir: baseDir}, nil
}

// Close is a no-op for local storage.
func (l *LocalClient) Close() error {
	return nil
}

// StoreFile writes a report artifact into the report folder for the given
// timestamp.
func (l *LocalClient) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) (string, error) {
	relPath := filepath.Join(GenerateReportFolderPath(timestamp), filename)
	filePath := filepath.Join(l.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", filepath.Dir(filePath), err)
	}
	if err := os.WriteFile(filePath, fileData, 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", filePath, err)
	}
	return relPath, nil
}

// GetFile retrieves a stored artifact by its path relative to the base
// directory.
func (l *LocalClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.baseDir, filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// ListReports lists stored report documents, newest first.
func (l *LocalClient) ListReports(ctx context.Context, limit int) ([]string, error) {
	var reportPaths []string

	err := filepath.Walk(l.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if strings.HasSuffix(info.Name(), ".pdf") {
			relPath, _ := filepath.Rel(l.baseDir, path)
			reportPaths = append(reportPaths, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk reports directory: %w", err)
	}

	// Folder names embed the timestamp, so a reverse sort is newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(reportPaths)))

	if limit > 0 && limit < len(reportPaths) {
		reportPaths = reportPaths[:limit]
	}
	return reportPaths, nil
}
