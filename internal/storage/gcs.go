package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/sahilvr03/GIS-AGENT/internal/logger"
)

// GCSClient handles Google Cloud Storage operations.
type GCSClient struct {
	client *storage.Client
	bucket string
	log    *logger.Logger
}

// NewGCSClient creates a GCS storage client for the given bucket.
func NewGCSClient(ctx context.Context, bucketName string) (*GCSClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSClient{
		client: client,
		bucket: bucketName,
		log:    logger.GetGlobalLogger().WithComponent("storage"),
	}, nil
}

// Close closes the GCS client.
func (g *GCSClient) Close() error {
	return g.client.Close()
}

// StoreFile uploads a report artifact into the report folder for the given
// timestamp.
func (g *GCSClient) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) (string, error) {
	objectPath := GenerateReportFolderPath(timestamp) + "/" + filename

	g.log.Infof("storing file to GCS: gs://%s/%s", g.bucket, objectPath)

	obj := g.client.Bucket(g.bucket).Object(objectPath)
	writer := obj.NewWriter(ctx)
	writer.ContentType = GetContentType(filename)
	writer.CacheControl = "public, max-age=3600"
	writer.Metadata = map[string]string{
		"generated-at": timestamp.Format(time.RFC3339),
		"filename":     filename,
	}

	if _, err := writer.Write(fileData); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to write file to GCS: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize GCS file upload: %w", err)
	}

	return objectPath, nil
}

// GetFile retrieves a stored artifact by object path.
func (g *GCSClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	obj := g.client.Bucket(g.bucket).Object(filePath)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for file %s: %w", filePath, err)
	}
	defer reader.Close()

	fileData, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return fileData, nil
}

// ListReports lists stored report documents, newest first.
func (g *GCSClient) ListReports(ctx context.Context, limit int) ([]string, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{})

	var reportPaths []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		if strings.HasSuffix(attrs.Name, ".pdf") {
			reportPaths = append(reportPaths, attrs.Name)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(reportPaths)))

	if limit > 0 && limit < len(reportPaths) {
		reportPaths = reportPaths[:limit]
	}
	return reportPaths, nil
}
