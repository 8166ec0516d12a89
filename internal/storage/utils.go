package storage

import (
	"fmt"
	"strings"
	"time"
)

// GenerateReportFolderPath generates a consistent folder path for reports.
// Format: YYYY/MM/DD/FarmReport-YYYY-MM-DD-HH-MM-SS
func GenerateReportFolderPath(timestamp time.Time) string {
	return fmt.Sprintf("%04d/%02d/%02d/FarmReport-%04d-%02d-%02d-%02d-%02d-%02d",
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Hour(), timestamp.Minute(), timestamp.Second())
}

// GetContentType determines the MIME content type based on file extension.
func GetContentType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(filename, ".json"):
		return "application/json"
	case strings.HasSuffix(filename, ".txt"):
		return "text/plain"
	case strings.HasSuffix(filename, ".html"):
		return "text/html"
	case strings.HasSuffix(filename, ".css"):
		return "text/css"
	case strings.HasSuffix(filename, ".md"):
		return "text/markdown"
	case strings.HasSuffix(filename, ".png"):
		return "image/png"
	case strings.HasSuffix(filename, ".jpg"), strings.HasSuffix(filename, ".jpeg"):
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
