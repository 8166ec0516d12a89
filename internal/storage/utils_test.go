package storage

import (
	"testing"
	"time"
)

func TestGenerateReportFolderPath(t *testing.T) {
	ts := time.Date(2025, 3, 7, 8, 5, 9, 0, time.UTC)
	got := GenerateReportFolderPath(ts)
	want := "2025/03/07/FarmReport-2025-03-07-08-05-09"
	if got != want {
		t.Errorf("GenerateReportFolderPath = %q, want %q", got, want)
	}
}

func TestGetContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"farm_report.pdf", "application/pdf"},
		{"report.html", "text/html"},
		{"chart.png", "image/png"},
		{"results.json", "application/json"},
		{"notes.md", "text/markdown"},
		{"photo.jpeg", "image/jpeg"},
		{"unknown.bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := GetContentType(tt.filename); got != tt.want {
			t.Errorf("GetContentType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
