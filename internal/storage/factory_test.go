package storage

import (
	"context"
	"testing"

	"github.com/sahilvr03/GIS-AGENT/internal/config"
)

func TestNewClientLocal(t *testing.T) {
	cfg := &config.Config{
		LocalReportsDir: t.TempDir(),
	}

	client, err := NewClient(context.Background(), DeploymentLocal, cfg)
	if err != nil {
		t.Fatalf("failed to create local storage client: %v", err)
	}
	defer client.Close()

	if _, ok := client.(*LocalClient); !ok {
		t.Errorf("expected LocalClient, got %T", client)
	}
}

func TestNewClientUnsupportedMode(t *testing.T) {
	if _, err := NewClient(context.Background(), DeploymentMode("ftp"), &config.Config{}); err == nil {
		t.Error("expected error for unsupported deployment mode")
	}
}
