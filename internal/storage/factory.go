package storage

import (
	"context"
	"fmt"

	"github.com/sahilvr03/GIS-AGENT/internal/config"
)

// DeploymentMode represents the deployment environment.
type DeploymentMode string

const (
	DeploymentLocal DeploymentMode = "local"
	DeploymentGCS   DeploymentMode = "gcs"
)

// NewClient creates a storage client based on deployment mode and
// configuration.
func NewClient(ctx context.Context, deploymentMode DeploymentMode, cfg *config.Config) (Client, error) {
	switch deploymentMode {
	case DeploymentLocal:
		reportsDir := cfg.LocalReportsDir
		if reportsDir == "" {
			reportsDir = "reports"
		}
		localClient, err := NewLocalClient(reportsDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage client: %w", err)
		}
		return localClient, nil

	case DeploymentGCS:
		gcsClient, err := NewGCSClient(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
		}
		return gcsClient, nil

	default:
		return nil, fmt.Errorf("unsupported deployment mode: %s", deploymentMode)
	}
}
