package exportarchive

import (
	"errors"
	"fmt"
	"time"

	"github.com/Bryanx275/trafeek-admin/internal/pkg/env"
)

// Config holds export archive configuration
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // Optional for S3-compatible services
	Enabled         bool
}

// LoadConfig loads archive configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		AccessKeyID:     env.GetEnv("EXPORT_ARCHIVE_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("EXPORT_ARCHIVE_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("EXPORT_ARCHIVE_REGION", "us-west-001"),
		BucketName:      env.GetEnv("EXPORT_ARCHIVE_BUCKET", ""),
		EndpointURL:     env.GetEnv("EXPORT_ARCHIVE_ENDPOINT_URL", ""),
		Enabled:         env.GetEnv("EXPORT_ARCHIVE_ENABLED", "false") == "true",
	}

	// Validate required fields if the archive is enabled
	if config.Enabled {
		if config.AccessKeyID == "" {
			return nil, errors.New("EXPORT_ARCHIVE_ACCESS_KEY_ID is required when the export archive is enabled")
		}
		if config.SecretAccessKey == "" {
			return nil, errors.New("EXPORT_ARCHIVE_SECRET_ACCESS_KEY is required when the export archive is enabled")
		}
		if config.BucketName == "" {
			return nil, errors.New("EXPORT_ARCHIVE_BUCKET is required when the export archive is enabled")
		}
	}

	return config, nil
}

// IsEnabled returns true if the export archive is enabled
func (c *Config) IsEnabled() bool {
	return c.Enabled
}

// GetObjectKey generates a standardized object key for an archived export
func (c *Config) GetObjectKey(kind, fileName string, when time.Time) string {
	// Format: exports/<kind>/YYYY/MM/<file>
	return fmt.Sprintf("exports/%s/%04d/%02d/%s", kind, when.Year(), int(when.Month()), fileName)
}

// GetAppEnv returns the current application environment
func GetAppEnv() string {
	return env.GetEnv("APP_ENV", "dev")
}

// GetBucketName returns the bucket name as configured (no automatic prefixing)
func (c *Config) GetBucketName() string {
	return c.BucketName
}
