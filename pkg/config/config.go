package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-phong-raytracer/pkg/publish"
)

// Config holds deployment settings shared by the CLI and the web server
type Config struct {
	OutputDir     string
	ScenesDir     string
	ServerAddress string
	RenderWorkers int // 0 = use CPU count
	S3            publish.S3Config
}

// Load reads envFile (if it exists) into the process environment and builds a Config.
// Variables already set in the environment take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}

	workers, err := strconv.Atoi(getEnv("RENDER_WORKERS", "0"))
	if err != nil || workers < 0 {
		return nil, fmt.Errorf("invalid RENDER_WORKERS %q", os.Getenv("RENDER_WORKERS"))
	}

	return &Config{
		OutputDir:     getEnv("OUTPUT_DIR", "output"),
		ScenesDir:     getEnv("SCENES_DIR", "scenes"),
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		RenderWorkers: workers,
		S3: publish.S3Config{
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    getEnv("S3_REGION", "us-east-1"),
			Bucket:    os.Getenv("S3_BUCKET"),
			CDNURL:    os.Getenv("CDN_URL"),
		},
	}, nil
}

// UploadEnabled reports whether a bucket is configured
func (c *Config) UploadEnabled() bool {
	return c.S3.Bucket != ""
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
