package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// UploadTimeout bounds a single PutObject call
const UploadTimeout = 30 * time.Second

// ErrNoBucket is returned when uploading without a configured bucket
var ErrNoBucket = errors.New("no S3 bucket configured")

// S3Config holds the object storage settings
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	CDNURL    string // Public base URL; empty means the endpoint URL is used
}

// Uploader publishes rendered images to an S3 compatible bucket
type Uploader struct {
	client s3iface.S3API
	config S3Config
	logger core.Logger
}

// NewS3Uploader opens a session against the configured endpoint
func NewS3Uploader(cfg S3Config, logger core.Logger) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}

	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return NewUploader(s3.New(sess), cfg, logger), nil
}

// NewUploader wraps an existing S3 client
func NewUploader(client s3iface.S3API, cfg S3Config, logger core.Logger) *Uploader {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Uploader{client: client, config: cfg, logger: logger}
}

// Upload stores a PNG under key with public-read access and returns its public URL
func (u *Uploader) Upload(ctx context.Context, key string, png []byte) (string, error) {
	if u.config.Bucket == "" {
		return "", ErrNoBucket
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(png))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(png),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	u.logger.Printf("Uploaded %s to S3 (%d bytes)\n", key, size)
	return u.PublicURL(key), nil
}

// PublicURL returns where key can be fetched once uploaded
func (u *Uploader) PublicURL(key string) string {
	if u.config.CDNURL != "" {
		return strings.TrimRight(u.config.CDNURL, "/") + "/" + key
	}
	if u.config.Endpoint != "" {
		return strings.TrimRight(u.config.Endpoint, "/") + "/" + u.config.Bucket + "/" + key
	}
	region := u.config.Region
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.config.Bucket, region, key)
}

// RenderKey names the object for a render of sceneName finished at ts
func RenderKey(sceneName string, ts time.Time) string {
	return fmt.Sprintf("renders/%s/render_%s.png", sceneName, ts.UTC().Format("20060102_150405"))
}
