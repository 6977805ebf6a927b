package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// UploadTimeout bounds a single frame upload
const UploadTimeout = 10 * time.Second

// S3Config holds connection settings for an S3-compatible store
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Prefix    string // Key prefix for uploaded frames
}

// getEnv returns the environment variable or a fallback
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LoadS3Config reads S3 settings from the environment, after loading
// envFile if it exists. Existing environment variables take precedence.
func LoadS3Config(envFile string) (S3Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return S3Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}

	cfg := S3Config{
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    os.Getenv("S3_BUCKET"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Prefix:    getEnv("S3_PREFIX", "renders"),
	}
	return cfg, cfg.Validate()
}

// Validate checks that a bucket and credentials are configured
func (c S3Config) Validate() error {
	var missing []error
	if c.Bucket == "" {
		missing = append(missing, errors.New("S3_BUCKET is not set"))
	}
	if c.AccessKey == "" || c.SecretKey == "" {
		missing = append(missing, errors.New("S3 credentials are not set"))
	}
	return errors.Join(missing...)
}

// S3Uploader uploads rendered frames as PNG objects
type S3Uploader struct {
	config S3Config
	client *s3.S3
	logger core.Logger
}

// NewS3Uploader creates an uploader with static credentials and path-style addressing
func NewS3Uploader(cfg S3Config, logger core.Logger) (*S3Uploader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
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

	return &S3Uploader{
		config: cfg,
		client: s3.New(sess),
		logger: logger,
	}, nil
}

// Key returns the object key for a frame name
func (u *S3Uploader) Key(name string) string {
	return path.Join(u.config.Prefix, name)
}

// Upload stores PNG data under the frame name and returns the object key
func (u *S3Uploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := u.Key(name)
	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if u.logger != nil {
		u.logger.Printf("Uploaded %s to S3 (%d bytes)\n", key, size)
	}
	return key, nil
}
