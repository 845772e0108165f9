package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	aws_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/config"
)

// s3Storage stages screenshots straight into the configured bucket,
// bypassing the upstream /upload endpoint.
type s3Storage struct {
	cfg      *config.Config
	s3Client *s3.Client
}

// NewS3Storage creates an Uploader that puts objects into S3 directly.
func NewS3Storage(cfg *config.Config) (Uploader, error) {
	awsCfg, err := aws_config.LoadDefaultConfig(context.TODO(),
		aws_config.WithRegion(cfg.AwsRegion),
		// Static credentials from config; prefer IAM roles where available.
		aws_config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AwsAccessKeyID,
			cfg.AwsSecretAccessKey,
			"", // session token
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &s3Storage{
		cfg:      cfg,
		s3Client: s3.NewFromConfig(awsCfg),
	}, nil
}

// UploadScreenshot puts the file under a uuid-prefixed key and returns its
// public URL.
func (s *s3Storage) UploadScreenshot(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	objectKey := fmt.Sprintf("screenshots/%s_%s", uuid.NewString(), sanitizeFilename(filename))

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.AwsS3Bucket),
		Key:         aws.String(objectKey),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put screenshot %s: %w", objectKey, err)
	}

	base := strings.TrimRight(s.cfg.ScreenshotBaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.cfg.AwsS3Bucket, s.cfg.AwsRegion)
	}
	return base + "/" + objectKey, nil
}

// sanitizeFilename strips path separators so a client-supplied name cannot
// escape the screenshots prefix.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "screenshot"
	}
	return name
}
