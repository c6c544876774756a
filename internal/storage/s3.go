// Package storage uploads movie artwork to S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client wraps the S3 client for artwork uploads.
type S3Client struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

// Options configures NewS3Client.
type Options struct {
	Endpoint  string // host:port, without scheme
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string // optional base URL objects are served from
}

// NewS3Client creates a new S3 client configured for the given endpoint.
func NewS3Client(opts Options, logger *slog.Logger) (*S3Client, error) {
	// Build the endpoint URL
	protocol := "http"
	if opts.UseSSL {
		protocol = "https"
	}
	endpointURL := protocol + "://" + opts.Endpoint

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion("us-east-1"), // MinIO requires a region
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpointURL)
		o.UsePathStyle = true // Required for MinIO
	})

	public := strings.TrimRight(opts.PublicURL, "/")
	if public == "" {
		public = endpointURL + "/" + opts.Bucket
	}

	logger.Info("configured artwork storage", "endpoint", endpointURL, "bucket", opts.Bucket)

	return &S3Client{
		client:   client,
		bucket:   opts.Bucket,
		endpoint: public,
	}, nil
}

// PutObject uploads an object to storage.
func (s *S3Client) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// ObjectURL returns the public URL for key.
func (s *S3Client) ObjectURL(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.endpoint + "/" + strings.Join(segments, "/")
}
