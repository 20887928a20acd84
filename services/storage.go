package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/brightforge/agency-site-backend/config"
)

// ObjectStore writes uploaded files somewhere public and returns the URL.
// The production implementation talks to the Supabase storage bucket over
// its S3-compatible endpoint; tests swap in a stub.
type ObjectStore interface {
	Configured() bool
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// UploadKey generates a random object key under uploads/, preserving the
// original file extension.
func UploadKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return "uploads/" + uuid.NewString() + ext
}

type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Store builds an object store against the endpoint in STORAGE_* env.
// Returns an unconfigured store (never an error) when credentials are
// absent, so the server can start degraded.
func NewS3Store(c map[string]string) *S3Store {
	endpoint := config.GetString(c, "STORAGE_ENDPOINT", "")
	accessKey := config.GetString(c, "STORAGE_ACCESS_KEY", "")
	secretKey := config.GetString(c, "STORAGE_SECRET_KEY", "")
	if endpoint == "" || accessKey == "" || secretKey == "" {
		log.Warn().Msg("Storage env not set, uploads disabled")
		return &S3Store{}
	}

	region := config.GetString(c, "STORAGE_REGION", "us-east-1")
	bucket := config.GetString(c, "STORAGE_BUCKET", "media")

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load storage credentials, uploads disabled")
		return &S3Store{}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		// Supabase storage serves buckets path-style
		o.UsePathStyle = true
	})

	publicURL := strings.TrimSuffix(config.GetString(c, "STORAGE_PUBLIC_URL", ""), "/")

	return &S3Store{
		client:    client,
		bucket:    bucket,
		publicURL: publicURL,
	}
}

func (s *S3Store) Configured() bool {
	return s.client != nil
}

// Upload writes the object and returns its public URL.
func (s *S3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("object storage is not configured")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}
