package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/spec-kit/member-directory/internal/config"
)

const photoFolder = "profiles"

// PhotoStorage stores profile photos at an external host and returns a stable
// reference URL for each stored object.
type PhotoStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewPhotoKey returns a namespaced object key for a fresh upload. The key is
// persisted on the member record so deletion never has to re-derive it from
// the URL.
func NewPhotoKey() string {
	return fmt.Sprintf("%s/%s.jpg", photoFolder, uuid.NewString())
}

// S3Storage talks to an S3-compatible media host.
type S3Storage struct {
	client        *s3.Client
	bucket        string
	endpoint      string
	publicBaseURL string
}

// NewS3Storage builds a client from the media configuration.
func NewS3Storage(ctx context.Context, cfg config.MediaConfig) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Storage{
		client:        client,
		bucket:        cfg.S3Bucket,
		endpoint:      cfg.S3Endpoint,
		publicBaseURL: cfg.PublicBaseURL,
	}, nil
}

// Upload stores the object and returns its public URL.
func (s *S3Storage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return s.objectURL(key), nil
}

// Delete removes the object.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) objectURL(key string) string {
	if s.publicBaseURL != "" {
		return strings.TrimRight(s.publicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
}
