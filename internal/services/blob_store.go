package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"projectcenter/internal/config"
	"projectcenter/internal/interfaces"
)

// S3API is the subset of *s3.Client the blob store needs.
type S3API interface {
	manager.UploadAPIClient
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3BlobStore keeps punch list attachments in one bucket. Public URLs are the
// configured base URL joined with the object key.
type S3BlobStore struct {
	client        S3API
	bucket        string
	publicBaseURL string
}

var _ interfaces.BlobStore = (*S3BlobStore)(nil)

func NewS3BlobStore(cfg *config.S3Config) *S3BlobStore {
	return NewS3BlobStoreWithClient(cfg.Client, cfg.Bucket, cfg.PublicBaseURL)
}

func NewS3BlobStoreWithClient(client S3API, bucket, publicBaseURL string) *S3BlobStore {
	if publicBaseURL == "" {
		publicBaseURL = "https://" + bucket + ".s3.amazonaws.com"
	}
	return &S3BlobStore{client: client, bucket: bucket, publicBaseURL: publicBaseURL}
}

func (s *S3BlobStore) Upload(ctx context.Context, path string, contentType string, body io.Reader) (*interfaces.StoredObject, error) {
	uploader := manager.NewUploader(s.client)
	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", path, err)
	}
	return &interfaces.StoredObject{
		URL:  strings.TrimRight(s.publicBaseURL, "/") + "/" + path,
		Path: path,
	}, nil
}

func (s *S3BlobStore) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}
