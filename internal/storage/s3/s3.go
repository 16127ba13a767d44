package s3

import (
	"bytes"
	"context"
	"fmt"

	"ticketGate/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store uploads QR artifacts to any S3-compatible endpoint and hands
// back a public URL for the object.
type Store struct {
	client *minio.Client
	cfg    config.S3
}

func New(cfg config.S3) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	return &Store{client: client, cfg: cfg}, nil
}

// Upload stores the PNG under a fresh uuid key and returns its URL.
func (s *Store) Upload(ctx context.Context, data []byte) (string, error) {
	key := s.cfg.KeyPrefix + uuid.NewString() + ".png"

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType:  "image/png",
			UserMetadata: map[string]string{"x-amz-acl": "public-read"},
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload qr image: %w", err)
	}

	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.cfg.Bucket, key), nil
}
