// Package minio stores the order and directions documents attached to a
// case.
package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

const defaultPresignExpiry = 15 * time.Minute

// DocumentStore reads and writes case documents in one bucket.
type DocumentStore struct {
	client        *minio.Client
	bucket        string
	presignExpiry time.Duration
	logger        logging.Logger
}

// NewDocumentStore connects to the object store and ensures the bucket
// exists.
func NewDocumentStore(ctx context.Context, cfg config.MinIOConfig, logger logging.Logger) (*DocumentStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeExternalService, "create object-store client")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeExternalService, "check bucket "+cfg.Bucket)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeExternalService, "create bucket "+cfg.Bucket)
		}
		logger.Info("bucket created", logging.String("bucket", cfg.Bucket))
	}

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = defaultPresignExpiry
	}
	return &DocumentStore{
		client:        client,
		bucket:        cfg.Bucket,
		presignExpiry: expiry,
		logger:        logger.Named("storage.documents"),
	}, nil
}

// ObjectKey builds the stable storage key for a case document.  File names
// are sanitised and prefixed with a fresh id so repeated uploads of the same
// name never collide.
func ObjectKey(reference, fileName string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, fileName)
	return fmt.Sprintf("cases/%s/%s-%s", reference, uuid.NewString(), clean)
}

// Upload stores one document and returns its object key.
func (s *DocumentStore) Upload(ctx context.Context, reference, fileName, contentType string, body io.Reader, size int64) (string, error) {
	if reference == "" || fileName == "" {
		return "", errors.InvalidParam("reference and file name are required")
	}
	key := ObjectKey(reference, fileName)

	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeDocumentUploadFailed, "upload "+key)
	}

	s.logger.Info("document stored",
		logging.String("reference", reference),
		logging.String("key", key),
		logging.Int("size", int(size)))
	return key, nil
}

// Download opens the document under key.  The caller owns the returned
// reader.
func (s *DocumentStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDocumentNotFound, "open "+key)
	}
	// GetObject is lazy; a missing key only surfaces on the first read.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, errors.Wrap(err, errors.ErrCodeDocumentNotFound, "stat "+key)
	}
	return obj, nil
}

// PresignedURL returns a short-lived download link for key.
func (s *DocumentStore) PresignedURL(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.presignExpiry, url.Values{})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeDocumentNotFound, "presign "+key)
	}
	return u.String(), nil
}

// Delete removes the document under key.
func (s *DocumentStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, errors.ErrCodeExternalService, "delete "+key)
	}
	return nil
}
