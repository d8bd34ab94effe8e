package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gcs "cloud.google.com/go/storage"
	"go.uber.org/zap"
)

// ExportStore keeps generated export files and returns a URL for each.
type ExportStore interface {
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// LocalExportStore writes exports into a directory served under URLPrefix.
type LocalExportStore struct {
	Dir       string
	URLPrefix string
}

func NewLocalExportStore(dir, urlPrefix string) *LocalExportStore {
	return &LocalExportStore{Dir: dir, URLPrefix: urlPrefix}
}

func (s *LocalExportStore) Save(_ context.Context, name, _ string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	if filepath.Base(name) != name {
		return "", fmt.Errorf("invalid export name %q", name)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return s.URLPrefix + "/" + name, nil
}

// GCSExportStore uploads exports to a Google Cloud Storage bucket.
type GCSExportStore struct {
	client *gcs.Client
	bucket string
	prefix string
}

// NewGCSExportStore creates a client using application default credentials.
func NewGCSExportStore(ctx context.Context, bucket, prefix string) (*GCSExportStore, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSExportStore{client: client, bucket: bucket, prefix: prefix}, nil
}

func (s *GCSExportStore) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	object := name
	if s.prefix != "" {
		object = s.prefix + "/" + name
	}
	w := s.client.Bucket(s.bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize upload %s: %w", object, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, object), nil
}

func (s *GCSExportStore) Close() error {
	return s.client.Close()
}

// NewExportStore picks GCS when useGCS is set and a bucket is configured,
// and the local directory otherwise.
func NewExportStore(ctx context.Context, useGCS bool, bucket, localDir string, logger *zap.Logger) (ExportStore, error) {
	if useGCS && bucket != "" {
		logger.Info("exports stored in Google Cloud Storage", zap.String("bucket", bucket))
		return NewGCSExportStore(ctx, bucket, "exports")
	}
	logger.Info("exports stored on local disk", zap.String("dir", localDir))
	return NewLocalExportStore(localDir, "/exports"), nil
}
