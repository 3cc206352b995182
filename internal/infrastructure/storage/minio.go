package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jayantelango/ai-driven-meeting-summarizer/pkg/config"
)

// MinIOClient archives uploaded source documents so the original
// transcript file survives alongside the parsed record. The bucket is
// private, access goes through the API only.
type MinIOClient struct {
	client *minio.Client
	bucket string
}

// NewMinIOClient creates a new MinIO client and ensures the bucket exists
func NewMinIOClient(cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	ctx := context.Background()
	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// UploadFile uploads a file to MinIO
func (m *MinIOClient) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// UploadText uploads text content to MinIO
func (m *MinIOClient) UploadText(ctx context.Context, objectName string, content string) error {
	reader := bytes.NewReader([]byte(content))
	return m.UploadFile(ctx, objectName, reader, int64(len(content)), "text/plain")
}

// DownloadFile fetches an archived object
func (m *MinIOClient) DownloadFile(ctx context.Context, objectName string) ([]byte, error) {
	object, err := m.client.GetObject(ctx, m.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch object: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}
	return data, nil
}

// ListFiles lists archived objects under a prefix
func (m *MinIOClient) ListFiles(ctx context.Context, prefix string) ([]string, error) {
	var files []string

	objectCh := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing objects: %w", object.Err)
		}
		files = append(files, object.Key)
	}

	return files, nil
}
