package filestore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3 stores objects in an S3-compatible bucket under `{category}/{filename}`
// keys. The URL layout matches the local driver so clients never see which
// driver is active.
type S3 struct {
	client    *minio.Client
	bucket    string
	urlPrefix string
	host      string
}

var _ Store = (*S3)(nil)

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLPrefix string
	Host      string
}

// NewS3 creates the client and ensures the bucket exists.
func NewS3(ctx context.Context, conf S3Config) (*S3, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, conf.Bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, conf.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket: %w", err)
		}
	}

	return &S3{
		client:    client,
		bucket:    conf.Bucket,
		urlPrefix: conf.URLPrefix,
		host:      conf.Host,
	}, nil
}

func objectKey(category, filename string) string {
	return category + "/" + filename
}

func (s *S3) Write(ctx context.Context, category, filename string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey(category, filename),
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return "", fmt.Errorf("putting object: %w", err)
	}
	return s.URLPath(category, filename), nil
}

func (s *S3) Exists(ctx context.Context, category, filename string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, objectKey(category, filename), minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == minio.NoSuchKey {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *S3) Delete(ctx context.Context, category, filename string) error {
	exists, err := s.Exists(ctx, category, filename)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return s.client.RemoveObject(ctx, s.bucket, objectKey(category, filename), minio.RemoveObjectOptions{})
}

func (s *S3) List(ctx context.Context, category string) ([]Object, error) {
	objects := []Object{}
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix: category + "/",
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("listing objects: %w", info.Err)
		}
		filename := info.Key[len(category)+1:]
		objects = append(objects, Object{
			Filename:   filename,
			Category:   category,
			URL:        s.URLPath(category, filename),
			Size:       info.Size,
			UploadedAt: info.LastModified,
		})
	}
	return objects, nil
}

func (s *S3) URLPath(category, filename string) string {
	return urlPath(s.urlPrefix, category, filename)
}

func (s *S3) FileURL(urlpath string) string {
	return fileURL(s.host, urlpath)
}
