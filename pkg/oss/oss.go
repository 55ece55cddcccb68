package oss

import (
	"bytes"
	"context"
	"fmt"

	"ClipStream.com/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Store wraps the MinIO client together with the bucket and public URL prefix
// every uploaded object is addressed under.
type Store struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

var defaultStore *Store

func Init() {
	c := config.ConfigInfo.Minio
	client, err := minio.New(c.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.AccessKey, c.SecretKey, ""),
		Secure: c.UseSSL,
	})
	if err != nil {
		panic(err)
	}
	defaultStore = &Store{
		client:        client,
		bucket:        c.Bucket,
		publicBaseURL: c.PublicBaseURL,
	}
	logrus.Infof("minio client ready, endpoint: %s, bucket: %s", c.Endpoint, c.Bucket)
}

func Default() *Store {
	return defaultStore
}

// UploadVideo writes the raw bytes under key and returns the public URL. The
// bucket is created on first use.
func (s *Store) UploadVideo(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", errors.Wrap(err, "check bucket failed")
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", errors.Wrap(err, "create bucket failed")
		}
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "put object %s failed", key)
	}

	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}
