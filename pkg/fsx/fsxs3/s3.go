package fsxs3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/skovr/talentmatch/pkg/fsx"
)

// S3FileSystem implements fsx.FileSystem backed by an S3 bucket
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3FileSystem creates an S3-backed file system rooted at bucket/prefix
func NewS3FileSystem(client *s3.Client, bucket, prefix string) fsx.FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (f *S3FileSystem) key(path string) string {
	path = strings.TrimPrefix(path, "/")
	if f.prefix == "" {
		return path
	}
	return f.prefix + "/" + path
}

// ReadFile downloads an object and returns its bytes
func (f *S3FileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(path)),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", path, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", path, err)
	}
	return data, nil
}

// WriteFile uploads bytes to an object
func (f *S3FileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(path)),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", path, err)
	}
	return nil
}

// Exists checks whether an object is present
func (f *S3FileSystem) Exists(ctx context.Context, path string) (bool, error) {
	_, err := f.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(path)),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("head object %s: %w", path, err)
	}
	return true, nil
}

// Delete removes an object
func (f *S3FileSystem) Delete(ctx context.Context, path string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(path)),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", path, err)
	}
	return nil
}
