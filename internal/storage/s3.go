// Package storage archives export files in an S3 compatible bucket.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/upb-facilities/cleaning-records/internal/config"
)

// Uploader stores one object under key.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
}

// ObjectPutter is the subset of the S3 client the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client ObjectPutter
	bucket string
}

func NewS3Uploader(client ObjectPutter, bucket string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket}
}

// NewS3Client builds a client from EXPORT_S3_* settings. A custom endpoint
// (MinIO, LocalStack) switches to path-style addressing.
func NewS3Client(cfg *config.Config) *s3.Client {
	awsCfg := aws.Config{
		Region: cfg.ExportRegion,
	}
	if cfg.AWSAccessKey != "" && cfg.AWSSecretKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKey,
			cfg.AWSSecretKey,
			"",
		)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.ExportEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.ExportEndpoint)
			o.UsePathStyle = true
		}
	})
}

func (u *S3Uploader) Upload(
	ctx context.Context,
	key string,
	body io.Reader,
	contentType string,
) error {

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", u.bucket, key, err)
	}
	return nil
}

var _ Uploader = (*S3Uploader)(nil)
