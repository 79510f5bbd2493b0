package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upb-facilities/cleaning-records/internal/config"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body string
	err  error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Uploader_Upload(t *testing.T) {
	fake := &fakePutter{}
	u := NewS3Uploader(fake, "exports-bucket")

	err := u.Upload(context.Background(), "exports/2025-01-01/a.csv", strings.NewReader("id\n1\n"), "text/csv")
	require.NoError(t, err)

	assert.Equal(t, "exports-bucket", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "exports/2025-01-01/a.csv", aws.ToString(fake.in.Key))
	assert.Equal(t, "text/csv", aws.ToString(fake.in.ContentType))
	assert.Equal(t, "id\n1\n", fake.body)
}

func TestS3Uploader_WrapsError(t *testing.T) {
	boom := errors.New("boom")
	u := NewS3Uploader(&fakePutter{err: boom}, "b")

	err := u.Upload(context.Background(), "k", strings.NewReader(""), "text/csv")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "s3://b/k")
}

func TestNewS3Client_CustomEndpoint(t *testing.T) {
	client := NewS3Client(&config.Config{
		ExportRegion:   "us-east-1",
		ExportEndpoint: "http://localhost:9000",
		AWSAccessKey:   "minio",
		AWSSecretKey:   "minio123",
	})

	opts := client.Options()
	assert.Equal(t, "us-east-1", opts.Region)
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
}
