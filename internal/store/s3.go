package store

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

var contentTypes = map[string]string{
	".json": "application/json",
}

// S3Sink uploads files under Prefix in Bucket.
type S3Sink struct {
	svc    s3iface.S3API
	Bucket string
	Prefix string
}

// NewS3Sink builds a client from the shared AWS configuration.
func NewS3Sink(bucket, prefix, region string) (*S3Sink, error) {
	cfg := aws.NewConfig()
	if region != "" {
		cfg = cfg.WithRegion(region)
	}
	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *cfg,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("aws session: %w", err)
	}
	return &S3Sink{svc: s3.New(sess), Bucket: bucket, Prefix: prefix}, nil
}

// NewS3SinkWithClient uses an existing client.
func NewS3SinkWithClient(svc s3iface.S3API, bucket, prefix string) *S3Sink {
	return &S3Sink{svc: svc, Bucket: bucket, Prefix: prefix}
}

func (s *S3Sink) key(name string) string {
	if s.Prefix == "" {
		return name
	}
	return path.Join(s.Prefix, name)
}

func (s *S3Sink) Put(ctx context.Context, name string, data []byte) error {
	contentType := "text/plain; charset=utf-8"
	for ext, mime := range contentTypes {
		if strings.HasSuffix(name, ext) {
			contentType = mime
			break
		}
	}

	_, err := s.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(s.key(name)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", s.Location(name), err)
	}
	return nil
}

func (s *S3Sink) Location(name string) string {
	return "s3://" + s.Bucket + "/" + s.key(name)
}
