// Package storage archives generated PDFs to a Cloudflare R2 bucket via
// the S3 API. The archive is optional: a nil *Archive skips uploads so
// local setups work without a bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"

	appconfig "billsoft-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Archive struct {
	client *s3.Client
	bucket string
}

// NewArchive builds an R2 archive from config. Returns nil (not an
// error) when the R2 section is unset.
func NewArchive(cfg *appconfig.Config) (*Archive, error) {
	if cfg.R2.Endpoint == "" || cfg.R2.Bucket == "" {
		return nil, nil
	}

	endpoint := cfg.R2.Endpoint
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:           endpoint,
			SigningRegion: "auto",
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.R2.AccessKey,
			cfg.R2.SecretKey,
			"",
		)),
		config.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	return &Archive{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.R2.Bucket,
	}, nil
}

// StorePDF uploads a generated document PDF under the given key. A nil
// archive is a silent no-op.
func (a *Archive) StorePDF(ctx context.Context, key string, data []byte) error {
	if a == nil {
		return nil
	}

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to R2: %w", err)
	}
	return nil
}

// Delete removes an archived PDF by key.
func (a *Archive) Delete(ctx context.Context, key string) error {
	if a == nil {
		return nil
	}

	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete R2 object: %w", err)
	}
	return nil
}
