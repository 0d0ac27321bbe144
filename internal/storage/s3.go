// Package storage talks to the S3-compatible object store that holds all
// uploaded media. Uploaded objects are addressed by their key, which
// doubles as the public_id stored on each entity.
package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/aabiskar/portfolio-backend/internal/config"
	"github.com/aabiskar/portfolio-backend/internal/model"
)

type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// New builds an S3 client from static credentials. S3Endpoint may point
// at MinIO or any other S3-compatible server; leave it empty for AWS.
func New(cfg *config.Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}, nil
}

// Upload stores a multipart file under the given folder and returns the
// media reference for it. The object key keeps the original extension so
// browsers resolve the content type from the URL.
func (s *S3Storage) Upload(ctx context.Context, folder string, file *multipart.FileHeader) (model.Media, error) {
	src, err := file.Open()
	if err != nil {
		return model.Media{}, err
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s%s", folder, uuid.New(), strings.ToLower(filepath.Ext(file.Filename)))

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		return model.Media{}, err
	}

	return model.Media{
		PublicID: key,
		URL:      s.publicURL + "/" + key,
	}, nil
}

// Delete removes the object behind a public_id. Deleting a key that no
// longer exists is not an error in S3, which suits the best-effort
// cleanup the handlers perform.
func (s *S3Storage) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	return err
}
