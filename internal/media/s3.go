// Package media talks to the object store that hosts profile pictures.
package media

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"acedating-api/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const (
	keyPrefix      = "profile-pics/"
	presignExpires = 5 * time.Minute
)

type objectAPI interface {
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type presignAPI interface {
	PresignPutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type Store struct {
	objects objectAPI
	presign presignAPI
	bucket  string
	now     func() time.Time
}

// Upload is a presigned PUT the client uses to send a picture directly.
type Upload struct {
	URL       string    `json:"upload_url"`
	Key       string    `json:"public_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// New builds an S3 store from the default AWS credential chain. It returns
// nil, nil when no bucket is configured.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg.S3Bucket == "" {
		return nil, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)
	return newStore(client, s3.NewPresignClient(client), cfg.S3Bucket), nil
}

func newStore(objects objectAPI, presign presignAPI, bucket string) *Store {
	return &Store{objects: objects, presign: presign, bucket: bucket, now: time.Now}
}

// Delete removes an object. Deleting a missing key is not an error in S3.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.objects.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// UploadURL presigns a PUT for a new, unique key derived from fileName.
func (s *Store) UploadURL(ctx context.Context, fileName, contentType string) (*Upload, error) {
	key := keyPrefix + uuid.NewString() + "-" + cleanName(fileName)

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpires))
	if err != nil {
		return nil, fmt.Errorf("presign %s: %w", key, err)
	}
	return &Upload{URL: req.URL, Key: key, ExpiresAt: s.now().Add(presignExpires)}, nil
}

// cleanName keeps the base name and replaces anything outside [A-Za-z0-9._-].
func cleanName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "image"
	}
	return out
}
