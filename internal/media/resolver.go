package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"terravolt-cms/internal/domain"
	"terravolt-cms/pkg/utils"
)

type Kind string

const (
	KindImage Kind = "image"
	KindPDF   Kind = "pdf"
)

// MaxImageBytes caps image uploads. PDFs carry no dedicated cap beyond
// the request body limit.
const MaxImageBytes = 10 << 20

// ErrImageTooLarge is the exact wire message for oversized images.
var ErrImageTooLarge = errors.New("File too large. Maximum size is 10MB.")

const uploadTimeout = 30 * time.Second

// Store is the object-storage capability the resolver delegates to.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}

type MinioStore struct {
	mc     *minio.Client
	bucket string
}

type MinioOpts struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func NewMinioStore(o MinioOpts) (*MinioStore, error) {
	if o.Endpoint == "" {
		return nil, fmt.Errorf("media endpoint is required")
	}
	mc, err := minio.New(o.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(o.AccessKey, o.SecretKey, ""),
		Secure: o.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create media client: %w", err)
	}
	bucket := o.Bucket
	if bucket == "" {
		bucket = "terravolt-media"
	}
	return &MinioStore{mc: mc, bucket: bucket}, nil
}

func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.mc.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := s.mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}
	return nil
}

func (s *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.mc.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

// Resolver accepts raw upload bytes, delegates storage and returns a
// stable public URL. It performs no validation of the returned URL;
// defensive rendering is the consumer's concern.
type Resolver struct {
	store         Store
	bucket        string
	publicBaseURL string
}

func NewResolver(store Store, bucket, publicBaseURL string) *Resolver {
	return &Resolver{
		store:         store,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload streams one payload to the object store under a 30-second
// timeout. Oversized images are rejected before the store is touched.
func (r *Resolver) Upload(ctx context.Context, reader io.Reader, size int64, filename, contentType string, kind Kind) (string, error) {
	if kind == KindImage && size > MaxImageBytes {
		return "", ErrImageTooLarge
	}
	key := objectKey(filename, kind)

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	if err := r.store.Put(ctx, key, reader, size, contentType); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", domain.ErrUploadTimeout
		}
		return "", fmt.Errorf("%w: %s", domain.ErrUploadFailed, err.Error())
	}
	return fmt.Sprintf("%s/%s/%s", r.publicBaseURL, r.bucket, key), nil
}

func objectKey(filename string, kind Kind) string {
	ext := path.Ext(filename)
	prefix := "images"
	if kind == KindPDF {
		prefix = "pdfs"
	}
	return fmt.Sprintf("%s/%s%s", prefix, utils.NewID(), ext)
}
