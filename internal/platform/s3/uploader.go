package s3

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/imamik/surveykit/internal/logging"
	"github.com/imamik/surveykit/internal/metrics"
	"github.com/imamik/surveykit/internal/util/retry"
)

// ArchiveContentType is the content type of uploaded archives.
const ArchiveContentType = "application/zip"

// Target is where archives are uploaded.
type Target struct {
	Bucket string
	Prefix string
	// Retries after the first failed attempt.
	Retries int
	// Timeout bounds each request: the bucket check and every put attempt.
	// Zero means none.
	Timeout time.Duration
	// CreateBucket creates a missing bucket before the first upload.
	CreateBucket bool
}

// Uploader puts archives into a bucket.
type Uploader struct {
	client       *Client
	target       Target
	initialDelay time.Duration
}

// NewUploader returns an uploader writing to target through client.
func NewUploader(client *Client, target Target) *Uploader {
	return &Uploader{client: client, target: target, initialDelay: time.Second}
}

// Key returns the object key for an archive file name.
func (u *Uploader) Key(name string) string {
	prefix := strings.Trim(u.target.Prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// Upload stores data under Key(name) and returns the key.
func (u *Uploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	log := logging.FromContext(ctx).WithName("upload")
	key := u.Key(name)

	err := u.upload(ctx, key, data)
	metrics.RecordUpload(metrics.Result(err))
	if err != nil {
		return "", err
	}

	log.Info("archive uploaded", "bucket", u.target.Bucket, "key", key, "bytes", len(data))
	return key, nil
}

func (u *Uploader) upload(ctx context.Context, key string, data []byte) error {
	log := logging.FromContext(ctx).WithName("upload")

	if u.target.CreateBucket {
		err := u.bounded(ctx, func(ctx context.Context) error {
			return u.client.EnsureBucket(ctx, u.target.Bucket)
		})
		if err != nil {
			return fmt.Errorf("failed to prepare bucket: %w", err)
		}
	}

	return retry.Do(ctx, func() error {
		err := u.bounded(ctx, func(ctx context.Context) error {
			return u.client.PutObject(ctx, u.target.Bucket, key, ArchiveContentType, data)
		})
		if isPermanent(err) {
			return retry.Fatal(err)
		}
		return err
	},
		retry.WithMaxRetries(u.target.Retries),
		retry.WithInitialDelay(u.initialDelay),
		retry.WithMaxDelay(30*time.Second),
		retry.WithOnRetry(func(attempt int, err error) {
			log.V(1).Info("upload failed, retrying", "attempt", attempt, "error", err.Error())
		}),
	)
}

// bounded runs fn under the per-request timeout, if any.
func (u *Uploader) bounded(ctx context.Context, fn func(context.Context) error) error {
	if u.target.Timeout <= 0 {
		return fn(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, u.target.Timeout)
	defer cancel()
	return fn(ctx)
}
