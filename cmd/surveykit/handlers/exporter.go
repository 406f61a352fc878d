package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/surveykit/internal/config"
	"github.com/imamik/surveykit/internal/export"
	"github.com/imamik/surveykit/internal/logging"
	"github.com/imamik/surveykit/internal/platform/s3"
	"github.com/imamik/surveykit/internal/survey"
	"github.com/imamik/surveykit/internal/ui/tui"
)

var errUploadNotConfigured = errors.New("upload requested but no bucket is configured (set upload.bucket or SURVEYKIT_S3_BUCKET)")

// archiveUploader stores a written archive remotely and returns its key.
type archiveUploader interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
}

// newS3Uploader builds the uploader for the configured bucket.
func newS3Uploader(ctx context.Context, cfg config.UploadConfig) (archiveUploader, error) {
	client, err := s3.NewClient(ctx, s3.Options{
		Endpoint:     cfg.Endpoint,
		Region:       cfg.Region,
		AccessKey:    cfg.AccessKey,
		SecretKey:    cfg.SecretKey,
		UsePathStyle: cfg.PathStyle,
	})
	if err != nil {
		return nil, err
	}
	return s3.NewUploader(client, s3.Target{
		Bucket:       cfg.Bucket,
		Prefix:       cfg.Prefix,
		Retries:      cfg.Retries,
		Timeout:      cfg.Timeout,
		CreateBucket: cfg.CreateBucket,
	}), nil
}

// exporter writes archives and optionally uploads them.
type exporter struct {
	dir      string
	opts     export.Options
	uploader archiveUploader // nil when uploads are off
	metrics  config.MetricsConfig
}

// newExporter resolves the output directory and collision policy, flags
// first, then configuration. Uploads run when requested by flag or enabled
// in the configuration.
func newExporter(ctx context.Context, cfg *config.Config, outputDir, collisions string, upload bool) (*exporter, error) {
	if outputDir == "" {
		outputDir = cfg.Export.OutputDir
	}
	if collisions == "" {
		collisions = cfg.Export.Collisions
	}
	policy, err := export.ParseCollisions(collisions)
	if err != nil {
		return nil, err
	}

	e := &exporter{
		dir:     outputDir,
		opts:    export.Options{Collisions: policy},
		metrics: cfg.Metrics,
	}

	if upload || cfg.Upload.Enabled {
		if cfg.Upload.Bucket == "" {
			return nil, errUploadNotConfigured
		}
		u, err := newUploader(ctx, cfg.Upload)
		if err != nil {
			return nil, fmt.Errorf("failed to create uploader: %w", err)
		}
		e.uploader = u
	}
	return e, nil
}

// Run writes the archive for doc and uploads it when configured. The returned
// key is empty without upload. Metrics are pushed whether or not Run fails.
func (e *exporter) Run(ctx context.Context, doc survey.Document) (export.Result, string, error) {
	defer e.push(ctx)

	res, err := export.WriteFile(ctx, doc, e.dir, e.opts)
	if err != nil {
		return export.Result{}, "", err
	}
	if e.uploader == nil {
		return res, "", nil
	}

	data, err := readFile(res.Path)
	if err != nil {
		return res, "", fmt.Errorf("failed to read archive for upload: %w", err)
	}
	key, err := e.uploader.Upload(ctx, res.Name, data)
	if err != nil {
		return res, "", fmt.Errorf("archive written to %s but upload failed: %w", res.Path, err)
	}
	return res, key, nil
}

// forEditor adapts Run to the editor's export hook.
func (e *exporter) forEditor() tui.ExportFunc {
	return func(ctx context.Context, doc survey.Document) (tui.ExportDoneMsg, error) {
		res, key, err := e.Run(ctx, doc)
		if err != nil {
			return tui.ExportDoneMsg{}, err
		}
		return tui.ExportDoneMsg{Result: res, Key: key}, nil
	}
}

func (e *exporter) push(ctx context.Context) {
	if e.metrics.PushgatewayURL == "" {
		return
	}
	if err := pushMetrics(ctx, e.metrics.PushgatewayURL, e.metrics.Job); err != nil {
		logging.FromContext(ctx).Error(err, "metrics push failed", "url", e.metrics.PushgatewayURL)
	}
}
