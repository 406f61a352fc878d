package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/imamik/surveykit/internal/logging"
	"github.com/imamik/surveykit/internal/metrics"
	"github.com/imamik/surveykit/internal/survey"
)

// DefaultBaseName is the archive name used when the survey has no title.
const DefaultBaseName = "survey"

// Options configures an export.
type Options struct {
	Collisions Collisions
	// Now stamps archive entries. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) policy() Collisions {
	if o.Collisions == "" {
		return CollisionsRename
	}
	return o.Collisions
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Result describes a written archive.
type Result struct {
	Path   string // absolute or dir-relative path of the archive
	Name   string // file name, see FileName
	Size   int64  // archive size in bytes
	Images int    // image entries in the archive
}

// createTemp opens the temporary file an archive is written to before it is
// renamed into place.
var createTemp = os.CreateTemp

// FileName returns the download name for a survey titled title:
// "<title>.zip", or "survey.zip" for an empty title. Path separators are
// replaced so the name stays inside the output directory.
func FileName(title string) string {
	base := strings.TrimSpace(title)
	base = strings.NewReplacer("/", "-", `\`, "-", "\x00", "").Replace(base)
	if base == "" || base == "." || base == ".." {
		base = DefaultBaseName
	}
	return base + ".zip"
}

// Build returns the archive bytes for doc.
func Build(ctx context.Context, doc survey.Document, opts Options) ([]byte, error) {
	start := time.Now()
	p, err := newPlan(doc, opts.policy())
	if err != nil {
		err = opError("plan", err)
		record(ctx, start, err, 0, 0)
		return nil, err
	}

	var buf bytes.Buffer
	if err := writeArchive(ctx, &buf, p, opts.now()); err != nil {
		record(ctx, start, err, 0, 0)
		return nil, err
	}

	record(ctx, start, nil, int64(buf.Len()), len(p.images))
	logging.FromContext(ctx).WithName("export").V(1).Info("archive built",
		"bytes", buf.Len(), "images", len(p.images))
	return buf.Bytes(), nil
}

// WriteFile writes the archive for doc into dir under FileName(title). The
// file appears atomically: on failure no partial archive is left behind and
// an existing archive with the same name is untouched.
func WriteFile(ctx context.Context, doc survey.Document, dir string, opts Options) (Result, error) {
	start := time.Now()
	res, err := writeFile(ctx, doc, dir, opts)
	record(ctx, start, err, res.Size, res.Images)
	if err != nil {
		return Result{}, err
	}

	logging.FromContext(ctx).WithName("export").Info("archive written",
		"path", res.Path, "bytes", res.Size, "images", res.Images)
	return res, nil
}

func writeFile(ctx context.Context, doc survey.Document, dir string, opts Options) (Result, error) {
	p, err := newPlan(doc, opts.policy())
	if err != nil {
		return Result{}, opError("plan", err)
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return Result{}, opError("write", fmt.Errorf("failed to create output directory: %w", err))
	}

	tmp, err := createTemp(dir, ".surveykit-*.zip.tmp")
	if err != nil {
		return Result{}, opError("write", fmt.Errorf("failed to create temporary file: %w", err))
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := writeArchive(ctx, tmp, p, opts.now()); err != nil {
		return Result{}, err
	}
	if err := tmp.Sync(); err != nil {
		return Result{}, opError("write", fmt.Errorf("failed to sync archive: %w", err))
	}
	info, err := tmp.Stat()
	if err != nil {
		return Result{}, opError("write", fmt.Errorf("failed to stat archive: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return Result{}, opError("write", fmt.Errorf("failed to close archive: %w", err))
	}

	name := FileName(doc.Meta.Title)
	target := filepath.Join(dir, name)
	if err := os.Rename(tmpName, target); err != nil {
		return Result{}, opError("write", fmt.Errorf("failed to move archive into place: %w", err))
	}
	committed = true

	return Result{
		Path:   target,
		Name:   name,
		Size:   info.Size(),
		Images: len(p.images),
	}, nil
}

func record(ctx context.Context, start time.Time, err error, size int64, images int) {
	metrics.RecordExport(metrics.Result(err), time.Since(start).Seconds(), size, images)
	if err != nil {
		logging.FromContext(ctx).WithName("export").Error(err, "export failed")
	}
}
