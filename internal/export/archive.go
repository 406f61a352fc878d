package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zip"
)

// EncodeManifest encodes m as survey.json: two-space indentation and a
// trailing newline.
func EncodeManifest(m Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", ManifestFile, err)
	}
	return buf.Bytes(), nil
}

// writeArchive streams the archive described by p to w.
func writeArchive(ctx context.Context, w io.Writer, p plan, modified time.Time) error {
	manifest, err := EncodeManifest(p.manifest)
	if err != nil {
		return opError("encode", err)
	}

	zw := zip.NewWriter(w)

	if err := writeEntry(zw, ManifestFile, zip.Deflate, modified, manifest); err != nil {
		return opError("archive", err)
	}

	for _, e := range p.images {
		if err := ctx.Err(); err != nil {
			return opError("archive", err)
		}
		// Images are already compressed.
		if err := writeEntry(zw, path.Join(ImageDir, e.name), zip.Store, modified, e.file.Data); err != nil {
			return opError("archive", err)
		}
	}

	if err := zw.Close(); err != nil {
		return opError("archive", fmt.Errorf("failed to finish archive: %w", err))
	}
	return nil
}

func writeEntry(zw *zip.Writer, name string, method uint16, modified time.Time, data []byte) error {
	fw, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   method,
		Modified: modified,
	})
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
