package attachment

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/crypto/blake2b"
)

// File is an image picked by the author.
type File struct {
	// Name is the original base file name, used as the archive entry name.
	Name string
	// MIME is the sniffed content type, always "image/...".
	MIME string
	// Data is the raw file content.
	Data []byte
	// Digest identifies the content; equal digests mean equal bytes.
	Digest [32]byte
}

// NewFile validates data as an image and returns a File named name.
func NewFile(name string, data []byte) (*File, error) {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil, ErrMissingName
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyFile)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("%s: %w (detected %s)", name, ErrNotImage, mt.String())
	}

	return &File{
		Name:   name,
		MIME:   mt.String(),
		Data:   data,
		Digest: blake2b.Sum256(data),
	}, nil
}

// Load reads the image at path.
func Load(path string) (*File, error) {
	// #nosec G304 -- the author picks the path
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return NewFile(filepath.Base(path), data)
}

// Size returns the content length in bytes.
func (f *File) Size() int {
	return len(f.Data)
}

// SameContent reports whether f and other hold identical bytes.
func (f *File) SameContent(other *File) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Digest == other.Digest
}

// Image is a file attached to the document together with its display URL.
// Images are immutable once created.
type Image struct {
	File *File
	URL  string
}

// Name returns the original file name, or "" for a nil image.
func (i *Image) Name() string {
	if i == nil || i.File == nil {
		return ""
	}
	return i.File.Name
}
