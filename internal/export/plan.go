package export

import (
	"fmt"
	"path"
	"strings"

	"github.com/imamik/surveykit/internal/attachment"
	"github.com/imamik/surveykit/internal/survey"
)

// ImageDir is the archive folder holding image files.
const ImageDir = "images"

// Collisions is the policy for distinct images sharing a file name.
type Collisions string

const (
	// CollisionsRename stores later images as name-1.ext, name-2.ext, ...
	CollisionsRename Collisions = "rename"
	// CollisionsReject fails the export with ErrNameCollision.
	CollisionsReject Collisions = "reject"
	// CollisionsOverwrite keeps only the last image under the name.
	CollisionsOverwrite Collisions = "overwrite"
)

// ParseCollisions validates a policy name. The empty name means rename.
func ParseCollisions(s string) (Collisions, error) {
	switch c := Collisions(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CollisionsRename, nil
	case CollisionsRename, CollisionsReject, CollisionsOverwrite:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCollisions, s)
	}
}

type entry struct {
	name string
	file *attachment.File
}

// plan is the resolved content of an archive.
type plan struct {
	manifest Manifest
	images   []entry
}

func newPlan(doc survey.Document, policy Collisions) (plan, error) {
	names := make(map[*attachment.Image]string)
	slots := make(map[string]int) // archive name -> index into images
	var images []entry

	for _, ref := range doc.Attachments() {
		img := ref.Image
		if img.File == nil {
			continue
		}
		name := img.File.Name

		i, taken := slots[name]
		switch {
		case !taken:
		case images[i].file.SameContent(img.File):
			names[img] = name
			continue
		case policy == CollisionsReject:
			return plan{}, fmt.Errorf("%w: %s", ErrNameCollision, name)
		case policy == CollisionsOverwrite:
			images[i].file = img.File
			names[img] = name
			continue
		default:
			name = freeName(name, img.File, slots, images)
			if j, ok := slots[name]; ok && images[j].file.SameContent(img.File) {
				names[img] = name
				continue
			}
		}

		slots[name] = len(images)
		images = append(images, entry{name: name, file: img.File})
		names[img] = name
	}

	return plan{manifest: buildManifest(doc, names), images: images}, nil
}

// freeName returns the first name-N.ext that is unused or already holds f.
func freeName(name string, f *attachment.File, slots map[string]int, images []entry) string {
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, n, ext)
		i, taken := slots[candidate]
		if !taken || images[i].file.SameContent(f) {
			return candidate
		}
	}
}
