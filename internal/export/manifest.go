package export

import (
	"github.com/imamik/surveykit/internal/attachment"
	"github.com/imamik/surveykit/internal/survey"
)

// ManifestFile is the name of the document entry in the archive.
const ManifestFile = "survey.json"

// Manifest is the content of survey.json.
type Manifest struct {
	Meta  ManifestMeta   `json:"meta"`
	Steps []ManifestStep `json:"steps"`
}

// ManifestMeta is the survey header. Image is the archive file name or null.
type ManifestMeta struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Vinoks      string  `json:"vinoks"`
	Image       *string `json:"image"`
}

// ManifestStep is one step. Options is present only for option-bearing kinds;
// MaxScore only for SCORE and Stars only for TEXT.
type ManifestStep struct {
	QuestionType survey.StepKind   `json:"questionType"`
	Question     string            `json:"question"`
	Options      *[]ManifestOption `json:"options,omitempty"`
	MaxScore     int               `json:"maxScore,omitempty"`
	Stars        int               `json:"stars,omitempty"`
}

// ManifestOption is an exported option. UI-only state is not part of it.
type ManifestOption struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
}

// BuildManifest builds survey.json for doc under the default rename policy.
func BuildManifest(doc survey.Document) Manifest {
	p, _ := newPlan(doc, CollisionsRename) // rename never fails
	return p.manifest
}

func buildManifest(doc survey.Document, names map[*attachment.Image]string) Manifest {
	ref := func(img *attachment.Image) *string {
		if img == nil {
			return nil
		}
		name := names[img]
		return &name
	}

	m := Manifest{
		Meta: ManifestMeta{
			Title:       doc.Meta.Title,
			Description: doc.Meta.Description,
			Vinoks:      doc.Meta.Vinoks,
			Image:       ref(doc.Meta.Image),
		},
		Steps: make([]ManifestStep, 0, len(doc.Steps)),
	}

	for _, s := range doc.Steps {
		ms := ManifestStep{
			QuestionType: s.Kind(),
			Question:     s.Question,
			MaxScore:     s.MaxScore(),
			Stars:        s.Stars(),
		}
		if s.Kind().HasOptions() {
			opts := make([]ManifestOption, 0, len(s.Options()))
			for _, o := range s.Options() {
				opts = append(opts, ManifestOption{
					Title:       o.Title,
					Description: o.Description,
					Image:       ref(o.Image),
				})
			}
			ms.Options = &opts
		}
		m.Steps = append(m.Steps, ms)
	}
	return m
}
