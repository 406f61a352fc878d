package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/imamik/surveykit/internal/editor"
	"github.com/imamik/surveykit/internal/survey"
	"github.com/imamik/surveykit/internal/surveyfile"
	"github.com/imamik/surveykit/internal/util/ptr"
)

// Definition converts the wizard answers into a survey definition.
// Image paths are kept as entered.
func (r *Result) Definition() surveyfile.Definition {
	def := surveyfile.Definition{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Vinoks:      strings.TrimSpace(r.Vinoks),
		Image:       strings.TrimSpace(r.ImagePath),
	}

	for _, s := range r.Steps {
		sd := surveyfile.StepDef{
			Type:     strings.ToLower(s.Kind.String()),
			Question: strings.TrimSpace(s.Question),
		}
		if s.Stars > 0 && s.Kind == survey.KindText {
			sd.Stars = ptr.Int(s.Stars)
		}
		if s.MaxScore > 0 && s.Kind == survey.KindScore {
			sd.MaxScore = ptr.Int(s.MaxScore)
		}
		if s.Kind.HasOptions() {
			for _, o := range s.Options {
				sd.Options = append(sd.Options, surveyfile.OptionDef{
					Title:       strings.TrimSpace(o.Title),
					Description: o.Description,
					Image:       strings.TrimSpace(o.ImagePath),
				})
			}
		}
		def.Steps = append(def.Steps, sd)
	}

	return def
}

// Apply replays the answers through ed, replacing its document. Image paths
// are resolved against the working directory. ed is left unchanged when an
// image cannot be loaded.
func (r *Result) Apply(ctx context.Context, ed *editor.Editor) error {
	def := r.Definition()
	if err := def.Validate(); err != nil {
		return fmt.Errorf("invalid answers: %w", err)
	}

	images, err := surveyfile.LoadImages(ctx, def, "")
	if err != nil {
		return err
	}

	surveyfile.Apply(def, images, ed)
	return nil
}
