package surveyfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/imamik/surveykit/internal/attachment"
	"github.com/imamik/surveykit/internal/editor"
	"github.com/imamik/surveykit/internal/logging"
	"github.com/imamik/surveykit/internal/survey"
	"github.com/imamik/surveykit/internal/util/async"
)

// imageLoadConcurrency bounds parallel image reads.
const imageLoadConcurrency = 4

// loadImage reads one image file; replaced in tests.
var loadImage = attachment.Load

// ReadFile reads and validates the definition at path.
func ReadFile(path string) (Definition, error) {
	// #nosec G304 -- the author names the definition file
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read definition: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Load reads the definition at path and replays it through ed, replacing
// the editor's document. ed is left unchanged when loading fails.
func Load(ctx context.Context, path string, ed *editor.Editor) error {
	def, err := ReadFile(path)
	if err != nil {
		return err
	}

	images, err := LoadImages(ctx, def, filepath.Dir(path))
	if err != nil {
		return err
	}

	Apply(def, images, ed)

	logging.FromContext(ctx).WithName("surveyfile").V(1).Info("definition loaded",
		"path", path, "steps", len(def.Steps), "images", len(images))
	return nil
}

// Apply replays def through ed. images maps the image paths named in def to
// loaded files; paths missing from images are left unattached.
func Apply(def Definition, images map[string]*attachment.File, ed *editor.Editor) {
	reset(ed)

	ed.SetMetaField(editor.FieldTitle, def.Title)
	ed.SetMetaField(editor.FieldDescription, def.Description)
	ed.SetMetaField(editor.FieldVinoks, def.Vinoks)
	if f := images[def.Image]; f != nil {
		ed.SetMetaImage(f)
	}

	for _, s := range def.Steps {
		kind, err := survey.ParseStepKind(s.Type)
		if err != nil {
			continue
		}
		before := len(ed.Snapshot().Doc.Steps)
		ed.AddStep(kind)
		if len(ed.Snapshot().Doc.Steps) == before {
			break
		}
		i := before
		question := s.Question
		ed.UpdateStep(i, editor.StepPatch{Question: &question, Stars: s.Stars, MaxScore: s.MaxScore})

		if len(s.Options) == 0 {
			continue
		}
		resizeOptions(ed, i, len(s.Options))
		step, _ := ed.Snapshot().Doc.Step(i)
		for j, od := range s.Options {
			id := step.Options()[j].ID
			title, desc := od.Title, od.Description
			ed.UpdateOption(i, id, editor.OptionPatch{Title: &title, Description: &desc})
			if f := images[od.Image]; f != nil {
				ed.SetOptionImage(i, id, f)
			}
		}
	}

	ed.SelectStep(0)
}

func reset(ed *editor.Editor) {
	ed.ClearMetaImage()
	for n := len(ed.Snapshot().Doc.Steps); n > 0; n-- {
		ed.RemoveStep(n - 1)
	}
}

func resizeOptions(ed *editor.Editor, stepIndex, n int) {
	for {
		step, _ := ed.Snapshot().Doc.Step(stepIndex)
		opts := step.Options()
		switch {
		case len(opts) < n:
			ed.AddOption(stepIndex)
		case len(opts) > n:
			ed.RemoveOption(stepIndex, opts[len(opts)-1].ID)
		default:
			return
		}
	}
}

// LoadImages reads every image named in def, in parallel. Paths are relative
// to dir unless absolute. The result is keyed by the path as written in def.
func LoadImages(ctx context.Context, def Definition, dir string) (map[string]*attachment.File, error) {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	add(def.Image)
	for _, s := range def.Steps {
		for _, o := range s.Options {
			add(o.Image)
		}
	}

	files := make([]*attachment.File, len(paths))
	tasks := make([]async.Task, len(paths))
	for i, p := range paths {
		tasks[i] = async.Task{
			Name: p,
			Func: func(_ context.Context) error {
				resolved := p
				if !filepath.IsAbs(resolved) {
					resolved = filepath.Join(dir, resolved)
				}
				f, err := loadImage(resolved)
				if err != nil {
					return err
				}
				files[i] = f
				return nil
			},
		}
	}
	if err := async.RunParallel(ctx, tasks, imageLoadConcurrency); err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}

	images := make(map[string]*attachment.File, len(paths))
	for i, p := range paths {
		images[p] = files[i]
	}
	return images, nil
}
