package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/imamik/surveykit/internal/surveyfile"
)

// Function variables for dependency injection in tests.
var (
	confirmOverwrite = defaultConfirmOverwrite
	now              = time.Now
)

// WriteDefinition writes def to a YAML file with a descriptive header.
// Relative image paths are rewritten relative to the file's directory so
// that "surveykit export --from" finds them again.
func WriteDefinition(def surveyfile.Definition, outputPath string) error {
	rel, err := relocate(def, filepath.Dir(outputPath))
	if err != nil {
		return err
	}

	yamlBytes, err := yaml.Marshal(rel)
	if err != nil {
		return fmt.Errorf("failed to marshal definition: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// relocate returns a copy of def whose relative image paths are relative to
// dir instead of the working directory.
func relocate(def surveyfile.Definition, dir string) (surveyfile.Definition, error) {
	var err error
	move := func(p string) string {
		if p == "" || filepath.IsAbs(p) || err != nil {
			return p
		}
		var abs, absDir, rel string
		if abs, err = filepath.Abs(p); err != nil {
			return p
		}
		if absDir, err = filepath.Abs(dir); err != nil {
			return p
		}
		if rel, err = filepath.Rel(absDir, abs); err != nil {
			return p
		}
		return filepath.ToSlash(rel)
	}

	out := def
	out.Image = move(def.Image)
	out.Steps = make([]surveyfile.StepDef, len(def.Steps))
	for i, s := range def.Steps {
		out.Steps[i] = s
		if s.Options == nil {
			continue
		}
		out.Steps[i].Options = make([]surveyfile.OptionDef, len(s.Options))
		for j, o := range s.Options {
			o.Image = move(o.Image)
			out.Steps[i].Options[j] = o
		}
	}
	if err != nil {
		return surveyfile.Definition{}, fmt.Errorf("failed to resolve image path: %w", err)
	}
	return out, nil
}

// generateHeader creates the YAML file header comment.
func generateHeader(outputPath string) string {
	return fmt.Sprintf(`# surveykit survey definition
# Generated by: surveykit new
# Generated at: %s
#
# Usage:
#   surveykit preview --from %s
#   surveykit export --from %s
`, now().Format(time.RFC3339), outputPath, outputPath)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ConfirmOverwrite prompts the user to confirm overwriting an existing file.
func ConfirmOverwrite(path string) (bool, error) {
	return confirmOverwrite(path)
}

// defaultConfirmOverwrite is the default implementation that prompts via stdin.
func defaultConfirmOverwrite(path string) (bool, error) {
	fmt.Printf("\nFile already exists: %s\n", path)
	fmt.Print("Overwrite? (y/n): ")

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
