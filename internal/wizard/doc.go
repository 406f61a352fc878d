// Package wizard provides the guided survey wizard behind "surveykit new".
//
// The wizard walks the author through the survey metadata, the number of
// steps and each step's kind, question and options using charmbracelet/huh
// forms. RunWizard returns a Result; Result.Apply replays it through an
// editor so every default and invariant comes from the editor itself.
// WriteDefinition saves the answers as a YAML definition that
// "surveykit export --from" can read back.
package wizard
