package tui

import "os"

func strPtr(s string) *string { return &s }

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
