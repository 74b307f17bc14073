package trigger

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteResponse writes the reply document picked up by the workflow.
func WriteResponse(path, body string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create response dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
