// Package security provides path validation for files twtheme reads and writes.
package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateFilePath checks that a relative file path stays within baseDir.
// It guards generated file names and template names against traversal.
func ValidateFilePath(filePath, baseDir string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}

	if strings.Contains(filePath, "..") {
		return fmt.Errorf("file path contains directory traversal (..) - not allowed")
	}

	if filepath.IsAbs(filePath) {
		return fmt.Errorf("absolute file paths are not allowed")
	}

	cleanBase := filepath.Clean(baseDir)
	cleanFinal := filepath.Join(cleanBase, filePath)

	rel, err := filepath.Rel(cleanBase, cleanFinal)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("file path would escape base directory")
	}

	return nil
}
