package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// any path components are stripped, spaces become underscores, and every
// remaining character outside [A-Za-z0-9_.-] is dropped. Leading dots are
// removed so the result can never be a hidden file or a traversal component.
func SanitizeFilename(name string) string {
	// Client may send either separator regardless of platform
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, ".")
	if name == "" || name == "/" {
		return ""
	}
	return name
}
