package pathkit

import (
	"os"
	"path/filepath"
	"strings"
)

// ToObjectKey canonicalizes a filesystem path into an object-store key.
// Environment-variable and home-directory references are expanded,
// platform separators become forward slashes, repeated separators
// collapse, and leading/trailing separators are stripped. "." and
// trailing-dot forms normalize to the empty key.
func ToObjectKey(filePath string) string {
	expanded := os.ExpandEnv(filePath)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			expanded = filepath.Join(home, expanded[1:])
		}
	}

	s := strings.ReplaceAll(expanded, `\`, "/")

	// Drop a Windows drive prefix; object keys are drive-less.
	if len(s) >= 2 && s[1] == ':' && isDriveLetter(s[0]) {
		s = s[2:]
	}

	parts := strings.Split(s, "/")
	kept := parts[:0]
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, "/")
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// HasTrailingSlash reports whether s ends with a forward slash.
// The empty string has no trailing slash.
func HasTrailingSlash(s string) bool {
	return strings.HasSuffix(s, "/")
}

// RemoveTrailingSlash strips any number of trailing forward slashes.
func RemoveTrailingSlash(s string) string {
	return strings.TrimRight(s, "/")
}
