package pathcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"draftd/internal/services"
)

// Kind selects which filesystem object a validated path must resolve to.
type Kind int

const (
	// KindFile requires the resolved path to be a regular file.
	KindFile Kind = iota
	// KindDir requires the resolved path to be a directory.
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "directory"
	}
	return "file"
}

// Resolve validates a caller-supplied path and returns its canonical absolute
// form. The raw input is checked for traversal elements before normalization;
// the resolved path must exist and match the expected kind.
func Resolve(raw string, kind Kind) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", services.Wrap(services.ErrValidation, "pathcheck", "resolve", "path is empty", nil)
	}

	if containsTraversal(trimmed) {
		return "", services.Wrap(services.ErrPathSecurity, "pathcheck", "resolve",
			fmt.Sprintf("path traversal detected in %q", raw), nil)
	}

	abs, err := filepath.Abs(filepath.Clean(trimmed))
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "pathcheck", "resolve", "cannot normalize path", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", services.Wrap(services.ErrNotFound, "pathcheck", "resolve",
				fmt.Sprintf("%s not found: %s", kind, raw), nil)
		}
		return "", services.Wrap(services.ErrInternal, "pathcheck", "resolve", "stat failed", err)
	}

	switch kind {
	case KindDir:
		if !info.IsDir() {
			return "", services.Wrap(services.ErrNotFound, "pathcheck", "resolve",
				fmt.Sprintf("not a directory: %s", raw), nil)
		}
	default:
		if !info.Mode().IsRegular() {
			return "", services.Wrap(services.ErrNotFound, "pathcheck", "resolve",
				fmt.Sprintf("not a regular file: %s", raw), nil)
		}
	}

	return abs, nil
}

// containsTraversal reports whether any element of the raw, un-normalized
// path is a parent-directory reference. Matching whole elements rather than
// substrings keeps filenames like "data/..archive" legal while still
// rejecting "a/../b" before normalization can hide it.
func containsTraversal(raw string) bool {
	normalized := strings.ReplaceAll(raw, "\\", "/")
	for _, element := range strings.Split(normalized, "/") {
		if element == ".." {
			return true
		}
	}
	return false
}
