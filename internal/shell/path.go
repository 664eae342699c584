package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for cd target resolution.
var (
	ErrDirectoryNotFound = errors.New("no such directory")
	ErrNotADirectory     = errors.New("not a directory")
	ErrInvalidPath       = errors.New("invalid path")
)

// ResolveDir resolves a user-supplied cd target against the current
// directory: a leading ~ expands to the home directory, a leading /
// is absolute, anything else is relative to cwd. The result is
// canonicalized (., .., symlinks) and must denote an existing
// directory. The literal `-` is not supported.
func ResolveDir(target, cwd string) (string, error) {
	var expanded string
	switch {
	case strings.HasPrefix(target, "~"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: cannot expand ~", ErrInvalidPath)
		}
		if target == "~" {
			expanded = home
		} else {
			expanded = filepath.Join(home, strings.TrimPrefix(target, "~/"))
		}
	case strings.HasPrefix(target, "/"):
		expanded = target
	case target == "-":
		return "", fmt.Errorf("%w: cd - is not supported", ErrInvalidPath)
	default:
		expanded = filepath.Join(cwd, target)
	}

	canonical, err := filepath.EvalSymlinks(filepath.Clean(expanded))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrDirectoryNotFound, target)
	}
	info, err := os.Stat(canonical)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrDirectoryNotFound, target)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotADirectory, target)
	}
	return canonical, nil
}

// AbbreviateHome replaces a leading home-directory prefix with ~ for
// display.
func AbbreviateHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
