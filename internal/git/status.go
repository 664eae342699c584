// Package git computes repository status snapshots and runs the
// background poller that keeps them fresh.
package git

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Status is an immutable point-in-time summary of a repository. It is
// replaced wholesale, never patched.
type Status struct {
	Branch     string
	IsDetached bool
	IsDirty    bool
	Ahead      int
	Behind     int
}

// Label renders the status for the terminal pane title.
func (s *Status) Label() string {
	var b strings.Builder
	if s.IsDetached {
		b.WriteString("@")
	}
	b.WriteString(s.Branch)
	if s.IsDirty {
		b.WriteString("*")
	}
	if s.Ahead > 0 {
		fmt.Fprintf(&b, " ↑%d", s.Ahead)
	}
	if s.Behind > 0 {
		fmt.Fprintf(&b, " ↓%d", s.Behind)
	}
	return b.String()
}

// runGit executes one git command in dir and returns trimmed stdout.
// It is a package variable so tests can stub it out, the same way the
// command lookup is stubbed elsewhere.
var runGit = func(dir string, args ...string) (string, error) {
	// #nosec G204 -- fixed git subcommands with vetted arguments
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// IsRepository reports whether dir is inside a git work tree.
func IsRepository(dir string) bool {
	_, err := runGit(dir, "rev-parse", "--git-dir")
	return err == nil
}

// Fetch performs a best-effort remote sync; failures are ignored by
// callers.
func Fetch(dir string) error {
	_, err := runGit(dir, "fetch")
	return err
}

func branchName(dir string) (string, error) {
	return runGit(dir, "rev-parse", "--abbrev-ref", "HEAD")
}

func shortHash(dir string) (string, error) {
	return runGit(dir, "rev-parse", "--short", "HEAD")
}

func isDirty(dir string) (bool, error) {
	out, err := runGit(dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// aheadBehind counts commits relative to the upstream. No upstream (or
// any query failure) counts as (0, 0): the display is advisory.
func aheadBehind(dir string) (int, int) {
	out, err := runGit(dir, "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if err != nil {
		return 0, 0
	}
	parts := strings.Fields(out)
	if len(parts) != 2 {
		return 0, 0
	}
	ahead, _ := strconv.Atoi(parts[0])
	behind, _ := strconv.Atoi(parts[1])
	return ahead, behind
}

// ReadStatus computes the snapshot for dir, or nil when dir is not a
// repository or the queries fail.
func ReadStatus(dir string) *Status {
	if !IsRepository(dir) {
		return nil
	}

	branch, err := branchName(dir)
	if err != nil {
		return nil
	}
	detached := false
	if branch == "HEAD" {
		hash, err := shortHash(dir)
		if err != nil {
			return nil
		}
		branch = hash
		detached = true
	}

	dirty, err := isDirty(dir)
	if err != nil {
		return nil
	}
	ahead, behind := aheadBehind(dir)

	return &Status{
		Branch:     branch,
		IsDetached: detached,
		IsDirty:    dirty,
		Ahead:      ahead,
		Behind:     behind,
	}
}
