package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/skiffsh/skiff/internal/log"
)

// Result captures one finished shell invocation.
type Result struct {
	Stdout   []string
	Stderr   []string
	ExitCode int
}

// Success reports whether the command exited zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Lines returns stdout followed by stderr, ready for the scrollback.
func (r *Result) Lines() []string {
	lines := make([]string, 0, len(r.Stdout)+len(r.Stderr))
	lines = append(lines, r.Stdout...)
	lines = append(lines, r.Stderr...)
	return lines
}

// Runner executes command lines through an external shell interpreter.
type Runner struct {
	shell string
}

// NewRunner returns a Runner that delegates to the given interpreter
// ("sh" when empty).
func NewRunner(shell string) *Runner {
	if strings.TrimSpace(shell) == "" {
		shell = "sh"
	}
	return &Runner{shell: shell}
}

// Run executes one command line in cwd and collects its output. A
// non-zero exit is reported through Result; failure to launch the
// interpreter at all is the returned error.
func (r *Runner) Run(ctx context.Context, command, cwd string) (*Result, error) {
	log.Printf("exec: %s (cwd=%s)", command, cwd)

	// #nosec G204 -- the command line is exactly what the user typed at the prompt
	cmd := exec.CommandContext(ctx, r.shell, "-c", command)
	cmd.Dir = cwd

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to execute command: %w", err)
		}
		exitCode = exitErr.ExitCode()
	}

	return &Result{
		Stdout:   splitLines(stdout.String()),
		Stderr:   splitLines(stderr.String()),
		ExitCode: exitCode,
	}, nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
