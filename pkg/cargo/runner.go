// pkg/cargo/runner.go
// Package cargo invokes the cargo binary with inherited stdio.
package cargo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes cargo commands
type Runner struct {
	Cargo  string // Binary to invoke, defaults to "cargo"
	DryRun bool   // Print each command to stdout instead of executing it
}

// ExitError reports a cargo invocation that ran but exited non-zero
type ExitError struct {
	Args []string // Arguments cargo was invoked with
	Code int      // Process exit code
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("cargo %s: exit status %d", strings.Join(e.Args, " "), e.Code)
}

// Run executes cargo with the given arguments, passing stdin, stdout,
// and stderr through to the current process.
func (r *Runner) Run(ctx context.Context, args []string) error {
	bin := r.Cargo
	if bin == "" {
		bin = "cargo"
	}

	if r.DryRun {
		fmt.Printf("%s %s\n", bin, strings.Join(args, " "))
		return nil
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Args: args, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s: %w", bin, err)
	}
	return nil
}
