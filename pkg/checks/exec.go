package checks

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// LaunchFailureCode is the exit status reported when a tool could not be
// started at all, matching the shell convention for "command not found".
const LaunchFailureCode = 127

// StepError reports a failed check. ExitCode carries the exit status of
// the failing tool so callers can propagate it as the process exit code.
type StepError struct {
	Step     string
	ExitCode int
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("check %q failed with exit status %d: %v", e.Step, e.ExitCode, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// runTool executes one external tool with its stdout and stderr passed
// through untouched. A missing binary and a failed start surface as the
// same failure kind as a non-zero exit, with status LaunchFailureCode.
func runTool(ctx StepContext, step, tool string, args, extraEnv []string) error {
	if _, err := exec.LookPath(tool); err != nil {
		return &StepError{
			Step:     step,
			ExitCode: LaunchFailureCode,
			Err:      fmt.Errorf("%s binary not found in PATH: %w", tool, err),
		}
	}

	slog.Info("running tool", "check", step, "tool", tool, "args", args)

	cmd := exec.Command(tool, args...)
	cmd.Dir = ctx.WorkDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return &StepError{
				Step:     step,
				ExitCode: exitErr.ExitCode(),
				Err:      fmt.Errorf("%s exited with status %d", tool, exitErr.ExitCode()),
			}
		}
		return &StepError{
			Step:     step,
			ExitCode: LaunchFailureCode,
			Err:      fmt.Errorf("running %s: %w", tool, err),
		}
	}
	return nil
}
