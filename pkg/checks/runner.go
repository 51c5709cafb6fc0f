package checks

import (
	"errors"
	"log/slog"
)

// Run executes each check in order and stops at the first failure.
// The returned error is a *StepError for the failing check; checks after
// it never run. There are no retries and no partial-success reporting.
func Run(steps []Step, ctx StepContext) error {
	for _, s := range steps {
		slog.Info("running check", "check", s.Name())
		if err := s.Run(ctx); err != nil {
			var stepErr *StepError
			if errors.As(err, &stepErr) {
				return stepErr
			}
			return &StepError{Step: s.Name(), ExitCode: LaunchFailureCode, Err: err}
		}
		slog.Info("check passed", "check", s.Name())
	}
	return nil
}

// ExitCode maps a runner error to a process exit status: 0 on success,
// the failing tool's exit status otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var stepErr *StepError
	if errors.As(err, &stepErr) && stepErr.ExitCode != 0 {
		return stepErr.ExitCode
	}
	return LaunchFailureCode
}
