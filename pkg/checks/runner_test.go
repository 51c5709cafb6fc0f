package checks

import (
	"errors"
	"testing"
)

type stubStep struct {
	name  string
	err   error
	calls int
}

func (s *stubStep) Name() string { return s.name }

func (s *stubStep) Run(StepContext) error {
	s.calls++
	return s.err
}

func failWith(name string, code int) error {
	return &StepError{Step: name, ExitCode: code, Err: errors.New("tool failed")}
}

func TestRun_AllPass(t *testing.T) {
	steps := []*stubStep{{name: "a"}, {name: "b"}, {name: "c"}, {name: "d"}}

	err := Run(asSteps(steps), StepContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range steps {
		if s.calls != 1 {
			t.Errorf("step %q: expected 1 call, got %d", s.name, s.calls)
		}
	}
	if got := ExitCode(err); got != 0 {
		t.Errorf("ExitCode = %d, want 0", got)
	}
}

func TestRun_FirstStepFails(t *testing.T) {
	steps := []*stubStep{
		{name: "a", err: failWith("a", 1)},
		{name: "b"},
		{name: "c"},
		{name: "d"},
	}

	err := Run(asSteps(steps), StepContext{})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := ExitCode(err); got != 1 {
		t.Errorf("ExitCode = %d, want 1", got)
	}
	assertCalls(t, steps, []int{1, 0, 0, 0})
}

func TestRun_SecondStepFails(t *testing.T) {
	steps := []*stubStep{
		{name: "a"},
		{name: "b", err: failWith("b", 2)},
		{name: "c"},
		{name: "d"},
	}

	err := Run(asSteps(steps), StepContext{})
	if err == nil {
		t.Fatal("expected error")
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected *StepError, got %T", err)
	}
	if stepErr.Step != "b" {
		t.Errorf("failing step = %q, want %q", stepErr.Step, "b")
	}
	if got := ExitCode(err); got != 2 {
		t.Errorf("ExitCode = %d, want 2", got)
	}
	assertCalls(t, steps, []int{1, 1, 0, 0})
}

func TestRun_LastStepFails(t *testing.T) {
	steps := []*stubStep{
		{name: "a"},
		{name: "b"},
		{name: "c"},
		{name: "d", err: failWith("d", 13)},
	}

	err := Run(asSteps(steps), StepContext{})
	if got := ExitCode(err); got != 13 {
		t.Errorf("ExitCode = %d, want 13", got)
	}
	assertCalls(t, steps, []int{1, 1, 1, 1})
}

func TestRun_WrapsPlainErrors(t *testing.T) {
	steps := []*stubStep{{name: "a", err: errors.New("boom")}}

	err := Run(asSteps(steps), StepContext{})
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected *StepError, got %T", err)
	}
	if stepErr.ExitCode != LaunchFailureCode {
		t.Errorf("ExitCode = %d, want %d", stepErr.ExitCode, LaunchFailureCode)
	}
}

func TestRun_Rerun(t *testing.T) {
	// Two runs over an unchanged checklist behave identically.
	for run := 0; run < 2; run++ {
		steps := []*stubStep{
			{name: "a"},
			{name: "b", err: failWith("b", 2)},
			{name: "c"},
		}
		err := Run(asSteps(steps), StepContext{})
		if got := ExitCode(err); got != 2 {
			t.Errorf("run %d: ExitCode = %d, want 2", run, got)
		}
		assertCalls(t, steps, []int{1, 1, 0})
	}
}

func TestExitCode_NonStepError(t *testing.T) {
	if got := ExitCode(errors.New("boom")); got != LaunchFailureCode {
		t.Errorf("ExitCode = %d, want %d", got, LaunchFailureCode)
	}
}

func asSteps(stubs []*stubStep) []Step {
	steps := make([]Step, len(stubs))
	for i, s := range stubs {
		steps[i] = s
	}
	return steps
}

func assertCalls(t *testing.T, steps []*stubStep, want []int) {
	t.Helper()
	for i, s := range steps {
		if s.calls != want[i] {
			t.Errorf("step %q: expected %d calls, got %d", s.name, want[i], s.calls)
		}
	}
}
