package checks

// StepContext provides the runtime context for a check.
type StepContext struct {
	// WorkDir is the repository root the tools run in.
	WorkDir string
	// PluginPath overrides the base plugin search path for checks that
	// extend PYTHONPATH for the child process; when empty, the inherited
	// PYTHONPATH is used. It is explicit configuration; the parent
	// environment is never modified.
	PluginPath string
}

// Step is the interface all checklist steps implement.
type Step interface {
	Name() string
	Run(ctx StepContext) error
}
