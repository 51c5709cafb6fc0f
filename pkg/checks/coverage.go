package checks

import "github.com/m-lab/testmaster/pkg/api"

type coverageStep struct {
	name string
	cfg  *api.CoverageConfig
}

// NewCoverageStep creates a coverage-instrumented test run over the
// configured package, discovering tests under the configured tests
// directory.
func NewCoverageStep(name string, cfg *api.CoverageConfig) Step {
	return &coverageStep{name: name, cfg: cfg}
}

func (s *coverageStep) Name() string { return s.name }

func (s *coverageStep) command() (string, []string) {
	args := []string{
		"--with-coverage",
		"--cover-package=" + s.cfg.Package,
		"--cover-erase",
	}
	if s.cfg.ExcludeDir != "" {
		args = append(args, "--exclude-dir="+s.cfg.ExcludeDir)
	}
	args = append(args, s.cfg.TestsDir)
	return "nosetests", args
}

func (s *coverageStep) Run(ctx StepContext) error {
	tool, args := s.command()
	return runTool(ctx, s.name, tool, args, nil)
}
