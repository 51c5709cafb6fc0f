package checks

import (
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/m-lab/testmaster/pkg/api"
)

type lintStep struct {
	name string
	cfg  *api.LintConfig
}

// NewLintStep creates a static lint pass over the files matching the
// configured target globs. Globs are expanded here since exec does not
// go through a shell.
func NewLintStep(name string, cfg *api.LintConfig) Step {
	return &lintStep{name: name, cfg: cfg}
}

func (s *lintStep) Name() string { return s.name }

func (s *lintStep) Run(ctx StepContext) error {
	files, err := expandTargets(os.DirFS(ctx.WorkDir), s.cfg.Targets)
	if err != nil {
		return &StepError{Step: s.name, ExitCode: LaunchFailureCode, Err: err}
	}
	return runTool(ctx, s.name, "pyflakes", files, nil)
}

func expandTargets(fsys fs.FS, patterns []string) ([]string, error) {
	var result []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		result = append(result, matches...)
	}
	slices.Sort(result)
	result = slices.Compact(result)
	if len(result) == 0 {
		return nil, fmt.Errorf("no files match %v", patterns)
	}
	return result, nil
}
