package checks

import "github.com/m-lab/testmaster/pkg/api"

const defaultFormatStyle = "chromium"

type formatStep struct {
	name string
	cfg  *api.FormatConfig
}

// NewFormatStep creates a formatting diff check over the whole tree.
// It fails when any file differs from the canonical formatter output;
// no files are modified.
func NewFormatStep(name string, cfg *api.FormatConfig) Step {
	return &formatStep{name: name, cfg: cfg}
}

func (s *formatStep) Name() string { return s.name }

func (s *formatStep) command() (string, []string) {
	style := s.cfg.Style
	if style == "" {
		style = defaultFormatStyle
	}

	args := []string{"--diff", "--recursive", "--style", style}
	for _, pattern := range s.cfg.Exclude {
		args = append(args, "--exclude", pattern)
	}
	args = append(args, ".")
	return "yapf", args
}

func (s *formatStep) Run(ctx StepContext) error {
	tool, args := s.command()
	return runTool(ctx, s.name, tool, args, nil)
}
