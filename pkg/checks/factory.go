package checks

import (
	"fmt"

	"github.com/m-lab/testmaster/pkg/api"
)

// NewStep creates a Step implementation from a CheckConfig.
func NewStep(cfg api.CheckConfig) (Step, error) {
	switch cfg.Kind {
	case api.CheckKindCoverage:
		return NewCoverageStep(cfg.Name, cfg.Coverage), nil
	case api.CheckKindFormat:
		return NewFormatStep(cfg.Name, cfg.Format), nil
	case api.CheckKindLint:
		return NewLintStep(cfg.Name, cfg.Lint), nil
	case api.CheckKindDocstring:
		return NewDocstringStep(cfg.Name, cfg.Docstring), nil
	default:
		return nil, fmt.Errorf("unknown check kind: %s", cfg.Kind)
	}
}

// Build converts a validated checklist into executable steps.
func Build(c *api.Checklist) ([]Step, error) {
	steps := make([]Step, 0, len(c.Checklist))
	for _, cfg := range c.Checklist {
		step, err := NewStep(cfg)
		if err != nil {
			return nil, fmt.Errorf("creating check %q: %w", cfg.Name, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}
