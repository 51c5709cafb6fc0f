package api

import "fmt"

var validCheckKinds = map[string]bool{
	CheckKindCoverage:  true,
	CheckKindFormat:    true,
	CheckKindLint:      true,
	CheckKindDocstring: true,
}

// Validate checks the checklist configuration for errors.
func (c *Checklist) Validate() error {
	if len(c.Checklist) == 0 {
		return fmt.Errorf("checklist has no checks")
	}

	names := make(map[string]int)

	for i, check := range c.Checklist {
		if check.Name == "" {
			return fmt.Errorf("check %d: name is required", i)
		}
		if prev, exists := names[check.Name]; exists {
			return fmt.Errorf("check %d: duplicate check name %q (first defined at check %d)", i, check.Name, prev)
		}
		names[check.Name] = i

		if !validCheckKinds[check.Kind] {
			return fmt.Errorf("check %q: unknown kind %q", check.Name, check.Kind)
		}

		if err := validateCheckConfig(check); err != nil {
			return fmt.Errorf("check %q: %w", check.Name, err)
		}
	}

	return nil
}

func validateCheckConfig(check CheckConfig) error {
	switch check.Kind {
	case CheckKindCoverage:
		return validateCoverageConfig(check)
	case CheckKindFormat:
		if check.Format == nil {
			return fmt.Errorf("format config is required")
		}
	case CheckKindLint:
		if check.Lint == nil {
			return fmt.Errorf("lint config is required")
		}
		if len(check.Lint.Targets) == 0 {
			return fmt.Errorf("lint.targets is required")
		}
	case CheckKindDocstring:
		if check.Docstring == nil {
			return fmt.Errorf("docstring config is required")
		}
		if len(check.Docstring.Targets) == 0 {
			return fmt.Errorf("docstring.targets is required")
		}
	}
	return nil
}

func validateCoverageConfig(check CheckConfig) error {
	if check.Coverage == nil {
		return fmt.Errorf("coverage config is required")
	}
	if check.Coverage.Package == "" {
		return fmt.Errorf("coverage.package is required")
	}
	if check.Coverage.TestsDir == "" {
		return fmt.Errorf("coverage.testsDir is required")
	}
	return nil
}
