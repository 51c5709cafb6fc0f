package api

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		checks  []CheckConfig
		wantErr string
	}{
		{
			name:    "empty checklist",
			checks:  nil,
			wantErr: "checklist has no checks",
		},
		{
			name:    "missing name",
			checks:  []CheckConfig{{Kind: CheckKindLint, Lint: &LintConfig{Targets: []string{"*.py"}}}},
			wantErr: "name is required",
		},
		{
			name: "duplicate name",
			checks: []CheckConfig{
				{Name: "lint", Kind: CheckKindLint, Lint: &LintConfig{Targets: []string{"*.py"}}},
				{Name: "lint", Kind: CheckKindLint, Lint: &LintConfig{Targets: []string{"*.py"}}},
			},
			wantErr: "duplicate check name",
		},
		{
			name:    "unknown kind",
			checks:  []CheckConfig{{Name: "x", Kind: "banana"}},
			wantErr: "unknown kind",
		},
		{
			name:    "coverage without config",
			checks:  []CheckConfig{{Name: "coverage", Kind: CheckKindCoverage}},
			wantErr: "coverage config is required",
		},
		{
			name: "coverage without package",
			checks: []CheckConfig{{
				Name:     "coverage",
				Kind:     CheckKindCoverage,
				Coverage: &CoverageConfig{TestsDir: "tests"},
			}},
			wantErr: "coverage.package is required",
		},
		{
			name: "coverage without tests dir",
			checks: []CheckConfig{{
				Name:     "coverage",
				Kind:     CheckKindCoverage,
				Coverage: &CoverageConfig{Package: "testmaster"},
			}},
			wantErr: "coverage.testsDir is required",
		},
		{
			name:    "format without config",
			checks:  []CheckConfig{{Name: "format", Kind: CheckKindFormat}},
			wantErr: "format config is required",
		},
		{
			name:    "lint without targets",
			checks:  []CheckConfig{{Name: "lint", Kind: CheckKindLint, Lint: &LintConfig{}}},
			wantErr: "lint.targets is required",
		},
		{
			name:    "docstring without targets",
			checks:  []CheckConfig{{Name: "doc", Kind: CheckKindDocstring, Docstring: &DocstringConfig{}}},
			wantErr: "docstring.targets is required",
		},
		{
			name: "valid checklist",
			checks: []CheckConfig{
				{Name: "format", Kind: CheckKindFormat, Format: &FormatConfig{Style: "chromium"}},
				{Name: "lint", Kind: CheckKindLint, Lint: &LintConfig{Targets: []string{"*.py"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Checklist{Checklist: tt.checks}
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultChecklist(t *testing.T) {
	c := DefaultChecklist()

	if err := c.Validate(); err != nil {
		t.Fatalf("default checklist should validate: %v", err)
	}

	want := []string{CheckKindCoverage, CheckKindFormat, CheckKindLint, CheckKindDocstring}
	if len(c.Checklist) != len(want) {
		t.Fatalf("expected %d checks, got %d", len(want), len(c.Checklist))
	}
	for i, kind := range want {
		if c.Checklist[i].Kind != kind {
			t.Errorf("check %d: expected kind %q, got %q", i, kind, c.Checklist[i].Kind)
		}
	}
}
