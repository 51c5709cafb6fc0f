package api

const (
	CheckKindCoverage  = "coverage"
	CheckKindFormat    = "format"
	CheckKindLint      = "lint"
	CheckKindDocstring = "docstring"

	// DefaultPluginDir is where the docstring checker plugin lives
	// relative to the repository root.
	DefaultPluginDir = "third_party/docstringchecker"
)

// Checklist is the .checks.yaml configuration format.
type Checklist struct {
	Checklist []CheckConfig `yaml:"checklist"`

	// Set by the loader, not from YAML.
	Dir      string `yaml:"-"`
	FilePath string `yaml:"-"`
}

// CheckConfig defines a single check within a checklist.
type CheckConfig struct {
	Name      string           `yaml:"name"`
	Kind      string           `yaml:"kind"`
	Coverage  *CoverageConfig  `yaml:"coverage,omitempty"`
	Format    *FormatConfig    `yaml:"format,omitempty"`
	Lint      *LintConfig      `yaml:"lint,omitempty"`
	Docstring *DocstringConfig `yaml:"docstring,omitempty"`
}

// CoverageConfig configures the coverage-instrumented test run.
type CoverageConfig struct {
	Package    string `yaml:"package"`
	ExcludeDir string `yaml:"excludeDir"`
	TestsDir   string `yaml:"testsDir"`
}

// FormatConfig configures the formatting diff check.
type FormatConfig struct {
	Style   string   `yaml:"style"`
	Exclude []string `yaml:"exclude"`
}

// LintConfig configures the static lint pass.
type LintConfig struct {
	Targets []string `yaml:"targets"`
}

// DocstringConfig configures the docstring-convention check.
type DocstringConfig struct {
	PluginDir string   `yaml:"pluginDir"`
	Targets   []string `yaml:"targets"`
}

// DefaultChecklist returns the built-in check sequence used when no
// .checks.yaml file is present: coverage tests, then the formatting diff,
// then lint, then the docstring check.
func DefaultChecklist() *Checklist {
	return &Checklist{
		Checklist: []CheckConfig{
			{
				Name: "coverage",
				Kind: CheckKindCoverage,
				Coverage: &CoverageConfig{
					Package:    "testmaster",
					ExcludeDir: "testmaster/static",
					TestsDir:   "tests",
				},
			},
			{
				Name: "format",
				Kind: CheckKindFormat,
				Format: &FormatConfig{
					Style:   "chromium",
					Exclude: []string{"third_party/*", "testmaster/static/*"},
				},
			},
			{
				Name: "lint",
				Kind: CheckKindLint,
				Lint: &LintConfig{
					Targets: []string{"testmaster/*.py", "tests/*.py"},
				},
			},
			{
				Name: "docstring",
				Kind: CheckKindDocstring,
				Docstring: &DocstringConfig{
					PluginDir: DefaultPluginDir,
					Targets:   []string{"testmaster", "tests"},
				},
			},
		},
	}
}
