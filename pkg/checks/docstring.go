package checks

import (
	"os"

	"github.com/m-lab/testmaster/pkg/api"
)

type docstringStep struct {
	name string
	cfg  *api.DocstringConfig
}

// NewDocstringStep creates a docstring-convention check. The checker is a
// pylint plugin, so the child's PYTHONPATH gets the plugin directory
// appended after whatever base value is configured.
func NewDocstringStep(name string, cfg *api.DocstringConfig) Step {
	return &docstringStep{name: name, cfg: cfg}
}

func (s *docstringStep) Name() string { return s.name }

func (s *docstringStep) command() (string, []string) {
	args := []string{"--reports=n"}
	args = append(args, s.cfg.Targets...)
	return "pylint", args
}

func (s *docstringStep) pluginDir() string {
	if s.cfg.PluginDir == "" {
		return api.DefaultPluginDir
	}
	return s.cfg.PluginDir
}

func (s *docstringStep) Run(ctx StepContext) error {
	tool, args := s.command()
	return runTool(ctx, s.name, tool, args, []string{s.env(ctx)})
}

// env resolves the child's PYTHONPATH entry. An explicit PluginPath wins;
// otherwise the inherited value is kept so it is extended, not clobbered.
func (s *docstringStep) env(ctx StepContext) string {
	base := ctx.PluginPath
	if base == "" {
		base = os.Getenv("PYTHONPATH")
	}
	return pluginPathEnv(base, s.pluginDir())
}

// pluginPathEnv builds the PYTHONPATH entry for the child process. Any
// existing value stays in front; the plugin directory is appended.
func pluginPathEnv(base, pluginDir string) string {
	if base == "" {
		return "PYTHONPATH=" + pluginDir
	}
	return "PYTHONPATH=" + base + string(os.PathListSeparator) + pluginDir
}
