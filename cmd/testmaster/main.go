package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/m-lab/testmaster/pkg/api"
	"github.com/m-lab/testmaster/pkg/checks"
	"github.com/m-lab/testmaster/pkg/logging"
)

var version = "dev"

const (
	_ = iota
	exitDotenvError
	exitWorkDirCheckFailed
	exitWorkDirNotADirectory
	exitChecklistLoadFailed
	exitChecklistBuildFailed
)

const checklistFilename = ".checks.yaml"

var (
	workDir       string
	checklistFile string
	pluginPath    string
	loggingType   string
	logLevel      string
	showVersion   bool
)

func init() {
	flag.StringVar(
		&workDir,
		"workdir",
		".",
		"repository root the checks run in")
	flag.StringVar(
		&checklistFile,
		"checklist",
		"",
		"checklist YAML file (default: .checks.yaml in workdir if present, else built-ins)")
	flag.StringVar(
		&pluginPath,
		"plugin-path",
		"",
		"base plugin search path for the docstring check (default: $PYTHONPATH)")
	flag.StringVar(
		&loggingType,
		"logging-type",
		"tint",
		"logging type: json, text or tint")
	flag.StringVar(
		&logLevel,
		"log-level",
		"info",
		"logging level: debug, info, warn, error")
	flag.BoolVar(
		&showVersion,
		"version",
		false,
		"print version and exit")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	_ = logging.Initialize(loggingType, logLevel)

	includeEnv()
	checkWorkDir()

	steps, err := checks.Build(loadChecklist())
	if err != nil {
		slog.Error("failed to build checklist", "error", err)
		os.Exit(exitChecklistBuildFailed)
	}

	ctx := checks.StepContext{
		WorkDir:    workDir,
		PluginPath: pluginPath,
	}

	if err := checks.Run(steps, ctx); err != nil {
		slog.Error("checks failed", "error", err)
		os.Exit(checks.ExitCode(err))
	}

	slog.Info("all checks passed", "count", len(steps))
}

func loadChecklist() *api.Checklist {
	filename := checklistFile
	if filename == "" {
		candidate := filepath.Join(workDir, checklistFilename)
		if _, err := os.Stat(candidate); err != nil {
			slog.Debug("no checklist file found, using built-in checks")
			return api.DefaultChecklist()
		}
		filename = candidate
	}

	checklist, err := api.LoadChecklist(filename)
	if err != nil {
		slog.Error("failed to load checklist", "filename", filename, "error", err)
		os.Exit(exitChecklistLoadFailed)
	}
	return checklist
}

func includeEnv() {
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to load .env", "error", err)
			os.Exit(exitDotenvError)
		}
		slog.Debug("no .env file found")
	} else {
		slog.Info("using .env file")
	}
}

func checkWorkDir() {
	st, err := os.Stat(workDir)
	if err != nil {
		slog.Error("failed to check workdir", "directory", workDir, "error", err)
		os.Exit(exitWorkDirCheckFailed)
	}

	if !st.IsDir() {
		slog.Error("-workdir is not a directory", "directory", workDir)
		os.Exit(exitWorkDirNotADirectory)
	}
}
