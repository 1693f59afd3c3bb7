/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package launcher

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/appoptics/appoptics-devkit/pkg/executor"
	"github.com/appoptics/appoptics-devkit/pkg/helpers"
	log "github.com/appoptics/appoptics-devkit/pkg/logger"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/pkg/errors"
)

// Options drives one launch. The repository root and the search path
// are explicit parameters, the launcher never touches the process
// global working directory or environment.
type Options struct {
	// Repository root. When empty it is resolved as the parent of
	// the directory containing the running executable.
	RepoRoot string

	// Directory argument handed to the test runner, relative to the
	// repository root.
	TestsDir string

	// Library source directory appended to the module search path.
	// Resolved against the repository root when relative. Empty
	// disables the search path handling.
	LibraryDir string

	// Name of the module search path environment variable exported
	// to the test runner.
	SearchPathVar string

	// Prerequisites check argv. A single element is run through the
	// shell.
	CheckCommand []string

	// Test runner argv. The tests directory is appended as its
	// single argument.
	RunnerCommand []string

	Quiet bool
}

func NewDefaultOptions() *Options {
	return &Options{
		TestsDir:      "./tests/...",
		CheckCommand:  []string{"go", "version"},
		RunnerCommand: []string{"go", "test"},
	}
}

type Launcher struct {
	Config *specs.AopDevkitConfig
	Logger *log.AopDevkitLogger
	Opts   *Options

	OutWriter io.WriteCloser
	ErrWriter io.WriteCloser
}

func NewLauncher(config *specs.AopDevkitConfig, opts *Options) *Launcher {
	if opts == nil {
		opts = NewDefaultOptions()
	}
	return &Launcher{
		Config:    config,
		Logger:    log.GetDefaultLogger(),
		Opts:      opts,
		OutWriter: executor.NewExecutorWriter("stdout"),
		ErrWriter: executor.NewExecutorWriter("stderr"),
	}
}

// ResolveRepoRoot returns the absolute repository root, the parent of
// the executable directory when no explicit root is set. A missing
// root is fatal.
func (l *Launcher) ResolveRepoRoot() (string, error) {
	root := l.Opts.RepoRoot

	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", errors.Wrap(err, "error on resolve executable path")
		}
		root = filepath.Dir(filepath.Dir(exe))
	}

	ans, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrap(err, "error on resolve repository root")
	}

	if !helpers.DirExists(ans) {
		return "", fmt.Errorf("repository root %s is not a directory", ans)
	}

	return ans, nil
}

// searchPathEnv computes the value of the module search path variable:
// the inherited value plus one appended entry. Repeated launches from
// the same parent environment don't introduce duplicates.
func (l *Launcher) searchPathEnv(root string) map[string]string {
	envs := make(map[string]string, 1)

	if l.Opts.SearchPathVar == "" || l.Opts.LibraryDir == "" {
		return envs
	}

	libDir := l.Opts.LibraryDir
	if !filepath.IsAbs(libDir) {
		libDir = filepath.Join(root, libDir)
	}

	sep := string(os.PathListSeparator)
	current := os.Getenv(l.Opts.SearchPathVar)

	entries := []string{}
	present := false
	if current != "" {
		for _, e := range strings.Split(current, sep) {
			// A trailing separator leaves empty entries behind.
			if e == "" {
				continue
			}
			entries = append(entries, e)
			if e == libDir {
				present = true
			}
		}
	}

	if !present {
		entries = append(entries, libDir)
	}

	envs[l.Opts.SearchPathVar] = strings.Join(entries, sep)

	return envs
}

func (l *Launcher) runArgv(argv []string, arg, workDir string,
	envs map[string]string) (int, error) {

	hostExecutor := executor.NewHostExecutor(l.Config)
	hostExecutor.Quiet = l.Opts.Quiet
	hostExecutor.WorkDir = workDir

	entrypoint := []string{}
	command := ""

	if arg != "" {
		entrypoint = argv
		command = arg
	} else if len(argv) > 1 {
		entrypoint = argv[:len(argv)-1]
		command = argv[len(argv)-1]
	} else {
		// Single word without argument, delegate to the shell.
		command = argv[0]
	}

	return hostExecutor.RunCommandWithOutput(command, envs,
		l.OutWriter, l.ErrWriter, entrypoint)
}

// Run executes the launch sequence: resolve the repository root, run
// the prerequisites check, then delegate to the test runner with the
// augmented search path. The exit code of the failed step, or of the
// runner, is returned verbatim.
func (l *Launcher) Run() (int, error) {
	if len(l.Opts.RunnerCommand) == 0 {
		return 1, fmt.Errorf("no test runner command defined")
	}

	root, err := l.ResolveRepoRoot()
	if err != nil {
		return 1, err
	}

	if len(l.Opts.CheckCommand) > 0 {
		code, err := l.runArgv(l.Opts.CheckCommand, "", root, nil)
		if err != nil {
			return 1, errors.Wrap(err, "error on run prerequisites check")
		}
		if code != 0 {
			return code, fmt.Errorf(
				"prerequisites check failed with exit code %d", code)
		}
	}

	envs := l.searchPathEnv(root)

	code, err := l.runArgv(l.Opts.RunnerCommand, l.Opts.TestsDir,
		root, envs)
	if err != nil {
		return 1, errors.Wrap(err, "error on run test runner")
	}

	return code, nil
}
