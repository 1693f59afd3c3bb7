/*
	Copyright © 2025 AppOptics
	See AUTHORS and LICENSE for the license details and contributors.
*/

package cmd

import (
	"os"

	"github.com/appoptics/appoptics-devkit/pkg/launcher"
	"github.com/appoptics/appoptics-devkit/pkg/logger"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/spf13/cobra"
)

func runTestsCmdCommand(config *specs.AopDevkitConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "run-tests",
		Aliases: []string{"rt", "tests"},
		Short:   "Run the test suite of a library checkout.",
		Long: `Checks the prerequisites and delegates to the test runner
against the tests directory of the repository. The exit code of the
runner becomes the exit code of the command.`,
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			root, _ := cmd.Flags().GetString("root")
			testsDir, _ := cmd.Flags().GetString("tests-dir")
			libDir, _ := cmd.Flags().GetString("lib-dir")
			pathVar, _ := cmd.Flags().GetString("path-var")
			check, _ := cmd.Flags().GetStringSlice("check")
			runner, _ := cmd.Flags().GetStringSlice("runner")
			quiet, _ := cmd.Flags().GetBool("quiet")

			opts := launcher.NewDefaultOptions()
			opts.RepoRoot = root
			opts.Quiet = quiet
			if testsDir != "" {
				opts.TestsDir = testsDir
			}
			opts.LibraryDir = libDir
			opts.SearchPathVar = pathVar
			if len(check) > 0 {
				opts.CheckCommand = check
			}
			if len(runner) > 0 {
				opts.RunnerCommand = runner
			}

			l := launcher.NewLauncher(config, opts)

			code, err := l.Run()
			if err != nil {
				log.Error(err.Error())
			}
			if code != 0 {
				os.Exit(code)
			}

			log.Info(":party_popper:Test suite passed.")
		},
	}

	flags := cmd.Flags()
	flags.String("root", "", "Repository root. Default is the parent of the executable directory.")
	flags.String("tests-dir", "", "Test directory argument passed to the runner.")
	flags.String("lib-dir", "", "Library directory appended to the module search path.")
	flags.String("path-var", "", "Name of the module search path environment variable.")
	flags.StringSlice("check", []string{}, "Prerequisites check command.")
	flags.StringSlice("runner", []string{}, "Test runner command.")
	flags.Bool("quiet", false, "Avoid additional executor output.")

	return cmd
}
