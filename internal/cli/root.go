// Package cli wires the notekit commands: init, list, status, and version.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/raveheart1/notekit/internal/config"
	apperrors "github.com/raveheart1/notekit/internal/errors"
	"github.com/raveheart1/notekit/internal/logging"
	"github.com/raveheart1/notekit/internal/project"
)

var rootCmd = &cobra.Command{
	Use:   "notekit",
	Short: "Install and manage OpenCode note command templates",
	Long: `notekit installs a bundled set of note command templates into a
project's .opencode directory so OpenCode auto-discovers them, and tracks
the installation in .opencode/notekit.json.

Run 'notekit init' inside a project to get started.

Note: two notekit processes racing on the same project directory are not
supported; run one invocation at a time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code. Classified errors
// (*errors.CLIError) are printed where they originate; here they are only
// mapped to exit codes.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *apperrors.CLIError
		if errors.As(err, &cliErr) {
			return exitCode(cliErr.Category)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitFailure
	}
	return ExitSuccess
}

// env holds the per-invocation context shared by the commands.
type env struct {
	projectRoot string
	settings    *config.Settings
	log         logging.Logger
}

// bootstrap resolves the project root, loads configuration, and initializes
// logging. dirFlag overrides git-based project root detection.
func bootstrap(dirFlag string) (*env, error) {
	projectRoot := dirFlag
	if projectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		projectRoot = project.FindRoot(cwd)
	}

	settings, err := config.Load(config.LoadOptions{ProjectDir: projectRoot})
	if err != nil {
		return nil, err
	}
	if settings.NoColor {
		color.NoColor = true
	}

	log, err := logging.New(logging.Config{Level: settings.LogLevel, File: settings.LogFile})
	if err != nil {
		return nil, err
	}

	return &env{projectRoot: projectRoot, settings: settings, log: log}, nil
}
