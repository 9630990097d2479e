package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/raveheart1/notekit/internal/catalog"
	apperrors "github.com/raveheart1/notekit/internal/errors"
	"github.com/raveheart1/notekit/internal/fsys"
	"github.com/raveheart1/notekit/internal/health"
	"github.com/raveheart1/notekit/internal/install"
	"github.com/raveheart1/notekit/internal/logging"
	"github.com/raveheart1/notekit/internal/setup"
	"github.com/raveheart1/notekit/internal/state"
)

// watchDebounce batches filesystem event bursts into one re-check.
const watchDebounce = 200 * time.Millisecond

var (
	statusDir   string
	statusWatch bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the installation for consistency",
	Long: `Verify that the recorded installation state matches the files on
disk: the state record parses and satisfies its invariant, every recorded
command file exists and is non-empty, and the installed catalog version is
current.

With --watch, the check re-runs whenever the installation root changes.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVar(&statusDir, "dir", "", "Project directory (default: enclosing git root, else cwd)")
	statusCmd.Flags().BoolVar(&statusWatch, "watch", false, "Re-run the check on filesystem changes")
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, err := bootstrap(statusDir)
	if err != nil {
		return err
	}

	paths := setup.NewPaths(e.projectRoot, e.settings.RootDir)
	installer := install.New(fsys.OS(), paths.CommandsDir)
	checker := &health.Checker{
		FS:             fsys.OS(),
		Store:          state.NewStore(fsys.OS(), paths.StateFile),
		CommandsDir:    paths.CommandsDir,
		CatalogVersion: catalog.Version,
		FilePath:       installer.FilePath,
	}

	out := cmd.OutOrStdout()
	if statusWatch {
		return watchStatus(cmd, checker, paths, e.log)
	}

	report := checker.Run()
	printReport(out, report)
	if !report.Passed {
		return apperrors.New(apperrors.State, "installation is inconsistent")
	}
	return nil
}

func printReport(out io.Writer, report *health.Report) {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()

	for _, check := range report.Checks {
		mark := ok("✓")
		if !check.Passed {
			mark = bad("✗")
		}
		fmt.Fprintf(out, "%s %s: %s\n", mark, check.Name, check.Message)
	}
}

// watchStatus re-runs the consistency check whenever the project or
// installation directories change. It returns when the command context is
// cancelled and never reports inconsistency through the exit code, since
// the caller is observing, not gating.
func watchStatus(cmd *cobra.Command, checker *health.Checker, paths setup.Paths, log logging.Logger) error {
	out := cmd.OutOrStdout()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	addTargets := func() {
		// The root and commands dir may not exist yet; re-add after every
		// run so they are picked up once created.
		for _, dir := range []string{paths.Root, paths.CommandsDir} {
			if err := watcher.Add(dir); err != nil {
				log.Debug("watch target unavailable", "path", dir, "error", err)
			}
		}
	}

	run := func() {
		printReport(out, checker.Run())
		fmt.Fprintln(out)
		addTargets()
	}
	run()

	ctx := cmd.Context()
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, open := <-watcher.Events:
			if !open {
				return nil
			}
			pending = time.After(watchDebounce)
		case err, open := <-watcher.Errors:
			if !open {
				return nil
			}
			log.Warn("watch error", "error", err)
		case <-pending:
			pending = nil
			run()
		}
	}
}
