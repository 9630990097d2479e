package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/notekit/internal/catalog"
	"github.com/raveheart1/notekit/internal/fsys"
	"github.com/raveheart1/notekit/internal/report"
	"github.com/raveheart1/notekit/internal/setup"
)

var (
	initForce bool
	initDir   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the bundled note commands",
	Long: `Install the bundled note command templates and record the
installation state.

Behavior by current state:
  not installed      install everything
  installed, current do nothing
  installed, older   report the available update; reinstall only with --force
  corrupted          wipe the installation root and reinstall

With --force the installation root is removed and rebuilt even when the
current install is healthy. A failed install always cleans up after itself:
no partial command files or state record are left behind.

Examples:
  notekit init             # Install into the enclosing project
  notekit init --force     # Reinstall, picking up template updates
  notekit init --dir /p    # Install into an explicit project directory`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Reinstall even when already initialized")
	initCmd.Flags().StringVar(&initDir, "dir", "", "Project directory (default: enclosing git root, else cwd)")
}

func runInit(cmd *cobra.Command, args []string) error {
	e, err := bootstrap(initDir)
	if err != nil {
		return err
	}

	reporter := report.NewConsole(
		report.WithOutput(cmd.OutOrStdout()),
		report.WithProgress(e.settings.ShowProgress),
	)

	ctrl := setup.New(setup.Options{
		FS:       fsys.OS(),
		Paths:    setup.NewPaths(e.projectRoot, e.settings.RootDir),
		Catalog:  catalog.MustLoad(),
		Version:  catalog.Version,
		Reporter: reporter,
		Log:      e.log,
	})
	return ctrl.Run(initForce)
}
