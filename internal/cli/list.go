package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/raveheart1/notekit/internal/catalog"
	"github.com/raveheart1/notekit/internal/fsys"
	"github.com/raveheart1/notekit/internal/setup"
	"github.com/raveheart1/notekit/internal/state"
)

var listDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bundled note commands",
	Long: `List every command in the bundled catalog, marking the ones that
are currently installed in this project.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listDir, "dir", "", "Project directory (default: enclosing git root, else cwd)")
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := bootstrap(listDir)
	if err != nil {
		return err
	}

	paths := setup.NewPaths(e.projectRoot, e.settings.RootDir)
	st := state.NewStore(fsys.OS(), paths.StateFile).Load()
	installed := make(map[string]bool)
	if st.IsValid() {
		for _, name := range st.CommandNames() {
			installed[name] = true
		}
	}

	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for _, def := range catalog.MustLoad() {
		mark := " "
		if installed[def.Name] {
			mark = green("✓")
		}
		line := fmt.Sprintf("%s %-18s %s", mark, cyan("/"+def.Name), def.Description)
		if def.Agent != "" {
			line += " " + dim("("+string(def.Agent)+")")
		}
		fmt.Fprintln(out, line)
	}

	if len(installed) == 0 {
		fmt.Fprintf(out, "\nNothing installed yet. Run %s to install.\n", cyan("notekit init"))
	}
	return nil
}
