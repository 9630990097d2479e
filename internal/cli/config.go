package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/notekit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print a commented default configuration file",
	Long: `Print a fully commented configuration file showing every available
option with its default value.

Redirect it to create a starting point:
  notekit config > .notekit/config.yml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigTemplate)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
