package cmd

import (
	"fmt"

	"github.com/Gthulhu/topology/aggregator/rest"
	"github.com/spf13/cobra"
)

var BUILD_DATE, GIT_REVISION string

var VersionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"ver"},
	Short:   "Print the build version",
	// no config needed
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Build Version:    ", rest.Version)
		fmt.Fprintln(cmd.OutOrStdout(), "Build date:       ", BUILD_DATE)
		fmt.Fprintln(cmd.OutOrStdout(), "Git commit:       ", GIT_REVISION)
	},
}
