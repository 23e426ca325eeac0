// Package cmd holds the topology command line.
package cmd

import (
	"io"
	"os"

	"github.com/Gthulhu/topology/config"
	"github.com/Gthulhu/topology/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	configName string
	configDir  string

	// loaded by the root PersistentPreRunE
	topologyCfg config.TopologyConfig
)

var RootCmd = &cobra.Command{
	Use:           "topology",
	Short:         "Cluster network topology aggregated from netstat agents",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.InitTopologyConfig(configName, configDir)
		if err != nil {
			return err
		}
		topologyCfg = cfg

		var out io.Writer = os.Stdout
		if cmd.Annotations[annotationStdoutOutput] == "true" {
			out = os.Stderr
		}
		logger.InitLoggerWithWriter(cfg.Logging, out)
		return nil
	},
}

// annotationStdoutOutput marks commands that write their result to stdout.
const annotationStdoutOutput = "stdout-output"

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVarP(&configName, "config-name", "c", "topology_config", "config file name without extension")
	flags.StringVarP(&configDir, "config-dir", "d", "", "directory to search for the config file")

	RootCmd.AddCommand(ServeCmd, AggregateCmd, DiagramCmd, VersionCmd)
}

func Execute() error {
	return RootCmd.Execute()
}
