package cmd

import (
	"github.com/Gthulhu/topology/aggregator/app"
	"github.com/spf13/cobra"
)

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the topology HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		fxApp, err := app.NewRestApp(topologyCfg)
		if err != nil {
			return err
		}
		if err := fxApp.Err(); err != nil {
			return err
		}
		fxApp.Run()
		return nil
	},
}
