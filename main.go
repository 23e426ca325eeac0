package main

import (
	"os"

	"github.com/Gthulhu/topology/cmd"
	"github.com/rs/zerolog/log"
)

// @title			Netstat Topology API
// @version		1.0.0
// @description	Aggregates per-node netstat agent exports into a cluster-wide workload topology.
// @BasePath		/
func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("topology command failed")
		os.Exit(1)
	}
}
