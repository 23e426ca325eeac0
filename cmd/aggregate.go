package cmd

import (
	"context"
	"encoding/json"
	"io"

	"github.com/Gthulhu/topology/aggregator/app"
	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/spf13/cobra"
)

var AggregateCmd = &cobra.Command{
	Use:         "aggregate",
	Short:       "Print the aggregated connections of the cluster as JSON",
	Annotations: map[string]string{annotationStdoutOutput: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunOnce(cmd.Context(), topologyCfg, func(ctx context.Context, svc domain.Service) error {
			return writeAggregate(ctx, cmd.OutOrStdout(), svc)
		})
	},
}

func writeAggregate(ctx context.Context, out io.Writer, svc domain.Service) error {
	topology, err := svc.Aggregate(ctx)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(topology)
}
