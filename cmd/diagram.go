package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Gthulhu/topology/aggregator/app"
	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/spf13/cobra"
)

var (
	diagramFormat   string
	diagramOutput   string
	diagramCollapse []string
	diagramExclude  []string
	diagramInclude  []string
)

func init() {
	flags := DiagramCmd.Flags()
	flags.StringVarP(&diagramFormat, "format", "f", string(domain.RenderFormatSVG), "output format: svg or dot")
	flags.StringVarP(&diagramOutput, "output", "o", "", "write the diagram to this file instead of stdout")
	flags.StringSliceVar(&diagramCollapse, "collapse-hostnames", nil, "hostname glob patterns to collapse into one node")
	flags.StringSliceVar(&diagramExclude, "exclude", nil, "namespaces to exclude (replaces the configured defaults)")
	flags.StringSliceVar(&diagramInclude, "include", nil, "namespaces to include and highlight")
}

var DiagramCmd = &cobra.Command{
	Use:         "diagram",
	Short:       "Render the cluster topology diagram",
	Annotations: map[string]string{annotationStdoutOutput: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := domain.RenderFormat(diagramFormat)
		if format != domain.RenderFormatSVG && format != domain.RenderFormatDOT {
			return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, diagramFormat)
		}
		opt := diagramOptions(cmd.Flags().Changed("exclude"))

		return app.RunOnce(cmd.Context(), topologyCfg, func(ctx context.Context, svc domain.Service) error {
			out := cmd.OutOrStdout()
			if diagramOutput != "" {
				file, err := os.Create(diagramOutput)
				if err != nil {
					return err
				}
				defer file.Close()
				out = file
			}
			return writeDiagram(ctx, out, svc, opt, format)
		})
	},
}

// diagramOptions builds graph options from the flags. The configured
// exclusions apply unless --exclude was given.
func diagramOptions(excludeSet bool) *domain.GraphOptions {
	opt := &domain.GraphOptions{
		CollapseHostnames: diagramCollapse,
		IncludeNamespaces: diagramInclude,
	}
	if excludeSet {
		opt.ExcludeNamespaces = append([]string{}, diagramExclude...)
	}
	return opt
}

func writeDiagram(ctx context.Context, out io.Writer, svc domain.Service, opt *domain.GraphOptions, format domain.RenderFormat) error {
	body, err := svc.RenderDiagram(ctx, opt, format)
	if err != nil {
		return err
	}
	_, err = out.Write(body)
	return err
}
