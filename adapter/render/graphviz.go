// Package render turns a topology graph into DOT source or an SVG diagram.
package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/config"
	"github.com/Gthulhu/topology/pkg/logger"
	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

const graphName = "topology"

func NewGraphvizRenderer(cfg config.RenderConfig) *GraphvizRenderer {
	binary, engine := cfg.Binary, cfg.Engine
	if binary == "" {
		binary = "dot"
	}
	if engine == "" {
		engine = "sfdp"
	}
	return &GraphvizRenderer{Binary: binary, Engine: engine}
}

// GraphvizRenderer lays out SVG diagrams by piping DOT through the graphviz binary.
type GraphvizRenderer struct {
	Binary string
	Engine string
}

func (r *GraphvizRenderer) Render(ctx context.Context, graph *domain.Graph, format domain.RenderFormat) ([]byte, error) {
	dot, err := BuildDOT(graph)
	if err != nil {
		return nil, err
	}
	switch format {
	case domain.RenderFormatDOT:
		return []byte(dot), nil
	case domain.RenderFormatSVG:
		return r.layout(ctx, dot)
	default:
		return nil, errors.Wrapf(domain.ErrUnsupportedFormat, "%q", format)
	}
}

func (r *GraphvizRenderer) layout(ctx context.Context, dot string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Binary, "-K"+r.Engine, "-Tsvg")
	cmd.Stdin = strings.NewReader(dot)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, "%s -K%s: %s", r.Binary, r.Engine, strings.TrimSpace(stderr.String()))
	}
	if stderr.Len() > 0 {
		logger.Logger(ctx).Warn().Msgf("graphviz: %s", strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// BuildDOT writes graph as an undirected DOT graph. Node names are escaped,
// so labels such as "ns/name" or "*.example.com" are safe.
func BuildDOT(graph *domain.Graph) (string, error) {
	g := gographviz.NewEscape()
	if err := g.SetName(graphName); err != nil {
		return "", err
	}
	if err := g.SetDir(false); err != nil {
		return "", err
	}
	if graph == nil {
		return g.String(), nil
	}

	for _, node := range graph.Nodes {
		attrs := map[string]string{
			"shape":    "box",
			"style":    "filled",
			"color":    node.Color,
			"fontname": "sans",
		}
		if err := g.AddNode(graphName, node.Label, attrs); err != nil {
			return "", errors.WithMessagef(err, "add node %q", node.Label)
		}
	}
	for _, edge := range graph.Edges {
		attrs := map[string]string{
			"label":    strconv.Itoa(edge.Weight),
			"fontname": "sans",
		}
		if err := g.AddEdge(edge.NodeA, edge.NodeB, false, attrs); err != nil {
			return "", errors.WithMessagef(err, "add edge %q -- %q", edge.NodeA, edge.NodeB)
		}
	}
	return g.String(), nil
}
