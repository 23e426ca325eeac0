package rest

import (
	"net/http"
	"net/url"

	"github.com/Gthulhu/topology/aggregator/domain"
)

// GraphOptionsFromQuery reads the repeatable collapse_hostnames, exclude and
// include parameters. Blank values are ignored; an absent or blank exclude
// leaves ExcludeNamespaces nil so the configured defaults apply.
func GraphOptionsFromQuery(query url.Values) *domain.GraphOptions {
	return &domain.GraphOptions{
		CollapseHostnames: nonBlank(query["collapse_hostnames"]),
		ExcludeNamespaces: nonBlank(query["exclude"]),
		IncludeNamespaces: nonBlank(query["include"]),
	}
}

func nonBlank(values []string) []string {
	var result []string
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}

// Aggregate godoc
// @Summary Aggregated connections
// @Description Query every netstat agent and enrich the connections with cluster identity.
// @Tags Topology
// @Produce json
// @Success 200 {object} domain.AggregatedTopology
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /aggregate.json [get]
func (h *Handler) Aggregate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	topology, err := h.Svc.Aggregate(ctx)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, topology)
}

// Graph godoc
// @Summary Topology graph
// @Description Filtered, collapsed and weighted topology graph.
// @Tags Topology
// @Produce json
// @Param collapse_hostnames query []string false "Hostname glob patterns" collectionFormat(multi)
// @Param exclude query []string false "Namespaces to exclude" collectionFormat(multi)
// @Param include query []string false "Namespaces to include and highlight" collectionFormat(multi)
// @Success 200 {object} domain.Graph
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /graph.json [get]
func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	g, err := h.Svc.BuildGraph(ctx, GraphOptionsFromQuery(r.URL.Query()))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, g)
}

// DiagramSVG godoc
// @Summary Topology diagram
// @Tags Topology
// @Produce image/svg+xml
// @Param collapse_hostnames query []string false "Hostname glob patterns" collectionFormat(multi)
// @Param exclude query []string false "Namespaces to exclude" collectionFormat(multi)
// @Param include query []string false "Namespaces to include and highlight" collectionFormat(multi)
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /diagram.svg [get]
func (h *Handler) DiagramSVG(w http.ResponseWriter, r *http.Request) {
	h.diagram(w, r, domain.RenderFormatSVG)
}

// DiagramDOT godoc
// @Summary Topology diagram source
// @Tags Topology
// @Produce text/vnd.graphviz
// @Param collapse_hostnames query []string false "Hostname glob patterns" collectionFormat(multi)
// @Param exclude query []string false "Namespaces to exclude" collectionFormat(multi)
// @Param include query []string false "Namespaces to include and highlight" collectionFormat(multi)
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /diagram.dot [get]
func (h *Handler) DiagramDOT(w http.ResponseWriter, r *http.Request) {
	h.diagram(w, r, domain.RenderFormatDOT)
}

func (h *Handler) diagram(w http.ResponseWriter, r *http.Request, format domain.RenderFormat) {
	ctx := r.Context()
	body, err := h.Svc.RenderDiagram(ctx, GraphOptionsFromQuery(r.URL.Query()), format)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
