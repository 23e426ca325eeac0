package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/aggregator/errs"
	"github.com/Gthulhu/topology/aggregator/rest"
	"github.com/Gthulhu/topology/aggregator/service"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	Svc      *domain.MockService
	Registry *prometheus.Registry
	Handler  *rest.Handler
	Engine   *echo.Echo
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.Svc = domain.NewMockService(suite.T())
	suite.Registry = prometheus.NewRegistry()
	handler, err := rest.NewHandler(rest.Params{Svc: suite.Svc, Gatherer: suite.Registry})
	suite.Require().NoError(err, "Failed to create handler")
	suite.Handler = handler

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	suite.Engine = e
	suite.Handler.SetupRoutes(e)
}

func (suite *HandlerTestSuite) serve(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	suite.Engine.ServeHTTP(rec, req)
	return rec
}

func (suite *HandlerTestSuite) JSONDecode(r *httptest.ResponseRecorder, dst any) {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	suite.Require().NoError(err, "Failed to decode JSON response")
}

func (suite *HandlerTestSuite) TestHealthCheck() {
	rec := suite.serve("/health")

	suite.Equal(http.StatusOK, rec.Code, "Expected status OK")
	var resp map[string]any
	suite.JSONDecode(rec, &resp)
	suite.Equal("healthy", resp["status"].(string), "Expected status to be healthy")
}

func (suite *HandlerTestSuite) TestVersion() {
	rec := suite.serve("/version")

	suite.Equal(http.StatusOK, rec.Code)
	var resp map[string]string
	suite.JSONDecode(rec, &resp)
	suite.Equal(rest.Version, resp["version"])
}

func (suite *HandlerTestSuite) TestAggregate() {
	topology := &domain.AggregatedTopology{
		Connections: []*domain.EnrichedConnection{
			{
				Protocol: "tcp",
				State:    "ESTABLISHED",
				Local: domain.NewWorkloadEndpoint(domain.WorkloadIdentity{
					Namespace: "shop",
					PodName:   "web-1",
					Owner:     &domain.OwnerReference{Kind: "ReplicaSet", Name: "web-7d9f"},
				}, netip.Addr{}, 43210),
				Remote: &domain.ExternalEndpoint{Addr: netip.MustParseAddr("93.184.216.34"), Port: 443, Hostname: "example.com"},
			},
		},
		Listening: []domain.RawListening{json.RawMessage(`{"port":80}`)},
	}
	suite.Svc.EXPECT().Aggregate(mock.Anything).Return(topology, nil).Once()

	rec := suite.serve("/aggregate.json")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("application/json", rec.Header().Get("Content-Type"))
	suite.NotEmpty(rec.Header().Get("X-Request-ID"))
	suite.JSONEq(`{
		"connections": [{
			"proto": "tcp",
			"state": "ESTABLISHED",
			"local": {"namespace": "shop", "pod": "web-1", "port": 43210, "owner": {"kind": "ReplicaSet", "name": "web-7d9f"}},
			"remote": {"addr": "93.184.216.34", "port": 443, "hostname": "example.com"}
		}],
		"listening": [{"port": 80}]
	}`, rec.Body.String())
}

func (suite *HandlerTestSuite) TestAggregateKeepsRequestID() {
	suite.Svc.EXPECT().Aggregate(mock.Anything).Return(&domain.AggregatedTopology{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/aggregate.json", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	suite.Engine.ServeHTTP(rec, req)
	suite.Equal("req-123", rec.Header().Get("X-Request-ID"))
}

func (suite *HandlerTestSuite) TestAggregateUpstreamFailure() {
	err := fmt.Errorf("%w: agent 10.0.0.1:8080: connection refused", domain.ErrUpstreamUnavailable)
	suite.Svc.EXPECT().Aggregate(mock.Anything).Return(nil, err).Once()

	rec := suite.serve("/aggregate.json")
	suite.Equal(http.StatusBadGateway, rec.Code)
	var resp rest.ErrorResponse
	suite.JSONDecode(rec, &resp)
	suite.False(resp.Success)
	suite.NotContains(resp.Error, "10.0.0.1", "cause must not leak into the response")
}

func (suite *HandlerTestSuite) TestAggregateMalformedSnapshot() {
	suite.Svc.EXPECT().Aggregate(mock.Anything).Return(nil, domain.ErrMalformedSnapshot).Once()

	rec := suite.serve("/aggregate.json")
	suite.Equal(http.StatusBadGateway, rec.Code)
}

func (suite *HandlerTestSuite) TestAggregateHTTPStatusError() {
	err := errs.NewHTTPStatusError(http.StatusServiceUnavailable, "Cluster is not reachable", domain.ErrNoClient)
	suite.Svc.EXPECT().Aggregate(mock.Anything).Return(nil, err).Once()

	rec := suite.serve("/aggregate.json")
	suite.Equal(http.StatusServiceUnavailable, rec.Code)
	var resp rest.ErrorResponse
	suite.JSONDecode(rec, &resp)
	suite.Equal("Cluster is not reachable", resp.Error)
}

func TestAggregateWithoutClusterAccessIsUnavailable(t *testing.T) {
	discoverer := domain.NewMockAgentDiscoverer(t)
	discoverer.EXPECT().Discover(mock.Anything).Return(nil, nil).Maybe()
	svc := &service.Service{
		Discoverer:   discoverer,
		AgentAdapter: domain.NewMockAgentAdapter(t),
	}
	handler, err := rest.NewHandler(rest.Params{Svc: svc, Gatherer: prometheus.NewRegistry()})
	require.NoError(t, err)
	e := echo.New()
	handler.SetupRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/aggregate.json", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp rest.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Kubernetes API is not configured", resp.Error)
}

func (suite *HandlerTestSuite) TestAggregateUnexpectedError() {
	suite.Svc.EXPECT().Aggregate(mock.Anything).Return(nil, fmt.Errorf("boom")).Once()

	rec := suite.serve("/aggregate.json")
	suite.Equal(http.StatusInternalServerError, rec.Code)
}

func (suite *HandlerTestSuite) TestGraphPassesQueryOptions() {
	suite.Svc.EXPECT().
		BuildGraph(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.GraphOptions) {
			suite.Equal([]string{"*.amazonaws.com", "*.googleapis.com"}, opt.CollapseHostnames)
			suite.Equal([]string{"kube-system"}, opt.ExcludeNamespaces)
			suite.Equal([]string{"shop"}, opt.IncludeNamespaces)
		}).
		Return(&domain.Graph{
			Nodes: []domain.CanonicalNode{{Label: "shop/web", Category: domain.NodeCategoryWorkload, Highlighted: true, Color: domain.ColorWorkloadHighlighted}},
			Edges: []domain.CanonicalEdge{},
		}, nil).
		Once()

	rec := suite.serve("/graph.json?collapse_hostnames=*.amazonaws.com&collapse_hostnames=*.googleapis.com&exclude=kube-system&include=shop")
	suite.Equal(http.StatusOK, rec.Code)
	var g domain.Graph
	suite.JSONDecode(rec, &g)
	suite.Require().Len(g.Nodes, 1)
	suite.True(g.Nodes[0].Highlighted)
}

func (suite *HandlerTestSuite) TestGraphWithoutExcludeUsesDefaults() {
	suite.Svc.EXPECT().
		BuildGraph(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.GraphOptions) {
			suite.Nil(opt.ExcludeNamespaces)
			suite.Nil(opt.IncludeNamespaces)
		}).
		Return(&domain.Graph{}, nil).
		Once()

	rec := suite.serve("/graph.json?exclude=")
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *HandlerTestSuite) TestDiagramSVG() {
	svg := `<svg xmlns="http://www.w3.org/2000/svg"></svg>`
	suite.Svc.EXPECT().
		RenderDiagram(mock.Anything, mock.Anything, domain.RenderFormatSVG).
		Return([]byte(svg), nil).
		Once()

	rec := suite.serve("/diagram.svg")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("image/svg+xml", rec.Header().Get("Content-Type"))
	suite.Equal(svg, rec.Body.String())
}

func (suite *HandlerTestSuite) TestDiagramDOT() {
	suite.Svc.EXPECT().
		RenderDiagram(mock.Anything, mock.Anything, domain.RenderFormatDOT).
		Return([]byte("graph topology {\n}\n"), nil).
		Once()

	rec := suite.serve("/diagram.dot?include=shop")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("text/vnd.graphviz", rec.Header().Get("Content-Type"))
	suite.True(strings.HasPrefix(rec.Body.String(), "graph topology"))
}

func (suite *HandlerTestSuite) TestDiagramInvalidPattern() {
	suite.Svc.EXPECT().
		RenderDiagram(mock.Anything, mock.Anything, domain.RenderFormatSVG).
		Return(nil, fmt.Errorf("%w: \"[oops\"", domain.ErrInvalidPattern)).
		Once()

	rec := suite.serve("/diagram.svg?collapse_hostnames=%5Boops")
	suite.Equal(http.StatusBadRequest, rec.Code)
	var resp rest.ErrorResponse
	suite.JSONDecode(rec, &resp)
	suite.False(resp.Success)
}

func (suite *HandlerTestSuite) TestMetrics() {
	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "netstat_stage_latency_sec",
		Help: "Latency histogram",
	}, []string{"stage"})
	suite.Registry.MustRegister(histogram)
	histogram.WithLabelValues("render").Observe(0.25)

	rec := suite.serve("/metrics")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `netstat_stage_latency_sec_count{stage="render"} 1`)
}
