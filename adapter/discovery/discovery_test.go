package discovery

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/aggregator/errs"
	"github.com/Gthulhu/topology/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	records []*net.SRV
	err     error

	service, proto, name string
}

func (r *fakeResolver) LookupSRV(_ context.Context, service, proto, name string) (string, []*net.SRV, error) {
	r.service, r.proto, r.name = service, proto, name
	return "", r.records, r.err
}

func testDiscoveryConfig() config.DiscoveryConfig {
	return config.DiscoveryConfig{
		Mode:          ModeDNS,
		Namespace:     "netstat",
		Service:       "netstat-server",
		PortName:      "http",
		Protocol:      "tcp",
		ClusterDomain: "cluster.local",
	}
}

func TestDNSDiscoverer(t *testing.T) {
	resolver := &fakeResolver{records: []*net.SRV{
		{Target: "10-1-0-20.netstat-server.netstat.svc.cluster.local.", Port: 8080},
		{Target: "10-1-0-21.netstat-server.netstat.svc.cluster.local", Port: 8081},
	}}
	d := NewDNSDiscoverer(testDiscoveryConfig(), resolver)

	targets, err := d.Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "http", resolver.service)
	assert.Equal(t, "tcp", resolver.proto)
	assert.Equal(t, "netstat-server.netstat.svc.cluster.local", resolver.name)
	assert.Equal(t, []*domain.AgentTarget{
		{Host: "10-1-0-20.netstat-server.netstat.svc.cluster.local", Port: 8080},
		{Host: "10-1-0-21.netstat-server.netstat.svc.cluster.local", Port: 8081},
	}, targets)
}

func TestDNSDiscovererNotFoundIsEmpty(t *testing.T) {
	resolver := &fakeResolver{err: &net.DNSError{Err: "no such host", Name: "x", IsNotFound: true}}
	d := NewDNSDiscoverer(testDiscoveryConfig(), resolver)

	targets, err := d.Discover(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, targets)
	assert.Empty(t, targets)
}

func TestDNSDiscovererFailure(t *testing.T) {
	dnsErr := &net.DNSError{Err: "server misbehaving", Name: "x", IsTemporary: true}
	d := NewDNSDiscoverer(testDiscoveryConfig(), &fakeResolver{err: dnsErr})

	_, err := d.Discover(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, dnsErr)
}

func TestEndpointSliceDiscoverer(t *testing.T) {
	mockK8S := domain.NewMockK8SAdapter(t)
	expected := []*domain.AgentTarget{{Host: "10.1.0.20", Port: 8080}}
	mockK8S.EXPECT().
		ListAgentEndpoints(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryAgentEndpointsOptions) {
			assert.Equal(t, "netstat", opt.K8SNamespace)
			assert.Equal(t, "netstat-server", opt.ServiceName)
			assert.Equal(t, "http", opt.PortName)
		}).
		Return(expected, nil).
		Once()

	cfg := testDiscoveryConfig()
	cfg.Mode = ModeEndpointSlices
	d, err := NewDiscoverer(cfg, mockK8S)
	require.NoError(t, err)

	targets, err := d.Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, targets)
}

func TestEndpointSliceDiscovererError(t *testing.T) {
	mockK8S := domain.NewMockK8SAdapter(t)
	expectedErr := errors.New("forbidden")
	mockK8S.EXPECT().ListAgentEndpoints(mock.Anything, mock.Anything).Return(nil, expectedErr).Once()

	d := NewEndpointSliceDiscoverer(testDiscoveryConfig(), mockK8S)
	_, err := d.Discover(context.Background())
	assert.ErrorIs(t, err, expectedErr)
}

func TestEndpointSliceDiscovererNoClient(t *testing.T) {
	d := NewEndpointSliceDiscoverer(testDiscoveryConfig(), nil)
	_, err := d.Discover(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoClient)
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
}

func TestNewDiscovererModes(t *testing.T) {
	cfg := testDiscoveryConfig()
	d, err := NewDiscoverer(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &DNSDiscoverer{}, d)

	cfg.Mode = "gossip"
	_, err = NewDiscoverer(cfg, nil)
	assert.Error(t, err)
}
