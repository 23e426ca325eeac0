package agent

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportBody = `{
  "connections": [
    ["containerd://abc", 43210, "10.1.0.5", 5432, "tcp", "ESTABLISHED"],
    [null, 22, "192.168.1.7", 50522, "tcp", "ESTABLISHED"]
  ],
  "listening": [{"port": 80, "proto": "tcp"}],
  "reverse": {"93.184.216.34": "example.com"}
}`

func newTargetFromServerURL(t *testing.T, rawURL string) *domain.AgentTarget {
	t.Helper()
	parsedURL, err := url.Parse(rawURL)
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(parsedURL.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return &domain.AgentTarget{Host: host, Port: port}
}

func newClient(httpClient *http.Client, timeout time.Duration) *AgentClient {
	client := NewAgentClient(config.CollectorConfig{Timeout: timeout})
	client.Client = httpClient
	return client
}

func TestFetchSnapshotSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/export", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(exportBody))
	}))
	defer server.Close()

	client := newClient(server.Client(), time.Second)
	snapshot, err := client.FetchSnapshot(context.Background(), newTargetFromServerURL(t, server.URL))
	require.NoError(t, err)
	require.Len(t, snapshot.Connections, 2)
	require.NotNil(t, snapshot.Connections[0].ContainerID)
	assert.Equal(t, "containerd://abc", *snapshot.Connections[0].ContainerID)
	assert.Nil(t, snapshot.Connections[1].ContainerID)
	assert.Len(t, snapshot.Listening, 1)
	assert.Equal(t, "example.com", snapshot.ReverseDNS["93.184.216.34"])
}

func TestFetchSnapshotNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newClient(server.Client(), time.Second)
	_, err := client.FetchSnapshot(context.Background(), newTargetFromServerURL(t, server.URL))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.Contains(t, err.Error(), "returned non-OK status")
}

func TestFetchSnapshotMalformed(t *testing.T) {
	bodies := map[string]string{
		"not json":        `<html>oops</html>`,
		"missing reverse": `{"connections": [], "listening": []}`,
		"short tuple":     `{"connections": [["cid", 1, "1.2.3.4", 2, "tcp"]], "reverse": {}}`,
		"bad address":     `{"connections": [["cid", 1, "not-an-ip", 2, "tcp", "ESTABLISHED"]], "reverse": {}}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			client := newClient(server.Client(), time.Second)
			_, err := client.FetchSnapshot(context.Background(), newTargetFromServerURL(t, server.URL))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedSnapshot)
		})
	}
}

func TestFetchSnapshotTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := newClient(server.Client(), 50*time.Millisecond)
	_, err := client.FetchSnapshot(context.Background(), newTargetFromServerURL(t, server.URL))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetchSnapshotUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	target := newTargetFromServerURL(t, server.URL)
	server.Close()

	client := newClient(http.DefaultClient, time.Second)
	_, err := client.FetchSnapshot(context.Background(), target)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
