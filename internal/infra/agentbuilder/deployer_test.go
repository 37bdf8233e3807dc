package agentbuilder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServer captures every Agent Builder request in arrival order.
type recordingServer struct {
	mu       sync.Mutex
	requests []string

	handler http.HandlerFunc
}

func newRecordingServer(handler http.HandlerFunc) (*recordingServer, *httptest.Server) {
	rec := &recordingServer{handler: handler}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.requests = append(rec.requests, r.Method+" "+r.URL.Path)
		rec.mu.Unlock()

		if rec.handler != nil {
			rec.handler(w, r)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	return rec, server
}

func TestDeployCreatesToolsBeforeAgents(t *testing.T) {
	t.Parallel()

	rec, server := newRecordingServer(nil)
	defer server.Close()

	client := NewClient(server.URL, "k", testLogger())
	deployer := NewDeployer(client, NewCatalog("s1"), testLogger())

	require.NoError(t, deployer.Deploy(context.Background()))
	require.Len(t, rec.requests, 13)

	for i, req := range rec.requests[:8] {
		assert.Equal(t, "POST /api/agent_builder/tools", req, "request %d", i)
	}
	for i, req := range rec.requests[8:] {
		assert.Equal(t, "POST /api/agent_builder/agents", req, "request %d", i+8)
	}
}

func TestDeployContinuesPastFailures(t *testing.T) {
	t.Parallel()

	rec, server := newRecordingServer(func(w http.ResponseWriter, r *http.Request) {
		// Fail every tool creation; agents still get attempted.
		if strings.HasSuffix(r.URL.Path, "/tools") {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	client := NewClient(server.URL, "k", testLogger())
	deployer := NewDeployer(client, NewCatalog("s1"), testLogger())

	err := deployer.Deploy(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "8 failures")
	assert.Len(t, rec.requests, 13)
}

func TestCleanupDeletesAgentsBeforeTools(t *testing.T) {
	t.Parallel()

	rec, server := newRecordingServer(nil)
	defer server.Close()

	client := NewClient(server.URL, "k", testLogger())
	deployer := NewDeployer(client, NewCatalog("s1"), testLogger())

	require.NoError(t, deployer.Cleanup(context.Background()))
	require.Len(t, rec.requests, 13)

	for i, req := range rec.requests[:5] {
		assert.True(t, strings.HasPrefix(req, "DELETE /api/agent_builder/agents/"), "request %d: %s", i, req)
	}
	for i, req := range rec.requests[5:] {
		assert.True(t, strings.HasPrefix(req, "DELETE /api/agent_builder/tools/"), "request %d: %s", i+5, req)
	}
}

func TestCleanupToleratesMissingResources(t *testing.T) {
	t.Parallel()

	rec, server := newRecordingServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	client := NewClient(server.URL, "k", testLogger())
	deployer := NewDeployer(client, NewCatalog("gone"), testLogger())

	require.NoError(t, deployer.Cleanup(context.Background()))
	assert.Len(t, rec.requests, 13)
}

func TestRedeployCleansUpThenDeploys(t *testing.T) {
	t.Parallel()

	rec, server := newRecordingServer(nil)
	defer server.Close()

	client := NewClient(server.URL, "k", testLogger())
	deployer := NewDeployer(client, NewCatalog("s1"), testLogger())

	require.NoError(t, deployer.Redeploy(context.Background()))
	require.Len(t, rec.requests, 26)

	assert.True(t, strings.HasPrefix(rec.requests[0], "DELETE "))
	assert.True(t, strings.HasPrefix(rec.requests[13], "POST "))
}
