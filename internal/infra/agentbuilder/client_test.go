package agentbuilder

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientSendsRequiredHeaders(t *testing.T) {
	t.Parallel()

	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key", testLogger())
	require.NoError(t, client.CreateTool(context.Background(), &ToolDefinition{ID: "t1"}))

	assert.Equal(t, "ApiKey secret-key", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "true", got.Get("kbn-xsrf"))
}

func TestCreateToolPostsDefinition(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", testLogger())
	tool := &ToolDefinition{
		ID:            "search_grocery_items_s1",
		Description:   "search",
		Labels:        []string{"retrieval"},
		Configuration: "FROM grocery_items",
		Parameters:    []ToolParameter{{Name: "search_term", Description: "term"}},
	}

	require.NoError(t, client.CreateTool(context.Background(), tool))

	assert.Equal(t, "/api/agent_builder/tools", gotPath)
	assert.Equal(t, "search_grocery_items_s1", gotBody["id"])
	assert.Equal(t, "FROM grocery_items", gotBody["configuration"])
}

func TestCreateAgentSurfacesAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid agent"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", testLogger())
	err := client.CreateAgent(context.Background(), &AgentDefinition{ID: "a1"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "invalid agent")
}

func TestDeleteToolTreatsNotFoundAsMissing(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", testLogger())
	deleted, err := client.DeleteTool(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteAgentReportsServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", testLogger())
	deleted, err := client.DeleteAgent(context.Background(), "a1")
	require.Error(t, err)
	assert.False(t, deleted)
}

func TestConverse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/agent_builder/converse", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "budget_master_s1", req["agent_id"])
		assert.Equal(t, "find cheap milk", req["message"])
		_, hasConversation := req["conversation_id"]
		assert.False(t, hasConversation, "empty conversation id must be omitted")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"conversation_id":"c42","response":"Try the Dice Mart store brand."}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", testLogger())
	resp, err := client.Converse(context.Background(), "budget_master_s1", "find cheap milk", "")
	require.NoError(t, err)

	assert.Equal(t, "c42", resp.ConversationID)
	assert.Equal(t, "Try the Dice Mart store brand.", resp.Response)
}
