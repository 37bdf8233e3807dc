// Package agentbuilder is a client for Kibana's Agent Builder REST API:
// tool and agent CRUD plus the converse endpoint. Query execution and
// agent reasoning happen inside the managed platform; this package only
// speaks the HTTP contract.
package agentbuilder

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Client calls the Agent Builder endpoints under a Kibana base URL.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a Client for the given Kibana instance.
func NewClient(kibanaURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(kibanaURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// CreateTool registers a new query tool.
func (c *Client) CreateTool(ctx context.Context, tool *ToolDefinition) error {
	if err := c.post(ctx, "/api/agent_builder/tools", tool, nil); err != nil {
		return errors.Wrapf(err, "create tool %s", tool.ID)
	}

	c.logger.Info("created tool", slog.String("tool_id", tool.ID))

	return nil
}

// CreateAgent registers a new agent referencing previously created tools.
func (c *Client) CreateAgent(ctx context.Context, agent *AgentDefinition) error {
	if err := c.post(ctx, "/api/agent_builder/agents", agent, nil); err != nil {
		return errors.Wrapf(err, "create agent %s", agent.ID)
	}

	c.logger.Info("created agent", slog.String("agent_id", agent.ID))

	return nil
}

// Converse sends a message to an agent, optionally continuing an existing
// conversation.
func (c *Client) Converse(ctx context.Context, agentID, message, conversationID string) (*ConverseResponse, error) {
	req := &ConverseRequest{
		AgentID:        agentID,
		Message:        message,
		ConversationID: conversationID,
	}

	var resp ConverseResponse
	if err := c.post(ctx, "/api/agent_builder/converse", req, &resp); err != nil {
		return nil, errors.Wrapf(err, "converse with agent %s", agentID)
	}

	return &resp, nil
}

// DeleteTool removes a tool. Deleting an unknown id is not an error: the
// call reports false so cleanup passes stay idempotent.
func (c *Client) DeleteTool(ctx context.Context, toolID string) (bool, error) {
	deleted, err := c.delete(ctx, "/api/agent_builder/tools/"+toolID)
	if err != nil {
		return false, errors.Wrapf(err, "delete tool %s", toolID)
	}
	if deleted {
		c.logger.Info("deleted tool", slog.String("tool_id", toolID))
	} else {
		c.logger.Warn("tool not found", slog.String("tool_id", toolID))
	}

	return deleted, nil
}

// DeleteAgent removes an agent; an unknown id reports false.
func (c *Client) DeleteAgent(ctx context.Context, agentID string) (bool, error) {
	deleted, err := c.delete(ctx, "/api/agent_builder/agents/"+agentID)
	if err != nil {
		return false, errors.Wrapf(err, "delete agent %s", agentID)
	}
	if deleted {
		c.logger.Info("deleted agent", slog.String("agent_id", agentID))
	} else {
		c.logger.Warn("agent not found", slog.String("agent_id", agentID))
	}

	return deleted, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	respBody := new(bytes.Buffer)
	_, _ = respBody.ReadFrom(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Op: "POST " + path, StatusCode: resp.StatusCode, Body: respBody.String()}
	}

	if out != nil {
		if err := json.Unmarshal(respBody.Bytes(), out); err != nil {
			return errors.Wrap(err, "decode response")
		}
	}

	return nil
}

func (c *Client) delete(ctx context.Context, path string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return false, errors.WithStack(err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errors.WithStack(err)
	}
	defer resp.Body.Close()

	respBody := new(bytes.Buffer)
	_, _ = respBody.ReadFrom(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return false, &APIError{Op: "DELETE " + path, StatusCode: resp.StatusCode, Body: respBody.String()}
	default:
		return true, nil
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "ApiKey "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("kbn-xsrf", "true")
}
