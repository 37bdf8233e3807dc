package agentbuilder

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/pkg/errors"
)

// Deployer provisions and tears down a session's tools and agents.
type Deployer struct {
	client  *Client
	catalog *Catalog
	logger  *slog.Logger
}

// NewDeployer binds a client to a session catalog.
func NewDeployer(client *Client, catalog *Catalog, logger *slog.Logger) *Deployer {
	return &Deployer{client: client, catalog: catalog, logger: logger}
}

// Deploy creates every tool and then every agent in the catalog. Tools go
// first because agents reference them by id. A failed item does not stop
// the rest; all failures are reported together at the end.
func (d *Deployer) Deploy(ctx context.Context) error {
	var failures []error

	created := 0
	for _, tool := range d.catalog.Tools() {
		if err := d.client.CreateTool(ctx, tool); err != nil {
			d.logger.Error("tool creation failed",
				slog.String("tool_id", tool.ID),
				slog.Any("error", err))
			failures = append(failures, err)

			continue
		}
		created++
	}

	d.logger.Info("tools deployed",
		slog.Int("created", created),
		slog.String("session_id", d.catalog.SessionID()))

	created = 0
	for _, agent := range d.catalog.Agents() {
		if err := d.client.CreateAgent(ctx, agent); err != nil {
			d.logger.Error("agent creation failed",
				slog.String("agent_id", agent.ID),
				slog.Any("error", err))
			failures = append(failures, err)

			continue
		}
		created++
	}

	d.logger.Info("agents deployed",
		slog.Int("created", created),
		slog.String("session_id", d.catalog.SessionID()))

	if len(failures) > 0 {
		return errors.Wrapf(stderrors.Join(failures...),
			"deploy session %s: %d failures", d.catalog.SessionID(), len(failures))
	}

	return nil
}

// Cleanup deletes every agent and then every tool in the catalog. Agents
// go first because they depend on tools. Missing resources are skipped;
// real delete errors are collected and reported together.
func (d *Deployer) Cleanup(ctx context.Context) error {
	d.logger.Info("cleaning up session", slog.String("session_id", d.catalog.SessionID()))

	var failures []error

	for _, agentID := range d.catalog.AgentIDs() {
		if _, err := d.client.DeleteAgent(ctx, agentID); err != nil {
			d.logger.Error("agent deletion failed",
				slog.String("agent_id", agentID),
				slog.Any("error", err))
			failures = append(failures, err)
		}
	}

	for _, toolID := range d.catalog.ToolIDs() {
		if _, err := d.client.DeleteTool(ctx, toolID); err != nil {
			d.logger.Error("tool deletion failed",
				slog.String("tool_id", toolID),
				slog.Any("error", err))
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		return errors.Wrapf(stderrors.Join(failures...),
			"cleanup session %s: %d failures", d.catalog.SessionID(), len(failures))
	}

	d.logger.Info("session cleanup complete", slog.String("session_id", d.catalog.SessionID()))

	return nil
}

// Redeploy tears the session down and provisions it again. Cleanup errors
// are logged but do not block the fresh deploy.
func (d *Deployer) Redeploy(ctx context.Context) error {
	if err := d.Cleanup(ctx); err != nil {
		d.logger.Warn("cleanup before redeploy reported failures", slog.Any("error", err))
	}

	return d.Deploy(ctx)
}
