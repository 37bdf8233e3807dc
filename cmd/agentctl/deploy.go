package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"elasticart/internal/infra/agentbuilder"
)

// runDeploy provisions the full tool and agent catalog under the given
// session id. An empty session id gets a fresh UUID so repeated deploys
// never collide.
func runDeploy(ctx context.Context, client *agentbuilder.Client, logger *slog.Logger, sessionID string, redeploy bool) error {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	deployer := agentbuilder.NewDeployer(client, agentbuilder.NewCatalog(sessionID), logger)

	var err error
	if redeploy {
		err = deployer.Redeploy(ctx)
	} else {
		err = deployer.Deploy(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Session deployed: %s\n", sessionID)

	return nil
}

// runCleanup deletes the session's agents and then its tools.
func runCleanup(ctx context.Context, client *agentbuilder.Client, logger *slog.Logger, sessionID string) error {
	deployer := agentbuilder.NewDeployer(client, agentbuilder.NewCatalog(sessionID), logger)

	return deployer.Cleanup(ctx)
}
