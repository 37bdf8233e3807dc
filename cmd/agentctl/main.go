package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"elasticart/config"
	"elasticart/internal/infra/agentbuilder"
	logs "elasticart/internal/infra/log"
)

// Supported subcommands:
// - deploy:   Create the session's tools and agents in Agent Builder
// - cleanup:  Delete a session's agents and tools
// - converse: Send a message to a deployed agent

func main() {
	deployCmd := flag.NewFlagSet("deploy", flag.ExitOnError)
	cleanupCmd := flag.NewFlagSet("cleanup", flag.ExitOnError)
	converseCmd := flag.NewFlagSet("converse", flag.ExitOnError)

	// deploy parameters
	deploySession := deployCmd.String("session", "", "Session id to scope ids with (defaults to a new UUID)")
	deployRedeploy := deployCmd.Bool("redeploy", false, "Clean up the session first, then deploy")

	// cleanup parameters
	cleanupSession := cleanupCmd.String("session", "", "Session id to clean up")

	// converse parameters
	converseAgent := converseCmd.String("agent", "", "Full agent id, including the session suffix")
	converseMessage := converseCmd.String("message", "", "Message to send")
	converseConversation := converseCmd.String("conversation", "", "Conversation id to continue (optional)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := agentFlags{
		Deploy: deployFlags{
			cmd:      deployCmd,
			session:  deploySession,
			redeploy: deployRedeploy,
		},
		Cleanup: cleanupFlags{
			cmd:     cleanupCmd,
			session: cleanupSession,
		},
		Converse: converseFlags{
			cmd:          converseCmd,
			agent:        converseAgent,
			message:      converseMessage,
			conversation: converseConversation,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type agentFlags struct {
	Deploy   deployFlags
	Cleanup  cleanupFlags
	Converse converseFlags
}

type deployFlags struct {
	cmd      *flag.FlagSet
	session  *string
	redeploy *bool
}

type cleanupFlags struct {
	cmd     *flag.FlagSet
	session *string
}

type converseFlags struct {
	cmd          *flag.FlagSet
	agent        *string
	message      *string
	conversation *string
}

func runSubcommand(ctx context.Context, flags *agentFlags) error {
	switch os.Args[1] {
	case "deploy":
		return handleDeploy(ctx, flags)
	case "cleanup":
		return handleCleanup(ctx, flags)
	case "converse":
		return handleConverse(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleDeploy(ctx context.Context, flags *agentFlags) error {
	if err := flags.Deploy.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse deploy flags")
	}

	client, logger, err := setup()
	if err != nil {
		return err
	}

	return runDeploy(ctx, client, logger, *flags.Deploy.session, *flags.Deploy.redeploy)
}

func handleCleanup(ctx context.Context, flags *agentFlags) error {
	if err := flags.Cleanup.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse cleanup flags")
	}

	if *flags.Cleanup.session == "" {
		return errors.New("--session flag is required for cleanup command")
	}

	client, logger, err := setup()
	if err != nil {
		return err
	}

	return runCleanup(ctx, client, logger, *flags.Cleanup.session)
}

func handleConverse(ctx context.Context, flags *agentFlags) error {
	if err := flags.Converse.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse converse flags")
	}

	if *flags.Converse.agent == "" {
		return errors.New("--agent flag is required for converse command")
	}
	if *flags.Converse.message == "" {
		return errors.New("--message flag is required for converse command")
	}

	client, _, err := setup()
	if err != nil {
		return err
	}

	return runConverse(ctx, client, *flags.Converse.agent, *flags.Converse.message, *flags.Converse.conversation)
}

func setup() (*agentbuilder.Client, *slog.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, errors.Wrap(err, "load config")
	}

	logger, err := logs.New(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "build logger")
	}

	if err := cfg.RequireKibana(); err != nil {
		return nil, nil, err
	}

	return agentbuilder.NewClient(cfg.Kibana.URL, cfg.Kibana.APIKey, logger), logger, nil
}

func printUsage() {
	fmt.Println("Usage: agentctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  deploy      Create the session's tools and agents")
	fmt.Println("  cleanup     Delete a session's agents and tools")
	fmt.Println("  converse    Send a message to a deployed agent")
	fmt.Println("")
	fmt.Println("Use 'agentctl <command> -h' for more information about a command.")
}

// Command implementations are in their respective files
