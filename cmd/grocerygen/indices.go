package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"

	"elasticart/config"
	"elasticart/internal/infra/elastic"
)

// runIndices manages the Elasticsearch indices directly. Delete prompts
// for confirmation unless -yes is set.
func runIndices(ctx context.Context, cfg *config.Config, logger *slog.Logger, action string, yes bool) error {
	client, err := elastic.New(cfg, logger)
	if err != nil {
		return err
	}

	switch action {
	case "create":
		return client.CreateIndices(ctx)
	case "delete":
		if !yes && !confirm("Delete ALL grocery indices?") {
			fmt.Println("Operation cancelled.")

			return nil
		}

		return client.DeleteIndices(ctx)
	default:
		return errors.Errorf("unknown indices action %q, expected create or delete", action)
	}
}

func confirm(prompt string) bool {
	fmt.Printf("%s (yes/no): ", prompt)

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}

	return strings.EqualFold(strings.TrimSpace(scanner.Text()), "yes")
}
