package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"elasticart/config"
	logs "elasticart/internal/infra/log"
)

// Supported subcommands:
// - generate: Generate dataset artifacts to disk
// - load:     Bulk-load artifacts into Elasticsearch
// - refresh:  Re-roll dynamic fields (prices, stock, promotions)
// - indices:  Create or delete the Elasticsearch indices
// - menu:     Interactive menu (also the default with no arguments)

func main() {
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	loadCmd := flag.NewFlagSet("load", flag.ExitOnError)
	refreshCmd := flag.NewFlagSet("refresh", flag.ExitOnError)
	indicesCmd := flag.NewFlagSet("indices", flag.ExitOnError)

	// generate parameters
	generateOut := generateCmd.String("out", "", "Output directory for dataset artifacts (defaults to config)")
	generateSeed := generateCmd.Int64("seed", 0, "Random seed; 0 uses the config seed or wall clock")
	generateItems := generateCmd.Int("items", 0, "Grocery item count override")
	generateStores := generateCmd.Int("stores", 0, "Store count override")
	generateInventory := generateCmd.Int("inventory", 0, "Inventory records per store override")
	generateRecipes := generateCmd.Int("recipes", 0, "Recipe draw count override")
	generateOnly := generateCmd.String("only", "", "Generate a single collection (e.g. store_locations)")

	// load parameters
	loadDir := loadCmd.String("dir", "", "Directory holding dataset artifacts (defaults to config)")
	loadRecreate := loadCmd.Bool("recreate", false, "Delete and recreate indices before loading")

	// refresh parameters
	refreshDir := refreshCmd.String("dir", "", "Directory holding dataset artifacts (defaults to config)")
	refreshSeed := refreshCmd.Int64("seed", 0, "Random seed; 0 uses the wall clock")
	refreshLoad := refreshCmd.Bool("load", false, "Bulk-load the refreshed dataset after writing")

	// indices parameters
	indicesYes := indicesCmd.Bool("yes", false, "Skip the confirmation prompt on delete")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := groceryFlags{
		Generate: generateFlags{
			cmd:       generateCmd,
			out:       generateOut,
			seed:      generateSeed,
			items:     generateItems,
			stores:    generateStores,
			inventory: generateInventory,
			recipes:   generateRecipes,
			only:      generateOnly,
		},
		Load: loadFlags{
			cmd:      loadCmd,
			dir:      loadDir,
			recreate: loadRecreate,
		},
		Refresh: refreshFlags{
			cmd:  refreshCmd,
			dir:  refreshDir,
			seed: refreshSeed,
			load: refreshLoad,
		},
		Indices: indicesFlags{
			cmd: indicesCmd,
			yes: indicesYes,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type groceryFlags struct {
	Generate generateFlags
	Load     loadFlags
	Refresh  refreshFlags
	Indices  indicesFlags
}

type generateFlags struct {
	cmd       *flag.FlagSet
	out       *string
	seed      *int64
	items     *int
	stores    *int
	inventory *int
	recipes   *int
	only      *string
}

type loadFlags struct {
	cmd      *flag.FlagSet
	dir      *string
	recreate *bool
}

type refreshFlags struct {
	cmd  *flag.FlagSet
	dir  *string
	seed *int64
	load *bool
}

type indicesFlags struct {
	cmd *flag.FlagSet
	yes *bool
}

func runSubcommand(ctx context.Context, flags *groceryFlags) error {
	if len(os.Args) < 2 {
		return runMenu(ctx)
	}

	switch os.Args[1] {
	case "generate":
		return handleGenerate(flags)
	case "load":
		return handleLoad(ctx, flags)
	case "refresh":
		return handleRefresh(ctx, flags)
	case "indices":
		return handleIndices(ctx, flags)
	case "menu":
		return runMenu(ctx)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleGenerate(flags *groceryFlags) error {
	if err := flags.Generate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse generate flags")
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	opts := generateOptions{
		out:       *flags.Generate.out,
		seed:      *flags.Generate.seed,
		items:     *flags.Generate.items,
		stores:    *flags.Generate.stores,
		inventory: *flags.Generate.inventory,
		recipes:   *flags.Generate.recipes,
		only:      *flags.Generate.only,
	}

	return runGenerate(cfg, logger, opts)
}

func handleLoad(ctx context.Context, flags *groceryFlags) error {
	if err := flags.Load.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse load flags")
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	return runLoad(ctx, cfg, logger, *flags.Load.dir, *flags.Load.recreate)
}

func handleRefresh(ctx context.Context, flags *groceryFlags) error {
	if err := flags.Refresh.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse refresh flags")
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	return runRefresh(ctx, cfg, logger, *flags.Refresh.dir, *flags.Refresh.seed, *flags.Refresh.load)
}

func handleIndices(ctx context.Context, flags *groceryFlags) error {
	if len(os.Args) < 3 {
		printUsage()

		return errors.New("indices requires an action: create or delete")
	}

	action := os.Args[2]
	if err := flags.Indices.cmd.Parse(os.Args[3:]); err != nil {
		return errors.Wrap(err, "failed to parse indices flags")
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	return runIndices(ctx, cfg, logger, action, *flags.Indices.yes)
}

func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, errors.Wrap(err, "load config")
	}

	logger, err := logs.New(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "build logger")
	}

	return cfg, logger, nil
}

func printUsage() {
	fmt.Println("Usage: grocerygen <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  generate    Generate dataset artifacts to disk")
	fmt.Println("  load        Bulk-load artifacts into Elasticsearch")
	fmt.Println("  refresh     Re-roll dynamic fields in existing artifacts")
	fmt.Println("  indices     Create or delete the Elasticsearch indices")
	fmt.Println("  menu        Interactive menu (default with no arguments)")
	fmt.Println("")
	fmt.Println("Use 'grocerygen <command> -h' for more information about a command.")
}

// Command implementations are in their respective files
