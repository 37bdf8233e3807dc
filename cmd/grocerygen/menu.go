package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"elasticart/config"
)

// menuState carries the mutable dataset sizes edited through the menu.
// Changes apply to subsequent generation runs only; the config file is
// never rewritten.
type menuState struct {
	cfg    *config.Config
	logger *slog.Logger
	in     *bufio.Scanner
}

// runMenu drives the interactive control loop. It is also the default
// behavior when the binary is invoked with no arguments.
func runMenu(ctx context.Context) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	m := &menuState{
		cfg:    cfg,
		logger: logger,
		in:     bufio.NewScanner(os.Stdin),
	}

	for {
		m.printMenu()

		choice, ok := m.readLine("Select an option: ")
		if !ok {
			return nil
		}

		done, err := m.dispatch(ctx, choice)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		if done {
			fmt.Println("Goodbye!")

			return nil
		}
	}
}

func (m *menuState) printMenu() {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("GROCERY DATA GENERATOR")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("1. Generate all data (full dataset)")
	fmt.Println("2. Generate store data only")
	fmt.Println("3. Generate grocery items only")
	fmt.Println("4. Generate inventory data only")
	fmt.Println("5. Update prices & promotions")
	fmt.Println("6. Load data to Elasticsearch")
	fmt.Println("7. Delete all indices")
	fmt.Println("8. View current configuration")
	fmt.Println("9. Configure dataset sizes")
	fmt.Println("0. Exit")
	fmt.Println(strings.Repeat("-", 60))
}

func (m *menuState) dispatch(ctx context.Context, choice string) (bool, error) {
	switch choice {
	case "1":
		return false, runGenerate(m.cfg, m.logger, generateOptions{})
	case "2":
		return false, runGenerate(m.cfg, m.logger, generateOptions{only: "store_locations"})
	case "3":
		return false, runGenerate(m.cfg, m.logger, generateOptions{only: "grocery_items"})
	case "4":
		return false, runGenerate(m.cfg, m.logger, generateOptions{only: "store_inventory"})
	case "5":
		return false, runRefresh(ctx, m.cfg, m.logger, "", 0, false)
	case "6":
		return false, runLoad(ctx, m.cfg, m.logger, "", false)
	case "7":
		return false, runIndices(ctx, m.cfg, m.logger, "delete", false)
	case "8":
		m.showConfiguration()

		return false, nil
	case "9":
		m.configureSizes()

		return false, nil
	case "0":
		return true, nil
	default:
		fmt.Println("Invalid choice. Please try again.")

		return false, nil
	}
}

func (m *menuState) showConfiguration() {
	ds := m.cfg.Dataset

	fmt.Println()
	fmt.Println("CURRENT CONFIGURATION")
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Grocery Items: %d\n", ds.ItemCount)
	fmt.Printf("Store Count: %d\n", ds.StoreCount)
	fmt.Printf("Inventory per Store: %d\n", ds.InventoryPerStore)
	fmt.Printf("Recipe Draws: %d\n", ds.RecipeCount)
	fmt.Printf("Target City: %s\n", ds.City)
	fmt.Printf("Seasonal Items: %t\n", ds.GenerateSeasonalItems())
	fmt.Printf("Promotional Offers: %t\n", ds.GeneratePromotions())
	fmt.Printf("Output Directory: %s\n", ds.OutputDir)
}

func (m *menuState) configureSizes() {
	ds := m.cfg.Dataset

	fmt.Println()
	fmt.Println("CONFIGURE DATASET SIZES")
	fmt.Println(strings.Repeat("-", 40))

	ds.ItemCount = m.readInt(fmt.Sprintf("Grocery Items [%d]: ", ds.ItemCount), ds.ItemCount)
	ds.StoreCount = m.readInt(fmt.Sprintf("Store Count [%d]: ", ds.StoreCount), ds.StoreCount)
	ds.InventoryPerStore = m.readInt(fmt.Sprintf("Inventory per Store [%d]: ", ds.InventoryPerStore), ds.InventoryPerStore)
	ds.RecipeCount = m.readInt(fmt.Sprintf("Recipe Draws [%d]: ", ds.RecipeCount), ds.RecipeCount)

	if city, ok := m.readLine(fmt.Sprintf("Target City [%s]: ", ds.City)); ok && city != "" {
		ds.City = city
	}

	fmt.Println("Configuration updated for this session.")
}

func (m *menuState) readLine(prompt string) (string, bool) {
	fmt.Print(prompt)
	if !m.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(m.in.Text()), true
}

func (m *menuState) readInt(prompt string, current int) int {
	text, ok := m.readLine(prompt)
	if !ok || text == "" {
		return current
	}

	n, err := strconv.Atoi(text)
	if err != nil || n <= 0 {
		fmt.Println("Invalid input. Value unchanged.")

		return current
	}

	return n
}
