package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/osse101/ArcPlanner_Go/internal/crafting"
	"github.com/osse101/ArcPlanner_Go/internal/report"
)

var (
	loadoutPath string
	asJSON      bool
)

// loadoutFile is the YAML document read by `planner plan --loadout`:
//
//	name: raid kit
//	demands:
//	  - item_id: anvil_ii
//	    quantity: 1
type loadoutFile struct {
	Name    string            `yaml:"name"`
	Demands []crafting.Demand `yaml:"demands" validate:"required,min=1,max=256,dive"`
}

var planCmd = &cobra.Command{
	Use:   "plan [item[:quantity]...]",
	Short: "Total the raw materials for a loadout",
	Long: `Builds the crafting tree of every demanded item and prints the combined raw
material requirements with their recycling sources.

Demands come from a YAML loadout file, from arguments, or both:
  planner plan --loadout kit.yaml
  planner plan anvil_ii heavy_armor_plate:3`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&loadoutPath, "loadout", "l", "", "YAML loadout file listing demands")
	planCmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
}

func runPlan(cmd *cobra.Command, args []string) error {
	var demands []crafting.Demand
	if loadoutPath != "" {
		lf, err := readLoadoutFile(loadoutPath)
		if err != nil {
			return err
		}
		demands = append(demands, lf.Demands...)
	}
	for _, arg := range args {
		d, err := parseDemandArg(arg)
		if err != nil {
			return err
		}
		demands = append(demands, d)
	}
	if len(demands) == 0 {
		return fmt.Errorf("nothing to plan: pass --loadout or at least one item")
	}

	planner, err := newPlanner(cmd.Context())
	if err != nil {
		return err
	}
	plan, err := planner.Plan(cmd.Context(), demands)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), plan)
	}
	return report.NewRenderer(cmd.OutOrStdout(), styles()).Plan(plan)
}

func readLoadoutFile(path string) (*loadoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read loadout: %w", err)
	}

	var lf loadoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("failed to parse loadout %s: %w", path, err)
	}
	if err := validator.New().Struct(&lf); err != nil {
		return nil, fmt.Errorf("invalid loadout %s: %w", path, err)
	}
	return &lf, nil
}

// parseDemandArg accepts "item_id" or "item_id:quantity", with quantity in
// 1..crafting.MaxDemandQuantity
func parseDemandArg(arg string) (crafting.Demand, error) {
	id, qty, found := strings.Cut(arg, ":")
	d := crafting.Demand{ItemID: strings.TrimSpace(id), Quantity: 1}
	if d.ItemID == "" {
		return crafting.Demand{}, fmt.Errorf("invalid item %q: empty id", arg)
	}
	if found {
		n, err := strconv.Atoi(qty)
		if err != nil || n < 1 {
			return crafting.Demand{}, fmt.Errorf("invalid item %q: quantity must be a positive integer", arg)
		}
		if n > crafting.MaxDemandQuantity {
			return crafting.Demand{}, fmt.Errorf("invalid item %q: quantity must not exceed %d", arg, crafting.MaxDemandQuantity)
		}
		d.Quantity = n
	}
	return d, nil
}
