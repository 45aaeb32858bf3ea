package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	sim "github.com/market-sim/market-sim/sim"
)

// StoreFile is the top-level structure of a store configuration YAML.
// All top-level sections must be listed to satisfy KnownFields(true) strict
// parsing: a typo in a section name must cause an error, not a silent default.
type StoreFile struct {
	Store      storeSection      `yaml:"store"`
	Supplier   supplierSection   `yaml:"supplier"`
	Customer   customerSection   `yaml:"customer"`
	Simulation simulationSection `yaml:"simulation"`
}

type storeSection struct {
	InitialStock      map[string]int     `yaml:"initial_stock"`
	Pricing           map[string]float64 `yaml:"pricing"`
	Promotions        map[string]float64 `yaml:"promotions"`
	ShelfLifeDays     int                `yaml:"shelf_life_days"`
	SalaryPerEmployee float64            `yaml:"salary_per_employee"`
	Employees         []employeeSection  `yaml:"employees"`
}

type employeeSection struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

type supplierSection struct {
	Name         string             `yaml:"name"`
	Catalog      map[string]float64 `yaml:"catalog"`
	LeadTimeDays int                `yaml:"lead_time_days"`
}

type customerSection struct {
	Preferences    []string `yaml:"preferences"`
	Budget         float64  `yaml:"budget"`
	BrowseAttempts int      `yaml:"browse_attempts"`
}

type simulationSection struct {
	ReorderQuantity int `yaml:"reorder_quantity"`
}

// defaultStoreYAML is the built-in sample store used when no --config file is
// given: a three-item shelf, a matching supplier catalog, and a small roster.
const defaultStoreYAML = `
store:
  initial_stock:
    Apple: 10
    Banana: 10
    Milk: 10
  pricing:
    Apple: 1.2
    Banana: 0.5
    Milk: 2.0
  promotions:
    Apple: 0.1
    Milk: 0.2
  shelf_life_days: 30
  salary_per_employee: 100
  employees:
    - name: Alice
      role: cashier
    - name: Bob
      role: stock_clerk
    - name: Eve
      role: manager
supplier:
  name: FruitCo
  lead_time_days: 1
  catalog:
    Apple: 1.0
    Banana: 0.4
    Milk: 1.8
customer:
  preferences: [Apple, Milk]
  budget: 20
  browse_attempts: 3
simulation:
  reorder_quantity: 10
`

// LoadStoreConfig reads the store configuration from path, or the built-in
// sample store when path is empty, and converts it into sim config structs.
func LoadStoreConfig(path string) (sim.StoreConfig, sim.SupplierConfig, sim.CustomerConfig, sim.SimulationConfig, error) {
	data := []byte(defaultStoreYAML)
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return sim.StoreConfig{}, sim.SupplierConfig{}, sim.CustomerConfig{}, sim.SimulationConfig{}, err
		}
	}

	// Parse YAML with strict field checking so typos cause errors
	var file StoreFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return sim.StoreConfig{}, sim.SupplierConfig{}, sim.CustomerConfig{}, sim.SimulationConfig{}, fmt.Errorf("parse store config: %w", err)
	}

	storeCfg := sim.StoreConfig{
		InitialStock:      file.Store.InitialStock,
		Pricing:           toPricingTable(file.Store.Pricing),
		Promotions:        sim.PromotionTable(toPricingTable(file.Store.Promotions)),
		ShelfLifeDays:     file.Store.ShelfLifeDays,
		SalaryPerEmployee: decimal.NewFromFloat(file.Store.SalaryPerEmployee),
	}
	for _, e := range file.Store.Employees {
		storeCfg.Employees = append(storeCfg.Employees, sim.EmployeeConfig{Name: e.Name, Role: e.Role})
	}

	supplierCfg := sim.SupplierConfig{
		Name:         file.Supplier.Name,
		Catalog:      toPricingTable(file.Supplier.Catalog),
		LeadTimeDays: file.Supplier.LeadTimeDays,
	}

	customerCfg := sim.CustomerConfig{
		Preferences:    file.Customer.Preferences,
		Budget:         decimal.NewFromFloat(file.Customer.Budget),
		BrowseAttempts: file.Customer.BrowseAttempts,
	}

	simCfg := sim.SimulationConfig{
		ReorderQuantity: file.Simulation.ReorderQuantity,
	}

	return storeCfg, supplierCfg, customerCfg, simCfg, nil
}

// toPricingTable converts a YAML float money map into decimal values.
func toPricingTable(m map[string]float64) sim.PricingTable {
	table := make(sim.PricingTable, len(m))
	for item, price := range m {
		table[item] = decimal.NewFromFloat(price)
	}
	return table
}
