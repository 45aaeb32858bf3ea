package sim

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoreConfig groups the store's construction-time tables.
type StoreConfig struct {
	InitialStock      map[string]int  // opening stock per item
	Pricing           PricingTable    // retail unit prices (immutable for the run)
	Promotions        PromotionTable  // per-unit discounts
	ShelfLifeDays     int             // shelf life recorded for opening stock (default DefaultShelfLifeDays)
	SalaryPerEmployee decimal.Decimal // accrued per employee on the salary cadence
	Employees         []EmployeeConfig
}

// EmployeeConfig names one rostered employee and their role tag.
type EmployeeConfig struct {
	Name string
	Role string // "cashier", "stock_clerk", "manager"; anything else is warn-only
}

// SupplierConfig groups the supplier side.
type SupplierConfig struct {
	Name         string
	Catalog      PricingTable // supplier-side unit costs
	LeadTimeDays int          // nominal delivery lead time (informational)
}

// CustomerConfig groups the per-tick shopper profile.
type CustomerConfig struct {
	Preferences    []string        // preferred items, tried before the full shelf
	Budget         decimal.Decimal // spend cap per customer; <= 0 means unlimited
	BrowseAttempts int             // browse attempts per customer per tick
}

// SimulationConfig groups loop parameters.
type SimulationConfig struct {
	Duration        int       // ticks to run (one tick = one simulated minute)
	Seed            int64     // master seed for the partitioned RNG
	ReorderQuantity int       // units ordered per low-stock item
	StartTime       time.Time // timeline anchor; tick n maps to StartTime+n minutes (zero = time.Now())
}
