package sim

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSimulator(seed int64, duration int) *Simulator {
	store := testLedgerStore()
	cfg := SimulationConfig{
		Duration:        duration,
		Seed:            seed,
		ReorderQuantity: 10,
		// Anchor the timeline at the date testLedgerStore restocks with, so
		// sweep behavior does not depend on the host clock.
		StartTime: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	customer := CustomerConfig{
		Preferences:    []string{"Apple", "Milk"},
		Budget:         decimal.NewFromInt(20),
		BrowseAttempts: 3,
	}
	return NewSimulator(cfg, store, testPricing(), customer, ImmediateTicker{})
}

func TestSimulator_Run_TickAndCheckoutAccounting(t *testing.T) {
	// GIVEN a 10-minute simulation over a fully priced store
	s := testSimulator(42, 10)

	// WHEN it runs
	s.Run()

	// THEN every tick served its customer with no pricing failures
	assert.Equal(t, 10, s.Metrics.TicksRun)
	assert.Equal(t, 10, s.Metrics.CustomersServed)
	assert.Equal(t, 0, s.Metrics.CheckoutFailures)

	// AND salaries accrued on ticks 5 and 10 only: 2 * 3 * 100
	assert.Equal(t, "600.00", s.Store.SalaryExpense.StringFixed(2))
}

func TestSimulator_Run_SameSeedReproducesSameRun(t *testing.T) {
	// GIVEN two simulations with the same seed and configuration
	a := testSimulator(7, 20)
	b := testSimulator(7, 20)

	// WHEN both run
	a.Run()
	b.Run()

	// THEN their metrics and ledgers are identical
	assert.Equal(t, a.Metrics, b.Metrics)
	assert.True(t, a.Store.Ledger.Revenue.Equal(b.Store.Ledger.Revenue))
	assert.True(t, a.Store.Ledger.Expenses.Equal(b.Store.Ledger.Expenses))
}

func TestSimulator_Run_DifferentSeedsDiverge(t *testing.T) {
	a := testSimulator(1, 30)
	b := testSimulator(2, 30)

	a.Run()
	b.Run()

	// Thirty ticks of three browse draws each make a collision across seeds
	// vanishingly unlikely.
	assert.False(t, a.Store.Ledger.Revenue.Equal(b.Store.Ledger.Revenue),
		"two seeds produced identical revenue %s", a.Store.Ledger.Revenue)
}

func TestSimulator_RunTick_ReordersLowStockItems(t *testing.T) {
	// GIVEN a store with no stock clerk and an item under the threshold
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	inv := NewExpiringInventory(nil)
	inv.Restock("Apple", 1, now, 30, "")
	employees := []*Employee{NewEmployee("Alice", "cashier")}
	supplier := NewSupplier("FruitCo", PricingTable{"Apple": dec(1.0)}, 1)
	store := NewLedgerStore(inv, nil, employees, supplier, decimal.NewFromInt(100))

	cfg := SimulationConfig{Duration: 1, Seed: 1, ReorderQuantity: 10, StartTime: now}
	customer := CustomerConfig{BrowseAttempts: 1}
	s := NewSimulator(cfg, store, PricingTable{"Apple": dec(1.2)}, customer, nil)

	// WHEN one tick runs
	s.RunTick(1)

	// THEN the 30-day stock survived the sweep and the low-stock item was
	// reordered and delivered on top of it
	assert.Equal(t, 0, s.Metrics.ExpiredItems)
	assert.Equal(t, 1, s.Metrics.OrdersPlaced)
	assert.Equal(t, 11, store.Inventory.Quantity("Apple"))
	assert.Equal(t, "10.00", store.OrderingCost.StringFixed(2))
}

func TestSimulator_RunTick_SweepsExpiredStock(t *testing.T) {
	// GIVEN opening stock whose shelf life is already over
	inv := NewExpiringInventory(nil)
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	inv.Restock("Milk", 8, start, 0, "day-zero")
	employees := []*Employee{NewEmployee("Alice", "cashier")}
	supplier := NewSupplier("FruitCo", PricingTable{"Milk": dec(1.8)}, 1)
	store := NewLedgerStore(inv, nil, employees, supplier, decimal.NewFromInt(100))

	cfg := SimulationConfig{Duration: 1, Seed: 1, StartTime: start}
	s := NewSimulator(cfg, store, PricingTable{"Milk": dec(2.0)}, CustomerConfig{BrowseAttempts: 0}, nil)

	// WHEN one tick runs
	s.RunTick(1)

	// THEN the sweep fired and the reorder refilled the zeroed item
	assert.Equal(t, 1, s.Metrics.ExpiredItems)
	assert.Equal(t, 1, s.Metrics.OrdersPlaced)
	assert.Equal(t, 10, store.Inventory.Quantity("Milk"))
}

func TestSimulator_Run_CheckoutFailureAbortsOnlyThatTick(t *testing.T) {
	// GIVEN pricing that cannot price what customers pick up
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	inv := NewExpiringInventory(nil)
	inv.Restock("Mystery", 50, now, 30, "")
	employees := []*Employee{NewEmployee("Alice", "cashier")}
	supplier := NewSupplier("FruitCo", PricingTable{"Mystery": dec(1.0)}, 1)
	store := NewLedgerStore(inv, nil, employees, supplier, decimal.NewFromInt(100))

	cfg := SimulationConfig{Duration: 3, Seed: 1, StartTime: now}
	s := NewSimulator(cfg, store, PricingTable{}, CustomerConfig{BrowseAttempts: 1}, nil)

	// WHEN the simulation runs
	s.Run()

	// THEN every tick still ran, each checkout failing without accrual
	require.Equal(t, 3, s.Metrics.TicksRun)
	assert.Equal(t, 3, s.Metrics.CheckoutFailures)
	assert.Equal(t, 0, s.Metrics.CustomersServed)
	assert.True(t, store.Ledger.Revenue.IsZero())
}

func TestNewSimulator_TimelineAnchorIsConfigurable(t *testing.T) {
	// GIVEN a simulator anchored at a fixed start time
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s := testSimulator(1, 1)

	// THEN ticks map onto the configured timeline, not the host clock
	assert.Equal(t, start.Add(5*time.Minute), s.now(5))

	// AND a zero StartTime falls back to the wall clock
	fallback := NewSimulator(SimulationConfig{Duration: 1}, testLedgerStore(), testPricing(), CustomerConfig{}, nil)
	assert.WithinDuration(t, time.Now(), fallback.start, time.Minute)
}

func TestNewStockedInventory_RecordsExpirationsForOpeningStock(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	inv := NewStockedInventory(map[string]int{"Apple": 10, "Milk": 5}, now, 7)

	assert.Equal(t, 10, inv.Quantity("Apple"))
	assert.Equal(t, 5, inv.Quantity("Milk"))
	expires, ok := inv.ExpiresAt("Milk")
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, 7), expires)
}
