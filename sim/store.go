// Implements the store hierarchy: Store couples inventory with promotions,
// ManagedStore adds the employee roster, LedgerStore adds the supplier
// reference and the cash-flow ledger.

package sim

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// salaryInterval is the cadence, in ticks, at which salaries are accrued.
// Salaries jump every salaryInterval-th tick rather than accruing per tick.
const salaryInterval = 5

// Store couples the inventory with the promotion table in effect.
type Store struct {
	Inventory  *ExpiringInventory
	Promotions PromotionTable
}

// Checkout logs the completed cart. Pricing and ledger accrual live on
// LedgerStore; the base store is an observation hook only.
func (s *Store) Checkout(c *Customer) {
	logrus.Infof("%s has finished shopping, cart: %v", c.Name, c.Cart)
}

// ManagedStore adds an employee roster to a Store.
type ManagedStore struct {
	Store
	Employees []*Employee
}

// StartShift runs every employee's role action once, in roster order.
func (ms *ManagedStore) StartShift() {
	logrus.Info("=== Starting a new shift ===")
	for _, e := range ms.Employees {
		e.PerformRole(ms.Inventory.Inventory)
	}
}

// LedgerStore adds a supplier reference and the cash-flow ledger to a
// ManagedStore. The supplier is shared, not owned; the ledger is owned.
type LedgerStore struct {
	ManagedStore
	Supplier          *Supplier
	Ledger            Ledger
	SalaryPerEmployee decimal.Decimal

	// Running per-category expense counters, reported alongside the ledger.
	OrderingCost  decimal.Decimal
	SalaryExpense decimal.Decimal
}

// NewLedgerStore wires a LedgerStore from its parts.
func NewLedgerStore(inv *ExpiringInventory, promotions PromotionTable, employees []*Employee, supplier *Supplier, salaryPerEmployee decimal.Decimal) *LedgerStore {
	return &LedgerStore{
		ManagedStore: ManagedStore{
			Store:     Store{Inventory: inv, Promotions: promotions},
			Employees: employees,
		},
		Supplier:          supplier,
		SalaryPerEmployee: salaryPerEmployee,
	}
}

// Checkout prices the customer's cart with promotions applied, accrues the
// total as revenue, then performs the base log-only checkout. A cart item
// missing from pricing aborts the checkout with nothing accrued.
func (ls *LedgerStore) Checkout(c *Customer, pricing PricingTable) (decimal.Decimal, error) {
	total, err := ApplyPromotions(c.Cart, ls.Promotions, pricing)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("checkout %s: %w", c.Name, err)
	}
	ls.Ledger.AddRevenue(total)
	ls.Store.Checkout(c)
	return total, nil
}

// PlaceOrder accrues the order's cost as an expense and hands the order to
// the supplier for delivery. An ordered item missing from supplierPricing
// aborts the order with nothing accrued and nothing delivered. The minted
// reference ties the expense entry to the delivery notice in the log.
func (ls *LedgerStore) PlaceOrder(order Order, supplierPricing PricingTable) error {
	cost := decimal.Zero
	for item, qty := range order {
		unit, err := supplierPricing.Price(item)
		if err != nil {
			return fmt.Errorf("order: %w", err)
		}
		cost = cost.Add(unit.Mul(decimal.NewFromInt(int64(qty))))
	}
	ref := uuid.NewString()
	ls.Ledger.AddExpense(cost)
	ls.OrderingCost = ls.OrderingCost.Add(cost)
	logrus.Infof("Placed order %s with %s for $%s: %v", ref, ls.Supplier.Name, cost.StringFixed(2), order)
	ls.Supplier.Deliver(order, ls.Inventory.Inventory)
	return nil
}

// PaySalaries accrues one salary payment per rostered employee on every
// salaryInterval-th tick; all other ticks are no-ops.
func (ls *LedgerStore) PaySalaries(tick int) {
	if tick%salaryInterval != 0 {
		return
	}
	total := ls.SalaryPerEmployee.Mul(decimal.NewFromInt(int64(len(ls.Employees))))
	ls.Ledger.AddExpense(total)
	ls.SalaryExpense = ls.SalaryExpense.Add(total)
	logrus.Infof("Paid salaries: $%s (%d employees)", total.StringFixed(2), len(ls.Employees))
}

// GenerateReport returns the ledger snapshot with net profit recomputed.
func (ls *LedgerStore) GenerateReport() Report {
	return ls.Ledger.Snapshot()
}
