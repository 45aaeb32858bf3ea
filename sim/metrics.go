// Tracks run-wide counters for final reporting.

package sim

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for sanity-checking a run and comparing seeds.
type Metrics struct {
	TicksRun         int // number of ticks executed
	CustomersServed  int // customers that completed checkout
	ItemsSold        int // total quantity across checked-out carts
	SkippedBrowses   int // browse attempts that added nothing (budget or empty shelf)
	ExpiredItems     int // items zeroed by the expiration sweep
	OrdersPlaced     int // reorders successfully placed with the supplier
	CheckoutFailures int // checkouts aborted by pricing lookup failures
}

// Print displays the aggregated counters and the financial report at the end
// of the simulation. Currency values are formatted to two decimal places.
func (m *Metrics) Print(report Report, orderingCost, salaryExpense decimal.Decimal) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Ticks Run            : %d\n", m.TicksRun)
	fmt.Printf("Customers Served     : %d\n", m.CustomersServed)
	fmt.Printf("Items Sold           : %d\n", m.ItemsSold)
	fmt.Printf("Skipped Browses      : %d\n", m.SkippedBrowses)
	fmt.Printf("Expired Items Swept  : %d\n", m.ExpiredItems)
	fmt.Printf("Orders Placed        : %d\n", m.OrdersPlaced)
	fmt.Printf("Checkout Failures    : %d\n", m.CheckoutFailures)
	fmt.Println("=== Financial Report ===")
	fmt.Printf("Total Revenue  : $%s\n", report.Revenue.StringFixed(2))
	fmt.Printf("Total Expenses : $%s\n", report.Expenses.StringFixed(2))
	fmt.Printf("  Ordering     : $%s\n", orderingCost.StringFixed(2))
	fmt.Printf("  Salaries     : $%s\n", salaryExpense.StringFixed(2))
	fmt.Printf("Net Profit     : $%s\n", report.NetProfit.StringFixed(2))
}
