// sim/simulator.go
package sim

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Simulator drives the store through discrete one-minute ticks. It owns the
// clock and the metrics; the store owns all business state.
type Simulator struct {
	Clock    int // current tick, 1-based while running
	Duration int
	Store    *LedgerStore
	Pricing  PricingTable
	Customer CustomerConfig
	Metrics  *Metrics

	rng             *PartitionedRNG
	ticker          TickSource
	start           time.Time // wall-clock anchor; tick n maps to start+n minutes
	reorderQuantity int
}

// NewSimulator wires a Simulator. A nil ticker runs ticks back to back; a
// zero StartTime anchors the timeline at time.Now(). Tests pass a fixed
// anchor so expiration sweeps do not depend on the host clock.
func NewSimulator(cfg SimulationConfig, store *LedgerStore, pricing PricingTable, customer CustomerConfig, ticker TickSource) *Simulator {
	if ticker == nil {
		ticker = ImmediateTicker{}
	}
	if customer.BrowseAttempts <= 0 {
		customer.BrowseAttempts = 3
	}
	reorderQuantity := cfg.ReorderQuantity
	if reorderQuantity <= 0 {
		reorderQuantity = 10
	}
	start := cfg.StartTime
	if start.IsZero() {
		start = time.Now()
	}
	return &Simulator{
		Duration:        cfg.Duration,
		Store:           store,
		Pricing:         pricing,
		Customer:        customer,
		Metrics:         &Metrics{},
		rng:             NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		ticker:          ticker,
		start:           start,
		reorderQuantity: reorderQuantity,
	}
}

// NewStockedInventory builds an inventory whose opening stock is restocked in
// freshly minted batches dated now, so it participates in expiration tracking
// from the first tick.
func NewStockedInventory(initial map[string]int, now time.Time, shelfLifeDays int) *ExpiringInventory {
	if shelfLifeDays <= 0 {
		shelfLifeDays = DefaultShelfLifeDays
	}
	inv := NewExpiringInventory(nil)
	for item, qty := range initial {
		inv.Restock(item, qty, now, shelfLifeDays, uuid.NewString())
	}
	return inv
}

// now maps a tick index onto the simulation's wall-clock timeline.
func (s *Simulator) now(tick int) time.Time {
	return s.start.Add(time.Duration(tick) * time.Minute)
}

// Run executes the configured number of ticks, then prints the metrics and
// the final financial report.
func (s *Simulator) Run() {
	logrus.Info("=== Supermarket simulation starting ===")
	for tick := 1; tick <= s.Duration; tick++ {
		s.ticker.Wait()
		s.Clock = tick
		s.RunTick(tick)
	}
	logrus.Infof("[tick %03d] Simulation ended", s.Clock)
	s.Metrics.Print(s.Store.GenerateReport(), s.Store.OrderingCost, s.Store.SalaryExpense)
}

// RunTick advances the simulation by one minute: a customer arrives, browses
// and checks out; salaries accrue on their cadence; employees run a shift;
// expired stock is swept; anything under the low-stock threshold is
// reordered. A pricing lookup failure aborts only the operation that hit it.
func (s *Simulator) RunTick(tick int) {
	logrus.Infof("[tick %03d] --- Minute %d ---", tick, tick)
	s.Metrics.TicksRun++

	customer := s.spawnCustomer(tick)
	rng := s.rng.ForSubsystem(SubsystemCustomers)
	for i := 0; i < s.Customer.BrowseAttempts; i++ {
		added, err := customer.Browse(s.Store.Inventory.Inventory, s.Pricing, rng)
		if err != nil {
			logrus.Errorf("[tick %03d] browse: %v", tick, err)
			break
		}
		if !added {
			s.Metrics.SkippedBrowses++
		}
	}

	if _, err := s.Store.Checkout(customer, s.Pricing); err != nil {
		logrus.Errorf("[tick %03d] %v", tick, err)
		s.Metrics.CheckoutFailures++
	} else {
		s.Metrics.CustomersServed++
		for _, qty := range customer.Cart {
			s.Metrics.ItemsSold += qty
		}
	}

	s.Store.PaySalaries(tick)
	s.Store.StartShift()

	expired := s.Store.Inventory.SweepExpired(s.now(tick))
	s.Metrics.ExpiredItems += len(expired)

	if low := s.Store.Inventory.LowStockItems(); len(low) > 0 {
		order := make(Order, len(low))
		for _, item := range low {
			order[item] = s.reorderQuantity
		}
		if err := s.Store.PlaceOrder(order, s.Store.Supplier.Catalog); err != nil {
			logrus.Errorf("[tick %03d] %v", tick, err)
		} else {
			s.Metrics.OrdersPlaced++
		}
	}
}

// spawnCustomer creates the tick's shopper with the configured preferences
// and a fresh copy of the budget.
func (s *Simulator) spawnCustomer(tick int) *Customer {
	c := NewCustomer(fmt.Sprintf("Customer_%d", tick))
	policy := &ShoppingPolicy{Preferences: s.Customer.Preferences}
	if s.Customer.Budget.IsPositive() {
		budget := s.Customer.Budget
		policy.Budget = &budget
	}
	c.Policy = policy
	return c
}
