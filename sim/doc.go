// Package sim provides the discrete-time supermarket simulation core.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - inventory.go: stock levels, expiration records, and the single Update mutation point
//   - store.go: the Store / ManagedStore / LedgerStore composition and checkout pricing
//   - simulator.go: the per-minute tick loop
//
// # Architecture
//
// One tick is one simulated minute. Each tick runs, in fixed order: customer
// arrival and browsing, checkout, salary accrual (every 5th tick), the
// employee shift, the expiration sweep, and low-stock reordering. All stock
// mutation funnels through Inventory.Update; all money is decimal.Decimal.
//
// The loop is strictly sequential. Pacing is injected via TickSource
// (ticker.go) so the core is testable without real delay, and randomness via
// PartitionedRNG (rng.go) so equal seeds reproduce equal runs.
package sim
