// Implements the stock ledger of the store: plain quantity tracking plus
// per-item expiration records layered on top.

package sim

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// LowStockThreshold is the quantity below which an item is flagged for reorder.
const LowStockThreshold = 5

// DefaultShelfLifeDays is the shelf life recorded for a restock when the
// caller has no better information.
const DefaultShelfLifeDays = 30

// Inventory maps item names to on-hand quantities. Every stock change in the
// simulation funnels through Update; nothing else mutates the map.
type Inventory struct {
	stock map[string]int
}

// NewInventory creates an Inventory seeded with the given stock levels.
// A nil map yields an empty inventory.
func NewInventory(initial map[string]int) *Inventory {
	stock := make(map[string]int, len(initial))
	for item, qty := range initial {
		stock[item] = qty
	}
	return &Inventory{stock: stock}
}

// Update adds delta (possibly negative) to the item's quantity, creating the
// entry at delta if absent. Quantities are not clamped at zero: a negative
// value reads as a backorder and is corrected by the next reorder pass.
func (inv *Inventory) Update(item string, delta int) {
	inv.stock[item] += delta
}

// Quantity returns the on-hand count for item, 0 if untracked.
func (inv *Inventory) Quantity(item string) int {
	return inv.stock[item]
}

// Len returns the number of tracked items.
func (inv *Inventory) Len() int {
	return len(inv.stock)
}

// Items returns the tracked item names in sorted order.
func (inv *Inventory) Items() []string {
	items := make([]string, 0, len(inv.stock))
	for item := range inv.stock {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// LowStockItems returns, in sorted order, every item whose quantity is
// strictly below LowStockThreshold.
func (inv *Inventory) LowStockItems() []string {
	var low []string
	for item, qty := range inv.stock {
		if qty < LowStockThreshold {
			low = append(low, item)
		}
	}
	sort.Strings(low)
	return low
}

// batchRecord ties an expiration deadline to the batch that introduced it.
type batchRecord struct {
	expiresAt time.Time
	batch     string
}

// ExpiringInventory composes an Inventory with per-item expiration records.
// Only one record is kept per item: restocking before the old batch expires
// overwrites the record, so there is no multi-batch FIFO.
type ExpiringInventory struct {
	*Inventory
	records map[string]batchRecord
}

// NewExpiringInventory creates an ExpiringInventory with the given starting
// stock and no expiration records.
func NewExpiringInventory(initial map[string]int) *ExpiringInventory {
	return &ExpiringInventory{
		Inventory: NewInventory(initial),
		records:   make(map[string]batchRecord),
	}
}

// Restock credits quantity units of item and records its expiration
// shelfLifeDays after now. A non-empty batch id is recorded alongside; an
// empty one keeps the batch id already on record.
func (ei *ExpiringInventory) Restock(item string, quantity int, now time.Time, shelfLifeDays int, batch string) {
	ei.Update(item, quantity)
	if batch == "" {
		batch = ei.records[item].batch
	}
	ei.records[item] = batchRecord{
		expiresAt: now.AddDate(0, 0, shelfLifeDays),
		batch:     batch,
	}
}

// ExpiresAt reports the recorded expiration for item, if any.
func (ei *ExpiringInventory) ExpiresAt(item string) (time.Time, bool) {
	rec, ok := ei.records[item]
	return rec.expiresAt, ok
}

// SweepExpired zeroes the stock of every item whose recorded expiration is at
// or before now, then drops the record so the same batch is not swept twice.
// Other items' stock and records are untouched. Returns the swept item names
// in sorted order.
func (ei *ExpiringInventory) SweepExpired(now time.Time) []string {
	var expired []string
	for item, rec := range ei.records {
		if !rec.expiresAt.After(now) {
			expired = append(expired, item)
		}
	}
	sort.Strings(expired)
	for _, item := range expired {
		rec := ei.records[item]
		ei.Update(item, -ei.Quantity(item))
		delete(ei.records, item)
		if rec.batch != "" {
			logrus.Infof("Inventory: %s (batch %s) has expired, removing remaining stock", item, rec.batch)
		} else {
			logrus.Infof("Inventory: %s has expired, removing remaining stock", item)
		}
	}
	return expired
}
