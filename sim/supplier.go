package sim

import (
	"github.com/sirupsen/logrus"
)

// Order maps an item name to the quantity requested from a supplier.
type Order map[string]int

// Supplier holds the catalog of items it can provide, with the supplier-side
// unit cost for each, plus a nominal delivery lead time in days. The lead time
// is part of the entity but the core logic delivers immediately.
type Supplier struct {
	Name         string
	Catalog      PricingTable
	LeadTimeDays int
}

// NewSupplier creates a Supplier with the given catalog.
func NewSupplier(name string, catalog PricingTable, leadTimeDays int) *Supplier {
	return &Supplier{Name: name, Catalog: catalog, LeadTimeDays: leadTimeDays}
}

// Deliver credits every catalogued item of the order into inv via Update.
// Items outside the catalog are dropped without error; the delivery notice
// still lists the order as requested.
func (s *Supplier) Deliver(order Order, inv *Inventory) {
	for item, qty := range order {
		if _, ok := s.Catalog[item]; ok {
			inv.Update(item, qty)
		}
	}
	logrus.Infof("Supplier %s: order has arrived (lead time %dd): %v", s.Name, s.LeadTimeDays, order)
}
