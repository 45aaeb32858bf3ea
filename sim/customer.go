// Implements customers and their browsing behavior. A bare Customer only
// accumulates a cart; preference- and budget-aware browsing is an optional
// ShoppingPolicy attached to it.

package sim

import (
	"math/rand"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Cart maps an item name to the quantity the customer intends to buy.
// A cart is owned by exactly one customer and is read, not cleared, at
// checkout.
type Cart map[string]int

// ShoppingPolicy steers what a customer picks up: preferred items win over the
// rest of the shelf, and an optional budget caps total spend. Budget is drawn
// down as items are added; a nil Budget means unlimited.
type ShoppingPolicy struct {
	Preferences []string
	Budget      *decimal.Decimal
}

// Customer is a named shopper with a cart. Policy may be nil, in which case
// browsing picks from the whole shelf with no budget check.
type Customer struct {
	Name   string
	Cart   Cart
	Policy *ShoppingPolicy
}

// NewCustomer creates a Customer with an empty cart and no policy.
func NewCustomer(name string) *Customer {
	return &Customer{Name: name, Cart: make(Cart)}
}

// AddToCart increments the cart entry for item, creating it if absent.
func (c *Customer) AddToCart(item string, quantity int) {
	c.Cart[item] += quantity
}

// candidateItems narrows the shelf to the customer's preferred items, falling
// back to the full shelf when no preferred item is stocked.
func (c *Customer) candidateItems(inv *Inventory) []string {
	items := inv.Items()
	if c.Policy == nil || len(c.Policy.Preferences) == 0 {
		return items
	}
	stocked := make(map[string]bool, len(items))
	for _, item := range items {
		stocked[item] = true
	}
	var preferred []string
	for _, item := range c.Policy.Preferences {
		if stocked[item] {
			preferred = append(preferred, item)
		}
	}
	if len(preferred) == 0 {
		return items
	}
	return preferred
}

// Browse performs one attempted addition to the cart: a candidate item is
// picked uniformly at random and a quantity uniformly in [1,3]. With a budget,
// the pick's cost is checked first; an unaffordable pick is skipped, leaving
// cart and budget unchanged. Returns whether an item was added. Fails with
// ErrUnpriced when a budgeted pick has no price.
func (c *Customer) Browse(inv *Inventory, pricing PricingTable, rng *rand.Rand) (bool, error) {
	candidates := c.candidateItems(inv)
	if len(candidates) == 0 {
		return false, nil
	}
	item := candidates[rng.Intn(len(candidates))]
	quantity := 1 + rng.Intn(3)

	if c.Policy == nil || c.Policy.Budget == nil {
		c.AddToCart(item, quantity)
		return true, nil
	}

	price, err := pricing.Price(item)
	if err != nil {
		return false, err
	}
	cost := price.Mul(decimal.NewFromInt(int64(quantity)))
	if cost.GreaterThan(*c.Policy.Budget) {
		logrus.Infof("%s: can't afford %dx %s, skipping it", c.Name, quantity, item)
		return false, nil
	}
	c.AddToCart(item, quantity)
	remaining := c.Policy.Budget.Sub(cost)
	c.Policy.Budget = &remaining
	return true, nil
}
