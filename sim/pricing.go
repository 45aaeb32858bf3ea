package sim

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnpriced reports an item referenced by a cart or order that is missing
// from the pricing table in effect. Pricing tables are fixed at construction
// time, so hitting this means the catalogs are out of sync, not that the
// simulation hit a transient condition.
var ErrUnpriced = errors.New("item has no price")

// PricingTable maps an item name to its unit price. Immutable for the run.
type PricingTable map[string]decimal.Decimal

// Price looks up the unit price for item, wrapping ErrUnpriced when absent.
func (p PricingTable) Price(item string) (decimal.Decimal, error) {
	price, ok := p[item]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%q: %w", item, ErrUnpriced)
	}
	return price, nil
}

// PromotionTable maps an item name to a per-unit discount amount.
type PromotionTable map[string]decimal.Decimal

// ApplyPromotions prices a cart: the sum of price times quantity over its
// items, minus discount times quantity for every promoted item present in the
// cart. Fails with ErrUnpriced if any cart item has no price.
func ApplyPromotions(cart Cart, promotions PromotionTable, pricing PricingTable) (decimal.Decimal, error) {
	total := decimal.Zero
	for item, qty := range cart {
		price, err := pricing.Price(item)
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(qty))))
	}
	for item, discount := range promotions {
		if qty, ok := cart[item]; ok {
			total = total.Sub(discount.Mul(decimal.NewFromInt(int64(qty))))
		}
	}
	return total, nil
}
