package sim

import "github.com/shopspring/decimal"

// Ledger accumulates the store's cash flow. Net profit is not maintained
// incrementally; Snapshot derives it from the totals at generation time.
type Ledger struct {
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
}

// AddRevenue credits amount to total revenue.
func (l *Ledger) AddRevenue(amount decimal.Decimal) {
	l.Revenue = l.Revenue.Add(amount)
}

// AddExpense debits amount against the store as an expense.
func (l *Ledger) AddExpense(amount decimal.Decimal) {
	l.Expenses = l.Expenses.Add(amount)
}

// Report is a point-in-time financial snapshot.
type Report struct {
	Revenue   decimal.Decimal
	Expenses  decimal.Decimal
	NetProfit decimal.Decimal
}

// Snapshot derives the report, recomputing net profit as revenue minus
// expenses. Calling it twice without intervening mutation yields identical
// reports.
func (l *Ledger) Snapshot() Report {
	return Report{
		Revenue:   l.Revenue,
		Expenses:  l.Expenses,
		NetProfit: l.Revenue.Sub(l.Expenses),
	}
}
