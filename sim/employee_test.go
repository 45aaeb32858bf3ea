package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		tag  string
		want Role
	}{
		{"cashier", RoleCashier},
		{"Cashier", RoleCashier},
		{"stock_clerk", RoleStockClerk},
		{"stock-clerk", RoleStockClerk},
		{"manager", RoleManager},
		{"Manager", RoleManager},
		{"janitor", RoleUnknown},
		{"", RoleUnknown},
	}
	for _, tc := range cases {
		if got := ParseRole(tc.tag); got != tc.want {
			t.Errorf("ParseRole(%q): got %v, want %v", tc.tag, got, tc.want)
		}
	}
}

func TestEmployee_PerformRole_StockClerkRestocksEverything(t *testing.T) {
	// GIVEN a stock clerk and a tracked shelf
	clerk := NewEmployee("Bob", "stock_clerk")
	inv := NewInventory(map[string]int{"Apple": 3, "Milk": 0})

	// WHEN the clerk's shift action runs
	clerk.PerformRole(inv)

	// THEN every tracked item gains the shelf restock quantity
	assert.Equal(t, 13, inv.Quantity("Apple"))
	assert.Equal(t, 10, inv.Quantity("Milk"))
}

func TestEmployee_PerformRole_CashierAndManagerDoNotTouchStock(t *testing.T) {
	// GIVEN a cashier, a manager, and a low-stock shelf
	inv := NewInventory(map[string]int{"Apple": 1})

	// WHEN their shift actions run
	NewEmployee("Alice", "cashier").PerformRole(inv)
	NewEmployee("Eve", "manager").PerformRole(inv)

	// THEN stock is unchanged (the manager only warns; ordering is the
	// store's responsibility)
	assert.Equal(t, 1, inv.Quantity("Apple"))
}

func TestEmployee_PerformRole_UnknownRoleIsWarnOnlyNoOp(t *testing.T) {
	// GIVEN an employee with an unrecognized role tag
	e := NewEmployee("Zed", "janitor")
	inv := NewInventory(map[string]int{"Apple": 3})

	// WHEN the shift action runs
	e.PerformRole(inv)

	// THEN nothing happens and nothing panics
	assert.Equal(t, RoleUnknown, e.Role)
	assert.Equal(t, 3, inv.Quantity("Apple"))
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "cashier", RoleCashier.String())
	assert.Equal(t, "stock_clerk", RoleStockClerk.String())
	assert.Equal(t, "manager", RoleManager.String())
	assert.Equal(t, "unknown", RoleUnknown.String())
}
