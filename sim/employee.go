package sim

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// shelfRestockQuantity is how many units a stock clerk adds to every tracked
// item during a shift.
const shelfRestockQuantity = 10

// Role selects one of the fixed employee shift behaviors.
type Role int

const (
	RoleUnknown Role = iota
	RoleCashier
	RoleStockClerk
	RoleManager
)

// ParseRole maps a role tag from configuration onto its variant.
// Unrecognized tags map to RoleUnknown, which dispatch treats as a warn-only
// no-op rather than an error.
func ParseRole(tag string) Role {
	switch strings.ToLower(tag) {
	case "cashier":
		return RoleCashier
	case "stock_clerk", "stock-clerk":
		return RoleStockClerk
	case "manager":
		return RoleManager
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	switch r {
	case RoleCashier:
		return "cashier"
	case RoleStockClerk:
		return "stock_clerk"
	case RoleManager:
		return "manager"
	default:
		return "unknown"
	}
}

// Employee is a named actor whose role decides its single action per shift.
// Employees carry no state across ticks beyond identity.
type Employee struct {
	Name string
	Role Role
	Tag  string // the role string as configured, kept for unknown-role warnings
}

// NewEmployee creates an Employee, parsing the configured role tag.
func NewEmployee(name, tag string) *Employee {
	return &Employee{Name: name, Role: ParseRole(tag), Tag: tag}
}

// PerformRole runs the employee's shift action against the store's inventory:
//   - cashier: greeting only, a placeholder for future checkout assistance
//   - stock clerk: +shelfRestockQuantity to every tracked item
//   - manager: warns about low-stock items; reordering is the store's job
//   - unknown: warns and does nothing
func (e *Employee) PerformRole(inv *Inventory) {
	switch e.Role {
	case RoleCashier:
		logrus.Infof("%s, your friendly cashier, is at the register", e.Name)
	case RoleStockClerk:
		logrus.Infof("%s is restocking the shelves", e.Name)
		for _, item := range inv.Items() {
			inv.Update(item, shelfRestockQuantity)
		}
	case RoleManager:
		if low := inv.LowStockItems(); len(low) > 0 {
			logrus.Warnf("%s (manager): low stock on %v", e.Name, low)
		}
	default:
		logrus.Warnf("%s: not sure what to do with role %q, skipping shift action", e.Name, e.Tag)
	}
}
