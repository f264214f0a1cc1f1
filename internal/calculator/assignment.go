package calculator

import "github.com/tabsplit/tabsplit/internal/models"

// Assignments tracks who is taking which items. Each item carries a
// whole-item flag per person and, for items with quantity above 1, an
// optional expanded per-unit grid. Assignments is a value: every toggle
// returns a modified copy.
type Assignments struct {
	People int
	Items  []ItemAssignment
}

// ItemAssignment is the assignment state for a single bill item.
type ItemAssignment struct {
	Quantity int

	// Whole marks, per person, that the whole item is assigned to them.
	Whole []bool

	// Expanded switches the item to per-unit assignment. While expanded,
	// Whole is ignored; on collapse it is re-derived from Units so no
	// stale whole-item state survives.
	Expanded bool

	// Units is the per-unit grid, Units[unit][person]. Allocated lazily
	// for items with Quantity > 1.
	Units [][]bool
}

// NewAssignments returns an empty assignment state for the given items and
// person count.
func NewAssignments(items []models.BillItem, people int) Assignments {
	if people < 0 {
		people = 0
	}
	a := Assignments{People: people, Items: make([]ItemAssignment, len(items))}
	for i, item := range items {
		a.Items[i] = newItemAssignment(item.Quantity, people)
	}
	return a
}

func newItemAssignment(quantity, people int) ItemAssignment {
	ia := ItemAssignment{Quantity: quantity, Whole: make([]bool, people)}
	if quantity > 1 {
		ia.Units = make([][]bool, quantity)
		for u := range ia.Units {
			ia.Units[u] = make([]bool, people)
		}
	}
	return ia
}

// Resize rebuilds the assignment state for a new person count, preserving
// whole-item flags for people that still exist. Per-unit grids are reset,
// matching the wizard's behavior of reinitializing sub-item state when the
// table shape changes.
func (a Assignments) Resize(items []models.BillItem, people int) Assignments {
	out := NewAssignments(items, people)
	for i := range out.Items {
		if i >= len(a.Items) {
			break
		}
		for p := 0; p < people && p < len(a.Items[i].Whole); p++ {
			out.Items[i].Whole[p] = a.Items[i].Whole[p]
		}
	}
	return out
}

// ToggleWhole flips the whole-item flag for person on item. Toggling is
// ignored while the item is expanded. Out-of-range indices are a no-op.
func (a Assignments) ToggleWhole(item, person int) Assignments {
	if item < 0 || item >= len(a.Items) || person < 0 || person >= a.People {
		return a
	}
	if a.Items[item].Expanded {
		return a
	}
	out := a.clone()
	out.Items[item].Whole[person] = !out.Items[item].Whole[person]
	return out
}

// ToggleUnit flips the per-unit flag for person on the given unit of item.
// It only applies while the item is expanded.
func (a Assignments) ToggleUnit(item, unit, person int) Assignments {
	if item < 0 || item >= len(a.Items) || person < 0 || person >= a.People {
		return a
	}
	ia := a.Items[item]
	if !ia.Expanded || unit < 0 || unit >= len(ia.Units) {
		return a
	}
	out := a.clone()
	out.Items[item].Units[unit][person] = !out.Items[item].Units[unit][person]
	return out
}

// ToggleExpanded switches an item between whole-item and per-unit modes.
// Only items with quantity above 1 can expand. Collapsing derives the
// whole-item flags from the per-unit grid: a person keeps the item marked
// iff they hold at least one unit.
func (a Assignments) ToggleExpanded(item int) Assignments {
	if item < 0 || item >= len(a.Items) || a.Items[item].Quantity <= 1 {
		return a
	}
	out := a.clone()
	ia := &out.Items[item]
	if ia.Expanded {
		for p := 0; p < out.People; p++ {
			ia.Whole[p] = false
			for _, unit := range ia.Units {
				if unit[p] {
					ia.Whole[p] = true
					break
				}
			}
		}
	}
	ia.Expanded = !ia.Expanded
	return out
}

// Effective resolves both assignment modes into the unit-count matrix sent
// to the backend: for each item, the number of units assigned to each
// person. Expanded items count their per-unit flags; collapsed items give
// the full quantity to every person marked on the whole item.
func (a Assignments) Effective() [][]int {
	eff := make([][]int, len(a.Items))
	for i, ia := range a.Items {
		row := make([]int, a.People)
		if ia.Expanded && ia.Quantity > 1 {
			for _, unit := range ia.Units {
				for p, assigned := range unit {
					if assigned {
						row[p]++
					}
				}
			}
		} else {
			for p, assigned := range ia.Whole {
				if assigned {
					row[p] = ia.Quantity
				}
			}
		}
		eff[i] = row
	}
	return eff
}

// HasUnassignedItems reports whether any item has zero effective assigned
// units across all people. A partially assigned expanded item (some units
// unclaimed) still passes: any nonzero assignment satisfies the gate.
func (a Assignments) HasUnassignedItems() bool {
	for _, row := range a.Effective() {
		total := 0
		for _, units := range row {
			total += units
		}
		if total == 0 {
			return true
		}
	}
	return false
}

// ItemAssigned reports whether the item at index has any effective
// assignment, for row-level warnings in the assignment table.
func (a Assignments) ItemAssigned(item int) bool {
	if item < 0 || item >= len(a.Items) {
		return false
	}
	for _, units := range a.Effective()[item] {
		if units > 0 {
			return true
		}
	}
	return false
}

func (a Assignments) clone() Assignments {
	out := Assignments{People: a.People, Items: make([]ItemAssignment, len(a.Items))}
	for i, ia := range a.Items {
		c := ItemAssignment{
			Quantity: ia.Quantity,
			Expanded: ia.Expanded,
			Whole:    append([]bool(nil), ia.Whole...),
		}
		if ia.Units != nil {
			c.Units = make([][]bool, len(ia.Units))
			for u := range ia.Units {
				c.Units[u] = append([]bool(nil), ia.Units[u]...)
			}
		}
		out.Items[i] = c
	}
	return out
}
