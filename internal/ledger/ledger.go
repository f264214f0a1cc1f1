// Package ledger holds the editable working set of bill items plus tax.
//
// A Ledger is a value: every edit returns a new Ledger with a copied item
// slice, so a wizard state holding a Ledger can be reduced purely. Item
// order is display order only and never affects totals.
package ledger

import (
	"github.com/tabsplit/tabsplit/internal/models"
	"github.com/tabsplit/tabsplit/internal/numeric"
)

// Field names an editable BillItem field.
type Field string

const (
	FieldName     Field = "name"
	FieldPrice    Field = "price"
	FieldQuantity Field = "quantity"
)

// Ledger is the editable list of bill items and the tax amount.
type Ledger struct {
	Items []models.BillItem
	Tax   float64
}

// New returns a ledger over the given items and tax.
func New(items []models.BillItem, tax float64) Ledger {
	return Ledger{Items: append([]models.BillItem(nil), items...), Tax: tax}
}

// AddItem appends a blank item (empty name, zero price, quantity 1).
func (l Ledger) AddItem() Ledger {
	out := l.clone()
	out.Items = append(out.Items, models.BillItem{Quantity: 1})
	return out
}

// UpdateItem replaces the item at index with a copy having field set from
// raw input. Price and quantity are parsed as numbers; malformed or empty
// input coerces to zero. Out-of-bounds indices are a no-op.
func (l Ledger) UpdateItem(index int, field Field, raw string) Ledger {
	if index < 0 || index >= len(l.Items) {
		return l
	}
	out := l.clone()
	item := out.Items[index]
	switch field {
	case FieldName:
		item.Name = raw
	case FieldPrice:
		item.Price = numeric.ParseAmount(raw).Or(0)
	case FieldQuantity:
		item.Quantity = numeric.ParseCount(raw).Or(0)
	default:
		return l
	}
	out.Items[index] = item
	return out
}

// RemoveItem drops the item at index; higher indices shift down.
// Out-of-bounds indices are a no-op.
func (l Ledger) RemoveItem(index int) Ledger {
	if index < 0 || index >= len(l.Items) {
		return l
	}
	out := l.clone()
	out.Items = append(out.Items[:index], out.Items[index+1:]...)
	return out
}

// WithTax returns the ledger with tax set from raw input; malformed or
// empty input coerces to zero.
func (l Ledger) WithTax(raw string) Ledger {
	out := l.clone()
	out.Tax = numeric.ParseAmount(raw).Or(0)
	return out
}

// Subtotal is the sum of line totals, recomputed on every call.
func (l Ledger) Subtotal() float64 {
	var sum float64
	for _, it := range l.Items {
		sum += it.Total()
	}
	return sum
}

// Valid reports whether the ledger may proceed to split selection:
// it is non-empty and every item has a name and a positive price.
func (l Ledger) Valid() bool {
	if len(l.Items) == 0 {
		return false
	}
	for _, it := range l.Items {
		if !it.Valid() {
			return false
		}
	}
	return true
}

func (l Ledger) clone() Ledger {
	return Ledger{Items: append([]models.BillItem(nil), l.Items...), Tax: l.Tax}
}

// Snapshot is a frozen copy of a ledger, captured once at the input-to-items
// transition to support reset-to-original.
type Snapshot struct {
	items []models.BillItem
	tax   float64
}

// Snapshot freezes the ledger's current items and tax.
func (l Ledger) Snapshot() Snapshot {
	return Snapshot{items: append([]models.BillItem(nil), l.Items...), tax: l.Tax}
}

// Restore returns a fresh ledger holding the snapshot's items and tax.
func (s Snapshot) Restore() Ledger {
	return New(s.items, s.tax)
}
