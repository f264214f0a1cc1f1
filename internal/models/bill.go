package models

import "fmt"

// BillItem represents a single line item on a bill.
type BillItem struct {
	// Name is the item's description as printed on the receipt.
	Name string `json:"name"`

	// Price is the unit price, not the line total.
	Price float64 `json:"price"`

	// Quantity is how many units of the item were ordered.
	Quantity int `json:"quantity"`
}

// Total returns the line total (unit price times quantity).
func (it BillItem) Total() float64 {
	return it.Price * float64(it.Quantity)
}

// Valid reports whether the item can take part in a split:
// it must have a name and a positive unit price.
func (it BillItem) Valid() bool {
	return it.Name != "" && it.Price > 0
}

// ParsedBill is the response body of the parse-bill endpoint.
// Tax is nil when the receipt showed no tax line.
type ParsedBill struct {
	Items []BillItem `json:"items"`
	Tax   *float64   `json:"tax,omitempty"`
}

// DefaultPeopleNames returns the default display labels
// "Person 1" .. "Person n".
func DefaultPeopleNames(n int) []string {
	if n <= 0 {
		return nil
	}
	names := make([]string, n)
	for i := range names {
		names[i] = DefaultPersonName(i)
	}
	return names
}

// DefaultPersonName returns the default label for the person at index i.
func DefaultPersonName(i int) string {
	return fmt.Sprintf("Person %d", i+1)
}
