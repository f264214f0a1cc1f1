package models

// SplitTypeEqual and SplitTypeItem name the two split strategies on the wire.
const (
	SplitTypeEqual = "equal"
	SplitTypeItem  = "item"
)

// EqualSplitRequest is the request body of the split-equal endpoint.
// Tip is the absolute tip amount, already derived from the tip percentage.
type EqualSplitRequest struct {
	Items       []BillItem `json:"items"`
	Tax         float64    `json:"tax"`
	Tip         float64    `json:"tip"`
	PeopleCount int        `json:"people_count"`
	SplitType   string     `json:"split_type"`
}

// ItemSplitRequest is the request body of the split-by-item endpoint.
// Assignments is the effective assignment matrix: for each item, the number
// of units assigned to each person. Rows are items, columns are people.
type ItemSplitRequest struct {
	Items       []BillItem `json:"items"`
	Tax         float64    `json:"tax"`
	Tip         float64    `json:"tip"`
	Assignments [][]int    `json:"assignments"`
}

// SplitResult is the backend's computed breakdown for either strategy.
// It is immutable once stored and replaced wholesale on recalculation.
//
// Equal splits populate Subtotal and PerPerson; item splits populate
// PersonSubtotals and PersonTotals. TaxPerPerson and TipPerPerson are
// always present.
type SplitResult struct {
	Subtotal        *float64  `json:"subtotal,omitempty"`
	Tax             float64   `json:"tax"`
	Tip             float64   `json:"tip"`
	Total           float64   `json:"total"`
	PerPerson       *float64  `json:"per_person,omitempty"`
	TaxPerPerson    float64   `json:"tax_per_person"`
	TipPerPerson    float64   `json:"tip_per_person"`
	PersonSubtotals []float64 `json:"person_subtotals,omitempty"`
	PersonTotals    []float64 `json:"person_totals,omitempty"`

	// PeopleNames carries the display labels the result should be
	// rendered with. It is attached client-side, never sent.
	PeopleNames []string `json:"people_names,omitempty"`
}

// IsItemSplit reports whether the result came from the item strategy.
func (r SplitResult) IsItemSplit() bool {
	return len(r.PersonSubtotals) > 0 || len(r.PersonTotals) > 0
}
