package calculator

import (
	"math"
	"testing"

	"github.com/tabsplit/tabsplit/internal/models"
)

func burgerSoda() []models.BillItem {
	return []models.BillItem{
		{Name: "Burger", Price: 10.00, Quantity: 2},
		{Name: "Soda", Price: 2.50, Quantity: 1},
	}
}

func TestEqualPreview(t *testing.T) {
	tests := []struct {
		name       string
		items      []models.BillItem
		tax        float64
		tipPercent float64
		people     int
		wantErr    bool
		validate   func(t *testing.T, got EqualSplit)
	}{
		{
			name:       "burger and soda, 18 percent tip, two people",
			items:      burgerSoda(),
			tax:        1.50,
			tipPercent: 18,
			people:     2,
			validate: func(t *testing.T, got EqualSplit) {
				// subtotal 22.50, tip 18% of 24.00 = 4.32, total 28.32
				if math.Abs(got.Subtotal-22.50) > 0.001 {
					t.Errorf("Subtotal = %v, want 22.50", got.Subtotal)
				}
				if math.Abs(got.TipAmount-4.32) > 0.001 {
					t.Errorf("TipAmount = %v, want 4.32", got.TipAmount)
				}
				if math.Abs(got.Total-28.32) > 0.001 {
					t.Errorf("Total = %v, want 28.32", got.Total)
				}
				if math.Abs(got.PerPerson-14.16) > 0.001 {
					t.Errorf("PerPerson = %v, want 14.16", got.PerPerson)
				}
				if math.Abs(got.TaxPerPerson-0.75) > 0.001 {
					t.Errorf("TaxPerPerson = %v, want 0.75", got.TaxPerPerson)
				}
				if math.Abs(got.TipPerPerson-2.16) > 0.001 {
					t.Errorf("TipPerPerson = %v, want 2.16", got.TipPerPerson)
				}
			},
		},
		{
			name:       "zero tip",
			items:      burgerSoda(),
			tax:        0,
			tipPercent: 0,
			people:     3,
			validate: func(t *testing.T, got EqualSplit) {
				if math.Abs(got.Total-22.50) > 0.001 {
					t.Errorf("Total = %v, want 22.50", got.Total)
				}
				if math.Abs(got.PerPerson-7.50) > 0.001 {
					t.Errorf("PerPerson = %v, want 7.50", got.PerPerson)
				}
			},
		},
		{
			name:       "single person preview is allowed",
			items:      burgerSoda(),
			tax:        1.50,
			tipPercent: 18,
			people:     1,
			validate: func(t *testing.T, got EqualSplit) {
				if math.Abs(got.PerPerson-got.Total) > 0.001 {
					t.Errorf("PerPerson = %v, want Total %v", got.PerPerson, got.Total)
				}
			},
		},
		{
			name:    "zero people should error",
			items:   burgerSoda(),
			people:  0,
			wantErr: true,
		},
		{
			name:       "empty items",
			items:      nil,
			tax:        2,
			tipPercent: 10,
			people:     2,
			validate: func(t *testing.T, got EqualSplit) {
				// tip = (0 + 2) * 0.10 = 0.20, total = 2.20
				if math.Abs(got.Total-2.20) > 0.001 {
					t.Errorf("Total = %v, want 2.20", got.Total)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EqualPreview(tt.items, tt.tax, tt.tipPercent, tt.people)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EqualPreview() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestEqualPreviewReconstructsTotal(t *testing.T) {
	for people := 2; people <= 9; people++ {
		got, err := EqualPreview(burgerSoda(), 1.50, 18, people)
		if err != nil {
			t.Fatalf("people=%d: %v", people, err)
		}
		if math.Abs(got.PerPerson*float64(people)-got.Total) > 0.001 {
			t.Errorf("people=%d: perPerson×n = %v, want total %v",
				people, got.PerPerson*float64(people), got.Total)
		}
		if math.Abs(got.Total-(got.Subtotal+got.Tax+got.TipAmount)) > 0.001 {
			t.Errorf("people=%d: total = %v, want subtotal+tax+tip %v",
				people, got.Total, got.Subtotal+got.Tax+got.TipAmount)
		}
	}
}

func TestItemPreview(t *testing.T) {
	tests := []struct {
		name        string
		items       []models.BillItem
		tax         float64
		tipPercent  float64
		assignments [][]int
		people      int
		wantErr     bool
		validate    func(t *testing.T, got ItemSplit)
	}{
		{
			name:        "burger to A, soda to B",
			items:       burgerSoda(),
			tax:         1.50,
			tipPercent:  0,
			assignments: [][]int{{2, 0}, {0, 1}},
			people:      2,
			validate: func(t *testing.T, got ItemSplit) {
				if math.Abs(got.PersonSubtotals[0]-20.00) > 0.001 {
					t.Errorf("person A subtotal = %v, want 20.00", got.PersonSubtotals[0])
				}
				if math.Abs(got.PersonSubtotals[1]-2.50) > 0.001 {
					t.Errorf("person B subtotal = %v, want 2.50", got.PersonSubtotals[1])
				}
				// Tax splits evenly.
				if math.Abs(got.PersonTotals[0]-20.75) > 0.001 {
					t.Errorf("person A total = %v, want 20.75", got.PersonTotals[0])
				}
				if math.Abs(got.PersonTotals[1]-3.25) > 0.001 {
					t.Errorf("person B total = %v, want 3.25", got.PersonTotals[1])
				}
			},
		},
		{
			name:        "shared item splits by unit share",
			items:       []models.BillItem{{Name: "Pitcher", Price: 12.00, Quantity: 3}},
			assignments: [][]int{{2, 1}},
			people:      2,
			validate: func(t *testing.T, got ItemSplit) {
				// 36.00 line total, 2 of 3 units to A, 1 of 3 to B.
				if math.Abs(got.PersonSubtotals[0]-24.00) > 0.001 {
					t.Errorf("person A subtotal = %v, want 24.00", got.PersonSubtotals[0])
				}
				if math.Abs(got.PersonSubtotals[1]-12.00) > 0.001 {
					t.Errorf("person B subtotal = %v, want 12.00", got.PersonSubtotals[1])
				}
			},
		},
		{
			name:        "under-assignment is permitted",
			items:       []models.BillItem{{Name: "Dumplings", Price: 2.00, Quantity: 6}},
			assignments: [][]int{{3, 1}},
			people:      2,
			validate: func(t *testing.T, got ItemSplit) {
				// 12.00 line total apportioned across the 4 assigned units.
				if math.Abs(got.PersonSubtotals[0]-9.00) > 0.001 {
					t.Errorf("person A subtotal = %v, want 9.00", got.PersonSubtotals[0])
				}
				if math.Abs(got.PersonSubtotals[1]-3.00) > 0.001 {
					t.Errorf("person B subtotal = %v, want 3.00", got.PersonSubtotals[1])
				}
			},
		},
		{
			name:        "unassigned item should error",
			items:       burgerSoda(),
			assignments: [][]int{{1, 1}, {0, 0}},
			people:      2,
			wantErr:     true,
		},
		{
			name:        "row width mismatch should error",
			items:       burgerSoda(),
			assignments: [][]int{{1}, {1}},
			people:      2,
			wantErr:     true,
		},
		{
			name:        "row count mismatch should error",
			items:       burgerSoda(),
			assignments: [][]int{{1, 1}},
			people:      2,
			wantErr:     true,
		},
		{
			name:        "zero people should error",
			items:       burgerSoda(),
			assignments: [][]int{{1}, {1}},
			people:      0,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ItemPreview(tt.items, tt.tax, tt.tipPercent, tt.assignments, tt.people)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ItemPreview() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestItemPreviewConservesSubtotal(t *testing.T) {
	items := []models.BillItem{
		{Name: "Burger", Price: 10.00, Quantity: 2},
		{Name: "Soda", Price: 2.50, Quantity: 1},
		{Name: "Wings", Price: 8.75, Quantity: 3},
	}
	assignments := [][]int{{1, 1, 0}, {0, 0, 1}, {2, 0, 1}}

	got, err := ItemPreview(items, 2.10, 15, assignments, 3)
	if err != nil {
		t.Fatal(err)
	}

	var sum float64
	for _, s := range got.PersonSubtotals {
		sum += s
	}
	if math.Abs(sum-got.Subtotal) > 0.001 {
		t.Errorf("sum of person subtotals = %v, want subtotal %v", sum, got.Subtotal)
	}

	var totalSum float64
	for _, s := range got.PersonTotals {
		totalSum += s
	}
	if math.Abs(totalSum-got.Total) > 0.001 {
		t.Errorf("sum of person totals = %v, want total %v", totalSum, got.Total)
	}
	if math.Abs(got.Total-(got.Subtotal+got.Tax+got.TipAmount)) > 0.001 {
		t.Errorf("total = %v, want subtotal+tax+tip %v", got.Total, got.Subtotal+got.Tax+got.TipAmount)
	}
}

func TestSubtotalAgreesAcrossPreviews(t *testing.T) {
	items := burgerSoda()
	want := Subtotal(items)

	eq, err := EqualPreview(items, 1.50, 18, 2)
	if err != nil {
		t.Fatal(err)
	}
	it, err := ItemPreview(items, 1.50, 18, [][]int{{2, 0}, {0, 1}}, 2)
	if err != nil {
		t.Fatal(err)
	}

	if eq.Subtotal != want || it.Subtotal != want {
		t.Errorf("subtotals diverge: ledger %v, equal %v, item %v", want, eq.Subtotal, it.Subtotal)
	}
}
