// Package calculator implements the split arithmetic shared by the live
// previews and the non-interactive split command.
//
// The equal-split formula here is a documented contract with the backend:
// both sides must agree bit-for-bit, since the wizard shows a preview
// before the backend confirms the final result.
package calculator

import (
	"fmt"

	"github.com/tabsplit/tabsplit/internal/models"
)

// EqualSplit is the computed breakdown of an even split.
type EqualSplit struct {
	Subtotal     float64
	Tax          float64
	TipAmount    float64
	Total        float64
	PeopleCount  int
	PerPerson    float64
	TaxPerPerson float64
	TipPerPerson float64
}

// ItemSplit is the computed breakdown of a per-item split.
type ItemSplit struct {
	Subtotal        float64
	Tax             float64
	TipAmount       float64
	Total           float64
	TaxPerPerson    float64
	TipPerPerson    float64
	PersonSubtotals []float64
	PersonTotals    []float64
}

// Subtotal sums the line totals of items.
func Subtotal(items []models.BillItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Total()
	}
	return sum
}

// TipAmount derives the absolute tip from a percentage of subtotal plus tax.
func TipAmount(subtotal, tax, tipPercent float64) float64 {
	return (subtotal + tax) * (tipPercent / 100)
}

// EqualPreview computes an even split of the bill across people.
//
//	tip       = (subtotal + tax) × tipPercent/100
//	total     = subtotal + tax + tip
//	perPerson = total / people
//
// people must be at least 1; callers must additionally require at least 2
// before submitting the split to the backend.
func EqualPreview(items []models.BillItem, tax, tipPercent float64, people int) (EqualSplit, error) {
	if people < 1 {
		return EqualSplit{}, fmt.Errorf("people count must be at least 1, got %d", people)
	}

	subtotal := Subtotal(items)
	tip := TipAmount(subtotal, tax, tipPercent)
	total := subtotal + tax + tip
	n := float64(people)

	return EqualSplit{
		Subtotal:     subtotal,
		Tax:          tax,
		TipAmount:    tip,
		Total:        total,
		PeopleCount:  people,
		PerPerson:    total / n,
		TaxPerPerson: tax / n,
		TipPerPerson: tip / n,
	}, nil
}

// ItemPreview computes a per-item split given an effective assignment
// matrix (rows are items, columns are people, entries are assigned units).
//
// Each item's line total is divided among its assignees in proportion to
// their assigned units, so a person holding 2 of 3 assigned units owes two
// thirds of the line. Assigned units need not sum to the item's quantity.
// Tax and tip are divided evenly per person.
//
// Every item must have at least one assigned unit; use HasUnassignedItems
// to gate before calling.
func ItemPreview(items []models.BillItem, tax, tipPercent float64, assignments [][]int, people int) (ItemSplit, error) {
	if people < 1 {
		return ItemSplit{}, fmt.Errorf("people count must be at least 1, got %d", people)
	}
	if len(assignments) != len(items) {
		return ItemSplit{}, fmt.Errorf("assignment rows (%d) do not match items (%d)", len(assignments), len(items))
	}

	subtotal := Subtotal(items)
	tip := TipAmount(subtotal, tax, tipPercent)
	n := float64(people)

	personSubtotals := make([]float64, people)
	for i, item := range items {
		row := assignments[i]
		if len(row) != people {
			return ItemSplit{}, fmt.Errorf("item %q has %d assignment columns, want %d", item.Name, len(row), people)
		}
		assigned := 0
		for _, units := range row {
			assigned += units
		}
		if assigned == 0 {
			return ItemSplit{}, fmt.Errorf("item %q has no one assigned", item.Name)
		}
		lineTotal := item.Total()
		for p, units := range row {
			if units > 0 {
				personSubtotals[p] += lineTotal * float64(units) / float64(assigned)
			}
		}
	}

	taxPP := tax / n
	tipPP := tip / n
	personTotals := make([]float64, people)
	var total float64
	for p, sub := range personSubtotals {
		personTotals[p] = sub + taxPP + tipPP
		total += personTotals[p]
	}

	return ItemSplit{
		Subtotal:        subtotal,
		Tax:             tax,
		TipAmount:       tip,
		Total:           total,
		TaxPerPerson:    taxPP,
		TipPerPerson:    tipPP,
		PersonSubtotals: personSubtotals,
		PersonTotals:    personTotals,
	}, nil
}
