// Package export renders a computed split as a one-page PDF receipt.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/tabsplit/tabsplit/internal/models"
)

// PDF writes a breakdown of result to w. The layout adapts to the
// strategy: equal splits get the flat per-person line, item splits get a
// row per person.
func PDF(w io.Writer, result models.SplitResult) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Bill Split")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.Cell(0, 6, time.Now().Format("January 2, 2006 15:04"))
	pdf.Ln(12)
	pdf.SetTextColor(0, 0, 0)

	line := func(label string, amount float64) {
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(90, 7, label)
		pdf.CellFormat(40, 7, fmt.Sprintf("$%.2f", amount), "", 1, "R", false, 0, "")
	}

	if result.Subtotal != nil {
		line("Subtotal", *result.Subtotal)
	}
	line("Tax", result.Tax)
	line("Tip", result.Tip)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(90, 7, "Total")
	pdf.CellFormat(40, 7, fmt.Sprintf("$%.2f", result.Total), "T", 1, "R", false, 0, "")
	pdf.Ln(8)

	if result.IsItemSplit() {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Per person")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(50, 7, "Name")
		pdf.CellFormat(30, 7, "Items", "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, "Tax", "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, "Tip", "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, "Owes", "", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for i, sub := range result.PersonSubtotals {
			name := models.DefaultPersonName(i)
			if i < len(result.PeopleNames) {
				name = result.PeopleNames[i]
			}
			total := sub + result.TaxPerPerson + result.TipPerPerson
			if i < len(result.PersonTotals) {
				total = result.PersonTotals[i]
			}
			pdf.Cell(50, 7, name)
			pdf.CellFormat(30, 7, fmt.Sprintf("$%.2f", sub), "", 0, "R", false, 0, "")
			pdf.CellFormat(25, 7, fmt.Sprintf("$%.2f", result.TaxPerPerson), "", 0, "R", false, 0, "")
			pdf.CellFormat(25, 7, fmt.Sprintf("$%.2f", result.TipPerPerson), "", 0, "R", false, 0, "")
			pdf.CellFormat(30, 7, fmt.Sprintf("$%.2f", total), "", 1, "R", false, 0, "")
		}
	} else if result.PerPerson != nil {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(90, 8, "Each person owes")
		pdf.CellFormat(40, 8, fmt.Sprintf("$%.2f", *result.PerPerson), "", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(120, 120, 120)
		pdf.Cell(0, 6, fmt.Sprintf("includes $%.2f tax and $%.2f tip per person",
			result.TaxPerPerson, result.TipPerPerson))
		pdf.Ln(6)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
