package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tabsplit/tabsplit/internal/calculator"
	"github.com/tabsplit/tabsplit/internal/models"
	"github.com/tabsplit/tabsplit/internal/wizard"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Bill Splitter"))
	b.WriteString("\n")
	b.WriteString(stepStyle.Render(stepLabel(m.state.Step)))
	b.WriteString("\n\n")

	switch m.state.Step {
	case wizard.StepInput:
		b.WriteString(m.viewInput())
	case wizard.StepItems:
		b.WriteString(m.viewItems())
	case wizard.StepSplit:
		b.WriteString(m.viewSplit())
	case wizard.StepEqual:
		b.WriteString(m.viewEqual())
	case wizard.StepItem:
		b.WriteString(m.viewItem())
	case wizard.StepResults:
		b.WriteString(m.viewResults())
	}

	if m.editing {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(editPrompt(m.editTarget) + " " + m.editInput.View()))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func stepLabel(step wizard.Step) string {
	switch step {
	case wizard.StepInput:
		return "Step 1 of 5 · Enter your bill"
	case wizard.StepItems:
		return "Step 2 of 5 · Review items"
	case wizard.StepSplit:
		return "Step 3 of 5 · Choose a split"
	case wizard.StepEqual:
		return "Step 4 of 5 · Split evenly"
	case wizard.StepItem:
		return "Step 4 of 5 · Split by item"
	default:
		return "Step 5 of 5 · Results"
	}
}

func editPrompt(target editTarget) string {
	switch target {
	case editTax:
		return "Tax:"
	case editPeople:
		return "Number of people:"
	case editTip:
		return "Tip %:"
	case editPersonName:
		return "Name:"
	default:
		return "Value:"
	}
}

func (m Model) helpLine() string {
	if m.editing {
		return "enter save · esc cancel"
	}
	switch m.state.Step {
	case wizard.StepInput:
		if m.manualMode {
			return "tab next field · enter add item · ctrl+t upload a photo instead · ctrl+c quit"
		}
		return "enter upload · ctrl+t enter manually instead · ctrl+c quit"
	case wizard.StepItems:
		return "arrows move · enter edit · a add · d delete · r reset · c continue · esc back"
	case wizard.StepSplit:
		return "up/down choose · enter select · esc back"
	case wizard.StepEqual:
		return "up/down choose field · enter edit · c calculate · esc back"
	case wizard.StepItem:
		return "arrows move · space assign · x expand · p people · t tip · n rename · c calculate · esc back"
	default:
		return "e export pdf · n new bill · esc back · q quit"
	}
}

func (m Model) viewInput() string {
	var b strings.Builder
	if m.uploading {
		b.WriteString("Reading your receipt…\n")
		return b.String()
	}
	if m.manualMode {
		b.WriteString("Enter a bill item by hand:\n\n")
		b.WriteString("  Name      " + m.manName.View() + "\n")
		b.WriteString("  Price     " + m.manPrice.View() + "\n")
		b.WriteString("  Quantity  " + m.manQty.View() + "\n")
		return b.String()
	}
	b.WriteString("Upload a photo of your receipt:\n\n")
	b.WriteString("  " + m.filePath.View() + "\n")
	return b.String()
}

func (m Model) viewItems() string {
	var b strings.Builder
	items := m.state.Ledger.Items
	taxRow := len(items)

	header := fmt.Sprintf("  %-24s %10s %6s %12s", "Item", "Price", "Qty", "Line total")
	b.WriteString(stepStyle.Render(header))
	b.WriteString("\n")

	for i, item := range items {
		cols := []string{
			pad(item.Name, 24),
			fmt.Sprintf("%10s", money(item.Price)),
			fmt.Sprintf("%6d", item.Quantity),
		}
		if m.itemRow == i {
			cols[m.itemCol] = selectedCellStyle.Render(cols[m.itemCol])
		}
		marker := "  "
		if m.itemRow == i {
			marker = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%s %s %s %12s", marker, cols[0], cols[1], cols[2], money(item.Total()))
		if !item.Valid() {
			line = warnStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	taxLabel := fmt.Sprintf("%s %10s", pad("Tax", 24), money(m.state.Ledger.Tax))
	if m.itemRow == taxRow {
		b.WriteString(cursorStyle.Render("> ") + selectedCellStyle.Render(taxLabel))
	} else {
		b.WriteString("  " + taxLabel)
	}
	b.WriteString("\n")

	b.WriteString(totalStyle.Render(fmt.Sprintf("  %s %10s", pad("Subtotal", 24), money(m.state.Ledger.Subtotal()))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewSplit() string {
	options := []struct {
		label string
		desc  string
	}{
		{"Split evenly", "everyone pays the same share"},
		{"Split by item", "assign items to people"},
	}
	var b strings.Builder
	for i, opt := range options {
		marker := "  "
		label := opt.label
		if m.splitCursor == i {
			marker = cursorStyle.Render("> ")
			label = cursorStyle.Render(opt.label)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", marker, label, stepStyle.Render(opt.desc)))
	}
	return b.String()
}

func (m Model) viewEqual() string {
	var b strings.Builder

	fields := []string{
		fmt.Sprintf("Number of people  %d", m.state.PeopleCount),
		fmt.Sprintf("Tip               %.1f%%", m.state.TipPercent),
	}
	for i, f := range fields {
		if m.equalCursor == i {
			b.WriteString(cursorStyle.Render("> ") + cursorStyle.Render(f))
		} else {
			b.WriteString("  " + f)
		}
		b.WriteString("\n")
	}

	preview, err := calculator.EqualPreview(
		m.state.Ledger.Items, m.state.Ledger.Tax, m.state.TipPercent, m.state.PeopleCount)
	if err == nil {
		var p strings.Builder
		p.WriteString(fmt.Sprintf("%-14s %10s\n", "Subtotal", money(preview.Subtotal)))
		p.WriteString(fmt.Sprintf("%-14s %10s\n", "Tax", money(preview.Tax)))
		p.WriteString(fmt.Sprintf("%-14s %10s\n", "Tip", money(preview.TipAmount)))
		p.WriteString(fmt.Sprintf("%-14s %10s\n", "Total", money(preview.Total)))
		p.WriteString(totalStyle.Render(fmt.Sprintf("%-14s %10s", "Per person", money(preview.PerPerson))))
		b.WriteString(boxStyle.Render(p.String()))
		b.WriteString("\n")
	}

	if m.calculating {
		b.WriteString("\nCalculating…\n")
	}
	return b.String()
}

func (m Model) viewItem() string {
	var b strings.Builder
	names := m.state.PeopleNames
	rows := m.assignmentRows()

	b.WriteString(fmt.Sprintf("People: %d · Tip: %.1f%%\n\n", m.state.PeopleCount, m.state.TipPercent))

	head := "  " + pad("Item", 22) + fmt.Sprintf("%10s", "Total")
	for _, name := range names {
		head += fmt.Sprintf("  %-10s", truncate(name, 10))
	}
	b.WriteString(stepStyle.Render(head))
	b.WriteString("\n")

	for r, row := range rows {
		item := m.state.Ledger.Items[row.item]
		ia := m.state.Assignments.Items[row.item]

		var label, amount string
		if row.unit < 0 {
			label = item.Name
			if item.Quantity > 1 {
				label = fmt.Sprintf("%s (%d)", item.Name, item.Quantity)
				if ia.Expanded {
					label += " −"
				} else {
					label += " +"
				}
			}
			amount = money(item.Total())
		} else {
			label = fmt.Sprintf("└ %s #%d", item.Name, row.unit+1)
			amount = money(item.Price)
		}

		marker := "  "
		if m.gridRow == r {
			marker = cursorStyle.Render("> ")
		}
		line := pad(label, 22) + fmt.Sprintf("%10s", amount)
		if row.unit >= 0 {
			line = subItemStyle.Render(line)
		} else if !m.state.Assignments.ItemAssigned(row.item) {
			line = unassignedRowStyle.Render(line)
		}

		cells := make([]string, len(names))
		for p := range names {
			mark := "·"
			switch {
			case row.unit >= 0 && ia.Units[row.unit][p]:
				mark = assignedStyle.Render("✓")
			case row.unit < 0 && !ia.Expanded && ia.Whole[p]:
				mark = assignedStyle.Render("✓")
			case row.unit < 0 && ia.Expanded:
				mark = "–"
			}
			cell := fmt.Sprintf("  %-10s", mark)
			if m.gridRow == r && m.gridCol == p {
				cell = selectedCellStyle.Render(cell)
			}
			cells[p] = cell
		}

		b.WriteString(marker + line + strings.Join(cells, ""))
		b.WriteString("\n")
	}

	if m.state.Assignments.HasUnassignedItems() {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("Assign at least one person to each item."))
		b.WriteString("\n")
	} else if preview, err := calculator.ItemPreview(
		m.state.Ledger.Items, m.state.Ledger.Tax, m.state.TipPercent,
		m.state.Assignments.Effective(), m.state.PeopleCount); err == nil {
		var p strings.Builder
		for i, name := range names {
			p.WriteString(fmt.Sprintf("%-14s %10s\n", truncate(name, 14), money(preview.PersonTotals[i])))
		}
		p.WriteString(totalStyle.Render(fmt.Sprintf("%-14s %10s", "Total", money(preview.Total))))
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(p.String()))
		b.WriteString("\n")
	}

	if m.calculating {
		b.WriteString("\nCalculating…\n")
	}
	return b.String()
}

func (m Model) viewResults() string {
	res := m.state.Result
	if res == nil {
		return ""
	}

	var b strings.Builder
	if res.Subtotal != nil {
		b.WriteString(fmt.Sprintf("  %-14s %10s\n", "Subtotal", money(*res.Subtotal)))
	}
	b.WriteString(fmt.Sprintf("  %-14s %10s\n", "Tax", money(res.Tax)))
	b.WriteString(fmt.Sprintf("  %-14s %10s\n", "Tip", money(res.Tip)))
	b.WriteString(totalStyle.Render(fmt.Sprintf("  %-14s %10s", "Total", money(res.Total))))
	b.WriteString("\n\n")

	if res.IsItemSplit() {
		for i, sub := range res.PersonSubtotals {
			name := models.DefaultPersonName(i)
			if i < len(res.PeopleNames) {
				name = res.PeopleNames[i]
			}
			total := sub + res.TaxPerPerson + res.TipPerPerson
			if i < len(res.PersonTotals) {
				total = res.PersonTotals[i]
			}
			b.WriteString(fmt.Sprintf("  %-16s items %s · tax %s · tip %s · owes %s\n",
				truncate(name, 16), money(sub), money(res.TaxPerPerson),
				money(res.TipPerPerson), money(total)))
		}
	} else if res.PerPerson != nil {
		b.WriteString(totalStyle.Render(fmt.Sprintf("  Each person owes %s", money(*res.PerPerson))))
		b.WriteString("\n")
		b.WriteString(stepStyle.Render(fmt.Sprintf("  (includes %s tax and %s tip per person)",
			money(res.TaxPerPerson), money(res.TipPerPerson))))
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	s = truncate(s, width)
	if n := width - lipgloss.Width(s); n > 0 {
		s += strings.Repeat(" ", n)
	}
	return s
}

// truncate shortens s to at most width display cells, counting wide
// runes as the cells they occupy.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if used+rw > width-1 {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String() + "…"
}
