package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/tabsplit/tabsplit/internal/client"
	"github.com/tabsplit/tabsplit/internal/ledger"
	"github.com/tabsplit/tabsplit/internal/models"
	"github.com/tabsplit/tabsplit/internal/numeric"
	"github.com/tabsplit/tabsplit/internal/wizard"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case billParsedMsg:
		m.uploading = false
		if msg.err != nil {
			slog.Warn("Receipt parse failed", "error", msg.err)
			if msg.generation == m.state.Generation {
				m.errMsg = "Could not parse the receipt. Try again or enter the bill manually."
			}
			return m, nil
		}
		return m.apply(wizard.BillParsed{Generation: msg.generation, Items: msg.bill.Items, Tax: msg.bill.Tax}), nil

	case splitDoneMsg:
		m.calculating = false
		if msg.err != nil {
			slog.Warn("Split calculation failed", "error", msg.err)
			m.errMsg = splitErrorMessage(msg.err)
			return m, nil
		}
		return m.apply(wizard.ResultReceived{Generation: msg.generation, Result: msg.result}), nil

	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Export failed: %v", msg.err)
			return m, nil
		}
		m.notice = "Saved " + msg.path
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateEditor(msg)
		}
		switch m.state.Step {
		case wizard.StepInput:
			return m.updateInput(msg)
		case wizard.StepItems:
			return m.updateItems(msg)
		case wizard.StepSplit:
			return m.updateSplit(msg)
		case wizard.StepEqual:
			return m.updateEqual(msg)
		case wizard.StepItem:
			return m.updateItem(msg)
		case wizard.StepResults:
			return m.updateResults(msg)
		}
	}

	return m.updateInputs(msg)
}

// splitErrorMessage maps a client error to the line shown on screen.
func splitErrorMessage(err error) string {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) && statusErr.Body != "" {
		return "The backend rejected the split: " + statusErr.Body
	}
	return "Could not calculate the split. Check the backend and try again."
}

// updateEditor handles keys while the modal editor is open.
func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.endEdit(), nil
	case "enter":
		value := m.editInput.Value()
		target, index := m.editTarget, m.editIndex
		m = m.endEdit()
		switch target {
		case editCell:
			m = m.apply(wizard.ItemUpdated{Index: index, Field: columnField(m.itemCol), Raw: value})
		case editTax:
			m = m.apply(wizard.TaxEdited{Raw: value})
		case editPeople:
			m = m.apply(wizard.PeopleCountEdited{Raw: value})
		case editTip:
			m = m.apply(wizard.TipEdited{Raw: value})
		case editPersonName:
			m = m.apply(wizard.PersonRenamed{Index: index, Name: value})
		}
		m.clampCursors()
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func columnField(col int) ledger.Field {
	switch col {
	case 1:
		return ledger.FieldPrice
	case 2:
		return ledger.FieldQuantity
	default:
		return ledger.FieldName
	}
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+t":
		m.manualMode = !m.manualMode
		m.errMsg = ""
		m.notice = ""
		m.inputFocus = 0
		m = m.focusInputField()
		return m, nil

	case "tab", "shift+tab":
		if m.manualMode {
			if msg.String() == "tab" {
				m.inputFocus = (m.inputFocus + 1) % 3
			} else {
				m.inputFocus = (m.inputFocus + 2) % 3
			}
			m = m.focusInputField()
			return m, nil
		}

	case "enter":
		if m.manualMode {
			return m.submitManualItem()
		}
		if m.uploading {
			return m, nil
		}
		path := m.filePath.Value()
		if path == "" {
			m.errMsg = "Enter the path to a receipt image."
			return m, nil
		}
		m.uploading = true
		m.errMsg = ""
		return m, m.uploadCmd(path)
	}

	return m.updateInputs(msg)
}

func (m Model) focusInputField() Model {
	m.filePath.Blur()
	m.manName.Blur()
	m.manPrice.Blur()
	m.manQty.Blur()
	if !m.manualMode {
		m.filePath.Focus()
		return m
	}
	switch m.inputFocus {
	case 0:
		m.manName.Focus()
	case 1:
		m.manPrice.Focus()
	case 2:
		m.manQty.Focus()
	}
	return m
}

func (m Model) submitManualItem() (tea.Model, tea.Cmd) {
	name := m.manName.Value()
	price := numeric.ParseAmount(m.manPrice.Value())
	if name == "" || !price.OK || price.Value <= 0 {
		m.errMsg = "A manual item needs a name and a positive price."
		return m, nil
	}
	item := models.BillItem{
		Name:     name,
		Price:    price.Value,
		Quantity: numeric.ParseCount(m.manQty.Value()).Or(1),
	}
	m.manName.SetValue("")
	m.manPrice.SetValue("")
	m.manQty.SetValue("1")
	return m.apply(wizard.ManualItemEntered{Item: item}), nil
}

func (m Model) updateItems(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.state.Ledger.Items
	taxRow := len(items) // the row after the last item edits tax

	switch msg.String() {
	case "esc":
		return m.apply(wizard.WentBack{}), nil
	case "up", "k":
		if m.itemRow > 0 {
			m.itemRow--
		}
	case "down", "j":
		if m.itemRow < taxRow {
			m.itemRow++
		}
	case "left", "h":
		if m.itemCol > 0 {
			m.itemCol--
		}
	case "right", "l":
		if m.itemCol < 2 {
			m.itemCol++
		}
	case "enter", "e":
		if m.itemRow == taxRow {
			return m.beginEdit(editTax, 0, formatAmount(m.state.Ledger.Tax)), nil
		}
		item := items[m.itemRow]
		switch m.itemCol {
		case 0:
			return m.beginEdit(editCell, m.itemRow, item.Name), nil
		case 1:
			return m.beginEdit(editCell, m.itemRow, formatAmount(item.Price)), nil
		case 2:
			return m.beginEdit(editCell, m.itemRow, strconv.Itoa(item.Quantity)), nil
		}
	case "a":
		m = m.apply(wizard.ItemAdded{})
		m.itemRow = len(m.state.Ledger.Items) - 1
	case "d":
		if m.itemRow < taxRow {
			m = m.apply(wizard.ItemRemoved{Index: m.itemRow})
			m.clampCursors()
		}
	case "r":
		m = m.apply(wizard.LedgerReset{})
		m.clampCursors()
		m.notice = "Restored the original bill."
	case "c":
		if !m.state.CanConfirmItems() {
			m.errMsg = "Every item needs a name and a positive price."
			return m, nil
		}
		return m.apply(wizard.ItemsConfirmed{}), nil
	}
	return m, nil
}

func (m Model) updateSplit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.apply(wizard.WentBack{}), nil
	case "up", "k", "down", "j":
		m.splitCursor = 1 - m.splitCursor
	case "e":
		return m.apply(wizard.SplitChosen{Type: wizard.SplitEqual}), nil
	case "i":
		return m.apply(wizard.SplitChosen{Type: wizard.SplitItem}), nil
	case "enter":
		if m.splitCursor == 0 {
			return m.apply(wizard.SplitChosen{Type: wizard.SplitEqual}), nil
		}
		return m.apply(wizard.SplitChosen{Type: wizard.SplitItem}), nil
	}
	return m, nil
}

func (m Model) updateEqual(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.apply(wizard.WentBack{}), nil
	case "up", "k", "down", "j", "tab":
		m.equalCursor = 1 - m.equalCursor
	case "enter", "e":
		if m.equalCursor == 0 {
			return m.beginEdit(editPeople, 0, strconv.Itoa(m.state.PeopleCount)), nil
		}
		return m.beginEdit(editTip, 0, formatAmount(m.state.TipPercent)), nil
	case "c":
		if m.calculating {
			return m, nil
		}
		if !m.state.CanCalculateEqual() {
			m.errMsg = "An equal split needs at least 2 people."
			return m, nil
		}
		m.calculating = true
		m.errMsg = ""
		return m, m.calcEqualCmd(m.state.EqualRequest(), m.state.Generation)
	}
	return m, nil
}

func (m Model) updateItem(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.assignmentRows()

	switch msg.String() {
	case "esc":
		return m.apply(wizard.WentBack{}), nil
	case "up", "k":
		if m.gridRow > 0 {
			m.gridRow--
		}
	case "down", "j":
		if m.gridRow < len(rows)-1 {
			m.gridRow++
		}
	case "left", "h":
		if m.gridCol > 0 {
			m.gridCol--
		}
	case "right", "l":
		if m.gridCol < m.state.PeopleCount-1 {
			m.gridCol++
		}
	case " ", "space", "enter":
		if len(rows) == 0 {
			return m, nil
		}
		row := rows[m.gridRow]
		if row.unit >= 0 {
			return m.apply(wizard.UnitToggled{Item: row.item, Unit: row.unit, Person: m.gridCol}), nil
		}
		if m.state.Assignments.Items[row.item].Expanded {
			m.notice = "This item is split by unit; assign the unit rows below."
			return m, nil
		}
		return m.apply(wizard.WholeToggled{Item: row.item, Person: m.gridCol}), nil
	case "x":
		if len(rows) == 0 {
			return m, nil
		}
		m = m.apply(wizard.ExpandToggled{Item: rows[m.gridRow].item})
		m.clampCursors()
	case "p":
		return m.beginEdit(editPeople, 0, strconv.Itoa(m.state.PeopleCount)), nil
	case "t":
		return m.beginEdit(editTip, 0, formatAmount(m.state.TipPercent)), nil
	case "n":
		if m.gridCol < len(m.state.PeopleNames) {
			return m.beginEdit(editPersonName, m.gridCol, m.state.PeopleNames[m.gridCol]), nil
		}
	case "c":
		if m.calculating {
			return m, nil
		}
		if !m.state.CanCalculateItem() {
			m.errMsg = "Assign at least one person to each item first."
			return m, nil
		}
		m.calculating = true
		m.errMsg = ""
		return m, m.calcItemCmd(m.state.ItemRequest(), m.state.Generation)
	}
	return m, nil
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.apply(wizard.WentBack{}), nil
	case "n":
		m = m.apply(wizard.ResetAll{})
		m.manualMode = false
		m.inputFocus = 0
		m.itemRow, m.itemCol = 0, 0
		m.gridRow, m.gridCol = 0, 0
		m.splitCursor, m.equalCursor = 0, 0
		m.filePath.SetValue("")
		m = m.focusInputField()
		return m, nil
	case "e":
		if m.state.Result == nil {
			return m, nil
		}
		path := fmt.Sprintf("tabsplit-%s.pdf", uuid.NewString()[:8])
		return m, exportCmd(*m.state.Result, path)
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// updateInputs forwards remaining messages to whichever text input has
// focus, keeping the cursor blinking.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.editing {
		m.editInput, cmd = m.editInput.Update(msg)
		return m, cmd
	}
	if m.state.Step == wizard.StepInput {
		if m.manualMode {
			m.manName, cmd = m.manName.Update(msg)
			cmds = append(cmds, cmd)
			m.manPrice, cmd = m.manPrice.Update(msg)
			cmds = append(cmds, cmd)
			m.manQty, cmd = m.manQty.Update(msg)
			cmds = append(cmds, cmd)
		} else {
			m.filePath, cmd = m.filePath.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}
