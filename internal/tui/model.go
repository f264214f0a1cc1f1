// Package tui is the terminal front end of the bill-splitting wizard.
//
// The Model holds no business state of its own beyond cursors, text
// inputs and loading flags: every decision flows through wizard.Reduce,
// and the views render whatever the wizard state says.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabsplit/tabsplit/internal/client"
	"github.com/tabsplit/tabsplit/internal/config"
	"github.com/tabsplit/tabsplit/internal/wizard"
)

// editTarget names what the shared modal editor is editing.
type editTarget int

const (
	editNone editTarget = iota
	editCell             // items table cell (editIndex = row, itemCol = column)
	editTax
	editPeople
	editTip
	editPersonName // editIndex = person index
)

// gridRow addresses one row of the assignment table. unit is -1 for the
// item's own row and a unit index for expanded sub-rows.
type gridRow struct {
	item int
	unit int
}

// Model is the bubbletea model for the wizard.
type Model struct {
	state  wizard.State
	client *client.Client

	width  int
	height int

	// Input step: upload mode has a single path field, manual mode has
	// name/price/quantity fields.
	manualMode bool
	inputFocus int
	filePath   textinput.Model
	manName    textinput.Model
	manPrice   textinput.Model
	manQty     textinput.Model

	// Items step cursor. itemRow == len(items) selects the tax row.
	itemRow int
	itemCol int

	// Shared modal editor for table cells, tax, counts and names.
	editing    bool
	editTarget editTarget
	editIndex  int
	editInput  textinput.Model

	// Split selector cursor: 0 equal, 1 item.
	splitCursor int

	// Equal step field cursor: 0 people, 1 tip.
	equalCursor int

	// Assignment grid cursor.
	gridRow int
	gridCol int

	uploading   bool
	calculating bool
	errMsg      string
	notice      string
}

// New builds the wizard model from configuration.
func New(cfg config.Config) Model {
	filePath := textinput.New()
	filePath.Placeholder = "path/to/receipt.jpg"
	filePath.Focus()

	manName := textinput.New()
	manName.Placeholder = "Item name"
	manPrice := textinput.New()
	manPrice.Placeholder = "Price"
	manQty := textinput.New()
	manQty.Placeholder = "Quantity"
	manQty.SetValue("1")

	editInput := textinput.New()

	return Model{
		state:     wizard.NewState(cfg.DefaultTipPercent),
		client:    client.New(cfg.BackendURL, cfg.Timeout),
		filePath:  filePath,
		manName:   manName,
		manPrice:  manPrice,
		manQty:    manQty,
		editInput: editInput,
	}
}

// State exposes the wizard state for tests.
func (m Model) State() wizard.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// apply routes an event through the reducer and clears transient output
// when the step changes.
func (m Model) apply(ev wizard.Event) Model {
	before := m.state.Step
	m.state = wizard.Reduce(m.state, ev)
	if m.state.Step != before {
		m.errMsg = ""
		m.notice = ""
		m.clampCursors()
	}
	return m
}

// clampCursors keeps cursors inside the current state's bounds.
func (m *Model) clampCursors() {
	if n := len(m.state.Ledger.Items); m.itemRow > n {
		m.itemRow = n
	}
	if rows := m.assignmentRows(); len(rows) > 0 && m.gridRow >= len(rows) {
		m.gridRow = len(rows) - 1
	}
	if m.state.PeopleCount > 0 && m.gridCol >= m.state.PeopleCount {
		m.gridCol = m.state.PeopleCount - 1
	}
	if m.gridRow < 0 {
		m.gridRow = 0
	}
	if m.gridCol < 0 {
		m.gridCol = 0
	}
}

// assignmentRows flattens the assignment state into displayable rows:
// one row per item, plus one per unit for expanded items.
func (m Model) assignmentRows() []gridRow {
	var rows []gridRow
	for i, ia := range m.state.Assignments.Items {
		rows = append(rows, gridRow{item: i, unit: -1})
		if ia.Expanded {
			for u := range ia.Units {
				rows = append(rows, gridRow{item: i, unit: u})
			}
		}
	}
	return rows
}

// beginEdit opens the modal editor prefilled with value.
func (m Model) beginEdit(target editTarget, index int, value string) Model {
	m.editing = true
	m.editTarget = target
	m.editIndex = index
	m.editInput.SetValue(value)
	m.editInput.CursorEnd()
	m.editInput.Focus()
	return m
}

// endEdit closes the modal editor.
func (m Model) endEdit() Model {
	m.editing = false
	m.editTarget = editNone
	m.editInput.Blur()
	return m
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
