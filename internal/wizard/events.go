package wizard

import (
	"github.com/tabsplit/tabsplit/internal/ledger"
	"github.com/tabsplit/tabsplit/internal/models"
)

// Event is a user action or network completion fed to Reduce. Raw string
// fields carry form input exactly as typed; parsing and coercion rules
// live in the reducer.
type Event interface{ isEvent() }

// BillParsed reports a successful receipt parse. Tax is nil when the
// receipt showed no tax line. Generation is the state generation the
// upload was issued under; a stale parse is discarded like a stale
// split result.
type BillParsed struct {
	Generation int
	Items      []models.BillItem
	Tax        *float64
}

// ManualItemEntered reports a manually entered item, bypassing the parse
// endpoint. The resulting ledger has that single item and zero tax.
type ManualItemEntered struct {
	Item models.BillItem
}

// ItemAdded appends a blank item to the ledger.
type ItemAdded struct{}

// ItemUpdated edits one field of the item at Index.
type ItemUpdated struct {
	Index int
	Field ledger.Field
	Raw   string
}

// ItemRemoved drops the item at Index.
type ItemRemoved struct {
	Index int
}

// TaxEdited sets the ledger tax from raw input.
type TaxEdited struct {
	Raw string
}

// LedgerReset restores items and tax to the original snapshot.
type LedgerReset struct{}

// ItemsConfirmed advances from the items step to split selection.
type ItemsConfirmed struct{}

// SplitChosen selects the split strategy and advances to its screen.
type SplitChosen struct {
	Type SplitType
}

// PeopleCountEdited sets the person count from raw input. Malformed input
// falls back to 2.
type PeopleCountEdited struct {
	Raw string
}

// PersonRenamed sets the display label for one person. An empty name
// restores the default label.
type PersonRenamed struct {
	Index int
	Name  string
}

// TipEdited sets the tip percentage from raw input. Malformed input falls
// back to 0.
type TipEdited struct {
	Raw string
}

// WholeToggled flips a whole-item assignment.
type WholeToggled struct {
	Item   int
	Person int
}

// UnitToggled flips a per-unit assignment on an expanded item.
type UnitToggled struct {
	Item   int
	Unit   int
	Person int
}

// ExpandToggled switches an item between whole-item and per-unit modes.
type ExpandToggled struct {
	Item int
}

// ResultReceived reports a successful split calculation. Generation must
// match the state's current generation or the result is discarded.
type ResultReceived struct {
	Generation int
	Result     models.SplitResult
}

// WentBack navigates one step backward.
type WentBack struct{}

// ResetAll returns to the input step and clears all state.
type ResetAll struct{}

func (BillParsed) isEvent()        {}
func (ManualItemEntered) isEvent() {}
func (ItemAdded) isEvent()         {}
func (ItemUpdated) isEvent()       {}
func (ItemRemoved) isEvent()       {}
func (TaxEdited) isEvent()         {}
func (LedgerReset) isEvent()       {}
func (ItemsConfirmed) isEvent()    {}
func (SplitChosen) isEvent()       {}
func (PeopleCountEdited) isEvent() {}
func (PersonRenamed) isEvent()     {}
func (TipEdited) isEvent()         {}
func (WholeToggled) isEvent()      {}
func (UnitToggled) isEvent()       {}
func (ExpandToggled) isEvent()     {}
func (ResultReceived) isEvent()    {}
func (WentBack) isEvent()          {}
func (ResetAll) isEvent()          {}
