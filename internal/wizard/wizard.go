// Package wizard implements the bill-splitting flow as a pure state
// machine. State is an immutable record and every transition is
// Reduce(State, Event) -> State, so the whole flow is testable without
// any rendering or network.
//
// Steps and back targets:
//
//	input -> items -> split -> {equal | item} -> results
//	items   backs to input
//	split   backs to items
//	equal   backs to split
//	item    backs to split
//	results backs to whichever of equal/item was last chosen
package wizard

import (
	"github.com/tabsplit/tabsplit/internal/calculator"
	"github.com/tabsplit/tabsplit/internal/ledger"
	"github.com/tabsplit/tabsplit/internal/models"
)

// Step identifies a wizard screen.
type Step string

const (
	StepInput   Step = "input"
	StepItems   Step = "items"
	StepSplit   Step = "split"
	StepEqual   Step = "equal"
	StepItem    Step = "item"
	StepResults Step = "results"
)

// SplitType identifies the chosen split strategy.
type SplitType string

const (
	SplitEqual SplitType = "equal"
	SplitItem  SplitType = "item"
)

// Step returns the wizard step that edits this strategy's parameters.
func (t SplitType) Step() Step {
	if t == SplitItem {
		return StepItem
	}
	return StepEqual
}

// State is the complete wizard state. Reduce never mutates a State in
// place; all contained slices are copied on write.
type State struct {
	Step      Step
	SplitType SplitType

	// Ledger is the editable working set of items plus tax. Original is
	// the snapshot taken at the input-to-items transition; reset-to-
	// original restores it regardless of intervening edits.
	Ledger   ledger.Ledger
	Original ledger.Snapshot

	TipPercent  float64
	PeopleCount int
	PeopleNames []string
	Assignments calculator.Assignments

	// Result is nil until a calculation succeeds; the results step is
	// unreachable without it.
	Result *models.SplitResult

	// Generation is bumped whenever navigation invalidates in-flight
	// backend calls. A ResultReceived event carrying a stale generation
	// is discarded.
	Generation int

	defaultTip float64
}

// NewState returns the initial wizard state. defaultTip is the tip
// percentage preloaded into both strategy screens.
func NewState(defaultTip float64) State {
	return State{
		Step:        StepInput,
		SplitType:   SplitEqual,
		TipPercent:  defaultTip,
		PeopleCount: 2,
		defaultTip:  defaultTip,
	}
}

// CanConfirmItems reports whether the items step may advance: the ledger
// is non-empty and every item has a name and positive price.
func (s State) CanConfirmItems() bool {
	return s.Ledger.Valid()
}

// CanCalculateEqual reports whether the equal split may be submitted.
func (s State) CanCalculateEqual() bool {
	return s.PeopleCount >= 2
}

// CanCalculateItem reports whether the item split may be submitted: at
// least one person, and no item left without an effective assignment.
func (s State) CanCalculateItem() bool {
	return s.PeopleCount >= 1 && !s.Assignments.HasUnassignedItems()
}

// TipAmount is the absolute tip derived from the current tip percentage.
func (s State) TipAmount() float64 {
	return calculator.TipAmount(s.Ledger.Subtotal(), s.Ledger.Tax, s.TipPercent)
}

// EqualRequest assembles the split-equal payload for the current state.
func (s State) EqualRequest() models.EqualSplitRequest {
	return models.EqualSplitRequest{
		Items:       s.Ledger.Items,
		Tax:         s.Ledger.Tax,
		Tip:         s.TipAmount(),
		PeopleCount: s.PeopleCount,
		SplitType:   models.SplitTypeEqual,
	}
}

// ItemRequest assembles the split-by-item payload for the current state.
func (s State) ItemRequest() models.ItemSplitRequest {
	return models.ItemSplitRequest{
		Items:       s.Ledger.Items,
		Tax:         s.Ledger.Tax,
		Tip:         s.TipAmount(),
		Assignments: s.Assignments.Effective(),
	}
}
