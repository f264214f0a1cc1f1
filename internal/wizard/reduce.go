package wizard

import (
	"github.com/tabsplit/tabsplit/internal/calculator"
	"github.com/tabsplit/tabsplit/internal/ledger"
	"github.com/tabsplit/tabsplit/internal/models"
	"github.com/tabsplit/tabsplit/internal/numeric"
)

// Reduce applies one event to the state and returns the next state.
// Events that are not meaningful on the current step leave the state
// unchanged.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case BillParsed:
		if s.Step != StepInput || e.Generation != s.Generation {
			return s
		}
		tax := 0.0
		if e.Tax != nil {
			tax = *e.Tax
		}
		return s.withLedger(ledger.New(e.Items, tax))

	case ManualItemEntered:
		if s.Step != StepInput {
			return s
		}
		return s.withLedger(ledger.New([]models.BillItem{e.Item}, 0))

	case ItemAdded:
		if s.Step != StepItems {
			return s
		}
		s.Ledger = s.Ledger.AddItem()
		return s

	case ItemUpdated:
		if s.Step != StepItems {
			return s
		}
		s.Ledger = s.Ledger.UpdateItem(e.Index, e.Field, e.Raw)
		return s

	case ItemRemoved:
		if s.Step != StepItems {
			return s
		}
		s.Ledger = s.Ledger.RemoveItem(e.Index)
		return s

	case TaxEdited:
		if s.Step != StepItems {
			return s
		}
		s.Ledger = s.Ledger.WithTax(e.Raw)
		return s

	case LedgerReset:
		if s.Step != StepItems {
			return s
		}
		s.Ledger = s.Original.Restore()
		return s

	case ItemsConfirmed:
		if s.Step != StepItems || !s.CanConfirmItems() {
			return s
		}
		s.Step = StepSplit
		return s

	case SplitChosen:
		if s.Step != StepSplit {
			return s
		}
		s.SplitType = e.Type
		s.Step = e.Type.Step()
		if e.Type == SplitItem {
			s.Assignments = calculator.NewAssignments(s.Ledger.Items, s.PeopleCount)
			s.PeopleNames = resizeNames(s.PeopleNames, s.PeopleCount)
		}
		return s

	case PeopleCountEdited:
		if s.Step != StepEqual && s.Step != StepItem {
			return s
		}
		count := numeric.ParseCount(e.Raw).Or(2)
		if count < 1 {
			// "0" parses fine but is outside the domain; treat it
			// like unparseable input.
			count = 2
		}
		s.PeopleCount = count
		if s.Step == StepItem {
			s.Assignments = s.Assignments.Resize(s.Ledger.Items, count)
			s.PeopleNames = resizeNames(s.PeopleNames, count)
		}
		return s

	case PersonRenamed:
		if s.Step != StepItem || e.Index < 0 || e.Index >= len(s.PeopleNames) {
			return s
		}
		names := append([]string(nil), s.PeopleNames...)
		if e.Name == "" {
			names[e.Index] = models.DefaultPersonName(e.Index)
		} else {
			names[e.Index] = e.Name
		}
		s.PeopleNames = names
		return s

	case TipEdited:
		if s.Step != StepEqual && s.Step != StepItem {
			return s
		}
		s.TipPercent = numeric.ParseAmount(e.Raw).Or(0)
		return s

	case WholeToggled:
		if s.Step != StepItem {
			return s
		}
		s.Assignments = s.Assignments.ToggleWhole(e.Item, e.Person)
		return s

	case UnitToggled:
		if s.Step != StepItem {
			return s
		}
		s.Assignments = s.Assignments.ToggleUnit(e.Item, e.Unit, e.Person)
		return s

	case ExpandToggled:
		if s.Step != StepItem {
			return s
		}
		s.Assignments = s.Assignments.ToggleExpanded(e.Item)
		return s

	case ResultReceived:
		if s.Step != StepEqual && s.Step != StepItem {
			return s
		}
		if e.Generation != s.Generation {
			return s
		}
		result := e.Result
		if s.SplitType == SplitItem {
			result.PeopleNames = append([]string(nil), s.PeopleNames...)
		}
		s.Result = &result
		s.Step = StepResults
		return s

	case WentBack:
		return s.back()

	case ResetAll:
		next := NewState(s.defaultTip)
		next.Generation = s.Generation + 1
		return next
	}

	return s
}

// withLedger installs a freshly entered ledger, takes the reset snapshot,
// and advances to the items step.
func (s State) withLedger(l ledger.Ledger) State {
	s.Ledger = l
	s.Original = l.Snapshot()
	s.Step = StepItems
	return s
}

func (s State) back() State {
	switch s.Step {
	case StepItems:
		s.Step = StepInput
	case StepSplit:
		s.Step = StepItems
	case StepEqual, StepItem:
		s.Step = StepSplit
	case StepResults:
		s.Step = s.SplitType.Step()
	default:
		return s
	}
	// Any reply still in flight belongs to the abandoned screen.
	s.Generation++
	return s
}

// resizeNames grows or shrinks the label list to n entries, keeping
// existing labels and filling new slots with defaults.
func resizeNames(names []string, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		if i < len(names) && names[i] != "" {
			out[i] = names[i]
		} else {
			out[i] = models.DefaultPersonName(i)
		}
	}
	return out
}
