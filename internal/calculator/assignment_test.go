package calculator

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tabsplit/tabsplit/internal/models"
)

func assignmentItems() []models.BillItem {
	return []models.BillItem{
		{Name: "Burger", Price: 10.00, Quantity: 2},
		{Name: "Soda", Price: 2.50, Quantity: 1},
	}
}

func TestEffectiveWholeItem(t *testing.T) {
	a := NewAssignments(assignmentItems(), 2)
	a = a.ToggleWhole(0, 0) // burger fully to person A
	a = a.ToggleWhole(1, 1) // soda to person B

	want := [][]int{{2, 0}, {0, 1}}
	if diff := cmp.Diff(want, a.Effective()); diff != "" {
		t.Errorf("Effective() mismatch (-want +got):\n%s", diff)
	}
	if a.HasUnassignedItems() {
		t.Error("HasUnassignedItems() = true, want false")
	}
}

func TestEffectiveSharedWholeItem(t *testing.T) {
	a := NewAssignments(assignmentItems(), 2)
	a = a.ToggleWhole(0, 0)
	a = a.ToggleWhole(0, 1)
	a = a.ToggleWhole(1, 0)

	// Both people marked on the whole burger each carry its full quantity;
	// ItemPreview then divides the line by unit share, i.e. in half.
	want := [][]int{{2, 2}, {1, 0}}
	if diff := cmp.Diff(want, a.Effective()); diff != "" {
		t.Errorf("Effective() mismatch (-want +got):\n%s", diff)
	}
}

func TestEffectiveExpanded(t *testing.T) {
	items := []models.BillItem{{Name: "Taco", Price: 3.00, Quantity: 3}}
	a := NewAssignments(items, 2)
	a = a.ToggleExpanded(0)
	a = a.ToggleUnit(0, 0, 0)
	a = a.ToggleUnit(0, 1, 0)
	a = a.ToggleUnit(0, 2, 1)

	want := [][]int{{2, 1}}
	if diff := cmp.Diff(want, a.Effective()); diff != "" {
		t.Errorf("Effective() mismatch (-want +got):\n%s", diff)
	}
}

func TestHasUnassignedItems(t *testing.T) {
	tests := []struct {
		name  string
		build func() Assignments
		want  bool
	}{
		{
			name:  "nothing assigned",
			build: func() Assignments { return NewAssignments(assignmentItems(), 2) },
			want:  true,
		},
		{
			name: "one item unassigned",
			build: func() Assignments {
				return NewAssignments(assignmentItems(), 2).ToggleWhole(0, 0)
			},
			want: true,
		},
		{
			name: "all items assigned",
			build: func() Assignments {
				return NewAssignments(assignmentItems(), 2).ToggleWhole(0, 0).ToggleWhole(1, 1)
			},
			want: false,
		},
		{
			name: "expanded with only some units assigned still passes",
			build: func() Assignments {
				items := []models.BillItem{{Name: "Taco", Price: 3.00, Quantity: 3}}
				a := NewAssignments(items, 2)
				a = a.ToggleExpanded(0)
				a = a.ToggleUnit(0, 0, 0)
				a = a.ToggleUnit(0, 1, 1)
				// Unit 2 left unclaimed: any nonzero assignment satisfies the gate.
				return a
			},
			want: false,
		},
		{
			name: "expanded with no units assigned fails",
			build: func() Assignments {
				items := []models.BillItem{{Name: "Taco", Price: 3.00, Quantity: 3}}
				return NewAssignments(items, 2).ToggleExpanded(0)
			},
			want: true,
		},
		{
			name:  "no items",
			build: func() Assignments { return NewAssignments(nil, 2) },
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().HasUnassignedItems(); got != tt.want {
				t.Errorf("HasUnassignedItems() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToggleWholeIgnoredWhileExpanded(t *testing.T) {
	items := []models.BillItem{{Name: "Taco", Price: 3.00, Quantity: 3}}
	a := NewAssignments(items, 2).ToggleExpanded(0)
	got := a.ToggleWhole(0, 0)
	if got.Items[0].Whole[0] {
		t.Error("ToggleWhole applied to an expanded item")
	}
}

func TestCollapseResyncsWholeFromUnits(t *testing.T) {
	items := []models.BillItem{{Name: "Taco", Price: 3.00, Quantity: 3}}
	a := NewAssignments(items, 3)
	a = a.ToggleWhole(0, 2) // stale mark that must not survive collapse
	a = a.ToggleExpanded(0)
	a = a.ToggleUnit(0, 0, 0)
	a = a.ToggleUnit(0, 1, 0)
	a = a.ToggleUnit(0, 2, 1)
	a = a.ToggleExpanded(0) // collapse

	want := []bool{true, true, false}
	if diff := cmp.Diff(want, a.Items[0].Whole); diff != "" {
		t.Errorf("Whole after collapse mismatch (-want +got):\n%s", diff)
	}
	// Collapsed effective assignment now uses the derived whole flags.
	if diff := cmp.Diff([][]int{{3, 3, 0}}, a.Effective()); diff != "" {
		t.Errorf("Effective() mismatch (-want +got):\n%s", diff)
	}
}

func TestQuantityOneCannotExpand(t *testing.T) {
	a := NewAssignments(assignmentItems(), 2)
	got := a.ToggleExpanded(1)
	if got.Items[1].Expanded {
		t.Error("quantity-1 item expanded")
	}
}

func TestResizePreservesWholeFlags(t *testing.T) {
	items := assignmentItems()
	a := NewAssignments(items, 2).ToggleWhole(0, 1).ToggleWhole(1, 0)

	grown := a.Resize(items, 4)
	if grown.People != 4 || len(grown.Items[0].Whole) != 4 {
		t.Fatalf("Resize(4) shape = %d people, %d columns", grown.People, len(grown.Items[0].Whole))
	}
	if !grown.Items[0].Whole[1] || !grown.Items[1].Whole[0] {
		t.Error("Resize(4) dropped existing whole flags")
	}

	shrunk := a.Resize(items, 1)
	if len(shrunk.Items[0].Whole) != 1 {
		t.Fatalf("Resize(1) columns = %d, want 1", len(shrunk.Items[0].Whole))
	}
	if shrunk.Items[0].Whole[0] {
		t.Error("Resize(1) kept a flag for a removed person")
	}
}

func TestTogglesDoNotMutateReceiver(t *testing.T) {
	a := NewAssignments(assignmentItems(), 2)
	_ = a.ToggleWhole(0, 0)
	if a.Items[0].Whole[0] {
		t.Error("ToggleWhole mutated its receiver")
	}
}
