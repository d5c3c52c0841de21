package task

import (
	"errors"
	"testing"
)

func TestAddAssignsIncreasingIDs(t *testing.T) {
	var list List

	first, err := list.Add("buy milk")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first id: got %d, want 1", first.ID)
	}

	second, err := list.Add("walk the dog")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("second id: got %d, want 2", second.ID)
	}

	// Ids are not reused after deletion
	if err := list.Remove(2); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	third, err := list.Add("water plants")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if third.ID != 2 {
		t.Errorf("id after delete: got %d, want 2", third.ID)
	}

	seen := map[uint32]bool{}
	for _, task := range list {
		if seen[task.ID] {
			t.Errorf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestAddNeverReusesHighestID(t *testing.T) {
	list := List{
		{ID: 1, Description: "first"},
		{ID: 5, Description: "fifth"},
	}

	added, err := list.Add("next")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added.ID != 6 {
		t.Errorf("id: got %d, want 6", added.ID)
	}
}

func TestAddRejectsEmptyDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"tab", "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list List
			_, err := list.Add(tt.description)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected ValidationError, got %T", err)
			}
			if len(list) != 0 {
				t.Errorf("list length: got %d, want 0", len(list))
			}
		})
	}
}

func TestSetDoneIsIdempotent(t *testing.T) {
	var list List
	if _, err := list.Add("buy milk"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := list.SetDone(1, true); err != nil {
		t.Fatalf("SetDone failed: %v", err)
	}
	if !list[0].Done {
		t.Error("task not marked done")
	}

	// Marking again is a no-op, not an error
	if err := list.SetDone(1, true); err != nil {
		t.Fatalf("second SetDone failed: %v", err)
	}
	if !list[0].Done {
		t.Error("task no longer done after repeat SetDone")
	}

	if err := list.SetDone(1, false); err != nil {
		t.Fatalf("SetDone(false) failed: %v", err)
	}
	if list[0].Done {
		t.Error("task still done after SetDone(false)")
	}
}

func TestSetDoneUnknownID(t *testing.T) {
	var list List
	err := list.SetDone(42, true)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveThenSetDone(t *testing.T) {
	var list List
	if _, err := list.Add("buy milk"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := list.Remove(1); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := list.SetDone(1, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	list := List{
		{ID: 1, Description: "a"},
		{ID: 2, Description: "b"},
		{ID: 3, Description: "c"},
	}

	if err := list.Remove(2); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("length: got %d, want 2", len(list))
	}
	if list[0].ID != 1 || list[1].ID != 3 {
		t.Errorf("order after remove: got [%d %d], want [1 3]", list[0].ID, list[1].ID)
	}
}

func TestUpdate(t *testing.T) {
	var list List
	if _, err := list.Add("buy milk"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := list.Update(1, "buy oat milk"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got := list[0].Description; got != "buy oat milk" {
		t.Errorf("description: got %q, want %q", got, "buy oat milk")
	}

	if err := list.Update(1, ""); err == nil {
		t.Error("expected error for empty description, got nil")
	}
	if err := list.Update(9, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSwap(t *testing.T) {
	list := List{
		{ID: 1, Description: "a"},
		{ID: 2, Description: "b"},
	}

	if err := list.Swap(1, 2); err != nil {
		t.Fatalf("Swap failed: %v", err)
	}
	if list[0].ID != 2 || list[1].ID != 1 {
		t.Errorf("ids after swap: got [%d %d], want [2 1]", list[0].ID, list[1].ID)
	}
	// Descriptions stay with their tasks
	if list[0].Description != "a" || list[1].Description != "b" {
		t.Error("descriptions moved during swap")
	}

	if err := list.Swap(1, 9); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPendingAndCountDone(t *testing.T) {
	list := List{
		{ID: 1, Description: "a", Done: true},
		{ID: 2, Description: "b"},
		{ID: 3, Description: "c", Done: true},
	}

	pending := list.Pending()
	if len(pending) != 1 || pending[0].ID != 2 {
		t.Errorf("pending: got %v, want only task 2", pending)
	}
	if got := list.CountDone(); got != 2 {
		t.Errorf("CountDone: got %d, want 2", got)
	}
}

func TestSortByID(t *testing.T) {
	list := List{
		{ID: 3, Description: "c"},
		{ID: 1, Description: "a"},
		{ID: 2, Description: "b"},
	}

	list.SortByID()
	for i, want := range []uint32{1, 2, 3} {
		if list[i].ID != want {
			t.Errorf("position %d: got id %d, want %d", i, list[i].ID, want)
		}
	}
}
