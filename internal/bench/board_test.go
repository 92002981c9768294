package bench

import (
	"testing"

	"github.com/digiresist/reboot-arcade/internal/progression"
)

func testParts() ([]progression.Component, []progression.Slot) {
	items := []progression.Component{
		{ID: "ram", Name: "RAM", TargetSlot: "ram-slot"},
		{ID: "ssd", Name: "SSD", TargetSlot: "storage-slot"},
		{ID: "thermal", Name: "Thermal Paste", TargetSlot: "cpu-slot"},
	}
	slots := []progression.Slot{
		{ID: "ram-slot", Name: "RAM Slot"},
		{ID: "storage-slot", Name: "SATA Port"},
		{ID: "cpu-slot", Name: "CPU Socket"},
	}
	return items, slots
}

func TestStrictRejectsWrongSlot(t *testing.T) {
	items, slots := testParts()
	b := NewBoard(Strict, items, slots)

	// Cursor starts on ram / ram-slot; aim it at the SATA port instead.
	b.NextSlot()
	if got := b.TryPlace(); got != PlacementRejected {
		t.Fatalf("TryPlace = %v, want PlacementRejected", got)
	}
	if b.PlacedCount() != 0 {
		t.Error("strict rejection must not fill the slot")
	}
	if b.Mistakes() != 1 {
		t.Errorf("mistakes = %d, want 1", b.Mistakes())
	}
}

func TestUnplaceReturnsItemToTray(t *testing.T) {
	items, slots := testParts()
	b := NewBoard(Strict, items, slots)

	if got := b.TryPlace(); got != PlacementCorrect {
		t.Fatalf("TryPlace = %v, want PlacementCorrect", got)
	}
	b.Unplace("ram")

	if b.PlacedCount() != 0 {
		t.Error("unplace should empty the slot")
	}
	if got := b.TryPlace(); got != PlacementCorrect {
		t.Errorf("unplaced component should seat again, got %v", got)
	}
	if b.Mistakes() != 0 {
		t.Errorf("unplace is not a mistake, got %d", b.Mistakes())
	}
}

func TestLooseAcceptsWrongSlot(t *testing.T) {
	items, slots := testParts()
	b := NewBoard(Loose, items, slots)

	b.NextSlot()
	if got := b.TryPlace(); got != PlacementWrong {
		t.Fatalf("TryPlace = %v, want PlacementWrong", got)
	}
	if b.PlacedCount() != 1 {
		t.Error("loose mode should fill the slot anyway")
	}
	if b.CorrectCount() != 0 {
		t.Error("wrong placement must not count as correct")
	}
}

func TestPlaceAllCorrectly(t *testing.T) {
	items, slots := testParts()
	b := NewBoard(Strict, items, slots)

	// ram -> ram-slot
	if got := b.TryPlace(); got != PlacementCorrect {
		t.Fatalf("ram placement = %v", got)
	}
	// ssd -> storage-slot (cursor auto-skips placed ram)
	b.NextSlot()
	if got := b.TryPlace(); got != PlacementCorrect {
		t.Fatalf("ssd placement = %v", got)
	}
	// thermal -> cpu-slot
	b.NextSlot()
	if got := b.TryPlace(); got != PlacementCorrect {
		t.Fatalf("thermal placement = %v", got)
	}

	if !b.AllPlaced() || !b.AllItemsPlaced() {
		t.Error("board should be complete")
	}
	if b.CorrectCount() != 3 {
		t.Errorf("correct = %d, want 3", b.CorrectCount())
	}
	if b.Mistakes() != 0 {
		t.Errorf("mistakes = %d, want 0", b.Mistakes())
	}

	if got := b.TryPlace(); got != PlacementNoItem {
		t.Errorf("placing with empty tray = %v, want PlacementNoItem", got)
	}
}

func TestOccupiedSlot(t *testing.T) {
	items, slots := testParts()
	b := NewBoard(Strict, items, slots)

	if got := b.TryPlace(); got != PlacementCorrect {
		t.Fatalf("setup placement failed: %v", got)
	}
	// Tray cursor is now on ssd; ram-slot is still selected and full.
	if got := b.TryPlace(); got != PlacementOccupied {
		t.Errorf("TryPlace into full slot = %v, want PlacementOccupied", got)
	}
	if b.Mistakes() != 0 {
		t.Error("occupied slot is not a mistake")
	}
}

func TestCursorSkipsPlacedItems(t *testing.T) {
	items, slots := testParts()
	b := NewBoard(Strict, items, slots)

	b.TryPlace() // ram placed
	cur, ok := b.CurrentItem()
	if !ok {
		t.Fatal("tray should not be empty")
	}
	if cur.ID == "ram" {
		t.Error("cursor should skip the placed ram stick")
	}
}
