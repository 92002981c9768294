// Package bench implements the placement board shared by the repair
// mini-games: a set of components, a set of slots, and cursor-driven
// placement with per-slot correctness. The workbench, speed and puzzle
// games differ only in timing, scoring and how they treat a wrong slot.
package bench

import "github.com/digiresist/reboot-arcade/internal/progression"

// Placement is the outcome of one placement attempt.
type Placement int

const (
	PlacementCorrect  Placement = iota // component landed in its target slot
	PlacementWrong                     // wrong slot, accepted (loose mode)
	PlacementRejected                  // wrong slot, refused (strict mode)
	PlacementOccupied                  // slot already holds a component
	PlacementNoItem                    // nothing left to place
)

// Mode controls what a wrong-slot attempt does.
type Mode int

const (
	// Strict refuses wrong placements: the slot stays empty and the
	// component returns to the tray. The real workbench works this way.
	Strict Mode = iota
	// Loose accepts wrong placements into the slot, like the puzzle
	// challenge where a filled-wrong slot costs points.
	Loose
)

// SlotState is one placement target and what currently sits in it.
type SlotState struct {
	progression.Slot
	PlacedID string
}

// Board is the interactive placement surface.
type Board struct {
	mode  Mode
	items []progression.Component
	slots []SlotState

	itemCursor int
	slotCursor int

	mistakes int
}

// NewBoard builds a board from a component tray and a slot list.
func NewBoard(mode Mode, items []progression.Component, slots []progression.Slot) *Board {
	b := &Board{
		mode:  mode,
		items: make([]progression.Component, len(items)),
		slots: make([]SlotState, len(slots)),
	}
	copy(b.items, items)
	for i, s := range slots {
		b.slots[i] = SlotState{Slot: s}
	}
	return b
}

// Items returns the component tray in display order.
func (b *Board) Items() []progression.Component { return b.items }

// Slots returns the slots in display order.
func (b *Board) Slots() []SlotState { return b.slots }

// ItemCursor returns the index of the selected tray component.
func (b *Board) ItemCursor() int { return b.itemCursor }

// SlotCursor returns the index of the selected slot.
func (b *Board) SlotCursor() int { return b.slotCursor }

// Mistakes returns how many wrong placements were attempted.
func (b *Board) Mistakes() int { return b.mistakes }

// NextItem moves the tray cursor forward, skipping placed components.
func (b *Board) NextItem() { b.moveItem(1) }

// PrevItem moves the tray cursor backward, skipping placed components.
func (b *Board) PrevItem() { b.moveItem(-1) }

func (b *Board) moveItem(dir int) {
	if len(b.items) == 0 {
		return
	}
	for i := 0; i < len(b.items); i++ {
		b.itemCursor = (b.itemCursor + dir + len(b.items)) % len(b.items)
		if !b.placed(b.items[b.itemCursor].ID) {
			return
		}
	}
}

// NextSlot moves the slot cursor forward.
func (b *Board) NextSlot() {
	if len(b.slots) > 0 {
		b.slotCursor = (b.slotCursor + 1) % len(b.slots)
	}
}

// PrevSlot moves the slot cursor backward.
func (b *Board) PrevSlot() {
	if len(b.slots) > 0 {
		b.slotCursor = (b.slotCursor - 1 + len(b.slots)) % len(b.slots)
	}
}

// CurrentItem returns the selected unplaced component, if any.
func (b *Board) CurrentItem() (progression.Component, bool) {
	if len(b.items) == 0 {
		return progression.Component{}, false
	}
	it := b.items[b.itemCursor]
	if b.placed(it.ID) {
		// Cursor may rest on a placed item right after placement.
		b.moveItem(1)
		it = b.items[b.itemCursor]
		if b.placed(it.ID) {
			return progression.Component{}, false
		}
	}
	return it, true
}

// CurrentSlot returns the selected slot.
func (b *Board) CurrentSlot() SlotState {
	return b.slots[b.slotCursor]
}

func (b *Board) placed(componentID string) bool {
	for _, s := range b.slots {
		if s.PlacedID == componentID {
			return true
		}
	}
	return false
}

// PlacedCount returns how many slots hold a component.
func (b *Board) PlacedCount() int {
	n := 0
	for _, s := range b.slots {
		if s.PlacedID != "" {
			n++
		}
	}
	return n
}

// CorrectCount returns how many slots hold their matching component.
func (b *Board) CorrectCount() int {
	n := 0
	for _, s := range b.slots {
		if s.PlacedID == "" {
			continue
		}
		for _, it := range b.items {
			if it.ID == s.PlacedID && it.TargetSlot == s.ID {
				n++
				break
			}
		}
	}
	return n
}

// AllPlaced reports whether every slot is filled.
func (b *Board) AllPlaced() bool {
	return b.PlacedCount() == len(b.slots)
}

// AllItemsPlaced reports whether every tray component sits in some slot.
func (b *Board) AllItemsPlaced() bool {
	for _, it := range b.items {
		if !b.placed(it.ID) {
			return false
		}
	}
	return true
}

// TryPlace drops the selected component into the selected slot and
// reports what happened. Wrong placements always count as a mistake; in
// Strict mode they additionally leave the slot empty.
func (b *Board) TryPlace() Placement {
	item, ok := b.CurrentItem()
	if !ok {
		return PlacementNoItem
	}

	slot := &b.slots[b.slotCursor]
	if slot.PlacedID != "" {
		return PlacementOccupied
	}

	if item.TargetSlot == slot.ID {
		slot.PlacedID = item.ID
		return PlacementCorrect
	}

	b.mistakes++
	if b.mode == Strict {
		return PlacementRejected
	}
	slot.PlacedID = item.ID
	return PlacementWrong
}

// Unplace removes the component from whichever slot holds it, returning
// it to the tray. Rolls back a seating whose payment was declined.
func (b *Board) Unplace(componentID string) {
	for i := range b.slots {
		if b.slots[i].PlacedID == componentID {
			b.slots[i].PlacedID = ""
			return
		}
	}
}
