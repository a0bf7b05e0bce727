package inventory

import (
	"log/slog"
	"sort"

	"gridinv/internal/item"
)

// Inventory is a bounded slot table plus a stack table. Slot indices range over [0, Capacity) and stay where they were
// put; removals leave gaps that later inserts fill lowest-first.
//
// Inventory is not safe for concurrent use. It is driven from the frame
// loop only.
type Inventory struct {
	capacity int
	// slot index -> item
	slots map[int]item.Item
	// slot index -> stack, only for slots holding a stackable item
	stacks map[int]*stack

	logger *slog.Logger
}

// Option configures inventory construction.
type Option func(*Inventory)

// WithLogger sets the logger used for slot bookkeeping messages.
func WithLogger(logger *slog.Logger) Option {
	return func(inv *Inventory) {
		if logger != nil {
			inv.logger = logger
		}
	}
}

// New creates an empty inventory holding at most capacity occupied slots.
func New(capacity int, opts ...Option) *Inventory {
	inv := &Inventory{
		capacity: max(capacity, 0),
		slots:    make(map[int]item.Item),
		stacks:   make(map[int]*stack),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Capacity returns the maximum number of occupied slots
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// Len returns the number of occupied slots. A stack counts once.
func (inv *Inventory) Len() int {
	return len(inv.slots)
}

// ItemAt returns the item in the given slot, or nil if the slot is empty
// or out of range.
func (inv *Inventory) ItemAt(slot int) item.Item {
	if !inv.validSlot(slot) {
		return nil
	}
	return inv.slots[slot]
}

// Occupied returns the occupied slot indices in ascending order.
func (inv *Inventory) Occupied() []int {
	keys := make([]int, 0, len(inv.slots))
	for k := range inv.slots {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Insert adds an item to the inventory. A stackable item whose name
// matches a held stack joins that stack instead of taking a slot.
// Returns false when the inventory is full, including for stack merges.
func (inv *Inventory) Insert(it item.Item) bool {
	if it == nil {
		return false
	}
	if len(inv.slots) >= inv.capacity {
		inv.logger.Debug("inventory full", "id", it.ID(), "capacity", inv.capacity)
		return false
	}

	if it.Stackable() {
		if slot := inv.stackSlot(it.Name()); slot >= 0 {
			st := inv.stacks[slot]
			st.merged = append(st.merged, it)
			inv.logger.Debug("stacked item", "id", it.ID(), "name", it.Name(), "slot", slot, "count", st.count())
			return true
		}
	}

	slot := inv.lowestFree()
	if slot < 0 {
		return false
	}
	inv.slots[slot] = it
	if it.Stackable() {
		inv.stacks[slot] = &stack{}
	}
	inv.logger.Debug("inserted item", "id", it.ID(), "slot", slot)
	return true
}

// Remove takes one unit of the item with the given id out of the
// inventory. Stacks above one unit are decremented in place and the
// representative keeps its slot; otherwise the slot is vacated.
func (inv *Inventory) Remove(id string) bool {
	slot := inv.SlotOf(id)
	if slot < 0 {
		return false
	}

	if st, ok := inv.stacks[slot]; ok && st.count() > 1 {
		st.drop(id)
		inv.logger.Debug("unstacked item", "id", id, "slot", slot, "count", st.count())
		return true
	}
	delete(inv.stacks, slot)
	delete(inv.slots, slot)
	inv.logger.Debug("removed item", "id", id, "slot", slot)
	return true
}

// stackSlot returns the slot of the stack whose representative is a
// stackable item named name, or -1.
func (inv *Inventory) stackSlot(name string) int {
	for _, slot := range inv.Occupied() {
		if _, ok := inv.stacks[slot]; !ok {
			continue
		}
		if it := inv.slots[slot]; it.Stackable() && it.Name() == name {
			return slot
		}
	}
	return -1
}
