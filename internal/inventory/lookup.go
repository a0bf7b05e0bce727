package inventory

import "gridinv/internal/item"

// SlotOf returns the slot holding the item with the given id, or -1.
// Units merged into a stack resolve to the stack's slot.
func (inv *Inventory) SlotOf(id string) int {
	slot, _ := inv.locate(id)
	return slot
}

// FindByID returns the item with the given id, whether it occupies a
// slot or is merged into a stack.
func (inv *Inventory) FindByID(id string) (item.Item, bool) {
	slot, it := inv.locate(id)
	return it, slot >= 0
}

// ContainsID checks if an item with the given id is held.
func (inv *Inventory) ContainsID(id string) bool {
	return inv.SlotOf(id) >= 0
}

func (inv *Inventory) locate(id string) (int, item.Item) {
	for _, slot := range inv.Occupied() {
		if it := inv.slots[slot]; it.ID() == id {
			return slot, it
		}
		if st, ok := inv.stacks[slot]; ok {
			if it, found := st.find(id); found {
				return slot, it
			}
		}
	}
	return -1, nil
}

// ContainsName checks if at least one item with the given name is held.
func (inv *Inventory) ContainsName(name string) bool {
	for _, it := range inv.slots {
		if it.Name() == name {
			return true
		}
	}
	return false
}

// FindAllByName returns the items with the given name in slot order.
// A stack contributes only its representative item.
func (inv *Inventory) FindAllByName(name string) []item.Item {
	var found []item.Item
	for _, slot := range inv.Occupied() {
		if it := inv.slots[slot]; it.Name() == name {
			found = append(found, it)
		}
	}
	return found
}

// StackSize returns the stack count of a stackable item by name, or 0
// when no stackable item with that name is held.
func (inv *Inventory) StackSize(name string) int {
	slot := inv.stackSlot(name)
	if slot < 0 {
		return 0
	}
	return inv.stacks[slot].count()
}

// StackAt returns the stack count of the slot, or 0 when the slot does
// not hold a stackable item.
func (inv *Inventory) StackAt(slot int) int {
	st, ok := inv.stacks[slot]
	if !ok {
		return 0
	}
	return st.count()
}
