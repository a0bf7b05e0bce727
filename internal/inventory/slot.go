package inventory

// Move puts the item in slot from into the empty slot to.
func (inv *Inventory) Move(from, to int) bool {
	if from == to || !inv.validSlot(from) || !inv.validSlot(to) {
		return false
	}
	it, ok := inv.slots[from]
	if !ok {
		return false
	}
	if _, taken := inv.slots[to]; taken {
		return false
	}
	delete(inv.slots, from)
	inv.slots[to] = it
	if st, ok := inv.stacks[from]; ok {
		delete(inv.stacks, from)
		inv.stacks[to] = st
	}
	inv.logger.Debug("moved item", "id", it.ID(), "from", from, "to", to)
	return true
}

// Swap exchanges the items in two occupied slots.
func (inv *Inventory) Swap(a, b int) bool {
	if a == b || !inv.validSlot(a) || !inv.validSlot(b) {
		return false
	}
	itA, okA := inv.slots[a]
	itB, okB := inv.slots[b]
	if !okA || !okB {
		return false
	}
	inv.slots[a], inv.slots[b] = itB, itA
	stA, stackedA := inv.stacks[a]
	stB, stackedB := inv.stacks[b]
	delete(inv.stacks, a)
	delete(inv.stacks, b)
	if stackedA {
		inv.stacks[b] = stA
	}
	if stackedB {
		inv.stacks[a] = stB
	}
	inv.logger.Debug("swapped items", "a", a, "b", b)
	return true
}

// MoveOrSwap drops the item in slot from onto slot to: a move when to is
// empty, a swap otherwise.
func (inv *Inventory) MoveOrSwap(from, to int) bool {
	if _, taken := inv.slots[to]; taken {
		return inv.Swap(from, to)
	}
	return inv.Move(from, to)
}

func (inv *Inventory) validSlot(slot int) bool {
	return slot >= 0 && slot < inv.capacity
}

// lowestFree returns the lowest empty slot index, or -1 when full
func (inv *Inventory) lowestFree() int {
	for i := range inv.capacity {
		if _, taken := inv.slots[i]; !taken {
			return i
		}
	}
	return -1
}
