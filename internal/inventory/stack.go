package inventory

import "gridinv/internal/item"

// stack holds the units merged into a slot beyond its representative.
// The representative lives in the slot table.
type stack struct {
	merged []item.Item
}

func (st *stack) count() int {
	return 1 + len(st.merged)
}

// find returns the merged unit with the given id
func (st *stack) find(id string) (item.Item, bool) {
	for _, it := range st.merged {
		if it.ID() == id {
			return it, true
		}
	}
	return nil, false
}

// drop removes one unit. A merged id leaves the stack; the
// representative's id gives up the most recently merged unit instead.
func (st *stack) drop(id string) {
	for i, it := range st.merged {
		if it.ID() == id {
			st.merged = append(st.merged[:i], st.merged[i+1:]...)
			return
		}
	}
	st.merged = st.merged[:len(st.merged)-1]
}
