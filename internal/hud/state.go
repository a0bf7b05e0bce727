package hud

// State is the controller's interaction mode
type State int

const (
	StateIdle State = iota
	StateDragging
	StateOptionsOpen
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateOptionsOpen:
		return "options"
	}
	return "unknown"
}

// ResultKind says what an event did
type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultMenuOpened
	ResultMenuClosed
	ResultDragStarted
	ResultDragCancelled
	ResultMoved
	ResultSwapped
	ResultUsed
	ResultEquipped
	ResultDestroyed
)

var resultNames = [...]string{
	ResultNone:          "none",
	ResultMenuOpened:    "menu_opened",
	ResultMenuClosed:    "menu_closed",
	ResultDragStarted:   "drag_started",
	ResultDragCancelled: "drag_cancelled",
	ResultMoved:         "moved",
	ResultSwapped:       "swapped",
	ResultUsed:          "used",
	ResultEquipped:      "equipped",
	ResultDestroyed:     "destroyed",
}

func (k ResultKind) String() string {
	if k < 0 || int(k) >= len(resultNames) {
		return "unknown"
	}
	return resultNames[k]
}

// Result reports the outcome of one Handle call.
type Result struct {
	Kind ResultKind
	// Slot is the slot acted on: the dragged slot or the menu's slot
	Slot int
	// Target is the drop slot for moves and swaps, -1 otherwise
	Target int
	ItemID string
	// OK is the item callback's return value for menu actions
	OK bool
}

func none() Result {
	return Result{Kind: ResultNone, Slot: -1, Target: -1}
}
