package hud

import (
	"log/slog"

	"gridinv/internal/config"
	"gridinv/internal/input"
	"gridinv/internal/inventory"
	"gridinv/internal/item"
	"gridinv/internal/profiling"
	"gridinv/internal/ui/layout"
	"gridinv/internal/ui/widget"

	"github.com/go-gl/mathgl/mgl32"
)

// Features toggles the optional interactions
type Features struct {
	Tooltips bool
	Dragging bool
	Options  bool
}

// Controller is the inventory screen's state machine. It resolves the
// pointer to a slot, tracks drag and options-menu state, and commits
// moves, swaps and item actions to the inventory.
type Controller struct {
	inv      *inventory.Inventory
	grid     layout.Grid
	features Features
	visible  bool

	state       State
	dragSlot    int
	optionsSlot int
	optionsPos  mgl32.Vec2

	hovered int
	pointer mgl32.Vec2

	panelStyle   *config.Style
	tooltipStyle *config.Style
	logger       *slog.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the controller's logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStyles sets the panel and tooltip style overrides; nil keeps the
// default look.
func WithStyles(panel, tooltip *config.Style) Option {
	return func(c *Controller) {
		c.panelStyle = panel
		c.tooltipStyle = tooltip
	}
}

// NewController creates a visible, idle controller over inv.
func NewController(inv *inventory.Inventory, grid layout.Grid, features Features, opts ...Option) *Controller {
	c := &Controller{
		inv:         inv,
		grid:        grid,
		features:    features,
		visible:     true,
		state:       StateIdle,
		dragSlot:    -1,
		optionsSlot: -1,
		hovered:     -1,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromConfig builds the grid and feature set from cfg.
func FromConfig(cfg config.InventoryConfig, inv *inventory.Inventory, opts ...Option) *Controller {
	grid := layout.NewGrid(
		mgl32.Vec2{cfg.OriginX, cfg.OriginY},
		mgl32.Vec2{cfg.SlotWidth, cfg.SlotHeight},
		cfg.Rows, cfg.Cols,
	)
	if cfg.Inset != nil {
		grid.Inset = *cfg.Inset
	}
	if cfg.Gap != nil {
		grid.Gap = *cfg.Gap
	}

	features := Features{Tooltips: cfg.Tooltips, Dragging: cfg.Dragging, Options: cfg.Options}
	opts = append([]Option{WithStyles(cfg.PanelStyle, cfg.TooltipStyle)}, opts...)
	c := NewController(inv, grid, features, opts...)
	c.visible = cfg.Visible
	return c
}

// Grid returns the layout the controller hit-tests against
func (c *Controller) Grid() layout.Grid { return c.grid }

// State returns the current interaction mode
func (c *Controller) State() State { return c.state }

// Visible reports whether the inventory is shown
func (c *Controller) Visible() bool { return c.visible }

// Show makes the inventory visible
func (c *Controller) Show() { c.visible = true }

// Hide hides the inventory and drops any drag or open menu.
func (c *Controller) Hide() {
	c.visible = false
	c.reset()
}

// Toggle flips visibility
func (c *Controller) Toggle() {
	if c.visible {
		c.Hide()
	} else {
		c.Show()
	}
}

// Cancel drops any drag or open menu and keeps the screen shown.
func (c *Controller) Cancel() Result {
	switch c.state {
	case StateDragging:
		slot := c.dragSlot
		c.reset()
		return Result{Kind: ResultDragCancelled, Slot: slot, Target: -1}
	case StateOptionsOpen:
		slot := c.optionsSlot
		c.reset()
		return Result{Kind: ResultMenuClosed, Slot: slot, Target: -1}
	}
	return none()
}

// Active returns the controller while visible and a NullScreen otherwise
func (c *Controller) Active() Screen {
	if !c.visible {
		return &NullScreen{}
	}
	return c
}

// IsActive implements Screen
func (c *Controller) IsActive() bool { return c.visible }

// GetHoveredSlot implements Screen
func (c *Controller) GetHoveredSlot() int { return c.hovered }

// Handle applies one pointer event and reports what it changed.
func (c *Controller) Handle(ev input.Event) Result {
	defer profiling.Track("hud.Handle")()

	if !c.visible {
		return none()
	}

	c.pointer = ev.Pos
	c.hovered = c.slotAt(ev.Pos)

	switch c.state {
	case StateDragging:
		return c.handleDragging(ev)
	case StateOptionsOpen:
		return c.handleOptions(ev)
	default:
		return c.handleIdle(ev)
	}
}

func (c *Controller) handleIdle(ev input.Event) Result {
	switch {
	case ev.Type == input.EventPress && ev.Button == input.ButtonRight:
		if slot := c.occupiedSlotUnder(ev.Pos); slot >= 0 && c.features.Options {
			return c.openOptions(slot, ev.Pos)
		}
	case ev.Type == input.EventDrag && ev.Button == input.ButtonLeft:
		if slot := c.occupiedSlotUnder(ev.Pos); slot >= 0 && c.features.Dragging {
			c.state = StateDragging
			c.dragSlot = slot
			return Result{Kind: ResultDragStarted, Slot: slot, Target: -1, ItemID: c.inv.ItemAt(slot).ID()}
		}
	}
	return none()
}

func (c *Controller) handleDragging(ev input.Event) Result {
	if ev.Type != input.EventRelease || ev.Button != input.ButtonLeft {
		return none()
	}

	from, to := c.dragSlot, c.hovered
	c.reset()

	it := c.inv.ItemAt(from)
	if it == nil || to < 0 || to == from || !c.grid.Panel().Contains(ev.Pos) {
		return Result{Kind: ResultDragCancelled, Slot: from, Target: to}
	}

	kind := ResultMoved
	if c.inv.ItemAt(to) != nil {
		kind = ResultSwapped
	}
	if !c.inv.MoveOrSwap(from, to) {
		return Result{Kind: ResultDragCancelled, Slot: from, Target: to}
	}
	c.logger.Debug("dropped item", "id", it.ID(), "from", from, "to", to, "result", kind)
	return Result{Kind: kind, Slot: from, Target: to, ItemID: it.ID()}
}

func (c *Controller) handleOptions(ev input.Event) Result {
	if ev.Type != input.EventPress {
		return none()
	}

	if ev.Button == input.ButtonRight {
		if slot := c.occupiedSlotUnder(ev.Pos); slot >= 0 {
			return c.openOptions(slot, ev.Pos)
		}
		return none()
	}
	if ev.Button != input.ButtonLeft {
		return none()
	}

	slot := c.optionsSlot
	it := c.inv.ItemAt(slot)
	if it != nil {
		for _, e := range c.menuEntries(it) {
			res := none()
			e.button.OnClick = func() { res = c.activate(e.kind, slot, it) }
			if e.button.HandlePress(ev.Pos) {
				return res
			}
		}
	}

	// Any other left click dismisses the menu
	c.reset()
	return Result{Kind: ResultMenuClosed, Slot: slot, Target: -1}
}

func (c *Controller) openOptions(slot int, pos mgl32.Vec2) Result {
	c.state = StateOptionsOpen
	c.optionsSlot = slot
	c.optionsPos = pos
	return Result{Kind: ResultMenuOpened, Slot: slot, Target: -1, ItemID: c.inv.ItemAt(slot).ID()}
}

func (c *Controller) activate(kind ResultKind, slot int, it item.Item) Result {
	id := it.ID()
	var ok bool
	switch kind {
	case ResultUsed:
		ok = it.Use()
	case ResultEquipped:
		ok = it.Equip()
	case ResultDestroyed:
		ok = it.Destroy()
	}
	c.reset()
	c.logger.Info("item option selected", "action", kind.String(), "id", id, "slot", slot, "ok", ok)
	return Result{Kind: kind, Slot: slot, Target: -1, ItemID: id, OK: ok}
}

type menuEntry struct {
	kind   ResultKind
	button *widget.Button
}

// menuEntries lays out the options menu at the anchor: Use or Equip on
// top, Destroy below.
func (c *Controller) menuEntries(it item.Item) []menuEntry {
	x, y := c.optionsPos.X(), c.optionsPos.Y()

	first := menuEntry{kind: ResultEquipped, button: widget.NewButton("Equip", x, y, MenuWidth, MenuButtonHeight, nil)}
	if it.Consumable() {
		first.kind = ResultUsed
		first.button.Text = "Use"
	}
	destroy := menuEntry{kind: ResultDestroyed, button: widget.NewButton("Destroy", x, y+MenuButtonHeight, MenuWidth, MenuButtonHeight, nil)}
	return []menuEntry{first, destroy}
}

// slotAt is the grid hit-test limited to slots the inventory can hold
func (c *Controller) slotAt(p mgl32.Vec2) int {
	slot := c.grid.SlotAt(p)
	if slot >= c.inv.Capacity() {
		return -1
	}
	return slot
}

// occupiedSlotUnder returns the hovered slot when p is inside its
// rectangle (not the gap around it) and it holds an item, else -1.
func (c *Controller) occupiedSlotUnder(p mgl32.Vec2) int {
	slot := c.slotAt(p)
	if slot < 0 || c.inv.ItemAt(slot) == nil {
		return -1
	}
	if !c.grid.SlotRect(slot).Contains(p) {
		return -1
	}
	return slot
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.dragSlot = -1
	c.optionsSlot = -1
}

// View implements Screen.
func (c *Controller) View() View {
	if !c.visible {
		return View{}
	}

	v := View{
		Visible:      true,
		State:        c.state,
		Hovered:      c.hovered,
		Panel:        c.grid.Panel(),
		Cells:        make([]layout.Rect, c.grid.Cells()),
		PanelStyle:   c.panelStyle,
		TooltipStyle: c.tooltipStyle,
	}
	for i := range v.Cells {
		v.Cells[i] = c.grid.SlotRect(i)
	}

	var dragged *SlotView
	for _, slot := range c.inv.Occupied() {
		it := c.inv.ItemAt(slot)
		sv := SlotView{
			Index:     slot,
			Rect:      c.grid.SlotRect(slot),
			ItemID:    it.ID(),
			Name:      it.Name(),
			Image:     it.Image(),
			Tooltip:   it.Tooltip(),
			Stackable: it.Stackable(),
		}
		if it.Stackable() {
			sv.Count = c.inv.StackAt(slot)
		}
		if c.state == StateDragging && slot == c.dragSlot {
			sv.Dragged = true
			sv.Rect = sv.Rect.CenteredAt(c.pointer)
			dragged = &sv
			continue
		}
		v.Slots = append(v.Slots, sv)
	}
	if dragged != nil {
		v.Slots = append(v.Slots, *dragged)
	}

	if c.state == StateIdle && c.features.Tooltips {
		if it := c.inv.ItemAt(c.hovered); it != nil {
			v.Tooltip = &TooltipView{
				Rect: layout.Rect{Min: c.pointer, Size: mgl32.Vec2{TooltipWidth, TooltipHeight}},
				Text: it.Tooltip(),
			}
		}
	}

	if c.state == StateOptionsOpen && c.features.Options {
		if it := c.inv.ItemAt(c.optionsSlot); it != nil {
			m := &MenuView{
				Slot: c.optionsSlot,
				Rect: layout.Rect{Min: c.optionsPos, Size: mgl32.Vec2{MenuWidth, 2 * MenuButtonHeight}},
			}
			for _, e := range c.menuEntries(it) {
				m.Buttons = append(m.Buttons, ButtonView{
					Label:   e.button.Text,
					Rect:    e.button.Bounds(),
					Hovered: e.button.IsHovered(c.pointer),
				})
			}
			v.Menu = m
		}
	}
	return v
}
