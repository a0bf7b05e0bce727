package hud

import (
	"testing"

	"gridinv/internal/config"
	"gridinv/internal/input"
	"gridinv/internal/inventory"
	"gridinv/internal/item"
	itemmock "gridinv/internal/item/mock"
	"gridinv/internal/ui/layout"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ControllerTestSuite struct {
	suite.Suite

	inv  *inventory.Inventory
	ctrl *Controller

	helmet *item.Basic
	sword  *item.Basic
	potion *item.Basic
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

// 2 rows x 3 cols of 40px slots at the origin, default 5px inset and gap
func testGrid() layout.Grid {
	return layout.NewGrid(mgl32.Vec2{0, 0}, mgl32.Vec2{40, 40}, 2, 3)
}

func allFeatures() Features {
	return Features{Tooltips: true, Dragging: true, Options: true}
}

func center(slot int) mgl32.Vec2 {
	return testGrid().SlotRect(slot).Center()
}

func press(b input.Button, p mgl32.Vec2) input.Event {
	return input.Event{Type: input.EventPress, Button: b, Pos: p}
}

func release(b input.Button, p mgl32.Vec2) input.Event {
	return input.Event{Type: input.EventRelease, Button: b, Pos: p}
}

func drag(p mgl32.Vec2) input.Event {
	return input.Event{Type: input.EventDrag, Button: input.ButtonLeft, Pos: p}
}

func move(p mgl32.Vec2) input.Event {
	return input.Event{Type: input.EventMove, Button: input.ButtonNone, Pos: p}
}

func (s *ControllerTestSuite) SetupTest() {
	s.inv = inventory.New(6)
	s.helmet = item.NewBasic("0", item.Definition{Name: "Evenstar Helmet", Tooltip: "<b>Evenstar Helmet</b>", Image: "evenstar_helm"}, s.inv)
	s.sword = item.NewBasic("1", item.Definition{Name: "Curtana Novus", Tooltip: "<b>Curtana Novus</b>", Image: "curtana_novus"}, s.inv)
	s.potion = item.NewBasic("4", item.Definition{Name: "X-Potion", Tooltip: "<b>X-Potion</b>", Image: "x_potion", Consumable: true, Stackable: true}, s.inv)

	s.Require().True(s.inv.Insert(s.helmet)) // slot 0
	s.Require().True(s.inv.Insert(s.sword))  // slot 1
	s.Require().True(s.inv.Insert(s.potion)) // slot 2
	s.Require().True(s.inv.Insert(item.NewBasic("5", item.Definition{Name: "X-Potion", Consumable: true, Stackable: true}, s.inv)))

	s.ctrl = NewController(s.inv, testGrid(), allFeatures())
}

// dragFrom starts a drag on slot and returns the result of the drag event
func (s *ControllerTestSuite) dragFrom(slot int) Result {
	s.ctrl.Handle(press(input.ButtonLeft, center(slot)))
	return s.ctrl.Handle(drag(center(slot).Add(mgl32.Vec2{1, 1})))
}

func (s *ControllerTestSuite) TestDragOntoOccupiedSlotSwaps() {
	res := s.dragFrom(0)
	s.Equal(ResultDragStarted, res.Kind)
	s.Equal(StateDragging, s.ctrl.State())

	s.ctrl.Handle(drag(center(1)))
	res = s.ctrl.Handle(release(input.ButtonLeft, center(1)))

	s.Equal(ResultSwapped, res.Kind)
	s.Equal(0, res.Slot)
	s.Equal(1, res.Target)
	s.Equal(StateIdle, s.ctrl.State())
	s.Same(s.sword, s.inv.ItemAt(0))
	s.Same(s.helmet, s.inv.ItemAt(1))
}

func (s *ControllerTestSuite) TestDragOntoEmptySlotMoves() {
	s.dragFrom(0)
	res := s.ctrl.Handle(release(input.ButtonLeft, center(4)))

	s.Equal(ResultMoved, res.Kind)
	s.Equal("0", res.ItemID)
	s.Nil(s.inv.ItemAt(0))
	s.Same(s.helmet, s.inv.ItemAt(4))
}

func (s *ControllerTestSuite) TestDraggedStackKeepsCount() {
	s.dragFrom(2)
	s.ctrl.Handle(release(input.ButtonLeft, center(5)))

	s.Equal(5, s.inv.SlotOf("4"))
	s.Equal(2, s.inv.StackSize("X-Potion"))
}

func (s *ControllerTestSuite) TestReleaseOutsideGridLeavesSlots() {
	s.dragFrom(0)
	res := s.ctrl.Handle(release(input.ButtonLeft, mgl32.Vec2{300, 300}))

	s.Equal(ResultDragCancelled, res.Kind)
	s.Equal(StateIdle, s.ctrl.State())
	s.Same(s.helmet, s.inv.ItemAt(0))
}

func (s *ControllerTestSuite) TestReleaseOnPanelBorderLeavesSlots() {
	s.dragFrom(0)
	res := s.ctrl.Handle(release(input.ButtonLeft, mgl32.Vec2{2, 2}))

	s.Equal(ResultDragCancelled, res.Kind)
	s.Same(s.helmet, s.inv.ItemAt(0))
}

func (s *ControllerTestSuite) TestReleaseOnSourceSlot() {
	s.dragFrom(1)
	res := s.ctrl.Handle(release(input.ButtonLeft, center(1)))

	s.Equal(ResultDragCancelled, res.Kind)
	s.Same(s.sword, s.inv.ItemAt(1))
}

func (s *ControllerTestSuite) TestDragFromEmptySlotIsIgnored() {
	res := s.dragFrom(3)
	s.Equal(ResultNone, res.Kind)
	s.Equal(StateIdle, s.ctrl.State())
}

func (s *ControllerTestSuite) TestDragFromGapIsIgnored() {
	// x=47 lies in the gap to the right of slot 0
	res := s.ctrl.Handle(drag(mgl32.Vec2{47, 20}))
	s.Equal(ResultNone, res.Kind)
}

func (s *ControllerTestSuite) TestDraggingDisabled() {
	s.ctrl = NewController(s.inv, testGrid(), Features{Tooltips: true, Options: true})

	res := s.dragFrom(0)
	s.Equal(ResultNone, res.Kind)
	s.Equal(StateIdle, s.ctrl.State())
}

func (s *ControllerTestSuite) TestRightPressOpensMenu() {
	res := s.ctrl.Handle(press(input.ButtonRight, center(0)))

	s.Equal(ResultMenuOpened, res.Kind)
	s.Equal(0, res.Slot)
	s.Equal(StateOptionsOpen, s.ctrl.State())

	v := s.ctrl.View()
	s.Require().NotNil(v.Menu)
	s.Equal(center(0), v.Menu.Rect.Min)
	s.Require().Len(v.Menu.Buttons, 2)
	s.Equal("Equip", v.Menu.Buttons[0].Label)
	s.Equal("Destroy", v.Menu.Buttons[1].Label)
	s.Nil(v.Tooltip)
}

func (s *ControllerTestSuite) TestMenuButtonHover() {
	s.ctrl.Handle(press(input.ButtonRight, center(0)))
	m := s.ctrl.View().Menu
	s.Require().NotNil(m)
	s.True(m.Buttons[0].Hovered)
	s.False(m.Buttons[1].Hovered)

	s.ctrl.Handle(move(m.Buttons[1].Rect.Center()))
	m = s.ctrl.View().Menu
	s.False(m.Buttons[0].Hovered)
	s.True(m.Buttons[1].Hovered)
}

func (s *ControllerTestSuite) TestRightPressOnEmptySlot() {
	res := s.ctrl.Handle(press(input.ButtonRight, center(3)))
	s.Equal(ResultNone, res.Kind)
	s.Equal(StateIdle, s.ctrl.State())
}

func (s *ControllerTestSuite) TestOptionsDisabled() {
	s.ctrl = NewController(s.inv, testGrid(), Features{Tooltips: true, Dragging: true})

	res := s.ctrl.Handle(press(input.ButtonRight, center(0)))
	s.Equal(ResultNone, res.Kind)
	s.Nil(s.ctrl.View().Menu)
}

func (s *ControllerTestSuite) TestUseConsumesOneUnit() {
	anchor := center(2)
	s.ctrl.Handle(press(input.ButtonRight, anchor))
	s.Equal("Use", s.ctrl.View().Menu.Buttons[0].Label)

	res := s.ctrl.Handle(press(input.ButtonLeft, anchor.Add(mgl32.Vec2{10, 10})))
	s.Equal(ResultUsed, res.Kind)
	s.True(res.OK)
	s.Equal("4", res.ItemID)
	s.Equal(StateIdle, s.ctrl.State())
	s.Equal(1, s.inv.StackSize("X-Potion"))

	s.ctrl.Handle(press(input.ButtonRight, anchor))
	res = s.ctrl.Handle(press(input.ButtonLeft, anchor.Add(mgl32.Vec2{10, 10})))
	s.Equal(ResultUsed, res.Kind)
	s.True(res.OK)
	s.False(s.inv.ContainsName("X-Potion"))
}

func (s *ControllerTestSuite) TestDestroyVacatesSlot() {
	anchor := center(1)
	s.ctrl.Handle(press(input.ButtonRight, anchor))

	res := s.ctrl.Handle(press(input.ButtonLeft, anchor.Add(mgl32.Vec2{10, MenuButtonHeight + 5})))
	s.Equal(ResultDestroyed, res.Kind)
	s.True(res.OK)
	s.False(s.inv.ContainsID("1"))
	s.Nil(s.inv.ItemAt(1))
}

func (s *ControllerTestSuite) TestEquipKeepsItem() {
	anchor := center(0)
	s.ctrl.Handle(press(input.ButtonRight, anchor))

	res := s.ctrl.Handle(press(input.ButtonLeft, anchor.Add(mgl32.Vec2{5, 5})))
	s.Equal(ResultEquipped, res.Kind)
	s.True(res.OK)
	s.Same(s.helmet, s.inv.ItemAt(0))
}

func (s *ControllerTestSuite) TestLeftClickOutsideMenuCloses() {
	s.ctrl.Handle(press(input.ButtonRight, center(0)))

	res := s.ctrl.Handle(press(input.ButtonLeft, mgl32.Vec2{300, 10}))
	s.Equal(ResultMenuClosed, res.Kind)
	s.Equal(StateIdle, s.ctrl.State())
	s.Nil(s.ctrl.View().Menu)
	s.Same(s.helmet, s.inv.ItemAt(0))
}

func (s *ControllerTestSuite) TestRightPressRetargetsMenu() {
	s.ctrl.Handle(press(input.ButtonRight, center(0)))
	res := s.ctrl.Handle(press(input.ButtonRight, center(2)))

	s.Equal(ResultMenuOpened, res.Kind)
	s.Equal(2, res.Slot)
	s.Equal(2, s.ctrl.View().Menu.Slot)
}

func (s *ControllerTestSuite) TestReleaseDoesNotCommitWhileMenuOpen() {
	s.ctrl.Handle(press(input.ButtonRight, center(0)))

	res := s.ctrl.Handle(drag(center(1)))
	s.Equal(ResultNone, res.Kind)
	res = s.ctrl.Handle(release(input.ButtonLeft, center(1)))
	s.Equal(ResultNone, res.Kind)

	s.Equal(StateOptionsOpen, s.ctrl.State())
	s.Same(s.helmet, s.inv.ItemAt(0))
	s.Same(s.sword, s.inv.ItemAt(1))
}

func (s *ControllerTestSuite) TestRightPressIgnoredWhileDragging() {
	s.dragFrom(0)
	res := s.ctrl.Handle(press(input.ButtonRight, center(1)))

	s.Equal(ResultNone, res.Kind)
	s.Equal(StateDragging, s.ctrl.State())
}

func (s *ControllerTestSuite) TestTooltip() {
	s.ctrl.Handle(move(center(0)))
	v := s.ctrl.View()
	s.Require().NotNil(v.Tooltip)
	s.Equal("<b>Evenstar Helmet</b>", v.Tooltip.Text)
	s.Equal(center(0), v.Tooltip.Rect.Min)
	s.Equal(mgl32.Vec2{TooltipWidth, TooltipHeight}, v.Tooltip.Rect.Size)
	s.Equal(0, s.ctrl.GetHoveredSlot())

	s.ctrl.Handle(move(center(3)))
	s.Nil(s.ctrl.View().Tooltip)

	s.ctrl.Handle(move(mgl32.Vec2{500, 500}))
	s.Equal(-1, s.ctrl.GetHoveredSlot())
	s.Nil(s.ctrl.View().Tooltip)
}

func (s *ControllerTestSuite) TestNoTooltipWhileDragging() {
	s.dragFrom(0)
	s.ctrl.Handle(drag(center(1)))
	s.Nil(s.ctrl.View().Tooltip)
}

func (s *ControllerTestSuite) TestTooltipsDisabled() {
	s.ctrl = NewController(s.inv, testGrid(), Features{Dragging: true, Options: true})
	s.ctrl.Handle(move(center(0)))
	s.Nil(s.ctrl.View().Tooltip)
}

func (s *ControllerTestSuite) TestViewSnapshot() {
	v := s.ctrl.View()

	s.True(v.Visible)
	s.Equal(testGrid().Panel(), v.Panel)
	s.Len(v.Cells, 6)
	s.Require().Len(v.Slots, 3)
	s.Equal(0, v.Slots[0].Index)
	s.Equal("evenstar_helm", v.Slots[0].Image)
	s.Equal(0, v.Slots[0].Count)
	s.Equal(2, v.Slots[2].Index)
	s.True(v.Slots[2].Stackable)
	s.Equal(2, v.Slots[2].Count)
}

func (s *ControllerTestSuite) TestViewDraggedSlotFollowsPointer() {
	s.dragFrom(0)
	p := mgl32.Vec2{200, 300}
	s.ctrl.Handle(drag(p))

	v := s.ctrl.View()
	s.Require().Len(v.Slots, 3)
	last := v.Slots[2]
	s.True(last.Dragged)
	s.Equal(0, last.Index)
	s.Equal(p, last.Rect.Center())
}

func (s *ControllerTestSuite) TestHiddenControllerIgnoresEvents() {
	s.ctrl.Hide()

	s.False(s.ctrl.Visible())
	s.False(s.ctrl.Active().IsActive())
	s.Equal(ResultNone, s.ctrl.Handle(press(input.ButtonRight, center(0))).Kind)
	s.False(s.ctrl.View().Visible)

	s.ctrl.Toggle()
	s.True(s.ctrl.Active().IsActive())
	s.Equal(ResultMenuOpened, s.ctrl.Active().Handle(press(input.ButtonRight, center(0))).Kind)

	// Hiding drops the open menu
	s.ctrl.Toggle()
	s.ctrl.Show()
	s.Equal(StateIdle, s.ctrl.State())
}

func (s *ControllerTestSuite) TestCancel() {
	s.Equal(ResultNone, s.ctrl.Cancel().Kind)

	s.dragFrom(0)
	res := s.ctrl.Cancel()
	s.Equal(ResultDragCancelled, res.Kind)
	s.Equal(0, res.Slot)
	s.Equal(StateIdle, s.ctrl.State())
	s.True(s.ctrl.Visible())
	s.Equal(s.helmet, s.inv.ItemAt(0))

	s.ctrl.Handle(press(input.ButtonRight, center(1)))
	res = s.ctrl.Cancel()
	s.Equal(ResultMenuClosed, res.Kind)
	s.Equal(1, res.Slot)
	s.Nil(s.ctrl.View().Menu)
}

func (s *ControllerTestSuite) TestSlotsBeyondCapacityAreNotTargets() {
	small := inventory.New(4)
	s.Require().True(small.Insert(item.NewBasic("a", item.Definition{Name: "Helmet"}, small)))
	ctrl := NewController(small, testGrid(), allFeatures())

	ctrl.Handle(move(center(5)))
	s.Equal(-1, ctrl.GetHoveredSlot())

	ctrl.Handle(press(input.ButtonLeft, center(0)))
	ctrl.Handle(drag(center(0)))
	res := ctrl.Handle(release(input.ButtonLeft, center(5)))
	s.Equal(ResultDragCancelled, res.Kind)
	s.Equal(0, small.SlotOf("a"))
}

func (s *ControllerTestSuite) TestFromConfig() {
	cfg := config.Default().Inventory
	gap := float32(2)
	cfg.Gap = &gap
	cfg.Visible = false
	cfg.PanelStyle = &config.Style{Background: mgl32.Vec4{0, 0, 0, 1}}

	ctrl := FromConfig(cfg, s.inv)
	s.False(ctrl.Visible())
	s.Equal(float32(2), ctrl.Grid().Gap)
	s.Equal(float32(layout.DefaultInset), ctrl.Grid().Inset)
	s.Equal(mgl32.Vec2{cfg.OriginX, cfg.OriginY}, ctrl.Grid().Origin)

	ctrl.Show()
	s.Same(cfg.PanelStyle, ctrl.View().PanelStyle)
}

func TestMenuInvokesItemCallbacks(t *testing.T) {
	mc := gomock.NewController(t)

	m := itemmock.NewMockItem(mc)
	m.EXPECT().ID().Return("m").AnyTimes()
	m.EXPECT().Name().Return("Genji Glove").AnyTimes()
	m.EXPECT().Stackable().Return(false).AnyTimes()
	m.EXPECT().Consumable().Return(false).AnyTimes()
	m.EXPECT().Equip().Return(false).Times(1)

	inv := inventory.New(6)
	if !inv.Insert(m) {
		t.Fatalf("insert failed")
	}
	ctrl := NewController(inv, testGrid(), allFeatures())

	ctrl.Handle(press(input.ButtonRight, center(0)))
	res := ctrl.Handle(press(input.ButtonLeft, center(0).Add(mgl32.Vec2{1, 1})))

	if res.Kind != ResultEquipped {
		t.Fatalf("Expected equipped, got %v", res.Kind)
	}
	if res.OK {
		t.Errorf("Expected callback failure to be reported")
	}
}

func TestNullScreen(t *testing.T) {
	var s Screen = &NullScreen{}
	if s.IsActive() {
		t.Errorf("NullScreen should be inactive")
	}
	if got := s.GetHoveredSlot(); got != -1 {
		t.Errorf("Expected -1, got %d", got)
	}
	if res := s.Handle(press(input.ButtonLeft, mgl32.Vec2{})); res.Kind != ResultNone {
		t.Errorf("Expected none, got %v", res.Kind)
	}
	if s.View().Visible {
		t.Errorf("NullScreen view should be hidden")
	}
}

func TestResultKindString(t *testing.T) {
	if ResultSwapped.String() != "swapped" {
		t.Errorf("Expected swapped, got %s", ResultSwapped.String())
	}
	if ResultKind(99).String() != "unknown" {
		t.Errorf("Expected unknown")
	}
	if StateOptionsOpen.String() != "options" {
		t.Errorf("Expected options, got %s", StateOptionsOpen.String())
	}
}
