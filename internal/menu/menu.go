package menu

import (
	"errors"
	"sync"
)

// Panel identifies one of the anchored overlay panels
type Panel string

const (
	PanelTenantSwitcher   Panel = "tenant-switcher"
	PanelRecent           Panel = "recent"
	PanelNavigation       Panel = "navigation"
	PanelSearch           Panel = "search"
	PanelNotificationTray Panel = "notification-tray"

	// PanelNone means every panel is closed
	PanelNone Panel = ""
)

// Category identifies a row of the two-level flyout inside the navigation panel
type Category string

const (
	CategoryCore          Category = "core"
	CategoryHR            Category = "hr"
	CategoryCommunication Category = "communication"

	// CategoryNone means no flyout row is hovered
	CategoryNone Category = ""
)

var (
	// ErrUnknownPanel is returned when a caller names a panel outside the fixed set
	ErrUnknownPanel = errors.New("unknown menu panel")
	// ErrUnknownCategory is returned when a caller names a category outside the fixed set
	ErrUnknownCategory = errors.New("unknown flyout category")
)

// validPanels is the fixed top-level panel set
var validPanels = map[Panel]bool{
	PanelTenantSwitcher:   true,
	PanelRecent:           true,
	PanelNavigation:       true,
	PanelSearch:           true,
	PanelNotificationTray: true,
}

// validCategories is the fixed flyout category set
var validCategories = map[Category]bool{
	CategoryCore:          true,
	CategoryHR:            true,
	CategoryCommunication: true,
}

// IsValid returns true if the panel is in the fixed panel set
func (p Panel) IsValid() bool {
	return validPanels[p]
}

// IsValid returns true if the category is in the fixed category set
func (c Category) IsValid() bool {
	return validCategories[c]
}

// Rect is the screen-space bounding box of a panel's trigger element
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// State is a snapshot of the controller. Open is PanelNone when everything is
// closed; Hovered is meaningful only while Open is the navigation panel;
// Anchor is the trigger box captured when the open panel opened.
type State struct {
	Open    Panel    `json:"open"`
	Hovered Category `json:"hovered"`
	Anchor  Rect     `json:"anchor"`
}

// Closed returns true when no panel is open
func (s State) Closed() bool {
	return s.Open == PanelNone
}

// Controller coordinates the overlay panels: at most one top-level panel is
// open at a time, and the flyout hover sub-state lives only under the open
// navigation panel. All transitions are pure and synchronous; none can fail
// once the input names are validated.
//
// The anchor rectangle is captured at open time and not recomputed afterwards,
// so a page scroll while a panel is open leaves the panel where it opened.
type Controller struct {
	mu      sync.Mutex
	open    Panel
	hovered Category
	anchor  Rect
}

// NewController creates a controller with every panel closed
func NewController() *Controller {
	return &Controller{}
}

// State returns the current snapshot
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Toggle handles a click on a panel's trigger. A closed panel opens and forces
// every sibling closed; an already-open panel closes. The trigger's bounding
// box is captured as the panel anchor at open time.
func (c *Controller) Toggle(panel Panel, anchor Rect) (State, error) {
	if !panel.IsValid() {
		return c.State(), ErrUnknownPanel
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open == panel {
		c.reset()
		return c.snapshot(), nil
	}

	c.open = panel
	c.hovered = CategoryNone
	c.anchor = anchor
	return c.snapshot(), nil
}

// Backdrop handles a click outside any panel; everything closes
func (c *Controller) Backdrop() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reset()
	return c.snapshot()
}

// Select handles choosing a navigable item inside any open panel; everything
// closes and the hover sub-state clears.
func (c *Controller) Select() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reset()
	return c.snapshot()
}

// HoverCategory handles the pointer entering a category row. Ignored unless
// the navigation panel is open.
func (c *Controller) HoverCategory(cat Category) (State, error) {
	if !cat.IsValid() {
		return c.State(), ErrUnknownCategory
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open != PanelNavigation {
		return c.snapshot(), nil
	}
	c.hovered = cat
	return c.snapshot(), nil
}

// LeaveCategory handles the pointer leaving a category row without entering a
// sibling row. The flyout re-arms via EnterFlyout, so a pointer moving from
// the row into its flyout sees leave-then-enter and ends on the same category.
func (c *Controller) LeaveCategory() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open == PanelNavigation {
		c.hovered = CategoryNone
	}
	return c.snapshot()
}

// EnterFlyout handles the pointer entering the flyout panel of a category,
// re-arming that category so the flyout does not flicker closed.
func (c *Controller) EnterFlyout(cat Category) (State, error) {
	return c.HoverCategory(cat)
}

// reset returns to the all-closed state. Caller holds the lock.
func (c *Controller) reset() {
	c.open = PanelNone
	c.hovered = CategoryNone
	c.anchor = Rect{}
}

func (c *Controller) snapshot() State {
	return State{
		Open:    c.open,
		Hovered: c.hovered,
		Anchor:  c.anchor,
	}
}
