package sector

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// SliceEvent describes the pointer interaction that selected a slice.
type SliceEvent struct {
	// Index is the selected record index.
	Index int
	// X, Y are the release point in local coordinates.
	X, Y float64
	// Button is the mouse button, or MouseButtonLeft for touches.
	Button MouseButton
	// PointerID is 0 for the mouse and 1-9 for touches.
	PointerID int
}

// chartPointer tracks one pointer's press/release state.
type chartPointer struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hitIndex int
	hasHit   bool
	moved    bool // exceeded the drag dead zone; release won't select
	button   MouseButton
}

// SetDragDeadZone sets how far a pointer may travel between press and
// release, in pixels, before the release stops counting as a selection.
func (c *Chart) SetDragDeadZone(pixels float64) {
	c.dragDeadZone = pixels
}

// Update polls mouse and touch input and dispatches slice selections.
// Call once per frame from your game's Update. A selection fires when a
// pointer is pressed and released over the same slice without leaving the
// drag dead zone.
//
// Pending injected events (see InjectPress) are consumed one per frame
// instead of real input, so scripted interactions behave like real ones.
func (c *Chart) Update() {
	if c.processInjectedInput() {
		return
	}
	c.processMousePointer()
	c.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (c *Chart) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	// Detect which button is pressed. If the pointer is already down, the
	// stored button stays in effect for the whole interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	c.processPointer(0, x, y, pressed, button)
}

// processTouchPointers handles touch input (pointers 1-9).
func (c *Chart) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(c.prevTouchIDs[:0])
	c.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := c.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		c.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	// Release any touch slots no longer active.
	for i := 1; i < maxPointers; i++ {
		if c.touchUsed[i] && !activeSlots[i] {
			ps := &c.pointers[i]
			if ps.down {
				c.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			c.touchUsed[i] = false
			c.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (c *Chart) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if c.touchUsed[i] && c.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !c.touchUsed[i] {
			c.touchUsed[i] = true
			c.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/release state machine for one pointer.
func (c *Chart) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton) {
	ps := &c.pointers[pointerID]

	if pressed && !ps.down {
		// Just pressed — capture the button and the slice under the point
		// for the duration of this interaction.
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.moved = false
		ps.hitIndex, ps.hasHit = c.HitSlice(x, y)
	} else if !pressed && ps.down {
		// Just released — a selection requires press and release over the
		// same slice with no drag in between.
		if !ps.moved && ps.hasHit {
			if idx, ok := c.HitSlice(x, y); ok && idx == ps.hitIndex {
				c.fireSelected(idx, SliceEvent{
					Index:     idx,
					X:         x,
					Y:         y,
					Button:    ps.button,
					PointerID: pointerID,
				})
			}
		}
		ps.down = false
		ps.hasHit = false
		ps.moved = false
	} else if pressed && ps.down {
		// Held — track movement against the dead zone.
		if !ps.moved {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Hypot(dx, dy) > c.dragDeadZone {
				ps.moved = true
			}
		}
		ps.lastX, ps.lastY = x, y
	}
}
