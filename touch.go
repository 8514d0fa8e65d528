package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleTouchEvents forwards the first touch of a tap as a move and a press.
// Only one touch is honored at a time.
func (a *App) handleTouchEvents() {
	touches := make([]ebiten.TouchID, 0, 8)
	touches = ebiten.AppendTouchIDs(touches)

	// Clean up ended touches
	for id := range a.activeTouches {
		if !containsTouchID(touches, id) {
			delete(a.activeTouches, id)
		}
	}

	pressed := make([]ebiten.TouchID, 0, 8)
	pressed = inpututil.AppendJustPressedTouchIDs(pressed)
	for _, id := range pressed {
		if len(a.activeTouches) > 0 {
			break
		}
		a.activeTouches[id] = true
		x, y := ebiten.TouchPosition(id)
		a.ui.OnMouseMoved(x, y)
		a.ui.OnMousePressed(x, y)
	}
}

// Helper function to check if a TouchID is in a slice
func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
