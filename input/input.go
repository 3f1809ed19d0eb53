// Package input defines the plain input events consumed by controllers, independent
// of the window layer that produces them.
package input

import "github.com/go-gl/mathgl/mgl32"

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonRight:
		return "Right"
	}
	return "Unknown"
}

type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyD
	KeyS
	KeyW
	KeyQ
	KeyZ
	KeyR
	KeyTab
	KeyEscape
	KeyLeftBracket
	KeyRightBracket
	KeyF1
	Key1
	Key2
	Key3
	Key4
)

// MouseEvent carries a cursor position and, for press/release, the button.
// Positions are in clip space ([-1, 1] on both axes, +Y up).
type MouseEvent struct {
	Button   MouseButton
	Position mgl32.Vec2
}

type WheelEvent struct {
	Offset mgl32.Vec2
}

type KeyEvent struct {
	Key Key
}

// Handler receives input events. OnMousePressed reports whether the press was
// consumed; a consumed press is not offered to later handlers.
type Handler interface {
	OnMouseMoved(event MouseEvent)
	OnMousePressed(event MouseEvent) bool
	OnMouseReleased(event MouseEvent)
	OnMouseWheel(event WheelEvent)
	OnKeyPressed(event KeyEvent)
	OnKeyReleased(event KeyEvent)
}

// NopHandler ignores every event. Embed it to implement only part of Handler.
type NopHandler struct{}

func (NopHandler) OnMouseMoved(MouseEvent)        {}
func (NopHandler) OnMousePressed(MouseEvent) bool { return false }
func (NopHandler) OnMouseReleased(MouseEvent)     {}
func (NopHandler) OnMouseWheel(WheelEvent)        {}
func (NopHandler) OnKeyPressed(KeyEvent)          {}
func (NopHandler) OnKeyReleased(KeyEvent)         {}
