package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/asteroids/camera"
	"github.com/plus3/asteroids/debugui"
	"github.com/plus3/asteroids/input"
)

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	button input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseButtonLeft},
	{ebiten.MouseButtonMiddle, input.MouseButtonMiddle},
	{ebiten.MouseButtonRight, input.MouseButtonRight},
}

var keys = map[ebiten.Key]input.Key{
	ebiten.KeyA:            input.KeyA,
	ebiten.KeyD:            input.KeyD,
	ebiten.KeyS:            input.KeyS,
	ebiten.KeyW:            input.KeyW,
	ebiten.KeyQ:            input.KeyQ,
	ebiten.KeyZ:            input.KeyZ,
	ebiten.KeyR:            input.KeyR,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeyBracketLeft:  input.KeyLeftBracket,
	ebiten.KeyBracketRight: input.KeyRightBracket,
	ebiten.KeyF1:           input.KeyF1,
	ebiten.KeyDigit1:       input.Key1,
	ebiten.KeyDigit2:       input.Key2,
	ebiten.KeyDigit3:       input.Key3,
	ebiten.KeyDigit4:       input.Key4,
}

// poller turns ebiten's polled input state into events. Presses, moves and
// wheel input are withheld while the overlay captures the device; releases are
// always delivered so drags and held keys cannot get stuck.
type poller struct {
	lastCursor mgl32.Vec2
	keyBuf     []ebiten.Key
}

func newPoller() *poller {
	return &poller{}
}

// poll dispatches this frame's events and returns the cursor in clip space.
func (p *poller) poll(h input.Handler, capture debugui.ImguiInputState, size mgl32.Vec2) mgl32.Vec2 {
	x, y := ebiten.CursorPosition()
	cursor := camera.ScreenToClipSpace(mgl32.Vec2{float32(x), float32(y)}, size)

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(mb.ebiten) {
			h.OnMouseReleased(input.MouseEvent{Button: mb.button, Position: cursor})
		}
	}

	if !capture.WantCaptureMouse {
		if cursor != p.lastCursor {
			h.OnMouseMoved(input.MouseEvent{Position: cursor})
		}
		for _, mb := range mouseButtons {
			if inpututil.IsMouseButtonJustPressed(mb.ebiten) {
				h.OnMousePressed(input.MouseEvent{Button: mb.button, Position: cursor})
			}
		}
		if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
			h.OnMouseWheel(input.WheelEvent{Offset: mgl32.Vec2{float32(wx), float32(wy)}})
		}
	}
	p.lastCursor = cursor

	p.keyBuf = inpututil.AppendJustReleasedKeys(p.keyBuf[:0])
	for _, k := range p.keyBuf {
		if key, ok := keys[k]; ok {
			h.OnKeyReleased(input.KeyEvent{Key: key})
		}
	}

	if !capture.WantCaptureKeyboard {
		p.keyBuf = inpututil.AppendJustPressedKeys(p.keyBuf[:0])
		for _, k := range p.keyBuf {
			if key, ok := keys[k]; ok {
				h.OnKeyPressed(input.KeyEvent{Key: key})
			}
		}
	}

	return cursor
}
