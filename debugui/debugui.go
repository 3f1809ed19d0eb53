// Package debugui provides the Dear ImGui overlay for the game: construction
// controls, an entity browser and inspector, and performance statistics.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiItem holds a Dear ImGui render function drawn every frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Game input should be ignored while the matching flag is set.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders its items in registration order. Call Render between the
// backend's BeginFrame and EndFrame.
type Overlay struct {
	items      []ImguiItem
	inputState ImguiInputState
	visible    bool
}

func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

func (o *Overlay) Add(render func()) {
	o.items = append(o.items, ImguiItem{Render: render})
}

func (o *Overlay) Len() int { return len(o.items) }

func (o *Overlay) Visible() bool { return o.visible }

func (o *Overlay) SetVisible(visible bool) { o.visible = visible }

func (o *Overlay) Toggle() { o.visible = !o.visible }

// InputState is the capture state observed by the last Render.
func (o *Overlay) InputState() ImguiInputState {
	if !o.visible {
		return ImguiInputState{}
	}
	return o.inputState
}

// Render refreshes the input capture state and draws every item.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.inputState.WantCaptureMouse = io.WantCaptureMouse()
	o.inputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if !o.visible {
		return
	}
	for _, item := range o.items {
		item.Render()
	}
}
