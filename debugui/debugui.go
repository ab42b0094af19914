// Package debugui provides the Dear ImGui windows drawn over the scene and
// reports when ImGui wants the keyboard or mouse for itself.
package debugui

import "github.com/AllenDang/cimgui-go/imgui"

// Window renders one ImGui window. It is called once per frame between the
// backend's BeginFrame and EndFrame.
type Window interface {
	Render(dt float32)
}

// InputState tracks Dear ImGui's input capture state.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// UI owns the debug windows and the input capture state sampled after they
// were built.
type UI struct {
	Input   InputState
	windows []Window
}

// New creates a UI drawing the given windows in order.
func New(windows ...Window) *UI {
	return &UI{windows: windows}
}

// Add appends a window.
func (u *UI) Add(w Window) {
	u.windows = append(u.windows, w)
}

// Render builds every window and then samples whether ImGui captured input.
func (u *UI) Render(dt float32) {
	for _, w := range u.windows {
		w.Render(dt)
	}
	u.Input.Update()
}

// Update samples the capture flags from the current ImGui context.
func (s *InputState) Update() {
	io := imgui.CurrentIO()
	s.WantCaptureMouse = io.WantCaptureMouse()
	s.WantCaptureKeyboard = io.WantCaptureKeyboard()
}
