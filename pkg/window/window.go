package window

import (
	"github.com/ThatOtherAndrew/Scanline/internal/models"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Error struct {
	msg string
	err error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

type EventKind int

const (
	EventPointerDown EventKind = iota
	EventKeyDown
)

// Event is a pointer press (X, Y in window pixels) or a key press.
type Event struct {
	Kind EventKind
	X, Y float64
	Key  models.Key
}

type Window struct {
	win    *glfw.Window
	events []Event
}

// New opens a window with a current OpenGL 4.1 core context. It must be
// called from the main OS thread.
func New(title string, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &Error{"failed to initialise glfw", err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &Error{"failed to create window", err}
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &Window{win: win}
	win.SetMouseButtonCallback(w.onMouseButton)
	win.SetKeyCallback(w.onKey)
	win.SetCharCallback(w.onChar)
	return w, nil
}

func (w *Window) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != glfw.Press {
		return
	}
	x, y := w.win.GetCursorPos()
	w.events = append(w.events, Event{Kind: EventPointerDown, X: x, Y: y})
}

// Printable keys arrive through onChar; this only handles keys without a
// character.
func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	var k models.Key
	switch key {
	case glfw.KeyUp:
		k = models.KeyUp
	case glfw.KeyDown:
		k = models.KeyDown
	case glfw.KeyLeft:
		k = models.KeyLeft
	case glfw.KeyRight:
		k = models.KeyRight
	case glfw.KeyEscape:
		if action == glfw.Press {
			w.win.SetShouldClose(true)
		}
		return
	default:
		return
	}
	w.events = append(w.events, Event{Kind: EventKeyDown, Key: k})
}

func (w *Window) onChar(_ *glfw.Window, char rune) {
	w.events = append(w.events, Event{Kind: EventKeyDown, Key: models.Key(char)})
}

// Events returns the input received since the last call.
func (w *Window) Events() []Event {
	events := w.events
	w.events = nil
	return events
}

// GetSize returns the window size in the same units as cursor positions.
func (w *Window) GetSize() (int, int) {
	return w.win.GetSize()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) ContentScale() float32 {
	x, _ := w.win.GetContentScale()
	if x <= 0 {
		return 1
	}
	return x
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.win.GetCursorPos()
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
