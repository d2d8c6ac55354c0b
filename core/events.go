package core

// Event is a window event delivered to the frame loop. Concrete types are
// KeyEvent and ResizeEvent.
type Event interface{}

// Key identifies a keyboard key the runtime cares about.
type Key int

// Known keys; everything else maps to KeyUnknown.
const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
)

// KeyAction distinguishes press from release.
type KeyAction int

// Key actions.
const (
	KeyPress KeyAction = iota
	KeyRelease
)

// KeyEvent is a keyboard press or release.
type KeyEvent struct {
	Key    Key
	Action KeyAction
}

// ResizeEvent reports a framebuffer size change. The runtime consumes it to
// rebuild the swapchain; it is never forwarded to the application.
type ResizeEvent struct {
	Width  uint32
	Height uint32
}

// Window is the windowing collaborator the frame loop drives. The
// production implementation lives in the device package; tests substitute
// their own. One goroutine owns the window.
type Window interface {
	// ShouldClose reports the window close flag.
	ShouldClose() bool

	// SetShouldClose sets the window close flag.
	SetShouldClose(close bool)

	// FramebufferSize returns the current framebuffer size in pixels.
	FramebufferSize() (uint32, uint32)

	// PollEvents pumps the platform event queue and drains the pending
	// events. A platform quit request sets the close flag instead of
	// being surfaced as an event.
	PollEvents() []Event

	// InstanceExtensions returns the instance extensions the platform
	// needs for surface creation.
	InstanceExtensions() []string

	// CreateSurface binds a presentation surface to the window.
	CreateSurface(instance Instance) (Surface, error)

	// Destroy destroys the window.
	Destroy()
}
