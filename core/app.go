package core

// App is implemented by host applications driven by Run. Frame is invoked
// once per loop iteration before events are polled. Optional behavior is
// expressed through the decorator interfaces below; any failure returned
// from a callback aborts the run loop.
type App interface {
	// Title names the main window.
	Title() string

	// Frame runs once per loop iteration.
	Frame(ctx *AppContext) error
}

// Initializer is implemented by applications that need a hook after the
// context is ready and before the first frame.
type Initializer interface {
	Init(ctx *AppContext) error
}

// EventHandler is implemented by applications that consume window events.
// Framebuffer resizes are handled by the runtime and never dispatched here.
type EventHandler interface {
	Event(ctx *AppContext, event Event) error
}

// AutoCloser overrides the close-on-escape policy. Without it the runtime
// closes the window on an escape key press.
type AutoCloser interface {
	ShouldAutoClose() bool
}

// SwapchainOptions overrides the swapchain settings solicited on every
// bundle build. Without it the runtime uses DefaultSwapchainImages,
// DefaultSwapchainFormat and DefaultSwapchainColorSpace.
type SwapchainOptions interface {
	SwapchainImageCount() uint32
	SwapchainFormat() Format
	SwapchainColorSpace() ColorSpace
}

func shouldAutoClose(app App) bool {
	if closer, ok := app.(AutoCloser); ok {
		return closer.ShouldAutoClose()
	}
	return true
}

func swapchainImageCount(app App) uint32 {
	if options, ok := app.(SwapchainOptions); ok {
		return options.SwapchainImageCount()
	}
	return DefaultSwapchainImages
}

func swapchainFormat(app App) Format {
	if options, ok := app.(SwapchainOptions); ok {
		return options.SwapchainFormat()
	}
	return DefaultSwapchainFormat
}

func swapchainColorSpace(app App) ColorSpace {
	if options, ok := app.(SwapchainOptions); ok {
		return options.SwapchainColorSpace()
	}
	return DefaultSwapchainColorSpace
}
