package device

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	vk "github.com/vulkan-go/vulkan"

	"github.com/devlark/ember/core"
)

// Init brings up SDL video and events and loads the Vulkan library. Must be
// called on the main OS thread before any window is created.
func Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return errors.Wrap(err, "sdl.Init")
	}
	if err := sdl.VulkanLoadLibrary(""); err != nil {
		return errors.Wrap(err, "sdl.VulkanLoadLibrary")
	}
	return nil
}

// Terminate unloads the Vulkan library and shuts SDL down.
func Terminate() {
	sdl.VulkanUnloadLibrary()
	sdl.Quit()
}

// ProcAddr returns the vkGetInstanceProcAddr pointer from the loaded
// Vulkan library, for core.NewVulkanGPU.
func ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// Window is the SDL implementation of core.Window.
type Window struct {
	window      *sdl.Window
	shouldClose bool
}

// NewWindow creates a resizable Vulkan-capable window.
func NewWindow(title string, width, height uint32) (*Window, error) {
	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(width),
		int32(height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		return nil, errors.Wrap(err, "sdl.CreateWindow")
	}
	return &Window{window: window}, nil
}

// ShouldClose implements interface
func (w *Window) ShouldClose() bool {
	return w.shouldClose
}

// SetShouldClose implements interface
func (w *Window) SetShouldClose(close bool) {
	w.shouldClose = close
}

// FramebufferSize implements interface
func (w *Window) FramebufferSize() (uint32, uint32) {
	width, height := w.window.VulkanGetDrawableSize()
	return uint32(width), uint32(height)
}

// InstanceExtensions implements interface
func (w *Window) InstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

// CreateSurface implements interface
func (w *Window) CreateSurface(instance core.Instance) (core.Surface, error) {
	inner, ok := instance.Inner().(vk.Instance)
	if !ok {
		return nil, errors.Wrap(core.ErrSurfaceCreation, "instance does not belong to the vulkan driver")
	}
	pSurface, err := w.window.VulkanCreateSurface(inner)
	if err != nil {
		return nil, errors.Wrapf(core.ErrSurfaceCreation, "sdl VulkanCreateSurface: %v", err)
	}
	return core.WrapSurface(instance, pSurface)
}

// PollEvents implements interface. SDL quit requests set the close flag
// instead of surfacing; window size changes surface as core.ResizeEvent
// with the drawable size, which differs from the window size on high-DPI
// displays.
func (w *Window) PollEvents() []core.Event {
	var events []core.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.QuitEvent:
			w.shouldClose = true
		case *sdl.KeyboardEvent:
			action := core.KeyRelease
			if et.Type == sdl.KEYDOWN {
				action = core.KeyPress
			}
			events = append(events, core.KeyEvent{
				Key:    translateKey(et.Keysym.Sym),
				Action: action,
			})
		case *sdl.WindowEvent:
			if et.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				width, height := w.FramebufferSize()
				events = append(events, core.ResizeEvent{
					Width:  width,
					Height: height,
				})
			}
		}
	}
	return events
}

// Destroy implements interface
func (w *Window) Destroy() {
	w.window.Destroy()
}

func translateKey(sym sdl.Keycode) core.Key {
	switch sym {
	case sdl.K_ESCAPE:
		return core.KeyEscape
	case sdl.K_SPACE:
		return core.KeySpace
	case sdl.K_RETURN:
		return core.KeyEnter
	}
	return core.KeyUnknown
}
