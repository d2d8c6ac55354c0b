package core

import (
	log "github.com/sirupsen/logrus"
)

// AppContext composes the GpuContext with the live presentation surface and
// the current swapchain bundle. It is handed to the host application on
// every callback. Not safe to share across goroutines; the underlying
// native handles are not reference counted.
type AppContext struct {
	*GpuContext

	window  Window
	surface Surface
	bundle  *SwapchainBundle
}

// NewAppContext bootstraps the GPU context against the given window, binds
// the presentation surface and builds the initial swapchain bundle with the
// settings solicited from app. On any failure everything acquired so far is
// released.
func NewAppContext(gpu GPU, window Window, cfg Configuration, app App) (*AppContext, error) {
	gpuContext, err := NewGpuContext(gpu, HostPlatform(window), cfg.Debug)
	if err != nil {
		return nil, err
	}

	surface, err := window.CreateSurface(gpuContext.Instance())
	if err != nil {
		gpuContext.Destroy()
		return nil, err
	}

	ctx := &AppContext{
		GpuContext: gpuContext,
		window:     window,
		surface:    surface,
	}
	if err := ctx.RecreateSwapchain(app); err != nil {
		surface.Destroy()
		gpuContext.Destroy()
		return nil, err
	}
	return ctx, nil
}

// Window returns the window the context presents to.
func (c *AppContext) Window() Window {
	return c.window
}

// Surface returns the presentation surface.
func (c *AppContext) Surface() Surface {
	return c.surface
}

// Swapchain returns the current swapchain bundle.
func (c *AppContext) Swapchain() *SwapchainBundle {
	return c.bundle
}

// RecreateSwapchain destroys the current bundle, if any, and builds a new
// one sized to the window framebuffer. Format, color space and image count
// come from the host application, with runtime defaults. Called once at
// startup and once per framebuffer resize; there are never two live bundles
// for the surface.
func (c *AppContext) RecreateSwapchain(app App) error {
	if c.bundle != nil {
		c.bundle.Destroy()
		c.bundle = nil
	}

	width, height := c.window.FramebufferSize()
	bundle, err := CreateSwapchainBundle(c.Device(), c.surface, SwapchainConfiguration{
		MinImageCount: swapchainImageCount(app),
		Format:        swapchainFormat(app),
		ColorSpace:    swapchainColorSpace(app),
		Usage:         ImageUsageColorAttachment,
		Extent:        Extent2D{Width: width, Height: height},
	})
	if err != nil {
		return err
	}
	c.bundle = bundle

	log.WithFields(log.Fields{
		"width":  width,
		"height": height,
		"images": len(bundle.Images()),
	}).Debug("swapchain created")
	return nil
}

// Destroy releases the bundle, then the surface, then lets the GpuContext
// tear down its chain.
func (c *AppContext) Destroy() {
	if c.bundle != nil {
		c.bundle.Destroy()
		c.bundle = nil
	}
	c.surface.Destroy()
	c.GpuContext.Destroy()
}
