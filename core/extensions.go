package core

import (
	"runtime"

	"github.com/cockroachdb/errors"
)

// Extension and layer names the runtime depends on.
const (
	SwapchainExtension              = "VK_KHR_swapchain"
	DynamicRenderingExtension       = "VK_KHR_dynamic_rendering"
	PortabilityEnumerationExtension = "VK_KHR_portability_enumeration"
	PortabilitySubsetExtension      = "VK_KHR_portability_subset"
	ValidationLayer                 = "VK_LAYER_KHRONOS_validation"
)

// Platform describes the target the runtime executes on. It is built once
// at startup and injected everywhere platform behavior branches, instead of
// build-time conditionals.
type Platform struct {
	// OS is the operating system identifier, normally runtime.GOOS.
	OS string

	// SurfaceExtensions are the instance extensions the windowing layer
	// requires to create surfaces.
	SurfaceExtensions []string
}

// HostPlatform builds the platform descriptor for the running host and the
// given window.
func HostPlatform(window Window) Platform {
	return Platform{
		OS:                runtime.GOOS,
		SurfaceExtensions: window.InstanceExtensions(),
	}
}

// portability reports whether the platform runs Vulkan through a portability
// layer (MoltenVK).
func (p Platform) portability() bool {
	return p.OS == "darwin"
}

// RequiredInstanceExtensions returns the instance extensions the runtime
// needs on the given platform.
func RequiredInstanceExtensions(p Platform) []string {
	extensions := append([]string{}, p.SurfaceExtensions...)
	if p.portability() {
		extensions = append(extensions, PortabilityEnumerationExtension)
	}
	return extensions
}

// RequiredDeviceExtensions returns the device extensions the runtime needs
// on the given platform.
func RequiredDeviceExtensions(p Platform) []string {
	extensions := []string{
		SwapchainExtension,
		DynamicRenderingExtension,
	}
	if p.portability() {
		extensions = append(extensions, PortabilitySubsetExtension)
	}
	return extensions
}

// RequiredLayers returns the instance layers to enable. With debug off the
// set is empty. With debug on the validation layer is required and its
// absence is ErrValidationLayerUnavailable.
func RequiredLayers(gpu GPU, debug bool) ([]string, error) {
	if !debug {
		return nil, nil
	}

	available, err := gpu.AvailableLayers()
	if err != nil {
		return nil, errors.Wrap(err, "layer enumeration")
	}
	for _, layer := range available {
		if layer == ValidationLayer {
			return []string{ValidationLayer}, nil
		}
	}
	return nil, errors.Wrapf(ErrValidationLayerUnavailable, "%s", ValidationLayer)
}
