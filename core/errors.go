package core

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Bootstrap failures. Every one of these is terminal for the run; there is
// no retry logic anywhere in the runtime.
var (
	// ErrInstanceCreation is returned when the native instance call fails,
	// for example on a missing loader or an unsupported API version.
	ErrInstanceCreation = errors.New("instance creation failed")

	// ErrNoDevices is returned when enumeration yields no physical devices.
	ErrNoDevices = errors.New("no physical devices available")

	// ErrQueueFamilyNotFound is returned when no queue family supports
	// both graphics and compute. The device is unusable for the runtime.
	ErrQueueFamilyNotFound = errors.New("no queue family supports graphics and compute")

	// ErrDeviceCreation is returned on native logical device failure.
	// Repeating the call with identical parameters fails identically.
	ErrDeviceCreation = errors.New("logical device creation failed")

	// ErrSurfaceCreation is returned when binding a surface to the window fails.
	ErrSurfaceCreation = errors.New("surface creation failed")

	// ErrSwapchainCreation is returned on native swapchain failure.
	ErrSwapchainCreation = errors.New("swapchain creation failed")

	// ErrImageViewCreation is returned when a swapchain image view cannot
	// be created.
	ErrImageViewCreation = errors.New("image view creation failed")

	// ErrValidationLayerUnavailable is returned when debug mode requests
	// the validation layer and the host does not provide it. This reflects
	// a misconfigured installation, not a runtime condition.
	ErrValidationLayerUnavailable = errors.New("validation layer unavailable")
)

// MissingExtensionsError reports required device extensions the selected
// physical device does not support. Selection does not fall back to a
// lower-scored device.
type MissingExtensionsError struct {
	Missing []string
}

func (e *MissingExtensionsError) Error() string {
	return "device is missing required extensions: " + strings.Join(e.Missing, ", ")
}
