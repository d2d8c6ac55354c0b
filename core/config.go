package core

// Configuration defines a global runtime configuration setting
type Configuration struct {
	// Debug enables the API validation layers. Requires the validation
	// layer to be installed on the host.
	Debug bool

	Window WindowConfiguration
}

// WindowConfiguration is used to configure the main window
type WindowConfiguration struct {
	Width  uint32
	Height uint32
}

// Swapchain defaults used when the host application does not implement
// SwapchainOptions.
const (
	DefaultSwapchainImages            = 3
	DefaultSwapchainFormat     Format = FormatB8G8R8A8SRGB
	DefaultSwapchainColorSpace        = ColorSpaceSRGBNonlinear
)

// DefaultConfiguration returns the configuration the runtime starts from.
func DefaultConfiguration() Configuration {
	return Configuration{
		Window: WindowConfiguration{
			Width:  1920,
			Height: 1080,
		},
	}
}

// InstanceConfiguration carries the parameters for instance creation.
type InstanceConfiguration struct {
	Extensions []string
	Layers     []string

	// PortabilityEnumeration sets the instance creation flag required
	// alongside the portability enumeration extension.
	PortabilityEnumeration bool
}

// DeviceConfiguration carries the parameters for logical device creation.
// Exactly one queue is requested from QueueFamily, at priority 1.0.
type DeviceConfiguration struct {
	QueueFamily uint32
	Extensions  []string

	// DynamicRendering chains the dynamic rendering feature enable into
	// device creation.
	DynamicRendering bool
}

// SwapchainConfiguration carries the parameters for swapchain creation.
// Present mode is always FIFO, pre-transform identity, composite alpha
// opaque, one array layer, clipped presentation.
type SwapchainConfiguration struct {
	MinImageCount uint32
	Format        Format
	ColorSpace    ColorSpace
	Usage         ImageUsage
	Extent        Extent2D
}
