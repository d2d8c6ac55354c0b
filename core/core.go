package core

// GPU is the entry point to a graphics API implementation. The production
// implementation wraps the Vulkan loader, tests substitute their own.
// Implementations are not safe for concurrent use; one goroutine owns the
// whole object graph below this interface.
type GPU interface {
	// AvailableLayers returns the instance layers present on the host.
	AvailableLayers() ([]string, error)

	// CreateInstance creates the API instance with the requested
	// extensions and layers enabled.
	CreateInstance(cfg InstanceConfiguration) (Instance, error)
}

// Instance describes a created API instance.
type Instance interface {
	// PhysicalDevices enumerates the GPUs available to this instance.
	PhysicalDevices() ([]PhysicalDevice, error)

	// Inner returns the inner handle of the underlying API
	Inner() interface{}

	// Destroy destroys the instance. Must be called after every
	// object created from it has been destroyed.
	Destroy()
}

// PhysicalDevice is a handle to one GPU on the host. It owns no native
// resources and needs no destroy call.
type PhysicalDevice interface {
	// Properties returns the static properties of the device.
	Properties() DeviceProperties

	// QueueFamilies returns the queue families in enumeration order.
	QueueFamilies() []QueueFamilyProperties

	// Extensions returns the device extensions the GPU supports.
	Extensions() ([]string, error)

	// CreateDevice creates a logical device on this GPU.
	CreateDevice(cfg DeviceConfiguration) (Device, error)
}

// Device is a logical device with selected features and extensions enabled.
type Device interface {
	// Queue returns the single queue requested from the given family.
	Queue(family uint32) Queue

	// CreateSwapchain creates a swapchain for the given surface.
	CreateSwapchain(surface Surface, cfg SwapchainConfiguration) (Swapchain, error)

	// CreateImageView creates a 2D color view of a swapchain image.
	CreateImageView(image Image, format Format) (ImageView, error)

	// DestroyImageView destroys a view created by CreateImageView.
	DestroyImageView(view ImageView)

	// Inner returns the inner handle of the underlying API
	Inner() interface{}

	// Destroy destroys the logical device.
	Destroy()
}

// Queue is a device queue obtained from a logical device.
type Queue interface {
	// Family returns the queue family index the queue was created from.
	Family() uint32

	// Inner returns the inner handle of the underlying API
	Inner() interface{}
}

// Surface is a presentation surface bound to a host window.
type Surface interface {
	// Destroy destroys the surface. Must happen before the instance
	// it was created against is destroyed.
	Destroy()
}

// Swapchain is a set of presentable images bound to a surface.
type Swapchain interface {
	// Images returns the images owned by the swapchain. They are
	// borrowed handles and are destroyed with the swapchain itself.
	Images() ([]Image, error)

	// Destroy destroys the swapchain. Views created from its images
	// must be destroyed first.
	Destroy()
}

// Image is an opaque image handle.
type Image interface {
	// Inner returns the inner handle of the underlying API
	Inner() interface{}
}

// ImageView is an opaque image view handle.
type ImageView interface {
	// Inner returns the inner handle of the underlying API
	Inner() interface{}
}

// DeviceType classifies a physical device.
type DeviceType int

// Device type classes, mirroring VkPhysicalDeviceType.
const (
	DeviceTypeOther DeviceType = iota
	DeviceTypeIntegratedGPU
	DeviceTypeDiscreteGPU
	DeviceTypeVirtualGPU
	DeviceTypeCPU
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeIntegratedGPU:
		return "integrated"
	case DeviceTypeDiscreteGPU:
		return "discrete"
	case DeviceTypeVirtualGPU:
		return "virtual"
	case DeviceTypeCPU:
		return "cpu"
	}
	return "other"
}

// QueueFlags describes the capabilities of a queue family.
type QueueFlags uint32

// Queue capability bits.
const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
)

// Has reports whether every bit in flags is set.
func (f QueueFlags) Has(flags QueueFlags) bool {
	return f&flags == flags
}

// DeviceProperties holds the static properties of a physical device used
// during selection and reporting.
type DeviceProperties struct {
	Name                string
	Type                DeviceType
	VendorID            uint32
	DeviceID            uint32
	MaxImageDimension2D uint32
}

// QueueFamilyProperties describes one queue family of a physical device.
type QueueFamilyProperties struct {
	Flags QueueFlags
	Count uint32
}

// Format identifies a pixel format. Values mirror VkFormat.
type Format uint32

// Formats the runtime works with.
const (
	FormatB8G8R8A8UNorm Format = 44
	FormatB8G8R8A8SRGB  Format = 50
)

// ColorSpace identifies a surface color space. Values mirror VkColorSpaceKHR.
type ColorSpace uint32

// ColorSpaceSRGBNonlinear is the standard sRGB presentation color space.
const ColorSpaceSRGBNonlinear ColorSpace = 0

// ImageUsage describes how swapchain images will be used. Values mirror
// VkImageUsageFlagBits.
type ImageUsage uint32

// ImageUsageColorAttachment marks images renderable as color targets.
const ImageUsageColorAttachment ImageUsage = 0x00000010

// Extent2D is a two dimensional size in pixels.
type Extent2D struct {
	Width  uint32
	Height uint32
}
