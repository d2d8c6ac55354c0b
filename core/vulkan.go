package core

import (
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

// apiVersion is the fixed minimum Vulkan version requested at instance
// creation.
var apiVersion = uint32(vk.MakeVersion(1, 2, 0))

// instanceCreateEnumeratePortabilityBit comes from the registry; the binding
// predates the portability enumeration extension.
const instanceCreateEnumeratePortabilityBit vk.InstanceCreateFlags = 0x00000001

// structureTypePhysicalDeviceDynamicRenderingFeatures likewise predates the
// binding.
const structureTypePhysicalDeviceDynamicRenderingFeatures = 1000044003

// physicalDeviceDynamicRenderingFeatures mirrors the memory layout of
// VkPhysicalDeviceDynamicRenderingFeaturesKHR for the device creation
// pNext chain.
type physicalDeviceDynamicRenderingFeatures struct {
	sType            uint32
	pNext            unsafe.Pointer
	dynamicRendering vk.Bool32
}

// NewVulkanGPU prepares the Vulkan loader and returns the production GPU
// implementation. procAddr is the vkGetInstanceProcAddr pointer obtained
// from the windowing layer; pass nil to use the default loader lookup,
// which is enough for headless work like device enumeration.
func NewVulkanGPU(procAddr unsafe.Pointer) (GPU, error) {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, errors.Wrap(err, "vk.SetDefaultGetInstanceProcAddr")
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}
	if err := vk.Init(); err != nil {
		return nil, errors.Wrap(err, "vk.Init")
	}
	return &vulkanGPU{}, nil
}

type vulkanGPU struct{}

// AvailableLayers implements interface
func (g *vulkanGPU) AvailableLayers() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateInstanceLayerProperties")
	}
	properties := make([]vk.LayerProperties, count)
	if count > 0 {
		if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, properties)); err != nil {
			return nil, errors.Wrap(err, "vk.EnumerateInstanceLayerProperties")
		}
	}

	layers := make([]string, 0, count)
	for _, layer := range properties {
		layer.Deref()
		layers = append(layers, vk.ToString(layer.LayerName[:]))
	}
	return layers, nil
}

// CreateInstance implements interface
func (g *vulkanGPU) CreateInstance(cfg InstanceConfiguration) (Instance, error) {
	var flags vk.InstanceCreateFlags
	if cfg.PortabilityEnumeration {
		flags |= instanceCreateEnumeratePortabilityBit
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		Flags: flags,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			ApiVersion:         apiVersion,
			ApplicationVersion: uint32(vk.MakeVersion(1, 0, 0)),
			PApplicationName:   safeString("ember"),
			PEngineName:        safeString("ember"),
		},
		EnabledExtensionCount:   uint32(len(cfg.Extensions)),
		PpEnabledExtensionNames: safeStrings(cfg.Extensions),
		EnabledLayerCount:       uint32(len(cfg.Layers)),
		PpEnabledLayerNames:     safeStrings(cfg.Layers),
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.Wrapf(ErrInstanceCreation, "vk.CreateInstance: %v", err)
	}
	vk.InitInstance(instance)

	return &vulkanInstance{instance: instance}, nil
}

type vulkanInstance struct {
	instance vk.Instance
}

// PhysicalDevices implements interface
func (i *vulkanInstance) PhysicalDevices() ([]PhysicalDevice, error) {
	var count uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(i.instance, &count, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumeratePhysicalDevices")
	}
	handles := make([]vk.PhysicalDevice, count)
	if count > 0 {
		if err := vk.Error(vk.EnumeratePhysicalDevices(i.instance, &count, handles)); err != nil {
			return nil, errors.Wrap(err, "vk.EnumeratePhysicalDevices")
		}
	}

	devices := make([]PhysicalDevice, len(handles))
	for idx, handle := range handles {
		devices[idx] = &vulkanPhysicalDevice{handle: handle}
	}
	return devices, nil
}

// Inner implements interface
func (i *vulkanInstance) Inner() interface{} {
	return i.instance
}

// Destroy implements interface
func (i *vulkanInstance) Destroy() {
	vk.DestroyInstance(i.instance, nil)
}

type vulkanPhysicalDevice struct {
	handle vk.PhysicalDevice
}

// Properties implements interface
func (d *vulkanPhysicalDevice) Properties() DeviceProperties {
	var properties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(d.handle, &properties)
	properties.Deref()
	properties.Limits.Deref()

	return DeviceProperties{
		Name:                vk.ToString(properties.DeviceName[:]),
		Type:                deviceType(properties.DeviceType),
		VendorID:            properties.VendorID,
		DeviceID:            properties.DeviceID,
		MaxImageDimension2D: properties.Limits.MaxImageDimension2D,
	}
}

// QueueFamilies implements interface
func (d *vulkanPhysicalDevice) QueueFamilies() []QueueFamilyProperties {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(d.handle, &count, nil)
	properties := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(d.handle, &count, properties)

	families := make([]QueueFamilyProperties, 0, count)
	for _, family := range properties {
		family.Deref()
		families = append(families, QueueFamilyProperties{
			Flags: queueFlags(family.QueueFlags),
			Count: family.QueueCount,
		})
	}
	return families
}

// Extensions implements interface
func (d *vulkanPhysicalDevice) Extensions() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(d.handle, "", &count, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateDeviceExtensionProperties")
	}
	properties := make([]vk.ExtensionProperties, count)
	if count > 0 {
		if err := vk.Error(vk.EnumerateDeviceExtensionProperties(d.handle, "", &count, properties)); err != nil {
			return nil, errors.Wrap(err, "vk.EnumerateDeviceExtensionProperties")
		}
	}

	extensions := make([]string, 0, count)
	for _, extension := range properties {
		extension.Deref()
		extensions = append(extensions, vk.ToString(extension.ExtensionName[:]))
	}
	return extensions, nil
}

// CreateDevice implements interface
func (d *vulkanPhysicalDevice) CreateDevice(cfg DeviceConfiguration) (Device, error) {
	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: cfg.QueueFamily,
		QueueCount:       1,
		PQueuePriorities: []float32{1.0},
	}}

	deviceInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(cfg.Extensions)),
		PpEnabledExtensionNames: safeStrings(cfg.Extensions),
		PEnabledFeatures:        []vk.PhysicalDeviceFeatures{{}},
	}

	var dynamicRendering *physicalDeviceDynamicRenderingFeatures
	if cfg.DynamicRendering {
		dynamicRendering = &physicalDeviceDynamicRenderingFeatures{
			sType:            structureTypePhysicalDeviceDynamicRenderingFeatures,
			dynamicRendering: vk.True,
		}
		deviceInfo.PNext = unsafe.Pointer(dynamicRendering)
	}

	var device vk.Device
	err := vk.Error(vk.CreateDevice(d.handle, &deviceInfo, nil, &device))
	runtime.KeepAlive(dynamicRendering)
	if err != nil {
		return nil, errors.Wrapf(ErrDeviceCreation, "vk.CreateDevice: %v", err)
	}

	return &vulkanDevice{device: device}, nil
}

type vulkanDevice struct {
	device vk.Device
}

// Queue implements interface
func (d *vulkanDevice) Queue(family uint32) Queue {
	var queue vk.Queue
	vk.GetDeviceQueue(d.device, family, 0, &queue)
	return &vulkanQueue{queue: queue, family: family}
}

// CreateSwapchain implements interface
func (d *vulkanDevice) CreateSwapchain(surface Surface, cfg SwapchainConfiguration) (Swapchain, error) {
	native, ok := surface.(*vulkanSurface)
	if !ok {
		return nil, errors.Wrap(ErrSwapchainCreation, "surface does not belong to the vulkan driver")
	}

	swapchainInfo := vk.SwapchainCreateInfo{
		SType:           vk.StructureTypeSwapchainCreateInfo,
		Surface:         native.surface,
		MinImageCount:   cfg.MinImageCount,
		ImageFormat:     vk.Format(cfg.Format),
		ImageColorSpace: vk.ColorSpace(cfg.ColorSpace),
		ImageExtent: vk.Extent2D{
			Width:  cfg.Extent.Width,
			Height: cfg.Extent.Height,
		},
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageFlags(cfg.Usage),
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     vk.SurfaceTransformIdentityBit,
		CompositeAlpha:   vk.CompositeAlphaOpaqueBit,
		PresentMode:      vk.PresentModeFifo,
		Clipped:          vk.True,
	}

	var swapchain vk.Swapchain
	if err := vk.Error(vk.CreateSwapchain(d.device, &swapchainInfo, nil, &swapchain)); err != nil {
		return nil, errors.Wrapf(ErrSwapchainCreation, "vk.CreateSwapchain: %v", err)
	}
	return &vulkanSwapchain{device: d.device, swapchain: swapchain}, nil
}

// CreateImageView implements interface
func (d *vulkanDevice) CreateImageView(image Image, format Format) (ImageView, error) {
	native, ok := image.(*vulkanImage)
	if !ok {
		return nil, errors.Wrap(ErrImageViewCreation, "image does not belong to the vulkan driver")
	}

	viewInfo := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    native.image,
		ViewType: vk.ImageViewType2d,
		Format:   vk.Format(format),
		Components: vk.ComponentMapping{
			R: vk.ComponentSwizzleIdentity,
			G: vk.ComponentSwizzleIdentity,
			B: vk.ComponentSwizzleIdentity,
			A: vk.ComponentSwizzleIdentity,
		},
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     vk.ImageAspectFlags(vk.ImageAspectColorBit),
			BaseMipLevel:   0,
			LevelCount:     1,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	}

	var view vk.ImageView
	if err := vk.Error(vk.CreateImageView(d.device, &viewInfo, nil, &view)); err != nil {
		return nil, errors.Wrapf(ErrImageViewCreation, "vk.CreateImageView: %v", err)
	}
	return &vulkanImageView{view: view}, nil
}

// DestroyImageView implements interface
func (d *vulkanDevice) DestroyImageView(view ImageView) {
	if native, ok := view.(*vulkanImageView); ok {
		vk.DestroyImageView(d.device, native.view, nil)
	}
}

// Inner implements interface
func (d *vulkanDevice) Inner() interface{} {
	return d.device
}

// Destroy implements interface
func (d *vulkanDevice) Destroy() {
	vk.DestroyDevice(d.device, nil)
}

type vulkanQueue struct {
	queue  vk.Queue
	family uint32
}

// Family implements interface
func (q *vulkanQueue) Family() uint32 {
	return q.family
}

// Inner implements interface
func (q *vulkanQueue) Inner() interface{} {
	return q.queue
}

type vulkanSwapchain struct {
	device    vk.Device
	swapchain vk.Swapchain
}

// Images implements interface
func (s *vulkanSwapchain) Images() ([]Image, error) {
	var count uint32
	if err := vk.Error(vk.GetSwapchainImages(s.device, s.swapchain, &count, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.GetSwapchainImages")
	}
	handles := make([]vk.Image, count)
	if err := vk.Error(vk.GetSwapchainImages(s.device, s.swapchain, &count, handles)); err != nil {
		return nil, errors.Wrap(err, "vk.GetSwapchainImages")
	}

	images := make([]Image, len(handles))
	for idx, handle := range handles {
		images[idx] = &vulkanImage{image: handle}
	}
	return images, nil
}

// Destroy implements interface
func (s *vulkanSwapchain) Destroy() {
	vk.DestroySwapchain(s.device, s.swapchain, nil)
}

type vulkanImage struct {
	image vk.Image
}

// Inner implements interface
func (i *vulkanImage) Inner() interface{} {
	return i.image
}

type vulkanImageView struct {
	view vk.ImageView
}

// Inner implements interface
func (v *vulkanImageView) Inner() interface{} {
	return v.view
}

type vulkanSurface struct {
	instance vk.Instance
	surface  vk.Surface
}

// Destroy implements interface
func (s *vulkanSurface) Destroy() {
	vk.DestroySurface(s.instance, s.surface, nil)
}

// WrapSurface adopts a VkSurfaceKHR created by the windowing layer and binds
// its lifetime to the given instance.
func WrapSurface(instance Instance, pSurface unsafe.Pointer) (Surface, error) {
	inner, ok := instance.Inner().(vk.Instance)
	if !ok {
		return nil, errors.Wrap(ErrSurfaceCreation, "instance does not belong to the vulkan driver")
	}
	return &vulkanSurface{
		instance: inner,
		surface:  vk.SurfaceFromPointer(uintptr(pSurface)),
	}, nil
}

func deviceType(t vk.PhysicalDeviceType) DeviceType {
	switch t {
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return DeviceTypeIntegratedGPU
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return DeviceTypeDiscreteGPU
	case vk.PhysicalDeviceTypeVirtualGpu:
		return DeviceTypeVirtualGPU
	case vk.PhysicalDeviceTypeCpu:
		return DeviceTypeCPU
	}
	return DeviceTypeOther
}

func queueFlags(flags vk.QueueFlags) QueueFlags {
	var out QueueFlags
	if flags&vk.QueueFlags(vk.QueueGraphicsBit) != 0 {
		out |= QueueGraphics
	}
	if flags&vk.QueueFlags(vk.QueueComputeBit) != 0 {
		out |= QueueCompute
	}
	if flags&vk.QueueFlags(vk.QueueTransferBit) != 0 {
		out |= QueueTransfer
	}
	return out
}

func safeString(s string) string {
	return s + "\x00"
}

func safeStrings(sgs []string) []string {
	safe := make([]string, 0, len(sgs))
	for _, s := range sgs {
		safe = append(safe, s+"\x00")
	}
	return safe
}
