package core

import (
	log "github.com/sirupsen/logrus"
)

// GpuContext owns the GPU bootstrap chain: instance, selected physical
// device, queue family, logical device and its queue. Construction is
// all-or-nothing; accessors are read-only and there is no mutation after
// construction. Created once at startup, destroyed once at shutdown.
type GpuContext struct {
	gpu         GPU
	instance    Instance
	physical    PhysicalDevice
	queueFamily uint32
	device      Device
	queue       Queue
}

// NewGpuContext acquires the full chain in order. If any step fails, every
// resource acquired before it is destroyed and the error is returned; no
// partially constructed context is ever handed out.
func NewGpuContext(gpu GPU, platform Platform, debug bool) (*GpuContext, error) {
	layers, err := RequiredLayers(gpu, debug)
	if err != nil {
		return nil, err
	}

	instance, err := gpu.CreateInstance(InstanceConfiguration{
		Extensions:             RequiredInstanceExtensions(platform),
		Layers:                 layers,
		PortabilityEnumeration: platform.portability(),
	})
	if err != nil {
		return nil, err
	}

	deviceExtensions := RequiredDeviceExtensions(platform)

	physical, err := SelectPhysicalDevice(instance, deviceExtensions)
	if err != nil {
		instance.Destroy()
		return nil, err
	}

	queueFamily, err := FindQueueFamily(physical)
	if err != nil {
		instance.Destroy()
		return nil, err
	}

	device, err := physical.CreateDevice(DeviceConfiguration{
		QueueFamily:      queueFamily,
		Extensions:       deviceExtensions,
		DynamicRendering: true,
	})
	if err != nil {
		instance.Destroy()
		return nil, err
	}

	log.WithField("queueFamily", queueFamily).Debug("gpu context ready")

	return &GpuContext{
		gpu:         gpu,
		instance:    instance,
		physical:    physical,
		queueFamily: queueFamily,
		device:      device,
		queue:       device.Queue(queueFamily),
	}, nil
}

// GPU returns the API entry point the context was built on.
func (c *GpuContext) GPU() GPU {
	return c.gpu
}

// Instance returns the owned instance.
func (c *GpuContext) Instance() Instance {
	return c.instance
}

// PhysicalDevice returns the selected physical device.
func (c *GpuContext) PhysicalDevice() PhysicalDevice {
	return c.physical
}

// QueueFamily returns the selected queue family index.
func (c *GpuContext) QueueFamily() uint32 {
	return c.queueFamily
}

// Device returns the owned logical device.
func (c *GpuContext) Device() Device {
	return c.device
}

// Queue returns the graphics/compute queue.
func (c *GpuContext) Queue() Queue {
	return c.queue
}

// Destroy releases the chain in reverse acquisition order: logical device
// first, then the instance. The physical device handle has no destroy call
// and is simply dropped.
func (c *GpuContext) Destroy() {
	c.device.Destroy()
	c.physical = nil
	c.instance.Destroy()
}
