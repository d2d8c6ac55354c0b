package core

import (
	"testing"

	qt "github.com/frankban/quicktest"
	vk "github.com/vulkan-go/vulkan"
)

func TestSafeStrings(t *testing.T) {
	c := qt.New(t)

	c.Assert(safeString("VK_KHR_swapchain"), qt.Equals, "VK_KHR_swapchain\x00")
	c.Assert(safeStrings([]string{"a", "b"}), qt.DeepEquals, []string{"a\x00", "b\x00"})
	c.Assert(safeStrings(nil), qt.HasLen, 0)
}

func TestDeviceTypeMapping(t *testing.T) {
	c := qt.New(t)

	c.Assert(deviceType(vk.PhysicalDeviceTypeDiscreteGpu), qt.Equals, DeviceTypeDiscreteGPU)
	c.Assert(deviceType(vk.PhysicalDeviceTypeIntegratedGpu), qt.Equals, DeviceTypeIntegratedGPU)
	c.Assert(deviceType(vk.PhysicalDeviceTypeCpu), qt.Equals, DeviceTypeCPU)
	c.Assert(deviceType(vk.PhysicalDeviceTypeOther), qt.Equals, DeviceTypeOther)
}

func TestQueueFlagsMapping(t *testing.T) {
	c := qt.New(t)

	flags := queueFlags(vk.QueueFlags(vk.QueueGraphicsBit | vk.QueueComputeBit))
	c.Assert(flags.Has(QueueGraphics|QueueCompute), qt.IsTrue)
	c.Assert(flags.Has(QueueTransfer), qt.IsFalse)

	c.Assert(queueFlags(vk.QueueFlags(vk.QueueTransferBit)).Has(QueueTransfer), qt.IsTrue)
}
