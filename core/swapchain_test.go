package core_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	qt "github.com/frankban/quicktest"

	"github.com/devlark/ember/core"
)

func bundleConfig(images uint32) core.SwapchainConfiguration {
	return core.SwapchainConfiguration{
		MinImageCount: images,
		Format:        core.DefaultSwapchainFormat,
		ColorSpace:    core.DefaultSwapchainColorSpace,
		Usage:         core.ImageUsageColorAttachment,
		Extent:        core.Extent2D{Width: 1920, Height: 1080},
	}
}

func TestBundleViewPerImage(t *testing.T) {
	c := qt.New(t)

	rec := &recorder{}
	device := &fakeDevice{rec: rec, viewFailIndex: -1}
	surface := &fakeSurface{rec: rec}

	bundle, err := core.CreateSwapchainBundle(device, surface, bundleConfig(3))
	c.Assert(err, qt.IsNil)
	c.Assert(bundle.Images(), qt.HasLen, 3)
	c.Assert(bundle.ImageViews(), qt.HasLen, 3)
	c.Assert(bundle.Extent(), qt.Equals, core.Extent2D{Width: 1920, Height: 1080})
}

func TestBundleViewFailureCleansUp(t *testing.T) {
	c := qt.New(t)

	rec := &recorder{}
	device := &fakeDevice{rec: rec, viewFailIndex: 2}
	surface := &fakeSurface{rec: rec}

	_, err := core.CreateSwapchainBundle(device, surface, bundleConfig(3))
	c.Assert(err, qt.ErrorIs, core.ErrImageViewCreation)

	// Both views created before the failure are destroyed, then the
	// swapchain itself.
	c.Assert(device.destroyedViews, qt.Equals, 2)
	for _, view := range device.createdViews {
		c.Assert(view.destroyed, qt.IsTrue)
	}
	c.Assert(device.swapchains[0].destroyed, qt.IsTrue)
	c.Assert(rec.order, qt.DeepEquals, []string{"view", "view", "swapchain"})
}

func TestBundleImagesFailureDestroysSwapchain(t *testing.T) {
	c := qt.New(t)

	device := &fakeDevice{
		rec:           &recorder{},
		viewFailIndex: -1,
		imagesErr:     errors.Wrap(core.ErrSwapchainCreation, "fake"),
	}

	_, err := core.CreateSwapchainBundle(device, &fakeSurface{}, bundleConfig(3))
	c.Assert(err, qt.ErrorIs, core.ErrSwapchainCreation)
	c.Assert(device.swapchains[0].destroyed, qt.IsTrue)
	c.Assert(device.destroyedViews, qt.Equals, 0)
}

func TestBundleSwapchainFailurePropagates(t *testing.T) {
	c := qt.New(t)

	device := &fakeDevice{
		rec:           &recorder{},
		viewFailIndex: -1,
		swapchainErr:  errors.Wrap(core.ErrSwapchainCreation, "fake"),
	}

	_, err := core.CreateSwapchainBundle(device, &fakeSurface{}, bundleConfig(3))
	c.Assert(err, qt.ErrorIs, core.ErrSwapchainCreation)
	c.Assert(device.swapchains, qt.HasLen, 0)
}

func TestBundleDestroyOrder(t *testing.T) {
	c := qt.New(t)

	rec := &recorder{}
	device := &fakeDevice{rec: rec, viewFailIndex: -1}

	bundle, err := core.CreateSwapchainBundle(device, &fakeSurface{rec: rec}, bundleConfig(3))
	c.Assert(err, qt.IsNil)

	bundle.Destroy()
	c.Assert(rec.order, qt.DeepEquals, []string{"view", "view", "view", "swapchain"})
	c.Assert(bundle.ImageViews(), qt.HasLen, 0)
}
