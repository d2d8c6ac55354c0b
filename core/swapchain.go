package core

// SwapchainBundle ties a swapchain to the image views created from its
// images. The bundle is created and destroyed as a unit; image handles are
// borrowed from the swapchain while the views are owned and destroyed
// individually. After a successful create there is always exactly one view
// per image, in the same order.
type SwapchainBundle struct {
	device    Device
	swapchain Swapchain
	images    []Image
	views     []ImageView
	extent    Extent2D
}

// CreateSwapchainBundle creates a swapchain for surface plus one 2D color
// view per swapchain image. If any view creation fails, the views created
// so far and the swapchain itself are destroyed before the error returns.
func CreateSwapchainBundle(device Device, surface Surface, cfg SwapchainConfiguration) (*SwapchainBundle, error) {
	swapchain, err := device.CreateSwapchain(surface, cfg)
	if err != nil {
		return nil, err
	}

	images, err := swapchain.Images()
	if err != nil {
		swapchain.Destroy()
		return nil, err
	}

	views := make([]ImageView, 0, len(images))
	for _, image := range images {
		view, err := device.CreateImageView(image, cfg.Format)
		if err != nil {
			for _, created := range views {
				device.DestroyImageView(created)
			}
			swapchain.Destroy()
			return nil, err
		}
		views = append(views, view)
	}

	return &SwapchainBundle{
		device:    device,
		swapchain: swapchain,
		images:    images,
		views:     views,
		extent:    cfg.Extent,
	}, nil
}

// Swapchain returns the owned swapchain.
func (b *SwapchainBundle) Swapchain() Swapchain {
	return b.swapchain
}

// Images returns the swapchain images in presentation order.
func (b *SwapchainBundle) Images() []Image {
	return b.images
}

// ImageViews returns the owned views, one per image, same order.
func (b *SwapchainBundle) ImageViews() []ImageView {
	return b.views
}

// Extent returns the pixel size the bundle was created with.
func (b *SwapchainBundle) Extent() Extent2D {
	return b.extent
}

// Destroy releases the views first, then the swapchain. The images belong
// to the swapchain and are not destroyed individually.
func (b *SwapchainBundle) Destroy() {
	for _, view := range b.views {
		b.device.DestroyImageView(view)
	}
	b.views = nil
	b.images = nil
	b.swapchain.Destroy()
}
