package core_test

import (
	"github.com/cockroachdb/errors"

	"github.com/devlark/ember/core"
)

// recorder collects destruction order across the fakes.
type recorder struct {
	order []string
}

func (r *recorder) note(step string) {
	if r == nil {
		return
	}
	r.order = append(r.order, step)
}

type fakeGPU struct {
	rec     *recorder
	layers  []string
	devices []core.PhysicalDevice

	createInstanceErr error
	enumerateErr      error

	instance        *fakeInstance
	lastInstanceCfg core.InstanceConfiguration
}

func newFakeGPU(devices ...core.PhysicalDevice) *fakeGPU {
	return &fakeGPU{rec: &recorder{}, devices: devices}
}

func (g *fakeGPU) AvailableLayers() ([]string, error) {
	return g.layers, nil
}

func (g *fakeGPU) CreateInstance(cfg core.InstanceConfiguration) (core.Instance, error) {
	if g.createInstanceErr != nil {
		return nil, g.createInstanceErr
	}
	g.lastInstanceCfg = cfg
	for _, dev := range g.devices {
		if fake, ok := dev.(*fakePhysicalDevice); ok {
			fake.rec = g.rec
		}
	}
	g.instance = &fakeInstance{
		rec:          g.rec,
		devices:      g.devices,
		enumerateErr: g.enumerateErr,
	}
	return g.instance, nil
}

type fakeInstance struct {
	rec          *recorder
	devices      []core.PhysicalDevice
	enumerateErr error
	destroyed    bool
}

func (i *fakeInstance) PhysicalDevices() ([]core.PhysicalDevice, error) {
	if i.enumerateErr != nil {
		return nil, i.enumerateErr
	}
	return i.devices, nil
}

func (i *fakeInstance) Inner() interface{} { return i }

func (i *fakeInstance) Destroy() {
	i.destroyed = true
	i.rec.note("instance")
}

type fakePhysicalDevice struct {
	rec        *recorder
	props      core.DeviceProperties
	families   []core.QueueFamilyProperties
	extensions []string

	extensionsErr   error
	createDeviceErr error

	// failFirstView makes the created device fail its first image view.
	failFirstView bool

	device        *fakeDevice
	lastDeviceCfg core.DeviceConfiguration
}

// discreteDevice builds a selectable graphics+compute capable device.
func discreteDevice(name string, dim uint32) *fakePhysicalDevice {
	return &fakePhysicalDevice{
		props: core.DeviceProperties{
			Name:                name,
			Type:                core.DeviceTypeDiscreteGPU,
			MaxImageDimension2D: dim,
		},
		families: []core.QueueFamilyProperties{
			{Flags: core.QueueGraphics | core.QueueCompute, Count: 1},
		},
		extensions: []string{
			core.SwapchainExtension,
			core.DynamicRenderingExtension,
			core.PortabilitySubsetExtension,
		},
	}
}

func (d *fakePhysicalDevice) Properties() core.DeviceProperties {
	return d.props
}

func (d *fakePhysicalDevice) QueueFamilies() []core.QueueFamilyProperties {
	return d.families
}

func (d *fakePhysicalDevice) Extensions() ([]string, error) {
	return d.extensions, d.extensionsErr
}

func (d *fakePhysicalDevice) CreateDevice(cfg core.DeviceConfiguration) (core.Device, error) {
	if d.createDeviceErr != nil {
		return nil, d.createDeviceErr
	}
	d.lastDeviceCfg = cfg
	viewFailIndex := -1
	if d.failFirstView {
		viewFailIndex = 0
	}
	d.device = &fakeDevice{rec: d.rec, viewFailIndex: viewFailIndex}
	return d.device, nil
}

type fakeDevice struct {
	rec       *recorder
	destroyed bool

	swapchainErr error
	imagesErr    error

	// viewFailIndex makes the view creation with that ordinal fail;
	// -1 disables.
	viewFailIndex  int
	createdViews   []*fakeImageView
	destroyedViews int

	swapchains []*fakeSwapchain
}

func (d *fakeDevice) Queue(family uint32) core.Queue {
	return &fakeQueue{family: family}
}

func (d *fakeDevice) CreateSwapchain(surface core.Surface, cfg core.SwapchainConfiguration) (core.Swapchain, error) {
	if d.swapchainErr != nil {
		return nil, d.swapchainErr
	}
	swapchain := &fakeSwapchain{rec: d.rec, cfg: cfg, imagesErr: d.imagesErr}
	for i := uint32(0); i < cfg.MinImageCount; i++ {
		swapchain.images = append(swapchain.images, &fakeImage{})
	}
	d.swapchains = append(d.swapchains, swapchain)
	return swapchain, nil
}

func (d *fakeDevice) CreateImageView(image core.Image, format core.Format) (core.ImageView, error) {
	if d.viewFailIndex >= 0 && len(d.createdViews) == d.viewFailIndex {
		return nil, errors.Wrap(core.ErrImageViewCreation, "fake")
	}
	view := &fakeImageView{}
	d.createdViews = append(d.createdViews, view)
	return view, nil
}

func (d *fakeDevice) DestroyImageView(view core.ImageView) {
	d.destroyedViews++
	if fake, ok := view.(*fakeImageView); ok {
		fake.destroyed = true
	}
	d.rec.note("view")
}

func (d *fakeDevice) Inner() interface{} { return d }

func (d *fakeDevice) Destroy() {
	d.destroyed = true
	d.rec.note("device")
}

type fakeQueue struct {
	family uint32
}

func (q *fakeQueue) Family() uint32     { return q.family }
func (q *fakeQueue) Inner() interface{} { return q }

type fakeSwapchain struct {
	rec       *recorder
	cfg       core.SwapchainConfiguration
	images    []core.Image
	imagesErr error
	destroyed bool
}

func (s *fakeSwapchain) Images() ([]core.Image, error) {
	if s.imagesErr != nil {
		return nil, s.imagesErr
	}
	return s.images, nil
}

func (s *fakeSwapchain) Destroy() {
	s.destroyed = true
	s.rec.note("swapchain")
}

type fakeImage struct{}

func (i *fakeImage) Inner() interface{} { return i }

type fakeImageView struct {
	destroyed bool
}

func (v *fakeImageView) Inner() interface{} { return v }

type fakeSurface struct {
	rec       *recorder
	destroyed bool
}

func (s *fakeSurface) Destroy() {
	s.destroyed = true
	s.rec.note("surface")
}

// fakeBatch is one PollEvents return; a non-zero size takes effect before
// the events are handed out, like a real resize would.
type fakeBatch struct {
	events []core.Event
	width  uint32
	height uint32
}

// fakeWindow scripts the frame loop: every PollEvents call consumes one
// batch, and once the batches run out the close flag goes up.
type fakeWindow struct {
	rec            *recorder
	width, height  uint32
	shouldClose    bool
	batches        []fakeBatch
	surface        *fakeSurface
	surfaceErr     error
	surfaceCreated bool
	destroyed      bool
}

func newFakeWindow(width, height uint32) *fakeWindow {
	return &fakeWindow{width: width, height: height}
}

func (w *fakeWindow) ShouldClose() bool { return w.shouldClose }

func (w *fakeWindow) SetShouldClose(close bool) { w.shouldClose = close }

func (w *fakeWindow) FramebufferSize() (uint32, uint32) {
	return w.width, w.height
}

func (w *fakeWindow) PollEvents() []core.Event {
	if len(w.batches) == 0 {
		w.shouldClose = true
		return nil
	}
	batch := w.batches[0]
	w.batches = w.batches[1:]
	if batch.width != 0 {
		w.width, w.height = batch.width, batch.height
	}
	return batch.events
}

func (w *fakeWindow) InstanceExtensions() []string {
	return []string{"VK_KHR_surface"}
}

func (w *fakeWindow) CreateSurface(instance core.Instance) (core.Surface, error) {
	if w.surfaceErr != nil {
		return nil, w.surfaceErr
	}
	w.surfaceCreated = true
	w.surface = &fakeSurface{rec: w.rec}
	return w.surface, nil
}

func (w *fakeWindow) Destroy() {
	w.destroyed = true
}

// fakeApp records every callback it receives.
type fakeApp struct {
	title      string
	frames     int
	events     []core.Event
	initCalled bool
	frameErr   error
}

func (a *fakeApp) Title() string { return a.title }

func (a *fakeApp) Frame(ctx *core.AppContext) error {
	a.frames++
	return a.frameErr
}

func (a *fakeApp) Init(ctx *core.AppContext) error {
	a.initCalled = true
	return nil
}

func (a *fakeApp) Event(ctx *core.AppContext, event core.Event) error {
	a.events = append(a.events, event)
	return nil
}

// noAutoCloseApp opts out of the close-on-escape policy.
type noAutoCloseApp struct {
	fakeApp
}

func (a *noAutoCloseApp) ShouldAutoClose() bool { return false }
