package core

// Run bootstraps the GPU context and the initial swapchain for app, then
// drives its frame loop until the window close flag is set. Each iteration
// invokes the frame callback, polls the window and dispatches events: an
// escape press closes the window when auto-close applies and ends the tick,
// a framebuffer resize rebuilds the swapchain without reaching the
// application, everything else goes to the application's event handler.
// The loop is strictly sequential; the first error from any step ends the
// run.
func Run(app App, gpu GPU, window Window, cfg Configuration) error {
	ctx, err := NewAppContext(gpu, window, cfg, app)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	if initializer, ok := app.(Initializer); ok {
		if err := initializer.Init(ctx); err != nil {
			return err
		}
	}

	timer := NewFrameTimer()
	for !window.ShouldClose() {
		if err := app.Frame(ctx); err != nil {
			return err
		}
		timer.Tick()

		for _, event := range window.PollEvents() {
			if key, ok := event.(KeyEvent); ok &&
				key.Key == KeyEscape && key.Action == KeyPress && shouldAutoClose(app) {
				window.SetShouldClose(true)
				break
			}
			if _, ok := event.(ResizeEvent); ok {
				if err := ctx.RecreateSwapchain(app); err != nil {
					return err
				}
				continue
			}
			if handler, ok := app.(EventHandler); ok {
				if err := handler.Event(ctx, event); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
