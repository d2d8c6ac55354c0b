// Copyright (c) 2025 devlark
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"runtime"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/devlark/ember/core"
	"github.com/devlark/ember/device"
)

func init() {
	runtime.LockOSThread()
}

type triangleApp struct{}

func (triangleApp) Title() string {
	return "Triangle"
}

func (triangleApp) Frame(ctx *core.AppContext) error {
	// TODO: acquire the next swapchain image and record drawing once the
	// rendering layer lands.
	return nil
}

func configure() core.Configuration {
	// a missing .env file is fine, the defaults apply
	_ = godotenv.Load()

	cfg := core.DefaultConfiguration()
	if envy.Get("EMBER_DEBUG", "0") == "1" {
		cfg.Debug = true
		log.SetLevel(log.DebugLevel)
	}
	return cfg
}

func main() {
	cfg := configure()

	if err := device.Init(); err != nil {
		log.Fatal(err)
	}
	defer device.Terminate()

	app := triangleApp{}
	window, err := device.NewWindow(app.Title(), cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Destroy()

	gpu, err := core.NewVulkanGPU(device.ProcAddr())
	if err != nil {
		log.Fatal(err)
	}

	if err := core.Run(app, gpu, window, cfg); err != nil {
		log.Fatal(err)
	}
}
