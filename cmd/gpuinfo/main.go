// Copyright (c) 2025 devlark
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/devlark/ember/core"
)

func init() {
	runtime.LockOSThread()
}

// gpuinfo lists the Vulkan devices on the host with the score the runtime
// would rate them at. It runs headless through the default loader lookup.
func main() {
	gpu, err := core.NewVulkanGPU(nil)
	if err != nil {
		log.Fatal(err)
	}

	instance, err := gpu.CreateInstance(core.InstanceConfiguration{})
	if err != nil {
		log.Fatal(err)
	}
	defer instance.Destroy()

	devices, err := instance.PhysicalDevices()
	if err != nil {
		log.Fatal(err)
	}
	if len(devices) == 0 {
		fmt.Fprintln(os.Stderr, "no vulkan devices found")
		os.Exit(1)
	}

	for _, dev := range devices {
		props := dev.Properties()
		extensions, err := dev.Extensions()
		if err != nil {
			log.WithField("device", props.Name).Warn(err)
		}
		fmt.Printf("%-40s %-10s score=%-6d maxDim=%-6d extensions=%d\n",
			props.Name,
			props.Type,
			core.DeviceScore(props),
			props.MaxImageDimension2D,
			len(extensions))
	}
}
