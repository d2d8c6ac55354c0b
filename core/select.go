package core

import (
	log "github.com/sirupsen/logrus"
)

// Score bonuses by device class.
const (
	discreteGPUBonus   = 1000
	integratedGPUBonus = 100
)

// DeviceScore rates a physical device for selection. Discrete GPUs carry a
// large fixed bonus, integrated a smaller one, and the maximum supported 2D
// image dimension breaks ties between devices of the same class.
func DeviceScore(props DeviceProperties) uint32 {
	var score uint32
	switch props.Type {
	case DeviceTypeDiscreteGPU:
		score += discreteGPUBonus
	case DeviceTypeIntegratedGPU:
		score += integratedGPUBonus
	}
	return score + props.MaxImageDimension2D
}

// SelectPhysicalDevice enumerates the physical devices of instance and
// returns the highest scored one, after verifying it supports every
// required device extension. Devices with equal scores silently overwrite
// each other, the last enumerated wins; callers must not rely on stable
// tie-breaking. There is no fallback to a lower-scored device.
func SelectPhysicalDevice(instance Instance, requiredExtensions []string) (PhysicalDevice, error) {
	devices, err := instance.PhysicalDevices()
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, ErrNoDevices
	}

	candidates := make(map[uint32]PhysicalDevice, len(devices))
	for _, device := range devices {
		candidates[DeviceScore(device.Properties())] = device
	}

	var (
		bestScore uint32
		found     bool
	)
	for score := range candidates {
		if !found || score > bestScore {
			bestScore = score
			found = true
		}
	}
	selected := candidates[bestScore]

	missing, err := missingExtensions(selected, requiredExtensions)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, &MissingExtensionsError{Missing: missing}
	}

	props := selected.Properties()
	log.WithFields(log.Fields{
		"device": props.Name,
		"type":   props.Type.String(),
		"score":  bestScore,
	}).Info("physical device selected")

	return selected, nil
}

func missingExtensions(device PhysicalDevice, required []string) ([]string, error) {
	supported, err := device.Extensions()
	if err != nil {
		return nil, err
	}

	actual := make(map[string]struct{}, len(supported))
	for _, extension := range supported {
		actual[extension] = struct{}{}
	}

	var missing []string
	for _, extension := range required {
		if _, ok := actual[extension]; !ok {
			missing = append(missing, extension)
		}
	}
	return missing, nil
}

// FindQueueFamily returns the lowest-indexed queue family advertising both
// graphics and compute capability. Presentation support is assumed to be
// co-located on the same family and is not verified against the surface.
func FindQueueFamily(device PhysicalDevice) (uint32, error) {
	for index, family := range device.QueueFamilies() {
		if family.Flags.Has(QueueGraphics | QueueCompute) {
			return uint32(index), nil
		}
	}
	return 0, ErrQueueFamilyNotFound
}
