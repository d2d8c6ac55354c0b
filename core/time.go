package core

import (
	"time"

	"github.com/loov/hrtime"
	log "github.com/sirupsen/logrus"
)

// frameReportWindow is the number of frames between timing reports.
const frameReportWindow = 120

// FrameTimer measures frame durations on a monotonic high resolution clock
// and periodically reports the average frame time and rate.
type FrameTimer struct {
	last    time.Duration
	elapsed time.Duration
	frames  int
}

// NewFrameTimer creates a frame timing service.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: hrtime.Now()}
}

// Tick records the end of a frame.
func (t *FrameTimer) Tick() {
	now := hrtime.Now()
	t.elapsed += now - t.last
	t.last = now
	t.frames++

	if t.frames < frameReportWindow {
		return
	}
	average := t.elapsed / time.Duration(t.frames)
	if average > 0 {
		log.WithFields(log.Fields{
			"avg": average.String(),
			"fps": float64(time.Second) / float64(average),
		}).Debug("frame timing")
	}
	t.frames = 0
	t.elapsed = 0
}
