package frame

import (
	"time"
)

type Callback func(fps float32)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Fps counts rendered frames and reports the rate once per period
type Fps struct {
	clock    Clock
	frames   int
	period   time.Duration
	refTime  time.Time
	callback Callback
}

func NewFps(period time.Duration, callback Callback) *Fps {
	return NewFpsWithClock(period, systemClock{}, callback)
}

func NewFpsWithClock(period time.Duration, clock Clock, callback Callback) *Fps {
	return &Fps{
		clock:    clock,
		period:   period,
		refTime:  clock.Now(),
		callback: callback,
	}
}

// EndFrame records one presented frame
func (fps *Fps) EndFrame() {
	now := fps.clock.Now()
	fps.frames++
	delta := now.Sub(fps.refTime)
	if delta < fps.period {
		return
	}
	rate := float32(float64(fps.frames) / delta.Seconds())
	fps.callback(rate)
	fps.refTime = now
	fps.frames = 0
}
