package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mockClock struct {
	time time.Time
}

func (c *mockClock) Now() time.Time {
	return c.time
}

func (c *mockClock) Advance(d time.Duration) {
	c.time = c.time.Add(d)
}

func TestFpsReportsOncePerPeriod(t *testing.T) {
	clock := &mockClock{time: time.Now()}
	var reports []float32
	fps := NewFpsWithClock(time.Second, clock, func(rate float32) {
		reports = append(reports, rate)
	})

	for i := 0; i < 59; i++ {
		clock.Advance(10 * time.Millisecond)
		fps.EndFrame()
	}
	assert.Empty(t, reports)
	assert.Equal(t, 59, fps.frames)

	clock.Advance(410 * time.Millisecond)
	fps.EndFrame()
	if assert.Len(t, reports, 1) {
		assert.InDelta(t, 60.0, reports[0], 1e-3)
	}
	assert.Equal(t, 0, fps.frames)
}

func TestFpsSlowFrame(t *testing.T) {
	clock := &mockClock{time: time.Now()}
	var rate float32
	fps := NewFpsWithClock(time.Second, clock, func(r float32) {
		rate = r
	})
	clock.Advance(2 * time.Second)
	fps.EndFrame()
	assert.InDelta(t, 0.5, rate, 1e-6)
}
