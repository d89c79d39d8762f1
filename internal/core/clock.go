package core

// Clock converts simulation ticks into elapsed milliseconds.
// Games express their timers in milliseconds and read them from a Clock
// so that behavior stays deterministic regardless of wall time.
type Clock struct {
	tickRate int
	ticks    uint64
}

// NewClock creates a clock running at the given tick rate.
func NewClock(tickRate int) Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Clock{tickRate: tickRate}
}

// Advance moves the clock forward by one tick.
func (c *Clock) Advance() {
	c.ticks++
}

// Ticks returns the number of ticks elapsed.
func (c Clock) Ticks() uint64 {
	return c.ticks
}

// Now returns the elapsed time in milliseconds.
func (c Clock) Now() int64 {
	return int64(c.ticks) * 1000 / int64(c.tickRate)
}

// TickRate returns the clock's tick rate.
func (c Clock) TickRate() int {
	return c.tickRate
}

// MsToTicks converts a duration in milliseconds to a whole number of ticks.
func (c Clock) MsToTicks(ms int64) int {
	return int(ms * int64(c.tickRate) / 1000)
}
