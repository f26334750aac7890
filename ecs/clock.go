package ecs

// Clock is the simulation time source. Every timer in the simulation reads
// Now and compares it against a stored deadline; nothing keeps its own
// countdown.
type Clock struct {
	now    float64
	delta  float64
	tick   uint64
	paused bool
}

// Advance moves time forward by dt seconds and bumps the tick counter.
// A paused clock or a non-positive dt leaves the clock untouched.
func (c *Clock) Advance(dt float64) bool {
	if c == nil || c.paused || dt <= 0 {
		return false
	}
	c.now += dt
	c.delta = dt
	c.tick++
	return true
}

// Now returns the elapsed simulation time in seconds.
func (c *Clock) Now() float64 {
	if c == nil {
		return 0
	}
	return c.now
}

// Delta returns the duration of the last advanced tick.
func (c *Clock) Delta() float64 {
	if c == nil {
		return 0
	}
	return c.delta
}

// Tick returns how many ticks have been advanced.
func (c *Clock) Tick() uint64 {
	if c == nil {
		return 0
	}
	return c.tick
}

func (c *Clock) Pause() {
	if c != nil {
		c.paused = true
	}
}

func (c *Clock) Resume() {
	if c != nil {
		c.paused = false
	}
}

func (c *Clock) Paused() bool {
	return c != nil && c.paused
}
