package falling

// Cadence converts a wall-clock interval into a tick counter at the
// host's simulation rate. Games advance their cadences only from Step,
// so a paused or finished game cannot fire one: stopping the tick source
// is the cancellation path, and there is no timer left behind to leak.
type Cadence struct {
	every int
	count int
}

// TicksFor returns how many simulation ticks cover the given interval at
// the given tick rate, never less than one.
func TicksFor(intervalMS, tickRate int) int {
	t := intervalMS * tickRate / 1000
	if t < 1 {
		t = 1
	}
	return t
}

// NewCadence creates a cadence firing every intervalMS at tickRate
// ticks per second.
func NewCadence(intervalMS, tickRate int) *Cadence {
	return &Cadence{every: TicksFor(intervalMS, tickRate)}
}

// Tick advances the cadence by one simulation tick and reports whether
// it fires on this tick.
func (c *Cadence) Tick() bool {
	c.count++
	if c.count >= c.every {
		c.count = 0
		return true
	}
	return false
}

// SetEvery changes the firing period (in ticks), used when the spawn
// interval shortens with level.
func (c *Cadence) SetEvery(ticks int) {
	if ticks < 1 {
		ticks = 1
	}
	c.every = ticks
}

// Reset restarts the counter.
func (c *Cadence) Reset() {
	c.count = 0
}
