package falling

// Combo tracks consecutive hits within one mini-game session. The
// progression store keeps its own session-wide streak; this one is local
// to a game and dies with it.
type Combo struct {
	current int
	max     int
	divisor int
	unit    int
}

// NewCombo creates a streak counter granting floor(streak/divisor)*unit
// bonus points per hit.
func NewCombo(divisor, unit int) Combo {
	if divisor <= 0 {
		divisor = 5
	}
	return Combo{divisor: divisor, unit: unit}
}

// RecordHit extends the streak and returns the bonus for this hit,
// computed over the streak value before the hit.
func (c *Combo) RecordHit() int {
	bonus := c.current / c.divisor * c.unit
	c.current++
	if c.current > c.max {
		c.max = c.current
	}
	return bonus
}

// RecordMiss resets the streak to zero. The high-water mark is kept.
func (c *Combo) RecordMiss() {
	c.current = 0
}

// Current returns the live streak.
func (c *Combo) Current() int { return c.current }

// Max returns the session high-water mark.
func (c *Combo) Max() int { return c.max }

// Reset clears both the streak and the high-water mark.
func (c *Combo) Reset() {
	c.current = 0
	c.max = 0
}
