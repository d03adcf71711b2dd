package scheduling

// ResendCooldownTicks is how many ticks must pass after a code is issued
// before another may be requested.
const ResendCooldownTicks = 60

// Cooldown counts ticks since the last code was issued. The owner drives it
// with Tick or Advance; it never reads a clock. The zero value has never been
// reset and allows a resend. Not safe for concurrent use.
type Cooldown struct {
	started bool
	elapsed int
}

// Reset restarts the countdown at ResendCooldownTicks.
func (c *Cooldown) Reset() {
	c.started = true
	c.elapsed = 0
}

// Tick advances the countdown by a single tick.
func (c *Cooldown) Tick() { c.Advance(1) }

// Advance moves the countdown forward by n ticks. Negative n is ignored.
func (c *Cooldown) Advance(n int) {
	if n <= 0 || !c.started {
		return
	}
	if c.elapsed+n >= ResendCooldownTicks {
		c.elapsed = ResendCooldownTicks
		return
	}
	c.elapsed += n
}

// CanResend reports whether at least ResendCooldownTicks have elapsed.
func (c *Cooldown) CanResend() bool {
	return c.Remaining() == 0
}

// Remaining is the number of ticks left before CanResend turns true.
func (c *Cooldown) Remaining() int {
	if !c.started {
		return 0
	}
	return ResendCooldownTicks - c.elapsed
}
