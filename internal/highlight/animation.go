package highlight

import "time"

// Button identifies a press channel.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary

	buttonCount
	// ButtonNone is what ActivePress reports when nothing is pressed.
	ButtonNone Button = -1
)

func (b Button) valid() bool {
	return b >= 0 && b < buttonCount
}

// Channel is one linear press animation: Amount chases Target at a constant rate.
type Channel struct {
	Amount float64
	Target float64
}

// Step moves Amount toward Target by at most delta and never past it.
func (c *Channel) Step(delta float64) {
	if c.Target > c.Amount {
		c.Amount = min(c.Amount+delta, c.Target)
	} else {
		c.Amount = max(c.Amount-delta, c.Target)
	}
}

// Update advances both press channels by the time elapsed since the previous
// call. A clock going backwards counts as no elapsed time.
func (h *Highlight) Update(now time.Time) {
	dt := now.Sub(h.lastUpdate).Seconds()
	h.lastUpdate = now
	if dt < 0 {
		dt = 0
	}

	if !h.AnimationEnabled {
		return
	}

	for i := range h.press {
		h.press[i].Step(h.AnimationSpeed * dt)
	}
}

// Press makes the button's channel head to fully pressed. Unknown buttons are ignored.
func (h *Highlight) Press(b Button) {
	if b.valid() {
		h.press[b].Target = 1
	}
}

// Release makes the button's channel head back to rest.
func (h *Highlight) Release(b Button) {
	if b.valid() {
		h.press[b].Target = 0
	}
}

// Channel returns the current state of the button's press channel.
func (h *Highlight) Channel(b Button) Channel {
	if !b.valid() {
		return Channel{}
	}
	return h.press[b]
}

// SetChannel overwrites a press channel.
func (h *Highlight) SetChannel(b Button, c Channel) {
	if b.valid() {
		h.press[b] = c
	}
}

// ActivePress reports which channel drives the deformation. The primary
// button wins whenever its amount is non-zero, even if the secondary one is
// also moving.
func (h *Highlight) ActivePress() (Button, float64) {
	if a := h.press[ButtonPrimary].Amount; a > 0 {
		return ButtonPrimary, a
	}
	if a := h.press[ButtonSecondary].Amount; a > 0 {
		return ButtonSecondary, a
	}
	return ButtonNone, 0
}
