package state

// Clock counts mutations of a Board. Comparing the current tick with the
// tick recorded at the last save tells whether the drawing has unsaved changes.
type Clock struct {
	counter uint64
	saved   uint64
}

// Tick advances the clock and returns the new value.
func (c *Clock) Tick() uint64 {
	c.counter++
	return c.counter
}

// Now returns the current value without advancing.
func (c *Clock) Now() uint64 {
	return c.counter
}

// MarkSaved records the current value as saved.
func (c *Clock) MarkSaved() {
	c.saved = c.counter
}

// Dirty reports whether the clock moved since the last MarkSaved.
func (c *Clock) Dirty() bool {
	return c.counter != c.saved
}
