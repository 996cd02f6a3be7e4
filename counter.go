package moodboard

// ItemCounter hands out increasing depth values. The most recently created
// or click-selected item gets the highest value and draws on top.
//
// Values are exact integers stored in a float64, so the counter stays exact
// for 2^53 increments.
type ItemCounter struct {
	count float64
}

// Count returns the last value handed out.
func (c *ItemCounter) Count() float64 {
	return c.count
}

// Next increments the counter and returns the new value.
func (c *ItemCounter) Next() float64 {
	c.count++
	return c.count
}
