package moodboard

// Input is the per-tick pointer and keyboard snapshot consumed by
// Board.Update. Cursor is already projected into world coordinates by the
// host camera.
type Input struct {
	Cursor       Vec2
	Pressed      bool // primary button held this tick
	JustPressed  bool // primary button went down this tick
	JustReleased bool // primary button went up this tick
	Delete       bool // delete key went down this tick
}

// PointerState tracks the pointer in world coordinates and the position it
// was pressed at. The press origin is set on the press edge and cleared once
// the release tick has been processed.
type PointerState struct {
	current  Vec2
	origin   Vec2
	pressing bool
}

// Current returns the pointer position for this tick.
func (p *PointerState) Current() Vec2 {
	return p.current
}

// PressOrigin returns the position the primary button went down at, if the
// button is held.
func (p *PointerState) PressOrigin() (Vec2, bool) {
	return p.origin, p.pressing
}

// IsPressing reports whether a press origin is recorded.
func (p *PointerState) IsPressing() bool {
	return p.pressing
}

// Displacement returns the pointer movement since the press, or the zero
// vector when not pressing.
func (p *PointerState) Displacement() Vec2 {
	if !p.pressing {
		return Vec2{}
	}
	return p.current.Sub(p.origin)
}

// update refreshes the pointer from the tick input. A release keeps the
// origin until endTick so systems can still read the final displacement.
func (p *PointerState) update(in Input) {
	p.current = in.Cursor
	if in.JustPressed {
		p.origin = in.Cursor
		p.pressing = true
	}
}

// cancel drops the press origin outside the normal release tick.
func (p *PointerState) cancel() {
	p.pressing = false
	p.origin = Vec2{}
}

// endTick clears the press origin after a release tick.
func (p *PointerState) endTick(in Input) {
	if in.JustReleased {
		p.pressing = false
		p.origin = Vec2{}
	}
}
