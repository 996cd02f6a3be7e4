package moodboard

import "testing"

func TestPointerStateLifecycle(t *testing.T) {
	var p PointerState

	p.update(Input{Cursor: Vec2{5, 5}})
	p.endTick(Input{})
	if p.IsPressing() {
		t.Fatal("should not be pressing before a press")
	}
	if d := p.Displacement(); d != (Vec2{}) {
		t.Errorf("Displacement without press = %v, want zero", d)
	}

	press := Input{Cursor: Vec2{10, 20}, Pressed: true, JustPressed: true}
	p.update(press)
	p.endTick(press)
	origin, ok := p.PressOrigin()
	if !ok || origin != (Vec2{10, 20}) {
		t.Fatalf("PressOrigin = %v, %v", origin, ok)
	}

	hold := Input{Cursor: Vec2{15, 10}, Pressed: true}
	p.update(hold)
	p.endTick(hold)
	if d := p.Displacement(); d != (Vec2{5, -10}) {
		t.Errorf("Displacement = %v, want (5,-10)", d)
	}
	if p.Current() != (Vec2{15, 10}) {
		t.Errorf("Current = %v", p.Current())
	}

	rel := Input{Cursor: Vec2{30, 30}, JustReleased: true}
	p.update(rel)
	if d := p.Displacement(); d != (Vec2{20, 10}) {
		t.Errorf("release tick should still see displacement, got %v", d)
	}
	p.endTick(rel)
	if p.IsPressing() {
		t.Error("origin should clear after release tick")
	}
	if _, ok := p.PressOrigin(); ok {
		t.Error("PressOrigin should report !ok after release")
	}
}

func TestItemCounterMonotonic(t *testing.T) {
	var c ItemCounter
	prev := c.Count()
	for i := 0; i < 10; i++ {
		v := c.Next()
		if v <= prev {
			t.Fatalf("Next() = %v after %v", v, prev)
		}
		prev = v
	}
	if c.Count() != 10 {
		t.Errorf("Count = %v, want 10", c.Count())
	}
}
