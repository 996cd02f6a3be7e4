package moodboard

import (
	"math/rand/v2"
	"testing"
)

func rectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Vec2{x, y}, Max: Vec2{x + w, y + h}}
}

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := rectXYWH(10, 20, 100, 50)
	tests := []struct {
		name   string
		p      Vec2
		expect bool
	}{
		{"inside", Vec2{50, 40}, true},
		{"top-left corner", Vec2{10, 20}, true},
		{"bottom-right corner", Vec2{110, 70}, true},
		{"left edge", Vec2{10, 40}, true},
		{"outside left", Vec2{9, 40}, false},
		{"outside right", Vec2{111, 40}, false},
		{"outside above", Vec2{50, 19}, false},
		{"outside below", Vec2{50, 71}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v) = %v, want %v", r, tt.p, got, tt.expect)
			}
		})
	}
}

// --- Rect.Intersects ---

func TestRectIntersects(t *testing.T) {
	base := rectXYWH(10, 10, 100, 100)
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", rectXYWH(50, 50, 100, 100), true},
		{"fully contained", rectXYWH(20, 20, 10, 10), true},
		{"containing", rectXYWH(0, 0, 200, 200), true},
		{"same rect", base, true},
		{"sliver overlap", rectXYWH(109.5, 10, 50, 50), true},
		{"adjacent right", rectXYWH(110, 10, 50, 50), false},
		{"adjacent bottom", rectXYWH(10, 110, 50, 50), false},
		{"adjacent left", rectXYWH(-50, 10, 60, 50), false},
		{"corner touch", rectXYWH(110, 110, 10, 10), false},
		{"disjoint", rectXYWH(200, 200, 10, 10), false},
		{"zero-size inside", rectXYWH(50, 50, 0, 0), false},
		{"zero-width inside", rectXYWH(50, 20, 0, 40), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expect {
				t.Errorf("Rect%v.Intersects(%v) = %v, want %v", base, tt.other, got, tt.expect)
			}
			if got := tt.other.Intersects(base); got != tt.expect {
				t.Errorf("Intersects is not symmetric for %v", tt.other)
			}
		})
	}
}

func TestRectFromCorners(t *testing.T) {
	got := RectFromCorners(Vec2{300, 300}, Vec2{0, -10})
	want := Rect{Min: Vec2{0, -10}, Max: Vec2{300, 300}}
	if got != want {
		t.Errorf("RectFromCorners = %v, want %v", got, want)
	}
	if RectFromCorners(Vec2{5, 5}, Vec2{5, 5}).IsEmpty() != true {
		t.Error("degenerate box should be empty")
	}
}

func TestRectCenterHalfSize(t *testing.T) {
	r := RectFromCenterHalfSize(Vec2{10, 0}, Vec2{50, 50})
	if r.Min != (Vec2{-40, -50}) || r.Max != (Vec2{60, 50}) {
		t.Errorf("rect = %v", r)
	}
	if r.Center() != (Vec2{10, 0}) {
		t.Errorf("Center = %v", r.Center())
	}
	moved := r.MoveTo(Vec2{0, 0})
	if moved.Size() != r.Size() || moved.Center() != (Vec2{}) {
		t.Errorf("MoveTo = %v", moved)
	}
	if got := r.Translate(Vec2{5, 5}).Center(); got != (Vec2{15, 5}) {
		t.Errorf("Translate center = %v", got)
	}
}

// --- Union ---

func TestRectUnion(t *testing.T) {
	a := rectXYWH(0, 0, 10, 10)
	b := rectXYWH(20, -5, 5, 5)
	want := Rect{Min: Vec2{0, -5}, Max: Vec2{25, 10}}
	if got := a.Union(b); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestUnionAllEmpty(t *testing.T) {
	if _, ok := UnionAll(nil); ok {
		t.Error("UnionAll(nil) should report !ok")
	}
}

func TestUnionAllOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.IntN(8)
		rects := make([]Rect, n)
		want := Rect{}
		for i := range rects {
			c := Vec2{rng.Float64()*2000 - 1000, rng.Float64()*2000 - 1000}
			h := Vec2{1 + rng.Float64()*200, 1 + rng.Float64()*200}
			rects[i] = RectFromCenterHalfSize(c, h)
			if i == 0 {
				want = rects[i]
				continue
			}
			want.Min.X = min(want.Min.X, rects[i].Min.X)
			want.Min.Y = min(want.Min.Y, rects[i].Min.Y)
			want.Max.X = max(want.Max.X, rects[i].Max.X)
			want.Max.Y = max(want.Max.Y, rects[i].Max.Y)
		}

		got, ok := UnionAll(rects)
		if !ok || got != want {
			t.Fatalf("trial %d: UnionAll = %v, want %v", trial, got, want)
		}

		rng.Shuffle(n, func(i, j int) { rects[i], rects[j] = rects[j], rects[i] })
		shuffled, _ := UnionAll(rects)
		if shuffled != got {
			t.Fatalf("trial %d: union depends on order: %v vs %v", trial, shuffled, got)
		}
	}
}
