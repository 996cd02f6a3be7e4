package moodboard

import (
	"testing"

	"github.com/yohamta/donburi"
)

// testIDs creates n real entities so candidates carry distinct ids.
func testIDs(n int) []donburi.Entity {
	w := donburi.NewWorld()
	ids := make([]donburi.Entity, n)
	for i := range ids {
		ids[i] = w.Create(Transform)
	}
	return ids
}

func TestTopmostHitPrefersHigherZ(t *testing.T) {
	ids := testIDs(2)
	low := Candidate{ID: ids[0], Center: Vec2{0, 0}, HalfExtent: Vec2{50, 50}, Z: 1}
	high := Candidate{ID: ids[1], Center: Vec2{20, 0}, HalfExtent: Vec2{50, 50}, Z: 2}

	for _, order := range [][]Candidate{{low, high}, {high, low}} {
		got, ok := TopmostHit(Vec2{10, 0}, order)
		if !ok || got != ids[1] {
			t.Errorf("TopmostHit(%v) = %v, %v; want z=2 candidate", order, got, ok)
		}
	}
}

func TestTopmostHitTieKeepsFirst(t *testing.T) {
	ids := testIDs(2)
	a := Candidate{ID: ids[0], Center: Vec2{0, 0}, HalfExtent: Vec2{10, 10}, Z: 5}
	b := Candidate{ID: ids[1], Center: Vec2{0, 0}, HalfExtent: Vec2{10, 10}, Z: 5}

	if got, _ := TopmostHit(Vec2{}, []Candidate{a, b}); got != ids[0] {
		t.Errorf("tie should keep first seen, got %v", got)
	}
	if got, _ := TopmostHit(Vec2{}, []Candidate{b, a}); got != ids[1] {
		t.Errorf("tie should keep first seen, got %v", got)
	}
}

func TestTopmostHitMiss(t *testing.T) {
	ids := testIDs(1)
	c := Candidate{ID: ids[0], Center: Vec2{0, 0}, HalfExtent: Vec2{10, 10}, Z: 1}

	if _, ok := TopmostHit(Vec2{11, 0}, []Candidate{c}); ok {
		t.Error("point outside box should miss")
	}
	if _, ok := TopmostHit(Vec2{10, 10}, []Candidate{c}); !ok {
		t.Error("corner point should hit")
	}
	if _, ok := TopmostHit(Vec2{}, nil); ok {
		t.Error("no candidates should miss")
	}
}

func TestAllHits(t *testing.T) {
	ids := testIDs(3)
	cands := []Candidate{
		{ID: ids[0], Center: Vec2{0, 0}, HalfExtent: Vec2{50, 50}},
		{ID: ids[1], Center: Vec2{200, 0}, HalfExtent: Vec2{50, 50}},
		{ID: ids[2], Center: Vec2{-200, 0}, HalfExtent: Vec2{50, 50}},
	}

	tests := []struct {
		name string
		rect Rect
		want []donburi.Entity
	}{
		{"covers two", RectFromCorners(Vec2{0, 0}, Vec2{300, 300}), []donburi.Entity{ids[0], ids[1]}},
		{"covers one", RectFromCorners(Vec2{-260, -10}, Vec2{-240, 10}), []donburi.Entity{ids[2]}},
		{"touching edge only", RectFromCorners(Vec2{50, -10}, Vec2{150, 10}), nil},
		{"zero area", RectFromCorners(Vec2{0, 0}, Vec2{0, 0}), nil},
		{"zero width", RectFromCorners(Vec2{0, -100}, Vec2{0, 100}), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllHits(tt.rect, cands, nil)
			if len(got) != len(tt.want) {
				t.Fatalf("AllHits = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("AllHits[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
