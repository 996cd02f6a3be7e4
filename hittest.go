package moodboard

import "github.com/yohamta/donburi"

// Candidate is one hit-testable box: an entity, its world center, its
// half-extent and its draw depth.
type Candidate struct {
	ID         donburi.Entity
	Center     Vec2
	HalfExtent Vec2
	Z          float64
}

// Rect returns the candidate's axis-aligned box.
func (c Candidate) Rect() Rect {
	return RectFromCenterHalfSize(c.Center, c.HalfExtent)
}

// TopmostHit returns the candidate whose box contains pos. When several
// boxes contain pos the one with the highest Z wins; on equal Z the first
// candidate seen is kept.
func TopmostHit(pos Vec2, candidates []Candidate) (donburi.Entity, bool) {
	var (
		top   donburi.Entity
		topZ  float64
		found bool
	)
	for _, c := range candidates {
		if !c.Rect().Contains(pos) {
			continue
		}
		if !found || c.Z > topZ {
			top, topZ, found = c.ID, c.Z, true
		}
	}
	return top, found
}

// AllHits appends to buf every candidate whose box overlaps rect by a
// positive area and returns the extended slice. Candidate order is kept.
func AllHits(rect Rect, candidates []Candidate, buf []donburi.Entity) []donburi.Entity {
	if rect.IsEmpty() {
		return buf
	}
	for _, c := range candidates {
		if rect.Intersects(c.Rect()) {
			buf = append(buf, c.ID)
		}
	}
	return buf
}
