package moodboard

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default item fill.
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns c with its alpha component replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. World coordinates have Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle stored as its min and max corners.
// A Rect with Max < Min on either axis is empty.
type Rect struct {
	Min, Max Vec2
}

// RectFromCorners builds the rectangle spanned by two arbitrary corners.
func RectFromCorners(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Vec2{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

// RectFromCenterHalfSize builds a rectangle around center extending half in
// each direction.
func RectFromCenterHalfSize(center, half Vec2) Rect {
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// HalfSize returns half the width and height.
func (r Rect) HalfSize() Vec2 {
	return r.Size().Scale(0.5)
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// IsEmpty reports whether the rectangle has no positive area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersect returns the overlapping region of r and other. The result is
// empty (see IsEmpty) when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Min: Vec2{math.Max(r.Min.X, other.Min.X), math.Max(r.Min.Y, other.Min.Y)},
		Max: Vec2{math.Min(r.Max.X, other.Max.X), math.Min(r.Max.Y, other.Max.Y)},
	}
}

// Intersects reports whether r and other overlap by a positive area.
// Rectangles that only share an edge, and zero-area rectangles, never
// intersect anything.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Vec2{math.Min(r.Min.X, other.Min.X), math.Min(r.Min.Y, other.Min.Y)},
		Max: Vec2{math.Max(r.Max.X, other.Max.X), math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// MoveTo returns r re-centered on center, keeping its size.
func (r Rect) MoveTo(center Vec2) Rect {
	return RectFromCenterHalfSize(center, r.HalfSize())
}

// UnionAll returns the union of every rectangle in rects. ok is false when
// rects is empty.
func UnionAll(rects []Rect) (u Rect, ok bool) {
	for i, r := range rects {
		if i == 0 {
			u = r
			continue
		}
		u = u.Union(r)
	}
	return u, len(rects) > 0
}
