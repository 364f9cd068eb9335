package entity

import "math"

// Point is a pointer position in workspace coordinates.
type Point struct {
	X, Y float64
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Len returns the euclidean length of p treated as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Rect represents a pane or divider position and size.
// Width and height may be zero or negative for degenerate layouts.
type Rect struct {
	X, Y float64 // Top-left position
	W, H float64 // Width and height
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Area returns the rectangle area, zero for degenerate rectangles.
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Contains reports whether p lies inside r. The top and left edges are
// inclusive, the bottom and right edges exclusive, so adjacent rectangles
// never both contain the same point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Intersect returns the overlapping area of r and o, or a zero rect.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.MaxX(), o.MaxX())
	y1 := math.Min(r.MaxY(), o.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// SplitRect divides rect along dir, returning the first child rect, the
// divider rect and the second child rect. The ratio is clamped to
// [MinSplitRatio, MaxSplitRatio] and applied to the space left after the
// divider is subtracted.
func SplitRect(rect Rect, dir SplitDirection, ratio, dividerWidth float64) (first, divider, second Rect) {
	ratio = ClampRatio(ratio)

	switch dir {
	case SplitVertical:
		available := rect.H - dividerWidth
		firstH := available * ratio
		first = Rect{X: rect.X, Y: rect.Y, W: rect.W, H: firstH}
		divider = Rect{X: rect.X, Y: rect.Y + firstH, W: rect.W, H: dividerWidth}
		second = Rect{X: rect.X, Y: rect.Y + firstH + dividerWidth, W: rect.W, H: available - firstH}
	default:
		available := rect.W - dividerWidth
		firstW := available * ratio
		first = Rect{X: rect.X, Y: rect.Y, W: firstW, H: rect.H}
		divider = Rect{X: rect.X + firstW, Y: rect.Y, W: dividerWidth, H: rect.H}
		second = Rect{X: rect.X + firstW + dividerWidth, Y: rect.Y, W: available - firstW, H: rect.H}
	}
	return first, divider, second
}

// RatioAt converts a pointer position into a split ratio for a split
// occupying bounds, clamped to the allowed range.
func RatioAt(bounds Rect, dir SplitDirection, p Point, dividerWidth float64) float64 {
	var offset, extent float64
	switch dir {
	case SplitVertical:
		offset, extent = p.Y-bounds.Y, bounds.H-dividerWidth
	default:
		offset, extent = p.X-bounds.X, bounds.W-dividerWidth
	}
	if extent <= 0 {
		return DefaultSplitRatio
	}
	return ClampRatio(offset / extent)
}

// ClampRatio bounds a split ratio so neither child collapses.
func ClampRatio(ratio float64) float64 {
	if math.IsNaN(ratio) {
		return DefaultSplitRatio
	}
	if ratio < MinSplitRatio {
		return MinSplitRatio
	}
	if ratio > MaxSplitRatio {
		return MaxSplitRatio
	}
	return ratio
}
