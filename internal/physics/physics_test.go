package physics

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2 float64
		want           float64
	}{
		{0, 0, 3, 4, 5},
		{0, 0, 0, 0, 0},
		{-1, -1, 2, 3, 5},
		{1, 1, 1, 5, 4},
	}
	for _, tt := range tests {
		if got := Distance(tt.x1, tt.y1, tt.x2, tt.y2); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Distance(%v,%v,%v,%v) = %v, want %v", tt.x1, tt.y1, tt.x2, tt.y2, got, tt.want)
		}
		if got := DistanceSquared(tt.x1, tt.y1, tt.x2, tt.y2); math.Abs(got-tt.want*tt.want) > 1e-12 {
			t.Errorf("DistanceSquared(%v,%v,%v,%v) = %v, want %v", tt.x1, tt.y1, tt.x2, tt.y2, got, tt.want*tt.want)
		}
	}
}

func TestPointInCircle(t *testing.T) {
	tests := []struct {
		px, py, cx, cy, r float64
		want              bool
	}{
		{0, 0, 0, 0, 1, true},
		{1, 0, 0, 0, 1, true},  // on the rim counts as inside
		{1.01, 0, 0, 0, 1, false},
		{3, 4, 0, 0, 5, true},
		{3, 4, 0, 0, 4.9, false},
	}
	for _, tt := range tests {
		if got := PointInCircle(tt.px, tt.py, tt.cx, tt.cy, tt.r); got != tt.want {
			t.Errorf("PointInCircle(%v,%v,%v,%v,%v) = %v, want %v",
				tt.px, tt.py, tt.cx, tt.cy, tt.r, got, tt.want)
		}
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		x1, y1, r1, x2, y2, r2 float64
		want                   bool
	}{
		{"overlapping", 0, 0, 2, 3, 0, 2, true},
		{"exactly tangent", 0, 0, 2, 4, 0, 2, false}, // tangency is not overlap
		{"separated", 0, 0, 2, 5, 0, 2, false},
		{"concentric", 1, 1, 2, 1, 1, 1, true},
		{"diagonal touch", 0, 0, 1, 3, 4, 4, true},
	}
	for _, tt := range tests {
		if got := CirclesOverlap(tt.x1, tt.y1, tt.r1, tt.x2, tt.y2, tt.r2); got != tt.want {
			t.Errorf("%s: CirclesOverlap = %v, want %v", tt.name, got, tt.want)
		}
	}
}
