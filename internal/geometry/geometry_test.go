package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func vecNear(a, b mgl32.Vec3, eps float32) bool {
	return math32.Abs(a.X()-b.X()) < eps && math32.Abs(a.Y()-b.Y()) < eps && math32.Abs(a.Z()-b.Z()) < eps
}

func TestTriangleNormal(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 mgl32.Vec3
		want       mgl32.Vec3
	}{
		{"xy plane ccw", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
		{"xz plane", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{"scaled stays unit", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 0, 0}, mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, 0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TriangleNormal(tc.p1, tc.p2, tc.p3)
			if !vecNear(got, tc.want, 1e-6) {
				t.Errorf("TriangleNormal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTriangleNormalDegenerate(t *testing.T) {
	p := mgl32.Vec3{1, 2, 3}
	got := TriangleNormal(p, p, p)
	if got != (mgl32.Vec3{}) {
		t.Errorf("degenerate triangle normal = %v, want zero vector", got)
	}
	got = TriangleNormal(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 0, 0})
	if got != (mgl32.Vec3{}) {
		t.Errorf("collinear triangle normal = %v, want zero vector", got)
	}
}

func TestDiskUV(t *testing.T) {
	u, v := DiskUV(0)
	if math32.Abs(u-1) > 1e-6 || math32.Abs(v-0.5) > 1e-6 {
		t.Errorf("DiskUV(0) = (%v, %v), want (1, 0.5)", u, v)
	}
	u, v = DiskUV(math32.Pi)
	if math32.Abs(u-0) > 1e-6 || math32.Abs(v-0.5) > 1e-6 {
		t.Errorf("DiskUV(pi) = (%v, %v), want (0, 0.5)", u, v)
	}
}

func TestRimPoint(t *testing.T) {
	x, z := RimPoint(2, math32.Pi/2)
	if math32.Abs(x) > 1e-6 || math32.Abs(z-2) > 1e-6 {
		t.Errorf("RimPoint(2, pi/2) = (%v, %v), want (0, 2)", x, z)
	}
}
