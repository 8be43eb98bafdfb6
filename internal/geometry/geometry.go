package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// TriangleNormal returns the unit normal of the triangle p1,p2,p3 (counter-clockwise winding).
// Degenerate triangles (collinear or coincident points) return the zero vector instead of NaN.
func TriangleNormal(p1, p2, p3 mgl32.Vec3) mgl32.Vec3 {
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// QuadNormal returns the unit normal of the quad p1..p4, taken from the first three corners.
// Assumes a planar quad; non-planar quads get the normal of the p1,p2,p3 triangle.
func QuadNormal(p1, p2, p3, p4 mgl32.Vec3) mgl32.Vec3 {
	_ = p4
	return TriangleNormal(p1, p2, p3)
}

// DiskUV maps an angle on a disk rim to texture coordinates, center at (0.5, 0.5), rim at radius 0.5.
func DiskUV(angle float32) (u, v float32) {
	return 0.5 + 0.5*math32.Cos(angle), 0.5 + 0.5*math32.Sin(angle)
}

// RimPoint returns the X and Z of a point on a circle of the given radius at the given angle.
func RimPoint(radius, angle float32) (x, z float32) {
	return radius * math32.Cos(angle), radius * math32.Sin(angle)
}
