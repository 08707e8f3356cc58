package core

import "github.com/golang/geo/r3"

// Vec3 represents a 3D direction or offset
type Vec3 = r3.Vector

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Negate returns the vector pointing the opposite way
func Negate(v Vec3) Vec3 {
	return v.Mul(-1)
}

// Point represents a position in world space
type Point r3.Vector

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin is the world origin, where the camera sits
var Origin = Point{}

// Add returns the point displaced by v
func (p Point) Add(v Vec3) Point {
	return Point(r3.Vector(p).Add(v))
}

// Subtract returns the vector from other to p
func (p Point) Subtract(other Point) Vec3 {
	return r3.Vector(p).Sub(r3.Vector(other))
}

// DistanceSquared returns the squared distance between two points
func (p Point) DistanceSquared(other Point) float64 {
	return p.Subtract(other).Norm2()
}

