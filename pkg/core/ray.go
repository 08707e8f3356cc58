package core

import "math"

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Point
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin Point, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Reflect mirrors the ray about normal at hitPoint. The new origin is pushed
// off the surface by bias along the normal.
func (r Ray) Reflect(hitPoint Point, normal Vec3, bias float64) Ray {
	return Ray{
		Origin:    hitPoint.Add(normal.Mul(bias)),
		Direction: r.Direction.Sub(normal.Mul(2 * r.Direction.Dot(normal))),
	}
}

// IncidentData returns the cosine of the incident angle together with the
// indices of the incident (n1) and transmitted (n2) media, for a boundary
// between vacuum and a medium of the given index.
func (r Ray) IncidentData(normal Vec3, index float64) (cosIncident, n1, n2 float64) {
	cosIncident = -r.Direction.Dot(normal)
	if cosIncident < 0 {
		// leaving the medium
		return -cosIncident, index, 1.0
	}
	return cosIncident, 1.0, index
}

// Refract bends the ray through the boundary at hitPoint using Snell's law.
// It returns false on total internal reflection.
func (r Ray) Refract(hitPoint Point, normal Vec3, index, bias float64) (Ray, bool) {
	n := normal
	if -n.Dot(r.Direction) < 0 {
		n = Negate(n)
	}
	cosIncident, n1, n2 := r.IncidentData(normal, index)

	sinIncident := math.Sqrt(math.Max(0, 1-cosIncident*cosIncident))
	sinTransmitted := n1 / n2 * sinIncident
	if sinTransmitted*sinTransmitted > 1 {
		return Ray{}, false
	}
	cosTransmitted := math.Sqrt(1 - sinTransmitted*sinTransmitted)

	// tangent is the in-plane part of the incident direction; it vanishes at
	// normal incidence, where Normalize yields the zero vector.
	tangent := r.Direction.Sub(Negate(n).Mul(cosIncident))
	direction := Negate(n).Mul(cosTransmitted).Add(tangent.Normalize().Mul(sinTransmitted))

	return Ray{
		Origin:    hitPoint.Add(n.Mul(-bias)),
		Direction: direction,
	}, true
}
