package material

import "math"

// ReflectanceFunc returns the fraction of light reflected at a refractive
// boundary, given the cosine of the incident angle and the indices of the
// incident (n1) and transmitted (n2) media
type ReflectanceFunc func(cosIncident, n1, n2 float64) float64

// Fresnel calculates reflectance from the full Fresnel equations, averaging
// the s- and p-polarized terms. Total internal reflection yields 1.
func Fresnel(cosIncident, n1, n2 float64) float64 {
	sinIncident := math.Sqrt(math.Max(0, 1-cosIncident*cosIncident))
	sinTransmitted := n1 / n2 * sinIncident
	if math.Abs(sinTransmitted) > 1 {
		return 1
	}
	cosTransmitted := math.Sqrt(1 - sinTransmitted*sinTransmitted)

	rs := (n1*cosIncident - n2*cosTransmitted) / (n1*cosIncident + n2*cosTransmitted)
	rp := (n1*cosTransmitted - n2*cosIncident) / (n1*cosTransmitted + n2*cosIncident)
	return 0.5 * (rs*rs + rp*rp)
}

// Schlick approximates Fresnel reflectance with Schlick's polynomial
func Schlick(cosIncident, n1, n2 float64) float64 {
	r0 := (n1 - n2) / (n1 + n2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosIncident, 5)
}
