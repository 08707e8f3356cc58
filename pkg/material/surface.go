package material

// Surface is the optical behavior of a material. The set of surfaces is
// closed: Diffusive, Reflective and Refractive.
type Surface interface {
	surface()
}

// Diffusive is a matte surface lit only by direct light
type Diffusive struct{}

// Reflective is a partial mirror. Reflectivity is the share of the final
// color taken from the reflected ray.
type Reflective struct {
	Reflectivity float64 // In [0, 1]
}

// Refractive is a transparent surface that bends light by Snell's law
type Refractive struct {
	Transparency float64 // Share of the final color taken from transmission, in [0, 1]
	Index        float64 // Refractive index, greater than 1
}

func (Diffusive) surface()  {}
func (Reflective) surface() {}
func (Refractive) surface() {}

