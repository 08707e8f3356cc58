package material

import (
	"math"
	"testing"
)

func TestReflectance_NormalIncidence(t *testing.T) {
	// ((1 - 1.5) / (1 + 1.5))^2 = 0.04
	for name, reflectance := range map[string]ReflectanceFunc{"fresnel": Fresnel, "schlick": Schlick} {
		if r := reflectance(1, 1, 1.5); math.Abs(r-0.04) > 1e-12 {
			t.Errorf("%s: expected 0.04 at normal incidence, got %f", name, r)
		}
	}
}

func TestReflectance_Grazing(t *testing.T) {
	for name, reflectance := range map[string]ReflectanceFunc{"fresnel": Fresnel, "schlick": Schlick} {
		if r := reflectance(0, 1, 1.5); math.Abs(r-1) > 1e-12 {
			t.Errorf("%s: expected full reflection at grazing incidence, got %f", name, r)
		}
	}
}

func TestFresnel_TotalInternalReflection(t *testing.T) {
	// Leaving glass at 60 degrees is past the ~41.8 degree critical angle
	if r := Fresnel(math.Cos(math.Pi/3), 1.5, 1); r != 1 {
		t.Errorf("Expected total internal reflection, got %f", r)
	}
}

func TestReflectance_InUnitRange(t *testing.T) {
	indices := [][2]float64{{1, 1.5}, {1.5, 1}, {1, 2.4}, {1.33, 1}}

	for _, n := range indices {
		for i := 0; i <= 100; i++ {
			cosIncident := float64(i) / 100
			for name, reflectance := range map[string]ReflectanceFunc{"fresnel": Fresnel, "schlick": Schlick} {
				r := reflectance(cosIncident, n[0], n[1])
				if r < 0 || r > 1 || math.IsNaN(r) {
					t.Errorf("%s(%f, %f, %f) = %f, expected value in [0, 1]", name, cosIncident, n[0], n[1], r)
				}
			}
		}
	}
}

func TestFresnel_IncreasesTowardGrazing(t *testing.T) {
	prev := Fresnel(1, 1, 1.5)
	for i := 99; i >= 0; i-- {
		r := Fresnel(float64(i)/100, 1, 1.5)
		// only checked beyond Brewster's angle
		if i < 50 && r < prev-1e-12 {
			t.Errorf("Expected reflectance to grow toward grazing, got %f after %f", r, prev)
		}
		prev = r
	}
}
