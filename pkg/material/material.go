package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Material holds the Phong and transport parameters of a surface
type Material struct {
	ReflectionFact float64    // Fraction of energy carried by the reflected branch
	RefractionFact float64    // Fraction of energy carried by the refracted branch
	SpecularPower  float64    // Phong exponent
	SpecularFact   core.Color // Per-channel specular weight
	DiffuseFact    core.Color // Per-channel diffuse weight
	N              float64    // Refractive index relative to the surrounding medium
}

// Default returns a matte white material that neither reflects nor refracts
func Default() *Material {
	return &Material{
		ReflectionFact: 0,
		RefractionFact: 0,
		SpecularPower:  1,
		SpecularFact:   core.NewColor(0, 0, 0),
		DiffuseFact:    core.NewColor(1, 1, 1),
		N:              1,
	}
}

// Reflect returns the mirror reflection of the query ray about the resolved normal
func (m *Material) Reflect(h core.HandlingRay) core.Ray {
	direction := reflectVector(h.Ray.Direction.Normalize(), h.Normal())
	return core.NewRay(h.HitPoint(), direction)
}

// Refract returns the ray transmitted through the surface at the resolved hit.
// Total internal reflection yields the reflected ray.
func (m *Material) Refract(h core.HandlingRay) core.Ray {
	n := m.N
	if n <= 0 {
		n = 1
	}

	var refractionRatio float64
	if h.FrontFace {
		refractionRatio = 1.0 / n
	} else {
		refractionRatio = n
	}

	unitDirection := h.Ray.Direction.Normalize()
	normal := h.Normal()

	cosTheta := math.Min(-unitDirection.Dot(normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	if refractionRatio*sinTheta > 1.0 {
		return core.NewRay(h.HitPoint(), reflectVector(unitDirection, normal))
	}

	return core.NewRay(h.HitPoint(), refractVector(unitDirection, normal, refractionRatio))
}

// Lambert returns the diffuse response to a light ray that resolved on this surface.
// albedo is the surface color at the hit point.
func (m *Material) Lambert(h core.HandlingRay, lightColor, albedo core.Color) core.Color {
	cosine := -h.Ray.Direction.Normalize().Dot(h.Normal())
	if cosine <= 0 {
		return core.Color{}
	}
	return lightColor.MultiplyVec(m.DiffuseFact).MultiplyVec(albedo).Multiply(cosine)
}

// reflectVector calculates the reflection of a vector v off a surface with normal n
func reflectVector(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refractVector calculates the refraction of a vector using Snell's law
func refractVector(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
