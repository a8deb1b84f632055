package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// reflectionBias offsets a reflection ray's origin along its direction so
// floating-point error cannot re-intersect the surface it left.
const reflectionBias = 0.01

// minShadowPassThrough is how much light a fully opaque occluder still lets
// through, a cheap stand-in for soft shadows.
const minShadowPassThrough = 0.25

// RecursiveColor resolves the final color for an intersection: ambient base,
// per-light diffuse with shadow attenuation, then depth-bounded reflection
// and refraction. depth is the current recursion level; maxDepth stops
// further bounces while the local terms still apply.
func RecursiveColor(hit *geometry.Intersection, scene Scene, depth, maxDepth int) core.Color {
	ambientColor, ambientIntensity := scene.GetAmbientLight()
	color := core.Black.Lerp(hit.Color.Multiply(ambientColor), ambientIntensity)

	for _, light := range scene.GetLights() {
		color = color.Add(lightContribution(hit, scene, light))
	}

	mat := hit.Object.GetMaterial()

	if depth < maxDepth && mat.Reflectivity > 0 {
		reflectionDirection := hit.Impact.Add(
			hit.Normal.Multiply(2 * hit.Normal.Negate().Dot(hit.Impact)))
		origin := hit.Point.Add(reflectionDirection.Multiply(reflectionBias))
		reflectionRay := core.NewRay(origin, reflectionDirection)

		if bounce, ok := ClosestIntersection(reflectionRay, scene, nil); ok {
			reflected := RecursiveColor(bounce, scene, depth+1, maxDepth)
			color = color.Lerp(reflected, mat.Reflectivity)
		}
	}

	if depth < maxDepth && mat.Refractivity > 0 {
		refractionRay := core.NewRay(hit.Point, refractionDirection(hit, mat.Refractivity))

		if through, ok := ClosestIntersection(refractionRay, scene, hit.Object); ok {
			refracted := RecursiveColor(through, scene, depth+1, maxDepth)
			color = color.Lerp(refracted, 1-mat.Opacity)
		}
	}

	return color.Clamp()
}

// lightContribution computes one light's diffuse contribution at the hit,
// attenuated when an occluder sits between the point and the light.
func lightContribution(hit *geometry.Intersection, scene Scene, light *lights.PointLight) core.Color {
	toLight := light.Position.Subtract(hit.Point)
	lightDistance := toLight.Length()
	towardsLight := toLight.Normalize()

	// Light on the far side of the surface contributes nothing
	facing := towardsLight.Dot(hit.Normal)
	if facing <= 0 {
		return core.Black
	}

	contribution := hit.Color.
		Multiply(light.Color).
		Scale(light.IntensityAtDistance(lightDistance) * facing)

	// Shadow test: anything between the point and the light attenuates the
	// contribution by how transparent the occluder is. Even a fully opaque
	// occluder leaves minShadowPassThrough of the light.
	shadowRay := core.NewRay(hit.Point, towardsLight)
	if occluder, ok := ClosestIntersection(shadowRay, scene, hit.Object); ok && occluder.Distance < lightDistance {
		passThrough := core.Lerp(minShadowPassThrough, 1.0, occluder.Object.GetMaterial().Transparency)
		contribution = contribution.Scale(passThrough)
	}
	// Unshadowed glossy surfaces would add a specular highlight here;
	// Material.Glossiness is carried for that but contributes nothing yet.

	return contribution
}

// refractionDirection builds the transmission direction from a Snell-style
// formula. The incoming direction is normalized here before the angle math.
//
// The c2 branch takes the square root only when c2 is negative, which is the
// opposite of the usual total-internal-reflection guard. Flipping it changes
// every render that uses refractive materials, so it stays as-is.
func refractionDirection(hit *geometry.Intersection, refractivity float64) core.Vec3 {
	impact := hit.Impact.Normalize()

	c1 := hit.Normal.Dot(impact)
	c2 := 1 - refractivity*refractivity*(1-c1*c1)
	if c2 < 0 {
		c2 = math.Sqrt(c2)
	}

	return hit.Normal.Multiply(refractivity*c1 - c2).
		Subtract(impact.Multiply(refractivity)).
		Negate().
		Normalize()
}
