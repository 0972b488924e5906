// Package geometry defines the solids sampled by the volume estimator.
//
// Points are sdfx v3.Vec values and bounding boxes are sdfx sdf.Box3 values,
// so results can be handed directly to sdfx-based tooling.
package geometry

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/R3mmurd/MonteCarlo/errs"
)

// Point is a location in 3-D space.
type Point = v3.Vec

// Box is an axis-aligned bounding box.
type Box = sdf.Box3

// Sphere is a solid ball. A zero radius denotes a point-sphere, which is
// valid but has no volume.
type Sphere struct {
	Center Point
	Radius float64
}

// NewSphere returns a sphere centered at (x, y, z).
func NewSphere(x, y, z, r float64) Sphere {
	return Sphere{Center: Point{X: x, Y: y, Z: z}, Radius: r}
}

// Validate reports errs.ErrInvalidRadius for a negative or non-finite radius
// or a non-finite center coordinate.
func (s Sphere) Validate() error {
	if !finite(s.Radius) || s.Radius < 0 {
		return fmt.Errorf("%w: radius %v", errs.ErrInvalidRadius, s.Radius)
	}
	if !finite(s.Center.X) || !finite(s.Center.Y) || !finite(s.Center.Z) {
		return fmt.Errorf("%w: center %s", errs.ErrInvalidRadius, formatPoint(s.Center))
	}

	return nil
}

// Contains reports whether p lies inside or on the surface of the sphere.
// The comparison uses squared distances.
func (s Sphere) Contains(p Point) bool {
	return p.Sub(s.Center).Length2() <= s.Radius*s.Radius
}

// Volume returns 4/3 * pi * r^3.
func (s Sphere) Volume() float64 {
	return 4 * math.Pi * s.Radius * s.Radius * s.Radius / 3
}

// Bounds returns the cube that tightly encloses the sphere.
func (s Sphere) Bounds() Box {
	return Box{
		Min: s.Center.SubScalar(s.Radius),
		Max: s.Center.AddScalar(s.Radius),
	}
}

// String formats the sphere for reports.
func (s Sphere) String() string {
	return fmt.Sprintf("Center: %s; Radius: %g", formatPoint(s.Center), s.Radius)
}

// BoundingBox returns the tightest axis-aligned box containing every sphere.
// An empty set has no bounding box and yields errs.ErrEmptyRegion.
func BoundingBox(spheres []Sphere) (Box, error) {
	if len(spheres) == 0 {
		return Box{}, errs.ErrEmptyRegion
	}

	box := spheres[0].Bounds()
	for _, s := range spheres[1:] {
		b := s.Bounds()
		box.Min = box.Min.Min(b.Min)
		box.Max = box.Max.Max(b.Max)
	}

	return box, nil
}

// BoxVolume returns the volume of box. Degenerate boxes have zero volume.
func BoxVolume(box Box) float64 {
	size := box.Size()
	return size.X * size.Y * size.Z
}

// ContainmentCount returns how many spheres contain p.
func ContainmentCount(p Point, spheres []Sphere) int {
	count := 0
	for _, s := range spheres {
		if s.Contains(p) {
			count++
		}
	}

	return count
}

// TheoreticalVolume sums the volumes of all spheres without correcting for
// overlap. It equals the union volume only when no two spheres intersect.
func TheoreticalVolume(spheres []Sphere) float64 {
	total := 0.0
	for _, s := range spheres {
		total += s.Volume()
	}

	return total
}

// ValidateAll validates every sphere and reports the index of the first
// invalid one.
func ValidateAll(spheres []Sphere) error {
	for i, s := range spheres {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("sphere %d: %w", i, err)
		}
	}

	return nil
}

// FormatPoint formats p as "(x, y, z)".
func FormatPoint(p Point) string {
	return formatPoint(p)
}

func formatPoint(p Point) string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
