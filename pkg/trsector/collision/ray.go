// Package collision holds the ray intersection tests used to pick sector
// geometry.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = float32(0.0000001)

// RayCastResult is where a ray meets a shape. T is the distance along the
// ray in multiples of its direction.
type RayCastResult struct {
	T     float32
	Hit   bool
	Point mgl32.Vec3
}

func hitAt(origin, direction mgl32.Vec3, t float32) RayCastResult {
	return RayCastResult{T: t, Hit: true, Point: origin.Add(direction.Mul(t))}
}

// RayIntersectsAxisAlignedBoundingBox intersects a ray with the box spanned
// by min and max using the slab method. A ray starting inside the box hits
// where it leaves it.
func RayIntersectsAxisAlignedBoundingBox(origin, direction, min, max mgl32.Vec3) RayCastResult {
	near, far := math.Inf(-1), math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		d := direction[axis]
		if d == 0 {
			// axis aligned rays would divide by zero
			d = 0.00001
		}

		t1 := float64((min[axis] - origin[axis]) / d)
		t2 := float64((max[axis] - origin[axis]) / d)

		near = math.Max(near, math.Min(t1, t2))
		far = math.Min(far, math.Max(t1, t2))
	}

	if far < 0 || near > far {
		return RayCastResult{}
	}

	if near < 0 {
		return hitAt(origin, direction, float32(far))
	}

	return hitAt(origin, direction, float32(near))
}

// RayIntersectsTriangle intersects a ray with a triangle from either side
// (Möller-Trumbore). Hits behind the origin are ignored.
func RayIntersectsTriangle(origin, direction mgl32.Vec3, triangle [3]mgl32.Vec3) RayCastResult {
	e1 := triangle[1].Sub(triangle[0])
	e2 := triangle[2].Sub(triangle[0])

	p := direction.Cross(e2)
	det := e1.Dot(p)
	if det > -epsilon && det < epsilon {
		// parallel to the plane
		return RayCastResult{}
	}

	inv := 1 / det
	s := origin.Sub(triangle[0])

	u := inv * s.Dot(p)
	if u < 0 || u > 1 {
		return RayCastResult{}
	}

	q := s.Cross(e1)

	v := inv * direction.Dot(q)
	if v < 0 || u+v > 1 {
		return RayCastResult{}
	}

	t := inv * e2.Dot(q)
	if t <= epsilon {
		return RayCastResult{}
	}

	return hitAt(origin, direction, t)
}
