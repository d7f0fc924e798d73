package trsector

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/saiko-tech/trsector/pkg/trsector/collision"
)

// PickResult is the nearest sector triangle hit by a ray.
type PickResult struct {
	Hit      bool
	Room     uint32
	Sector   *Sector
	Position mgl32.Vec3
	Distance float32
}

// Pick casts a ray in world block coordinates against the generated
// triangles of every room.
func (l *Level) Pick(origin, direction mgl32.Vec3) PickResult {
	var best PickResult

	for _, r := range l.rooms {
		res := r.Pick(origin, direction)
		if res.Hit && (!best.Hit || res.Distance < best.Distance) {
			best = res
		}
	}

	return best
}

// bounds is the room's extent in world block coordinates.
func (r *Room) bounds() (min, max mgl32.Vec3) {
	o := r.Origin()
	min = mgl32.Vec3{o.X(), r.YTop(), o.Z()}
	max = mgl32.Vec3{o.X() + float32(r.numXSector), r.YBottom(), o.Z() + float32(r.numZSector)}

	return min, max
}

// Pick casts a ray in world block coordinates against the room's sector
// triangles.
func (r *Room) Pick(origin, direction mgl32.Vec3) PickResult {
	var best PickResult

	min, max := r.bounds()
	if !collision.RayIntersectsAxisAlignedBoundingBox(origin, direction, min, max).Hit {
		return best
	}

	o := r.Origin()

	for _, s := range r.sectors {
		for _, t := range s.triangles {
			world := [3]mgl32.Vec3{t.V[0].Add(o), t.V[1].Add(o), t.V[2].Add(o)}

			res := collision.RayIntersectsTriangle(origin, direction, world)
			if !res.Hit {
				continue
			}

			distance := res.Point.Sub(origin).Len()
			if !best.Hit || distance < best.Distance {
				best = PickResult{
					Hit:      true,
					Room:     r.number,
					Sector:   s,
					Position: res.Point,
					Distance: distance,
				}
			}
		}
	}

	return best
}
