package trsector

import "github.com/go-gl/mathgl/mgl32"

// Corner is one corner of a sector.
type Corner int

const (
	CornerSW Corner = iota
	CornerNW
	CornerSE
	CornerNE
)

func (c Corner) String() string {
	switch c {
	case CornerSW:
		return "SW"
	case CornerNW:
		return "NW"
	case CornerSE:
		return "SE"
	case CornerNE:
		return "NE"
	}

	return "?"
}

func cornerUV(c Corner) mgl32.Vec2 {
	switch c {
	case CornerSE:
		return mgl32.Vec2{1, 0}
	case CornerNE:
		return mgl32.Vec2{1, 1}
	case CornerNW:
		return mgl32.Vec2{0, 1}
	}

	return mgl32.Vec2{0, 0}
}

// Triangle is a generated sector triangle in room-local block coordinates.
type Triangle struct {
	V    [3]mgl32.Vec3
	UV   [3]mgl32.Vec2
	Type SectorFlag
	Room uint32
}

// Normal is the unit face normal of the triangle, zero for degenerate triangles.
func (t Triangle) Normal() mgl32.Vec3 {
	n := t.V[1].Sub(t.V[0]).Cross(t.V[2].Sub(t.V[0]))
	if n.Len() == 0 {
		return n
	}

	return n.Normalize()
}

// Offset returns the triangle translated by offset.
func (t Triangle) Offset(offset mgl32.Vec3) Triangle {
	for i := range t.V {
		t.V[i] = t.V[i].Add(offset)
	}

	return t
}

func (t Triangle) anyY(pred func(float32) bool) bool {
	return pred(t.V[0].Y()) || pred(t.V[1].Y()) || pred(t.V[2].Y())
}

func (t Triangle) mapY(fn func(float32) float32) Triangle {
	for i := range t.V {
		t.V[i][1] = fn(t.V[i][1])
	}

	return t
}

// Quad is four vertices that are added as two triangles.
type Quad struct {
	V    [4]mgl32.Vec3
	UV   [4]mgl32.Vec2
	Type SectorFlag
	Room uint32

	height float32
}

func newQuad(v0, v1, v2, v3 mgl32.Vec3, flags SectorFlag, room uint32) Quad {
	q := Quad{
		V:    [4]mgl32.Vec3{v0, v1, v2, v3},
		UV:   [4]mgl32.Vec2{{0, 1}, {1, 0}, {0, 0}, {1, 1}},
		Type: flags,
		Room: room,
	}

	q.height = maxOf(v0.Y(), v1.Y(), v2.Y(), v3.Y()) - minOf(v0.Y(), v1.Y(), v2.Y(), v3.Y())

	return q
}

// Offset returns the quad translated by offset.
func (q Quad) Offset(offset mgl32.Vec3) Quad {
	return newQuad(q.V[0].Add(offset), q.V[1].Add(offset), q.V[2].Add(offset), q.V[3].Add(offset), q.Type, q.Room)
}

// Triangles splits the quad along its v0-v1 diagonal.
func (q Quad) Triangles() [2]Triangle {
	uv := q.UV
	if q.Type.Contains(FlagWall) || q.height > 1 {
		// tall faces are textured by height
		for i := range uv {
			uv[i][1] = q.V[i].Y()
		}
	}

	return [2]Triangle{
		{V: [3]mgl32.Vec3{q.V[0], q.V[1], q.V[2]}, UV: [3]mgl32.Vec2{uv[0], uv[1], uv[2]}, Type: q.Type, Room: q.Room},
		{V: [3]mgl32.Vec3{q.V[0], q.V[3], q.V[1]}, UV: [3]mgl32.Vec2{uv[0], uv[3], uv[1]}, Type: q.Type, Room: q.Room},
	}
}

// Portal is a view of the sector at a grid position relative to another
// sector of the same room, following a wall portal if there is one.
type Portal struct {
	// Direct is the sector at the grid position, without following portals.
	Direct     *Sector
	DirectRoom *Room
	// Target is the sector the portal leads to, if Direct is a portal.
	Target     *Sector
	TargetRoom *Room
	// Offset moves target coordinates into the direct room's space.
	Offset mgl32.Vec3

	SectorAbove *Sector
	RoomAbove   *Room
	AboveOffset mgl32.Vec3
	SectorBelow *Sector
	RoomBelow   *Room
	BelowOffset mgl32.Vec3
}

// Valid reports whether there is a sector at the position.
func (p Portal) Valid() bool {
	return p.Direct != nil
}

func (p Portal) Flags() SectorFlag {
	return p.Direct.Flags()
}

func (p Portal) IsWall() bool {
	return p.Direct.IsWall()
}

func (p Portal) IsPortal() bool {
	return p.Direct.IsPortal()
}

// Corner is the floor corner, taken from the target sector for portals.
func (p Portal) Corner(c Corner) mgl32.Vec3 {
	if p.Direct.IsPortal() && p.Target != nil {
		return p.Target.Corner(c).Add(p.Offset)
	}

	return p.Direct.Corner(c)
}

// CeilingCorner is the ceiling corner, taken from the target sector for portals.
func (p Portal) CeilingCorner(c Corner) mgl32.Vec3 {
	if p.Direct.IsPortal() && p.Target != nil {
		return p.Target.CeilingCorner(c).Add(p.Offset)
	}

	return p.Direct.CeilingCorner(c)
}

// remote is the sector that owns geometry on the far side of the view.
func (p Portal) remote() (*Sector, mgl32.Vec3) {
	if p.Target != nil {
		return p.Target, p.Offset
	}

	return p.Direct, mgl32.Vec3{}
}
