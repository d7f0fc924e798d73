package trsector

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/slices"
)

// side is a compass direction out of a sector.
type side struct {
	dx, dz int
	// normal points from the sector towards the neighbour
	normal mgl32.Vec3
	// climbable is the sector's own edge on this side, facing the
	// neighbour's opposite edge.
	climbable, opposite SectorFlag
}

var (
	north = side{dz: 1, normal: mgl32.Vec3{0, 0, 1}, climbable: FlagClimbableNorth, opposite: FlagClimbableSouth}
	south = side{dz: -1, normal: mgl32.Vec3{0, 0, -1}, climbable: FlagClimbableSouth, opposite: FlagClimbableNorth}
	east  = side{dx: 1, normal: mgl32.Vec3{1, 0, 0}, climbable: FlagClimbableEast, opposite: FlagClimbableWest}
	west  = side{dx: -1, normal: mgl32.Vec3{-1, 0, 0}, climbable: FlagClimbableWest, opposite: FlagClimbableEast}
)

type neighbour struct {
	side
	Portal
}

func (s *Sector) floorFlags() SectorFlag {
	return s.flags &^ (FlagMonkeySwing | FlagClimbable)
}

func (s *Sector) ceilingFlags() SectorFlag {
	return s.flags &^ (FlagDeath | FlagClimbable)
}

func (s *Sector) selfPortal() Portal {
	room, ok := s.level.Room(s.room)
	if !ok {
		return Portal{Direct: s}
	}

	return room.SectorPortal(int(s.x), int(s.z))
}

func newVisited() mapset.Set[uint32] {
	return mapset.New[uint32]()
}

// GenerateTriangles builds the floor, ceiling and wall triangles of the
// sector. Triangles may also be handed to neighbouring sectors, so every
// room of the level must have been built first.
func (s *Sector) GenerateTriangles() {
	room, ok := s.level.Room(s.room)
	if !ok {
		return
	}

	x, z := int(s.x), int(s.z)
	self := room.SectorPortal(x, z)

	if s.IsPortal() {
		return
	}

	sides := make([]neighbour, 0, 4)
	for _, sd := range []side{north, south, east, west} {
		sides = append(sides, neighbour{side: sd, Portal: room.SectorPortal(x+sd.dx, z+sd.dz)})
	}

	if !s.IsWall() {
		s.generateFloor(self)
		s.generateCeiling(self)
	}

	if s.IsCeiling() {
		for _, n := range sides {
			s.generateCeilingStep(self, n)
		}
	}

	for _, n := range sides {
		if s.IsWall() {
			s.generateWallFace(self, n)
		} else {
			s.generateFloorStep(self, n)
		}
	}
}

func (s *Sector) floorTriangle(a, b, c Corner, flags SectorFlag) Triangle {
	return Triangle{
		V:    [3]mgl32.Vec3{s.Corner(a), s.Corner(b), s.Corner(c)},
		UV:   [3]mgl32.Vec2{cornerUV(a), cornerUV(b), cornerUV(c)},
		Type: flags,
		Room: s.room,
	}
}

func (s *Sector) ceilingTriangle(a, b, c Corner, flags SectorFlag) Triangle {
	return Triangle{
		V:    [3]mgl32.Vec3{s.CeilingCorner(a), s.CeilingCorner(b), s.CeilingCorner(c)},
		UV:   [3]mgl32.Vec2{cornerUV(a), cornerUV(b), cornerUV(c)},
		Type: flags,
		Room: s.room,
	}
}

func (s *Sector) generateFloor(self Portal) {
	flags := s.floorFlags()

	var first, second bool
	switch {
	case s.floorTriangulation != nil:
		// collision functions leave one half open
		fn := s.floorTriangulation.Function
		if s.triangulation == TriangulationNwSe {
			first, second = fn != FunctionTriangulationFloorCollisionSW, fn != FunctionTriangulationFloorCollisionNE
		} else {
			first, second = fn != FunctionTriangulationFloorCollisionSE, fn != FunctionTriangulationFloorCollisionNW
		}
	case s.IsFloor():
		first, second = true, true
	default:
		return
	}

	if s.triangulation == TriangulationNeSw {
		if first {
			s.addTriangle(self, s.floorTriangle(CornerNE, CornerSW, CornerNW, flags), newVisited())
		}
		if second {
			s.addTriangle(self, s.floorTriangle(CornerNE, CornerSE, CornerSW, flags), newVisited())
		}

		return
	}

	if first {
		s.addTriangle(self, s.floorTriangle(CornerSE, CornerSW, CornerNW, flags), newVisited())
	}
	if second {
		s.addTriangle(self, s.floorTriangle(CornerNW, CornerNE, CornerSE, flags), newVisited())
	}
}

func (s *Sector) generateCeiling(self Portal) {
	flags := s.ceilingFlags()

	var first, second bool
	switch {
	case s.ceilingTriangulation != nil:
		fn := s.ceilingTriangulation.Function
		if s.ceilingDirection == TriangulationNwSe {
			first, second = fn != FunctionTriangulationCeilingCollisionSW, fn != FunctionTriangulationCeilingCollisionNE
		} else {
			first, second = fn != FunctionTriangulationCeilingCollisionNW, fn != FunctionTriangulationCeilingCollisionSE
		}
	case s.IsCeiling():
		first, second = true, true
	default:
		return
	}

	if s.ceilingDirection == TriangulationNeSw {
		if first {
			s.addTriangle(self, s.ceilingTriangle(CornerNW, CornerSW, CornerNE, flags), newVisited())
		}
		if second {
			s.addTriangle(self, s.ceilingTriangle(CornerSW, CornerSE, CornerNE, flags), newVisited())
		}

		return
	}

	if first {
		s.addTriangle(self, s.ceilingTriangle(CornerNW, CornerSW, CornerSE, flags), newVisited())
	}
	if second {
		s.addTriangle(self, s.ceilingTriangle(CornerSE, CornerNE, CornerNW, flags), newVisited())
	}
}

// edge returns the two corners of the sector on the given side and the
// matching corners of the neighbour, in the same order.
func edge(sd side) (near [2]Corner, far [2]Corner) {
	switch sd {
	case north:
		return [2]Corner{CornerNW, CornerNE}, [2]Corner{CornerSW, CornerSE}
	case south:
		return [2]Corner{CornerSW, CornerSE}, [2]Corner{CornerNW, CornerNE}
	case east:
		return [2]Corner{CornerNE, CornerSE}, [2]Corner{CornerNW, CornerSW}
	default:
		return [2]Corner{CornerNW, CornerSW}, [2]Corner{CornerNE, CornerSE}
	}
}

// ceilingStepQuad joins the ceiling edge of the sector on the given side to
// the neighbour's ceiling.
func (s *Sector) ceilingStepQuad(n neighbour, p Portal) Quad {
	flags := s.ceilingFlags() | s.flags&n.climbable

	switch n.side {
	case north:
		return newQuad(s.CeilingCorner(CornerNW), p.CeilingCorner(CornerSE), p.CeilingCorner(CornerSW), s.CeilingCorner(CornerNE), flags, s.room)
	case south:
		return newQuad(p.CeilingCorner(CornerNW), s.CeilingCorner(CornerSE), s.CeilingCorner(CornerSW), p.CeilingCorner(CornerNE), flags, s.room)
	case east:
		return newQuad(p.CeilingCorner(CornerSW), s.CeilingCorner(CornerNE), s.CeilingCorner(CornerSE), p.CeilingCorner(CornerNW), flags, s.room)
	default:
		return newQuad(s.CeilingCorner(CornerSW), p.CeilingCorner(CornerNE), p.CeilingCorner(CornerSE), s.CeilingCorner(CornerNW), flags, s.room)
	}
}

func (s *Sector) generateCeilingStep(self Portal, n neighbour) {
	if !n.Valid() || (n.IsWall() && !n.IsPortal()) {
		return
	}

	near, far := edge(n.side)
	if s.CeilingCorner(near[0]) == n.CeilingCorner(far[0]) && s.CeilingCorner(near[1]) == n.CeilingCorner(far[1]) {
		return
	}

	s.addQuadRemote(self, n, s.ceilingStepQuad)
}

// addQuadRemote adds a step quad built against the neighbour. When the
// neighbour is a portal into a room that reaches higher than this one, the
// quad is moved into that room, and into its alternate room as well.
// Otherwise the triangles facing back into this sector are kept and the
// others are given to the neighbour.
func (s *Sector) addQuadRemote(self Portal, n neighbour, build func(neighbour, Portal) Quad) {
	if n.Target != nil && self.DirectRoom != nil && n.TargetRoom.YTop() < self.DirectRoom.YTop() {
		n.Target.addQuad(n.Target.selfPortal(), build(n, n.Portal).Offset(n.Offset.Mul(-1)))

		if n.TargetRoom.AlternateMode() != HasAlternate {
			return
		}

		alternate, ok := s.level.Room(uint32(n.TargetRoom.AlternateRoom()))
		if !ok {
			return
		}

		x, z := int(n.Direct.x), int(n.Direct.z)
		target, offset := alternate.relative(self.DirectRoom, x, z)
		if target == nil {
			return
		}

		view := n.Portal
		view.Target, view.TargetRoom, view.Offset = target, alternate, offset
		target.addQuad(target.selfPortal(), build(n, view).Offset(offset.Mul(-1)))

		return
	}

	away := n.normal.Mul(-1)
	remote, offset := n.remote()

	for _, t := range build(n, n.Portal).Triangles() {
		if remote != nil && t.Normal().Dot(away) > 0 {
			remote.addTriangle(remote.selfPortal(), t.Offset(offset.Mul(-1)), newVisited())
			continue
		}

		s.addTriangle(self, t, newVisited())
	}
}

// wallFaceQuad is the face of a wall sector seen from the neighbour.
func wallFaceQuad(n neighbour, flags SectorFlag, room uint32) Quad {
	switch n.side {
	case north:
		return newQuad(n.CeilingCorner(CornerSE), n.Corner(CornerSW), n.Corner(CornerSE), n.CeilingCorner(CornerSW), flags, room)
	case south:
		return newQuad(n.CeilingCorner(CornerNW), n.Corner(CornerNE), n.Corner(CornerNW), n.CeilingCorner(CornerNE), flags, room)
	case east:
		return newQuad(n.CeilingCorner(CornerSW), n.Corner(CornerNW), n.Corner(CornerSW), n.CeilingCorner(CornerNW), flags, room)
	default:
		return newQuad(n.CeilingCorner(CornerNE), n.Corner(CornerSE), n.Corner(CornerNE), n.CeilingCorner(CornerSE), flags, room)
	}
}

func (s *Sector) generateWallFace(self Portal, n neighbour) {
	if !n.Valid() || n.IsWall() || n.IsPortal() {
		return
	}

	flags := s.flags&^FlagClimbable | n.Flags()&n.opposite
	s.addQuad(self, wallFaceQuad(n, flags, s.room))
}

// floorStepQuad joins the floor edge of the sector on the given side to the
// neighbour's floor.
func (s *Sector) floorStepQuad(n neighbour, p Portal) Quad {
	flags := s.floorFlags() | s.flags&n.climbable

	switch n.side {
	case north:
		return newQuad(p.Corner(CornerSW), s.Corner(CornerNE), s.Corner(CornerNW), p.Corner(CornerSE), flags, s.room)
	case south:
		return newQuad(s.Corner(CornerSW), p.Corner(CornerNE), p.Corner(CornerNW), s.Corner(CornerSE), flags, s.room)
	case east:
		return newQuad(s.Corner(CornerSE), p.Corner(CornerNW), p.Corner(CornerSW), s.Corner(CornerNE), flags, s.room)
	default:
		return newQuad(p.Corner(CornerSE), s.Corner(CornerNW), s.Corner(CornerSW), p.Corner(CornerNE), flags, s.room)
	}
}

func (s *Sector) generateFloorStep(self Portal, n neighbour) {
	if !n.Valid() || (n.IsWall() && !n.IsPortal()) {
		return
	}

	near, far := edge(n.side)
	open := n.IsPortal() && n.Target == nil
	if !open && s.Corner(near[0]) == n.Corner(far[0]) && s.Corner(near[1]) == n.Corner(far[1]) {
		return
	}

	quad := s.floorStepQuad(n, n.Portal)
	if n.Target == nil || quad.Triangles()[0].Normal().Dot(n.normal) >= 0 {
		s.addQuad(self, quad)
		return
	}

	// The step faces this sector, so it belongs to the room on the far
	// side of the portal.
	target := n.Target
	quad.Type = target.floorFlags() | target.flags&n.opposite
	quad.Room = target.room
	target.addQuad(target.selfPortal(), quad.Offset(n.Offset.Mul(-1)))
}

func (s *Sector) addQuad(p Portal, q Quad) {
	for _, t := range q.Triangles() {
		s.addTriangle(p, t, newVisited())
	}
}

// addTriangle adds a triangle in the space of the portal's room. Parts
// above the top of the room are clamped to it and the offcut is passed to
// the sector above, unless that room has already been visited. Parts below
// the bottom of the room are clamped.
func (s *Sector) addTriangle(p Portal, t Triangle, visited mapset.Set[uint32]) {
	room := p.DirectRoom
	if room == nil {
		s.insertTriangle(t)
		return
	}

	visited.Put(room.number)
	top, bottom := room.YTop(), room.YBottom()
	clamped := t.mapY(func(y float32) float32 { return minOf(maxOf(y, top), bottom) })

	if !t.anyY(func(y float32) bool { return y < top }) {
		s.insertTriangle(clamped)
		return
	}

	if clamped.Normal().Len() != 0 {
		s.insertTriangle(clamped)
	}

	if p.SectorAbove != nil && !visited.Has(p.RoomAbove.number) {
		offcut := t.mapY(func(y float32) float32 { return minOf(y, top) }).Offset(p.AboveOffset.Mul(-1))
		p.SectorAbove.addTriangle(p.SectorAbove.selfPortal(), offcut, visited)
	}
}

func (s *Sector) insertTriangle(t Triangle) {
	t.Room = s.room
	if slices.Contains(s.triangles, t) {
		return
	}

	s.triangles = append(s.triangles, t)
}
