package trsector

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/slices"
)

// Sector is one grid cell of a room. Everything except the generated
// triangles is fixed once the sector is constructed.
type Sector struct {
	level *Level
	room  uint32

	id     int
	number uint32
	x, z   uint16

	raw            RawSector
	floordataIndex uint32
	boxIndex       uint16
	material       uint16
	stopper        bool

	flags          SectorFlag
	corners        [4]float32
	ceilingCorners [4]float32
	floorSlant     uint16
	ceilingSlant   uint16

	floorTriangulation   *Triangulation
	ceilingTriangulation *Triangulation
	triangulation        TriangulationDirection
	ceilingDirection     TriangulationDirection

	trigger    *TriggerInfo
	portals    []uint16
	neighbours mapset.Set[uint16]

	err       error
	triangles []Triangle
}

// NewSector decodes a raw sector of a room. The level must already hold
// the raw level data; its rooms are not needed until GenerateTriangles.
func NewSector(level *Level, room RawRoom, sector RawSector, id int, roomNumber uint32, number uint32) *Sector {
	s := &Sector{
		level:          level,
		room:           roomNumber,
		id:             id,
		number:         number,
		raw:            sector,
		floordataIndex: uint32(sector.FloordataIndex),
		boxIndex:       sector.BoxIndex,
		neighbours:     mapset.New[uint16](),
	}

	if room.NumZSectors > 0 {
		s.x = uint16(id / int(room.NumZSectors))
		s.z = uint16(id % int(room.NumZSectors))
	}

	s.parse(level.raw, room)

	if level.raw.Version.Version >= Tomb3 {
		s.material = s.boxIndex & 0xF
		s.stopper = s.boxIndex&0x8000 != 0
		s.boxIndex = (s.boxIndex & 0x7FF0) >> 4
	}

	s.calculateNeighbours(level.raw)

	return s
}

func (s *Sector) parse(level RawLevel, room RawRoom) {
	if s.raw.Floor == wallHeight && s.raw.Ceiling == wallHeight {
		s.flags |= FlagWall

		if s.x > 0 && int(s.x) < int(room.NumXSectors)-1 && s.z > 0 && int(s.z) < int(room.NumZSectors)-1 {
			s.flags |= FlagSpecialWall
		}
	}

	if s.raw.RoomAbove != noRoom {
		s.flags |= FlagRoomAbove
	}

	if s.raw.RoomBelow != noRoom {
		s.flags |= FlagRoomBelow
	}

	floor := float32(s.raw.Floor) * 0.25
	ceiling := float32(s.raw.Ceiling) * 0.25
	if s.IsWall() {
		floor = float32(room.Info.YBottom) / scale
		ceiling = float32(room.Info.YTop) / scale
	}

	for i := range s.corners {
		s.corners[i] = floor
		s.ceilingCorners[i] = ceiling
	}

	if s.floordataIndex == 0 {
		return
	}

	floordata, err := ParseFloordata(level.Floordata, s.floordataIndex, DecodeOptions{
		TRNG:    level.TRNG,
		Version: &level.Version,
	})
	s.err = err

	for _, command := range floordata.Commands {
		s.apply(command, level.TRNG)
	}
}

func (s *Sector) apply(command Command, trng bool) {
	data := command.Data
	subfunction := (data[0] >> 8) & 0x7F

	switch {
	case command.Function == FunctionPortal:
		s.flags |= FlagPortal
		s.portals = append(s.portals, data[1]&0xFF)
	case command.Function == FunctionFloorSlant:
		s.flags |= FlagFloorSlant
		s.floorSlant = data[1]
		s.applyFloorSlant()
	case command.Function == FunctionCeilingSlant:
		s.flags |= FlagCeilingSlant
		s.ceilingSlant = data[1]
		s.applyCeilingSlant()
	case command.Function == FunctionTrigger:
		s.flags |= FlagTrigger
		info := parseTriggerInfo(data, uint16(s.id), trng)
		s.trigger = &info
	case command.Function == FunctionDeath:
		s.flags |= FlagDeath
	case command.Function == FunctionClimbableWall:
		s.flags |= SectorFlag(subfunction<<climbableShift) & FlagClimbable
	case command.Function.IsFloorTriangulation():
		t := ParseTriangulation(data[0], data[1])
		s.floorTriangulation = &t
		s.triangulation = t.Direction
		s.corners[0] += t.C00
		s.corners[1] += t.C01
		s.corners[2] += t.C10
		s.corners[3] += t.C11
	case command.Function.IsCeilingTriangulation():
		t := ParseTriangulation(data[0], data[1])
		s.ceilingTriangulation = &t
		s.ceilingDirection = t.Direction
		// the ceiling is wound the other way round
		s.ceilingCorners[3] -= t.C00
		s.ceilingCorners[2] -= t.C01
		s.ceilingCorners[1] -= t.C10
		s.ceilingCorners[0] -= t.C11
	case command.Function == FunctionMonkeySwing:
		s.flags |= FlagMonkeySwing
	case command.Function == FunctionMinecartLeftDeferredTrigger:
		s.flags |= FlagMinecartLeft
	case command.Function == FunctionMinecartRightMapper:
		s.flags |= FlagMinecartRight
	}
}

func slant(word uint16) (x, z int8) {
	return int8(word & 0xFF), int8(word >> 8)
}

func (s *Sector) applyFloorSlant() {
	x, z := slant(s.floorSlant)
	tx, tz := float32(x)*0.25, float32(z)*0.25

	if x > 0 {
		s.corners[0] += tx
		s.corners[1] += tx
	} else if x < 0 {
		s.corners[2] -= tx
		s.corners[3] -= tx
	}

	if z > 0 {
		s.corners[0] += tz
		s.corners[2] += tz
	} else if z < 0 {
		s.corners[1] -= tz
		s.corners[3] -= tz
	}
}

func (s *Sector) applyCeilingSlant() {
	x, z := slant(s.ceilingSlant)
	tx, tz := float32(x)*0.25, float32(z)*0.25

	if x > 0 {
		s.ceilingCorners[0] -= tx
		s.ceilingCorners[1] -= tx
	} else if x < 0 {
		s.ceilingCorners[2] += tx
		s.ceilingCorners[3] += tx
	}

	if z > 0 {
		s.ceilingCorners[0] -= tz
		s.ceilingCorners[2] -= tz
	} else if z < 0 {
		s.ceilingCorners[1] += tz
		s.ceilingCorners[3] += tz
	}
}

func (s *Sector) calculateNeighbours(level RawLevel) {
	add := func(room uint16) {
		if room == noRoom || int(room) >= len(level.Rooms) {
			return
		}

		s.neighbours.Put(room)
		if alternate := level.Rooms[room].AlternateRoom; alternate >= 0 && int(alternate) < len(level.Rooms) {
			s.neighbours.Put(uint16(alternate))
		}
	}

	if s.IsPortal() {
		for _, p := range s.portals {
			add(p)
		}
	}

	if s.flags.Contains(FlagRoomAbove) {
		add(uint16(s.raw.RoomAbove))
	}

	if s.flags.Contains(FlagRoomBelow) {
		add(uint16(s.raw.RoomBelow))
	}
}

// ID is the index of the sector in its room.
func (s *Sector) ID() int {
	return s.id
}

// Number is the position of the sector in the level-wide sector order.
func (s *Sector) Number() uint32 {
	return s.number
}

func (s *Sector) X() uint16 {
	return s.x
}

func (s *Sector) Z() uint16 {
	return s.z
}

// Room is the number of the room the sector belongs to.
func (s *Sector) Room() uint32 {
	return s.room
}

func (s *Sector) Flags() SectorFlag {
	return s.flags
}

// Err is the decode error for sectors whose floordata could not be fully
// decoded.
func (s *Sector) Err() error {
	return s.err
}

// Incomplete reports whether the floordata was only partially decoded.
func (s *Sector) Incomplete() bool {
	return s.err != nil
}

// Corners are the floor heights indexed by Corner.
func (s *Sector) Corners() [4]float32 {
	return s.corners
}

// CeilingCorners are the ceiling heights, stored in reverse corner order.
func (s *Sector) CeilingCorners() [4]float32 {
	return s.ceilingCorners
}

// CornerClicks are the floor heights in click units.
func (s *Sector) CornerClicks() [4]int {
	return toClicks(s.corners)
}

// CeilingCornerClicks are the ceiling heights in click units.
func (s *Sector) CeilingCornerClicks() [4]int {
	return toClicks(s.ceilingCorners)
}

func toClicks(heights [4]float32) (clicks [4]int) {
	for i, h := range heights {
		clicks[i] = int(math.Round(float64(h * 4)))
	}

	return clicks
}

// TriggerInfo is the sector's trigger, if it has one.
func (s *Sector) TriggerInfo() (TriggerInfo, bool) {
	if s.trigger == nil {
		return TriggerInfo{}, false
	}

	return *s.trigger, true
}

// Portals are the rooms the sector's wall portals lead to.
func (s *Sector) Portals() []uint16 {
	return slices.Clone(s.portals)
}

// Neighbours are the rooms reachable from the sector, in ascending order.
func (s *Sector) Neighbours() []uint16 {
	out := make([]uint16, 0, s.neighbours.Size())
	s.neighbours.Each(func(room uint16) {
		out = append(out, room)
	})
	slices.Sort(out)

	return out
}

func (s *Sector) RoomAbove() uint16 {
	return uint16(s.raw.RoomAbove)
}

func (s *Sector) RoomBelow() uint16 {
	return uint16(s.raw.RoomBelow)
}

func (s *Sector) IsWall() bool {
	return s.flags.Contains(FlagWall)
}

func (s *Sector) IsPortal() bool {
	return s.flags.Contains(FlagPortal)
}

// IsFloor reports whether the sector has a solid floor.
func (s *Sector) IsFloor() bool {
	return s.raw.RoomBelow == noRoom && !s.IsWall() && !s.IsPortal()
}

// IsCeiling reports whether the sector has a solid ceiling.
func (s *Sector) IsCeiling() bool {
	return s.raw.RoomAbove == noRoom && !s.IsWall() && !s.IsPortal()
}

// Floor is the raw floor height in clicks.
func (s *Sector) Floor() int8 {
	return s.raw.Floor
}

// Ceiling is the raw ceiling height in clicks.
func (s *Sector) Ceiling() int8 {
	return s.raw.Ceiling
}

func (s *Sector) FloordataIndex() uint32 {
	return s.floordataIndex
}

func (s *Sector) BoxIndex() uint16 {
	return s.boxIndex
}

// Material is the footstep material, TR3 onwards.
func (s *Sector) Material() uint16 {
	return s.material
}

// Stopper reports whether the sector blocks pushables, TR3 onwards.
func (s *Sector) Stopper() bool {
	return s.stopper
}

func (s *Sector) TiltX() int8 {
	x, _ := slant(s.floorSlant)
	return x
}

func (s *Sector) TiltZ() int8 {
	_, z := slant(s.floorSlant)
	return z
}

// Triangulation is the split direction of the floor.
func (s *Sector) Triangulation() TriangulationDirection {
	return s.triangulation
}

// CeilingTriangulation is the split direction of the ceiling.
func (s *Sector) CeilingTriangulation() TriangulationDirection {
	return s.ceilingDirection
}

// FloorTriangulationInfo is the decoded floor triangulation command.
func (s *Sector) FloorTriangulationInfo() (Triangulation, bool) {
	if s.floorTriangulation == nil {
		return Triangulation{}, false
	}

	return *s.floorTriangulation, true
}

// CeilingTriangulationInfo is the decoded ceiling triangulation command.
func (s *Sector) CeilingTriangulationInfo() (Triangulation, bool) {
	if s.ceilingTriangulation == nil {
		return Triangulation{}, false
	}

	return *s.ceilingTriangulation, true
}

// Corner is the position of a floor corner in room space.
func (s *Sector) Corner(c Corner) mgl32.Vec3 {
	x, z := float32(s.x), float32(s.z)

	switch c {
	case CornerNW:
		return mgl32.Vec3{x, s.corners[1], z + 1}
	case CornerNE:
		return mgl32.Vec3{x + 1, s.corners[3], z + 1}
	case CornerSE:
		return mgl32.Vec3{x + 1, s.corners[2], z}
	case CornerSW:
		return mgl32.Vec3{x, s.corners[0], z}
	}

	return mgl32.Vec3{}
}

// CeilingCorner is the position of a ceiling corner in room space.
func (s *Sector) CeilingCorner(c Corner) mgl32.Vec3 {
	x, z := float32(s.x), float32(s.z)

	switch c {
	case CornerNW:
		return mgl32.Vec3{x, s.ceilingCorners[3], z + 1}
	case CornerNE:
		return mgl32.Vec3{x + 1, s.ceilingCorners[1], z + 1}
	case CornerSE:
		return mgl32.Vec3{x + 1, s.ceilingCorners[0], z}
	case CornerSW:
		return mgl32.Vec3{x, s.ceilingCorners[2], z}
	}

	return mgl32.Vec3{}
}

// Triangles are the triangles generated for the sector.
func (s *Sector) Triangles() []Triangle {
	return slices.Clone(s.triangles)
}
