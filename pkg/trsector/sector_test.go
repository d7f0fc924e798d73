package trsector

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSector_Walls(t *testing.T) {
	t.Parallel()

	room := walledRoom(3, 3, 0, -2, 0)
	l := buildLevel(t, RawLevel{Rooms: []RawRoom{room}})

	edge := sectorOf(t, l, 0, 0, 1)
	assert.True(t, edge.IsWall())
	assert.False(t, edge.Flags().Contains(FlagSpecialWall))
	assert.Equal(t, [4]float32{0, 0, 0, 0}, edge.Corners())
	assert.Equal(t, [4]float32{-2, -2, -2, -2}, edge.CeilingCorners())
	assert.False(t, edge.IsFloor())
	assert.False(t, edge.IsCeiling())

	rawSector(&room, 1, 1).Floor = wallHeight
	rawSector(&room, 1, 1).Ceiling = wallHeight
	l = buildLevel(t, RawLevel{Rooms: []RawRoom{room}})

	interior := sectorOf(t, l, 0, 1, 1)
	assert.Equal(t, FlagWall|FlagSpecialWall, interior.Flags())
}

func TestSector_Flat(t *testing.T) {
	t.Parallel()

	s := singleSector(t, PlatformAndVersion{})

	assert.Equal(t, FlagNone, s.Flags())
	assert.Equal(t, 4, s.ID())
	assert.Equal(t, uint16(1), s.X())
	assert.Equal(t, uint16(1), s.Z())
	assert.Equal(t, uint32(4), s.Number())
	assert.True(t, s.IsFloor())
	assert.True(t, s.IsCeiling())
	assert.Equal(t, [4]float32{0, 0, 0, 0}, s.Corners())
	assert.Equal(t, [4]float32{-2, -2, -2, -2}, s.CeilingCorners())
	assert.Equal(t, [4]int{-8, -8, -8, -8}, s.CeilingCornerClicks())
	assert.Equal(t, TriangulationNone, s.Triangulation())
	assert.False(t, s.Incomplete())

	_, ok := s.TriggerInfo()
	assert.False(t, ok)

	assert.Equal(t, mgl32.Vec3{1, 0, 2}, s.Corner(CornerNW))
	assert.Equal(t, mgl32.Vec3{2, 0, 2}, s.Corner(CornerNE))
	assert.Equal(t, mgl32.Vec3{2, 0, 1}, s.Corner(CornerSE))
	assert.Equal(t, mgl32.Vec3{1, 0, 1}, s.Corner(CornerSW))
	assert.Equal(t, mgl32.Vec3{1, -2, 2}, s.CeilingCorner(CornerNW))
}

func TestSector_Slant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		slant uint16
		floor [4]float32
	}{
		{"positive x", 0x0002, [4]float32{0.5, 0.5, 0, 0}},
		{"negative x", 0x00FE, [4]float32{0, 0, 0.5, 0.5}},
		{"positive z", 0x0300, [4]float32{0.75, 0, 0.75, 0}},
		{"negative z", 0xFD00, [4]float32{0, 0.75, 0, 0.75}},
		{"both", 0xFF01, [4]float32{0.25, 0.5, 0, 0.25}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			floor := singleSector(t, PlatformAndVersion{}, 0x0000, 0x8002, tt.slant)
			assert.Equal(t, tt.floor, floor.Corners())
			assert.True(t, floor.Flags().Contains(FlagFloorSlant))
			assert.Equal(t, int8(tt.slant&0xFF), floor.TiltX())
			assert.Equal(t, int8(tt.slant>>8), floor.TiltZ())

			ceiling := singleSector(t, PlatformAndVersion{}, 0x0000, 0x8003, tt.slant)
			assert.True(t, ceiling.Flags().Contains(FlagCeilingSlant))

			// the ceiling moves the same corners the other way
			for i, c := range ceiling.CeilingCorners() {
				assert.Equal(t, -tt.floor[i], c+2, "corner %d", i)
			}
		})
	}
}

func TestSector_Triangulation(t *testing.T) {
	t.Parallel()

	floor := singleSector(t, PlatformAndVersion{}, 0x0000, 0x8007, 0x1234)
	assert.Equal(t, TriangulationNwSe, floor.Triangulation())
	assert.Equal(t, [4]float32{0.25, 0.5, 0, 0.75}, floor.Corners())
	assert.Equal(t, [4]int{1, 2, 0, 3}, floor.CornerClicks())

	info, ok := floor.FloorTriangulationInfo()
	require.True(t, ok)
	assert.Equal(t, FunctionTriangulationFloorNWSE, info.Function)

	_, ok = floor.CeilingTriangulationInfo()
	assert.False(t, ok)

	ceiling := singleSector(t, PlatformAndVersion{}, 0x0000, 0x800A, 0x1234)
	assert.Equal(t, TriangulationNeSw, ceiling.CeilingTriangulation())
	assert.Equal(t, TriangulationNone, ceiling.Triangulation())
	assert.Equal(t, [4]float32{-2.75, -2, -2.5, -2.25}, ceiling.CeilingCorners())
	assert.Equal(t, mgl32.Vec3{1, -2.25, 2}, ceiling.CeilingCorner(CornerNW))
}

func TestSector_Trigger(t *testing.T) {
	t.Parallel()

	s := singleSector(t, PlatformAndVersion{}, 0x0000, 0x8004, 0x0105, 0x8003)

	assert.Equal(t, FlagTrigger, s.Flags())

	info, ok := s.TriggerInfo()
	require.True(t, ok)
	assert.Equal(t, uint8(5), info.Timer)
	assert.True(t, info.Oneshot)
	assert.Equal(t, uint8(0), info.Mask)
	assert.Equal(t, TriggerTrigger, info.Type)
	assert.Equal(t, uint16(4), info.SectorID)
	assert.Equal(t, []TriggerCommand{{Type: CommandObject, Data: []uint16{3}}}, info.Commands)
}

func TestSector_FlagCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		floordata []uint16
		want      SectorFlag
	}{
		{"death", []uint16{0, 0x8005}, FlagDeath},
		{"climbable north and south", []uint16{0, 0x8506}, FlagClimbableNorth | FlagClimbableSouth},
		{"climbable west", []uint16{0, 0x8806}, FlagClimbableWest},
		{"monkey swing", []uint16{0, 0x8013}, FlagMonkeySwing},
		{"minecart left", []uint16{0, 0x8014}, FlagMinecartLeft},
		{"minecart right", []uint16{0, 0x8015}, FlagMinecartRight},
		{"death and monkey swing", []uint16{0, 0x0005, 0x8013}, FlagDeath | FlagMonkeySwing},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, singleSector(t, PlatformAndVersion{}, tt.floordata...).Flags())
		})
	}
}

func TestSector_Portal(t *testing.T) {
	t.Parallel()

	s := singleSector(t, PlatformAndVersion{}, 0x0000, 0x8001, 0x0000)

	assert.True(t, s.IsPortal())
	assert.Equal(t, []uint16{0}, s.Portals())
	assert.Equal(t, []uint16{0}, s.Neighbours())
	assert.False(t, s.IsFloor())
	assert.False(t, s.IsCeiling())
	assert.Empty(t, s.Triangles())
}

func TestSector_Neighbours(t *testing.T) {
	t.Parallel()

	room := walledRoom(3, 3, 0, -2, 0)
	centre := rawSector(&room, 1, 1)
	centre.FloordataIndex = 1
	centre.RoomAbove = 2

	withAlternate := walledRoom(3, 3, 0, -2, 0)
	withAlternate.AlternateRoom = 3

	l := buildLevel(t, RawLevel{
		// the first portal leads out of the level and is ignored
		Floordata: []uint16{0x0000, 0x0001, 0x0009, 0x8001, 0x0001},
		Rooms:     []RawRoom{room, withAlternate, walledRoom(3, 3, 0, -4, -2), walledRoom(3, 3, 0, -2, 0)},
	})

	s := sectorOf(t, l, 0, 1, 1)
	assert.Equal(t, []uint16{9, 1}, s.Portals())
	assert.Equal(t, []uint16{1, 2, 3}, s.Neighbours())
	assert.True(t, s.Flags().Contains(FlagRoomAbove))
	assert.Equal(t, uint16(2), s.RoomAbove())
	assert.Equal(t, uint16(noRoom), s.RoomBelow())

	alternate, ok := l.Room(3)
	require.True(t, ok)
	assert.Equal(t, IsAlternate, alternate.AlternateMode())
	assert.Equal(t, int16(1), alternate.AlternateRoom())

	original, ok := l.Room(1)
	require.True(t, ok)
	assert.Equal(t, HasAlternate, original.AlternateMode())

	other, ok := l.Room(2)
	require.True(t, ok)
	assert.Equal(t, AlternateNone, other.AlternateMode())
}

func TestSector_Tomb3BoxIndex(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		version  LevelVersion
		box      uint16
		material uint16
		stopper  bool
	}{
		{Tomb2, 0x8123, 0, false},
		{Tomb3, 0x12, 3, true},
		{Tomb4, 0x12, 3, true},
	} {
		room := walledRoom(3, 3, 0, -2, 0)
		rawSector(&room, 1, 1).BoxIndex = 0x8123

		l := buildLevel(t, RawLevel{Version: PlatformAndVersion{Platform: PlatformPC, Version: tt.version}, Rooms: []RawRoom{room}})
		s := sectorOf(t, l, 0, 1, 1)

		assert.Equal(t, tt.box, s.BoxIndex(), "version %d", tt.version)
		assert.Equal(t, tt.material, s.Material(), "version %d", tt.version)
		assert.Equal(t, tt.stopper, s.Stopper(), "version %d", tt.version)
	}
}

func TestSector_May1996(t *testing.T) {
	t.Parallel()

	may1996 := PlatformAndVersion{Platform: PlatformPSX, Version: Tomb1, RawVersion: tr1May1996RawVersion}

	// raw trigger code is a floor slant in this build
	s := singleSector(t, may1996, 0x0000, 0x8004, 0x0002)
	assert.Equal(t, FlagFloorSlant, s.Flags())
	assert.Equal(t, [4]float32{0.5, 0.5, 0, 0}, s.Corners())
}

func TestNewLevel_DecodeErrors(t *testing.T) {
	t.Parallel()

	room := walledRoom(3, 3, 0, -2, 0)
	rawSector(&room, 1, 1).FloordataIndex = 1

	l, err := NewLevel(RawLevel{
		Floordata: []uint16{0x0000, 0x0005, 0x0013},
		Rooms:     []RawRoom{room},
	})
	require.Error(t, err)
	require.NotNil(t, l)

	var decodeErrs DecodeErrors
	require.ErrorAs(t, err, &decodeErrs)
	require.Len(t, decodeErrs.Sectors, 1)
	assert.Equal(t, uint32(0), decodeErrs.Sectors[0].Room)
	assert.Equal(t, 4, decodeErrs.Sectors[0].Sector)
	assert.True(t, errors.Is(decodeErrs.Sectors[0], ErrOutOfBounds))

	// what was decoded before the walk left the array is kept
	s := sectorOf(t, l, 0, 1, 1)
	assert.True(t, s.Incomplete())
	assert.Equal(t, FlagDeath|FlagMonkeySwing, s.Flags())
	assert.NotEmpty(t, s.Triangles())
}
