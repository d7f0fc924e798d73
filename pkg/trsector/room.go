package trsector

import "github.com/go-gl/mathgl/mgl32"

// AlternateMode is the flipmap role of a room.
type AlternateMode int

const (
	AlternateNone AlternateMode = iota
	// HasAlternate rooms are swapped out for their alternate when flipped.
	HasAlternate
	// IsAlternate rooms replace another room when flipped.
	IsAlternate
)

// Room owns the sector grid of one level room.
type Room struct {
	level  *Level
	number uint32

	info       RawRoomInfo
	numXSector uint16
	numZSector uint16
	sectors    []*Sector

	alternateRoom int16
	alternateMode AlternateMode
}

func newRoom(level *Level, number uint32, raw RawRoom) *Room {
	r := &Room{
		level:         level,
		number:        number,
		info:          raw.Info,
		numXSector:    raw.NumXSectors,
		numZSector:    raw.NumZSectors,
		sectors:       make([]*Sector, 0, len(raw.Sectors)),
		alternateRoom: raw.AlternateRoom,
	}

	if raw.AlternateRoom != -1 {
		r.alternateMode = HasAlternate
	}

	return r
}

func (r *Room) Number() uint32 {
	return r.number
}

// Origin is the position of the room's south west corner in blocks.
func (r *Room) Origin() mgl32.Vec3 {
	return mgl32.Vec3{float32(r.info.X / scale), 0, float32(r.info.Z / scale)}
}

// YTop is the highest point of the room in blocks. Y grows downwards.
func (r *Room) YTop() float32 {
	return float32(r.info.YTop) / scale
}

// YBottom is the lowest point of the room in blocks.
func (r *Room) YBottom() float32 {
	return float32(r.info.YBottom) / scale
}

func (r *Room) NumXSectors() uint16 {
	return r.numXSector
}

func (r *Room) NumZSectors() uint16 {
	return r.numZSector
}

// AlternateRoom is the number of the paired flipmap room, -1 if none.
func (r *Room) AlternateRoom() int16 {
	return r.alternateRoom
}

func (r *Room) AlternateMode() AlternateMode {
	return r.alternateMode
}

func (r *Room) setIsAlternate(number uint32) {
	r.alternateRoom = int16(number)
	r.alternateMode = IsAlternate
}

// Sectors are the room's sectors, ordered by x then z.
func (r *Room) Sectors() []*Sector {
	return r.sectors
}

// SectorAt returns the sector with the given index, nil if out of range.
func (r *Room) SectorAt(id int) *Sector {
	if id < 0 || id >= len(r.sectors) {
		return nil
	}

	return r.sectors[id]
}

// Sector returns the sector at the grid position, nil if out of range.
func (r *Room) Sector(x, z int) *Sector {
	if x < 0 || z < 0 || x >= int(r.numXSector) || z >= int(r.numZSector) {
		return nil
	}

	return r.SectorAt(x*int(r.numZSector) + z)
}

// relative finds the sector of this room at grid position (x, z) of room
// from, and the offset that moves this room's coordinates into from's.
func (r *Room) relative(from *Room, x, z int) (*Sector, mgl32.Vec3) {
	offset := r.Origin().Sub(from.Origin())

	return r.Sector(x-int(offset.X()), z-int(offset.Z())), offset
}

// SectorPortal describes the sector at grid position (x, z), following a
// wall portal to the sector on its far side and linking the sectors
// directly above and below it.
func (r *Room) SectorPortal(x, z int) Portal {
	direct := r.Sector(x, z)
	if direct == nil {
		return Portal{}
	}

	p := Portal{Direct: direct, DirectRoom: r}

	if direct.IsPortal() && len(direct.portals) > 0 {
		if other, ok := r.level.Room(uint32(direct.portals[0])); ok {
			p.Target, p.Offset = other.relative(r, x, z)
			if p.Target != nil {
				p.TargetRoom = other
			}
		}
	}

	if above, ok := r.level.Room(uint32(direct.RoomAbove())); ok && direct.RoomAbove() != noRoom {
		p.SectorAbove, p.AboveOffset = above.relative(r, x, z)
		if p.SectorAbove != nil {
			p.RoomAbove = above
		}
	}

	if below, ok := r.level.Room(uint32(direct.RoomBelow())); ok && direct.RoomBelow() != noRoom {
		p.SectorBelow, p.BelowOffset = below.relative(r, x, z)
		if p.SectorBelow != nil {
			p.RoomBelow = below
		}
	}

	return p
}
