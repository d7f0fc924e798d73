// Package trsector decodes Tomb Raider floordata into sectors and derives
// floor, ceiling and wall geometry from them.
package trsector

// Level owns the rooms and sectors built from a raw level.
type Level struct {
	raw     RawLevel
	rooms   []*Room
	sectors []*Sector
}

// Trigger is a sector that carries trigger info.
type Trigger struct {
	Number   uint32
	Room     uint32
	X, Z     uint16
	SectorID uint16
	Info     TriggerInfo
}

// NewLevel builds every sector of every room and then generates their
// triangles. Sectors with broken floordata keep what could be decoded; they
// are reported through a DecodeErrors error returned with the level.
func NewLevel(raw RawLevel) (*Level, error) {
	l := &Level{
		raw:   raw,
		rooms: make([]*Room, 0, len(raw.Rooms)),
	}

	var decodeErrs DecodeErrors

	for i, rawRoom := range raw.Rooms {
		room := newRoom(l, uint32(i), rawRoom)

		for id, rawSector := range rawRoom.Sectors {
			sector := NewSector(l, rawRoom, rawSector, id, room.number, uint32(len(l.sectors)))

			if err := sector.Err(); err != nil {
				logger.Warn().Err(err).
					Uint32("room", room.number).
					Int("sector", id).
					Uint32("index", sector.FloordataIndex()).
					Msg("partially decoded floordata")

				decodeErrs.Sectors = append(decodeErrs.Sectors, SectorDecodeError{Room: room.number, Sector: id, Err: err})
			}

			room.sectors = append(room.sectors, sector)
			l.sectors = append(l.sectors, sector)
		}

		l.rooms = append(l.rooms, room)
	}

	for _, room := range l.rooms {
		if room.alternateMode != HasAlternate {
			continue
		}

		if alternate, ok := l.Room(uint32(room.alternateRoom)); ok {
			alternate.setIsAlternate(room.number)
		}
	}

	l.GenerateTriangles()

	logger.Debug().
		Int("rooms", len(l.rooms)).
		Int("sectors", len(l.sectors)).
		Int("triangles", l.triangleCount()).
		Msg("level built")

	if len(decodeErrs.Sectors) > 0 {
		return l, decodeErrs
	}

	return l, nil
}

// GenerateTriangles regenerates the triangles of every sector. All rooms
// must have been built.
func (l *Level) GenerateTriangles() {
	for _, s := range l.sectors {
		s.triangles = nil
	}

	for _, s := range l.sectors {
		s.GenerateTriangles()
	}
}

func (l *Level) triangleCount() int {
	n := 0
	for _, s := range l.sectors {
		n += len(s.triangles)
	}

	return n
}

// Room returns the room with the given number.
func (l *Level) Room(number uint32) (*Room, bool) {
	if int(number) >= len(l.rooms) {
		return nil, false
	}

	return l.rooms[number], true
}

func (l *Level) Rooms() []*Room {
	return l.rooms
}

func (l *Level) NumRooms() int {
	return len(l.rooms)
}

// Sectors are all sectors of the level in construction order.
func (l *Level) Sectors() []*Sector {
	return l.sectors
}

func (l *Level) Version() PlatformAndVersion {
	return l.raw.Version
}

func (l *Level) TRNG() bool {
	return l.raw.TRNG
}

func (l *Level) Floordata() []uint16 {
	return l.raw.Floordata
}

func (l *Level) Items() []Item {
	return l.raw.Items
}

// DescribeFloordata decodes the floordata of a sector with descriptive meanings.
func (l *Level) DescribeFloordata(s *Sector) (Floordata, error) {
	return ParseFloordata(l.raw.Floordata, s.FloordataIndex(), DecodeOptions{
		Meanings: MeaningsGenerate,
		Items:    l.raw.Items,
		TRNG:     l.raw.TRNG,
		Version:  &l.raw.Version,
	})
}

// Triggers lists every sector with a trigger, in sector order.
func (l *Level) Triggers() []Trigger {
	var triggers []Trigger

	for _, s := range l.sectors {
		info, ok := s.TriggerInfo()
		if !ok {
			continue
		}

		triggers = append(triggers, Trigger{
			Number:   uint32(len(triggers)),
			Room:     s.Room(),
			X:        s.X(),
			Z:        s.Z(),
			SectorID: uint16(s.ID()),
			Info:     info,
		})
	}

	return triggers
}
