package trsector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// walledRoom builds a room whose border is wall and whose interior has a
// flat floor at yBottom and ceiling at yTop. Positions are in blocks.
func walledRoom(nx, nz uint16, x, yTop, yBottom int32) RawRoom {
	r := RawRoom{
		Info:          RawRoomInfo{X: x * scale, YTop: yTop * scale, YBottom: yBottom * scale},
		NumXSectors:   nx,
		NumZSectors:   nz,
		AlternateRoom: -1,
	}

	for sx := 0; sx < int(nx); sx++ {
		for sz := 0; sz < int(nz); sz++ {
			s := RawSector{
				Floor:     int8(yBottom * 4),
				Ceiling:   int8(yTop * 4),
				RoomAbove: noRoom,
				RoomBelow: noRoom,
			}

			if sx == 0 || sz == 0 || sx == int(nx)-1 || sz == int(nz)-1 {
				s.Floor, s.Ceiling = wallHeight, wallHeight
			}

			r.Sectors = append(r.Sectors, s)
		}
	}

	return r
}

func rawSector(r *RawRoom, x, z int) *RawSector {
	return &r.Sectors[x*int(r.NumZSectors)+z]
}

func buildLevel(t *testing.T, raw RawLevel) *Level {
	t.Helper()

	if len(raw.Floordata) == 0 {
		raw.Floordata = []uint16{0}
	}

	l, err := NewLevel(raw)
	require.NoError(t, err)

	return l
}

func sectorOf(t *testing.T, l *Level, room uint32, x, z int) *Sector {
	t.Helper()

	r, ok := l.Room(room)
	require.True(t, ok)

	s := r.Sector(x, z)
	require.NotNil(t, s)

	return s
}

// singleSector builds a 3x3 walled room whose centre sector starts at
// floordata index 1 of fd.
func singleSector(t *testing.T, version PlatformAndVersion, fd ...uint16) *Sector {
	t.Helper()

	room := walledRoom(3, 3, 0, -2, 0)
	if len(fd) > 1 {
		rawSector(&room, 1, 1).FloordataIndex = 1
	}

	l := buildLevel(t, RawLevel{Version: version, Floordata: fd, Rooms: []RawRoom{room}})

	return sectorOf(t, l, 0, 1, 1)
}
