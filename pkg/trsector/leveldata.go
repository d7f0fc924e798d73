package trsector

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	noRoom     = 0xFF
	wallHeight = -127

	// world units per block
	scale = 1024
)

// RawSector is a sector as stored in the level file.
type RawSector struct {
	FloordataIndex uint16 `yaml:"floordata_index"`
	BoxIndex       uint16 `yaml:"box_index"`
	RoomBelow      uint8  `yaml:"room_below"`
	Floor          int8   `yaml:"floor"`
	RoomAbove      uint8  `yaml:"room_above"`
	Ceiling        int8   `yaml:"ceiling"`
}

// UnmarshalYAML applies the "no room" defaults for omitted room links.
func (s *RawSector) UnmarshalYAML(node *yaml.Node) error {
	type plain RawSector

	p := plain{RoomAbove: noRoom, RoomBelow: noRoom}
	if err := node.Decode(&p); err != nil {
		return err
	}

	*s = RawSector(p)

	return nil
}

// RawRoomInfo is the position and vertical extent of a room in world units.
type RawRoomInfo struct {
	X       int32 `yaml:"x"`
	Z       int32 `yaml:"z"`
	YBottom int32 `yaml:"y_bottom"`
	YTop    int32 `yaml:"y_top"`
}

// RawRoom is a room as stored in the level file.
type RawRoom struct {
	Info          RawRoomInfo `yaml:"info"`
	NumXSectors   uint16      `yaml:"num_x_sectors"`
	NumZSectors   uint16      `yaml:"num_z_sectors"`
	Sectors       []RawSector `yaml:"sectors"`
	AlternateRoom int16       `yaml:"alternate_room"`
}

// UnmarshalYAML defaults alternate_room to -1.
func (r *RawRoom) UnmarshalYAML(node *yaml.Node) error {
	type plain RawRoom

	p := plain{AlternateRoom: -1}
	if err := node.Decode(&p); err != nil {
		return err
	}

	*r = RawRoom(p)

	return nil
}

// RawLevel is everything the sector engine needs from a loaded level.
type RawLevel struct {
	Version   PlatformAndVersion `yaml:"version"`
	TRNG      bool               `yaml:"trng"`
	Floordata []uint16           `yaml:"floordata"`
	Rooms     []RawRoom          `yaml:"rooms"`
	Items     []Item             `yaml:"items"`
}

// Validate checks the structural consistency of the level.
func (l RawLevel) Validate() error {
	if len(l.Rooms) == 0 {
		return errors.New("level has no rooms")
	}

	if len(l.Floordata) == 0 {
		return errors.New("level has no floordata")
	}

	for i, r := range l.Rooms {
		if want := int(r.NumXSectors) * int(r.NumZSectors); want != len(r.Sectors) {
			return errors.Errorf("room %d: expected %d sectors, got %d", i, want, len(r.Sectors))
		}

		if r.AlternateRoom < -1 || int(r.AlternateRoom) >= len(l.Rooms) {
			return errors.Errorf("room %d: alternate room %d out of range", i, r.AlternateRoom)
		}
	}

	return nil
}

// ReadLevel reads a YAML level description.
func ReadLevel(r io.Reader) (RawLevel, error) {
	var level RawLevel

	if err := yaml.NewDecoder(r).Decode(&level); err != nil {
		return RawLevel{}, errors.Wrap(err, "failed to decode level description")
	}

	if err := level.Validate(); err != nil {
		return RawLevel{}, errors.Wrap(err, "invalid level description")
	}

	return level, nil
}

// LoadLevelFromFile reads a YAML level description and builds the level.
// As with NewLevel, a non-nil level may be returned together with a
// DecodeErrors error.
func LoadLevelFromFile(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open level %q", path)
	}

	defer f.Close()

	raw, err := ReadLevel(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read level %q", path)
	}

	return NewLevel(raw)
}
