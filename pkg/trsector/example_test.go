package trsector_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/saiko-tech/trsector/pkg/trsector"
)

func ExampleParseFloordata() {
	floordata := []uint16{0x0000, 0x0002, 0x0102, 0x8001, 0x0003}

	fd, err := trsector.ParseFloordata(floordata, 1, trsector.DecodeOptions{Meanings: trsector.MeaningsGenerate})
	if err != nil {
		panic(err)
	}

	for _, c := range fd.Commands {
		fmt.Printf("%v %q\n", c.Function, c.Meanings)
	}

	// Output:
	// Floor Slant ["Floor Slant" "  X:2, Z:1"]
	// Portal ["Portal" "  Room 3"]
}

func ExampleLevel_Pick() {
	l, err := trsector.LoadLevelFromFile("../../testdata/two_rooms.yaml")
	if err != nil {
		panic(err)
	}

	res := l.Pick(mgl32.Vec3{3.5, -1.75, 1.25}, mgl32.Vec3{0, 1, 0})
	fmt.Println("room:", res.Room, "sector:", res.Sector.X(), res.Sector.Z(), "flags:", res.Sector.Flags())

	// Output:
	// room: 1 sector: 1 1 flags: None
}
