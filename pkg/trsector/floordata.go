package trsector

import "strconv"

// Function is the 5 bit function code of a floordata command.
type Function uint16

const (
	FunctionNone Function = iota
	FunctionPortal
	FunctionFloorSlant
	FunctionCeilingSlant
	FunctionTrigger
	FunctionDeath
	FunctionClimbableWall
	FunctionTriangulationFloorNWSE
	FunctionTriangulationFloorNESW
	FunctionTriangulationCeilingNW
	FunctionTriangulationCeilingNE
	FunctionTriangulationFloorCollisionSW
	FunctionTriangulationFloorCollisionNE
	FunctionTriangulationFloorCollisionSE
	FunctionTriangulationFloorCollisionNW
	FunctionTriangulationCeilingCollisionSW
	FunctionTriangulationCeilingCollisionNE
	FunctionTriangulationCeilingCollisionNW
	FunctionTriangulationCeilingCollisionSE
	FunctionMonkeySwing
	FunctionMinecartLeftDeferredTrigger
	FunctionMinecartRightMapper
)

var functionNames = map[Function]string{
	FunctionNone:                            "None",
	FunctionPortal:                          "Portal",
	FunctionFloorSlant:                      "Floor Slant",
	FunctionCeilingSlant:                    "Ceiling Slant",
	FunctionTrigger:                         "Trigger",
	FunctionDeath:                           "Death",
	FunctionClimbableWall:                   "Climbable Wall",
	FunctionTriangulationFloorNWSE:          "Triangulation Floor NW-SE",
	FunctionTriangulationFloorNESW:          "Triangulation Floor NE-SW",
	FunctionTriangulationCeilingNW:          "Triangulation Ceiling NW",
	FunctionTriangulationCeilingNE:          "Triangulation Ceiling NE",
	FunctionTriangulationFloorCollisionSW:   "Triangulation Floor Collision SW",
	FunctionTriangulationFloorCollisionNE:   "Triangulation Floor Collision NE",
	FunctionTriangulationFloorCollisionSE:   "Triangulation Floor Collision SE",
	FunctionTriangulationFloorCollisionNW:   "Triangulation Floor Collision NW",
	FunctionTriangulationCeilingCollisionSW: "Triangulation Ceiling Collision SW",
	FunctionTriangulationCeilingCollisionNE: "Triangulation Ceiling Collision NE",
	FunctionTriangulationCeilingCollisionNW: "Triangulation Ceiling Collision NW",
	FunctionTriangulationCeilingCollisionSE: "Triangulation Ceiling Collision SE",
	FunctionMonkeySwing:                     "Monkey Swing",
	FunctionMinecartLeftDeferredTrigger:     "Minecart Left / Deferred Trigger",
	FunctionMinecartRightMapper:             "Minecart Right / Mapper",
}

func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}

	return "Unknown (" + strconv.Itoa(int(f)) + ")"
}

// IsFloorTriangulation reports whether f splits the floor.
func (f Function) IsFloorTriangulation() bool {
	switch f {
	case FunctionTriangulationFloorNWSE, FunctionTriangulationFloorNESW,
		FunctionTriangulationFloorCollisionSW, FunctionTriangulationFloorCollisionNE,
		FunctionTriangulationFloorCollisionSE, FunctionTriangulationFloorCollisionNW:
		return true
	}

	return false
}

// IsCeilingTriangulation reports whether f splits the ceiling.
func (f Function) IsCeilingTriangulation() bool {
	switch f {
	case FunctionTriangulationCeilingNW, FunctionTriangulationCeilingNE,
		FunctionTriangulationCeilingCollisionSW, FunctionTriangulationCeilingCollisionNE,
		FunctionTriangulationCeilingCollisionNW, FunctionTriangulationCeilingCollisionSE:
		return true
	}

	return false
}

// extractFunction reads the function code of a command word, remapping the
// codes used by the May 1996 TR1 prerelease.
func extractFunction(floor uint16, version *PlatformAndVersion) Function {
	function := Function(floor & 0x1F)
	if version == nil || !version.IsTR1May1996() {
		return function
	}

	switch function {
	case FunctionPortal:
		return FunctionDeath
	case FunctionDeath:
		return FunctionCeilingSlant
	case FunctionTrigger:
		return FunctionFloorSlant
	case FunctionCeilingSlant:
		return FunctionTrigger
	case FunctionFloorSlant:
		return FunctionPortal
	}

	return function
}

// FloordataMeanings selects whether commands carry descriptive text.
type FloordataMeanings int

const (
	MeaningsNone FloordataMeanings = iota
	MeaningsGenerate
)

// Item is the subset of a level item used to describe trigger commands.
type Item struct {
	Number uint32
	Type   string
}

// DecodeOptions controls ParseFloordata.
type DecodeOptions struct {
	Meanings FloordataMeanings
	Items    []Item
	// TRNG levels follow flipeffect actions with an extra word.
	TRNG    bool
	Version *PlatformAndVersion
}

// Command is one floordata command with every word it consumed.
type Command struct {
	Function Function
	Data     []uint16
	Meanings []string
}

// Floordata is the command chain of one sector.
type Floordata struct {
	Commands []Command
}

// Size is the number of floordata words consumed by all commands.
func (f Floordata) Size() uint32 {
	var sum uint32
	for _, c := range f.Commands {
		sum += uint32(len(c.Data))
	}

	return sum
}

type floordataReader struct {
	floordata []uint16
	index     uint32
}

func (r *floordataReader) read() (uint16, error) {
	if int(r.index) >= len(r.floordata) {
		return 0, &DecodeError{Kind: OutOfBounds, Index: r.index, Length: len(r.floordata)}
	}

	return r.floordata[r.index], nil
}

func (r *floordataReader) next() (uint16, error) {
	r.index++
	return r.read()
}

// ParseFloordata decodes the command chain starting at index. Index 0 is
// the "no floordata" sentinel and yields a single None command. If the walk
// leaves the array the commands decoded so far are returned together with a
// *DecodeError.
func ParseFloordata(floordata []uint16, index uint32, opts DecodeOptions) (Floordata, error) {
	var result Floordata

	r := &floordataReader{floordata: floordata, index: index}

	if index == 0 {
		word, err := r.read()
		if err != nil {
			return result, err
		}

		result.Commands = append(result.Commands, newCommand(FunctionNone, []uint16{word}, MeaningsNone, opts))

		return result, nil
	}

	for {
		floor, err := r.read()
		if err != nil {
			return result, err
		}

		function := extractFunction(floor, opts.Version)
		data := []uint16{floor}

		switch {
		case function == FunctionTrigger:
			data, err = readTrigger(r, floor, data, opts.TRNG)
		case function == FunctionPortal, function == FunctionFloorSlant, function == FunctionCeilingSlant,
			function.IsFloorTriangulation(), function.IsCeilingTriangulation():
			var word uint16
			word, err = r.next()
			data = append(data, word)
		}

		if err != nil {
			return result, err
		}

		result.Commands = append(result.Commands, newCommand(function, data, opts.Meanings, opts))

		if floor&0x8000 != 0 {
			return result, nil
		}

		r.index++
	}
}

func readTrigger(r *floordataReader, floor uint16, data []uint16, trng bool) ([]uint16, error) {
	setup, err := r.next()
	if err != nil {
		return data, err
	}
	data = append(data, setup)

	triggerType := TriggerType((floor >> 8) & 0x7F)
	if triggerType == TriggerKey || triggerType == TriggerSwitch {
		reference, err := r.next()
		if err != nil {
			return data, err
		}
		data = append(data, reference)

		if reference&0x8000 != 0 {
			return data, nil
		}
	}

	for int(r.index)+1 < len(r.floordata) {
		word, err := r.next()
		if err != nil {
			return data, err
		}
		data = append(data, word)

		if actionType(word).hasExtraWord(trng) {
			word, err = r.next()
			if err != nil {
				return data, err
			}
			data = append(data, word)
		}

		if word&0x8000 != 0 {
			break
		}
	}

	return data, nil
}

func newCommand(function Function, data []uint16, meanings FloordataMeanings, opts DecodeOptions) Command {
	c := Command{Function: function, Data: data}
	if meanings == MeaningsGenerate {
		c.Meanings = describeCommand(c, opts.Items, opts.TRNG)
	}

	return c
}
