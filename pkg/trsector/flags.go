package trsector

import "strings"

// SectorFlag is a set of sector properties.
type SectorFlag uint16

const (
	FlagPortal SectorFlag = 1 << iota
	FlagSpecialWall
	FlagWall
	FlagTrigger
	FlagDeath
	FlagFloorSlant
	FlagClimbableNorth // +Z edge
	FlagClimbableEast  // +X edge
	FlagClimbableSouth // -Z edge
	FlagClimbableWest  // -X edge
	FlagCeilingSlant
	FlagMonkeySwing
	FlagRoomAbove
	FlagRoomBelow
	FlagMinecartLeft  // trigger triggerer in TR4+
	FlagMinecartRight // mapper in TR4+

	FlagNone      SectorFlag = 0
	FlagClimbable            = FlagClimbableNorth | FlagClimbableEast | FlagClimbableSouth | FlagClimbableWest
)

// climbableShift moves the climbable wall subfunction bits onto the
// climbable flags.
const climbableShift = 6

var flagNames = []struct {
	flag SectorFlag
	name string
}{
	{FlagPortal, "Portal"},
	{FlagSpecialWall, "SpecialWall"},
	{FlagWall, "Wall"},
	{FlagTrigger, "Trigger"},
	{FlagDeath, "Death"},
	{FlagFloorSlant, "FloorSlant"},
	{FlagClimbableNorth, "ClimbableNorth"},
	{FlagClimbableEast, "ClimbableEast"},
	{FlagClimbableSouth, "ClimbableSouth"},
	{FlagClimbableWest, "ClimbableWest"},
	{FlagCeilingSlant, "CeilingSlant"},
	{FlagMonkeySwing, "MonkeySwing"},
	{FlagRoomAbove, "RoomAbove"},
	{FlagRoomBelow, "RoomBelow"},
	{FlagMinecartLeft, "MinecartLeft"},
	{FlagMinecartRight, "MinecartRight"},
}

// Contains reports whether every flag in other is set.
func (f SectorFlag) Contains(other SectorFlag) bool {
	return f&other == other
}

// Union returns the flags set in either f or other.
func (f SectorFlag) Union(other SectorFlag) SectorFlag {
	return f | other
}

// Difference returns f without the flags in other.
func (f SectorFlag) Difference(other SectorFlag) SectorFlag {
	return f &^ other
}

func (f SectorFlag) String() string {
	if f == FlagNone {
		return "None"
	}

	var names []string
	for _, n := range flagNames {
		if f.Contains(n.flag) {
			names = append(names, n.name)
		}
	}

	return strings.Join(names, "|")
}
