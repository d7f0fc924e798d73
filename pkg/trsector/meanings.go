package trsector

import (
	"fmt"
	"strconv"
)

func describeCommand(c Command, items []Item, trng bool) []string {
	switch c.Function {
	case FunctionNone:
		return []string{"None"}
	case FunctionPortal:
		return []string{"Portal", "  Room " + strconv.Itoa(int(c.Data[1]&0xFF))}
	case FunctionFloorSlant:
		return []string{"Floor Slant", describeSlant(c.Data[1])}
	case FunctionCeilingSlant:
		return []string{"Ceiling Slant", describeSlant(c.Data[1])}
	case FunctionTrigger:
		return describeTrigger(c.Data, items, trng)
	case FunctionDeath:
		return []string{"Death"}
	case FunctionClimbableWall:
		return []string{"Climbable wall"}
	case FunctionMonkeySwing:
		return []string{"Monkey swing"}
	case FunctionMinecartLeftDeferredTrigger:
		return []string{"Minecart left"}
	case FunctionMinecartRightMapper:
		return []string{"Minecart right"}
	}

	if c.Function.IsFloorTriangulation() {
		return []string{"Floor triangulation", ""}
	}

	if c.Function.IsCeilingTriangulation() {
		return []string{"Ceiling triangulation", ""}
	}

	return nil
}

func describeSlant(slant uint16) string {
	x := int8(slant & 0xFF)
	z := int8(slant >> 8)

	return fmt.Sprintf("  X:%d, Z:%d", x, z)
}

func describeTrigger(data []uint16, items []Item, trng bool) []string {
	triggerType := TriggerType((data[0] >> 8) & 0x7F)
	meanings := []string{triggerType.String()}

	if len(data) < 2 {
		return meanings
	}

	setup := data[1]
	meanings = append(meanings, fmt.Sprintf("  Timer:%d, Only Once:%d, Mask:%05b",
		setup&0xFF, (setup&0x100)>>8, (setup&0x3E00)>>9))

	i := 2
	if triggerType == TriggerKey || triggerType == TriggerSwitch {
		if i >= len(data) {
			return meanings
		}
		meanings = append(meanings, "  Lock/Switch "+strconv.Itoa(int(data[i])))
		i++
	}

	for ; i < len(data); i++ {
		word := data[i]
		action := actionType(word)
		index := word & 0x3FF

		meaning := "  " + action.String()
		if action.HasIndex() {
			meaning += " " + strconv.Itoa(int(index))
			if action.IsItem() && int(index) < len(items) {
				meaning += " - " + items[index].Type
			}
		}
		meanings = append(meanings, meaning)

		if action.hasExtraWord(trng) && i+1 < len(data) {
			i++
			meanings = append(meanings, "    "+strconv.Itoa(int(data[i])))
		}
	}

	return meanings
}
