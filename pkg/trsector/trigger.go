package trsector

import "strconv"

// TriggerType is the kind of trigger, stored in the subfunction of a
// trigger floordata command.
type TriggerType uint16

const (
	TriggerTrigger TriggerType = iota
	TriggerPad
	TriggerSwitch
	TriggerKey
	TriggerPickup
	TriggerHeavyTrigger
	TriggerAntipad
	TriggerCombat
	TriggerDummy
	TriggerAntiTrigger
	TriggerHeavySwitch
	TriggerHeavyAntiTrigger
	TriggerMonkey
	TriggerSkeleton
	TriggerTightrope
	TriggerCrawl
	TriggerClimb
)

var triggerTypeNames = map[TriggerType]string{
	TriggerTrigger:          "Trigger",
	TriggerPad:              "Pad",
	TriggerSwitch:           "Switch",
	TriggerKey:              "Key",
	TriggerPickup:           "Pickup",
	TriggerHeavyTrigger:     "Heavy Trigger",
	TriggerAntipad:          "Antipad",
	TriggerCombat:           "Combat",
	TriggerDummy:            "Dummy",
	TriggerAntiTrigger:      "Antitrigger",
	TriggerHeavySwitch:      "Heavy Switch",
	TriggerHeavyAntiTrigger: "Heavy Antitrigger",
	TriggerMonkey:           "Monkey",
	TriggerSkeleton:         "Skeleton",
	TriggerTightrope:        "Tightrope",
	TriggerCrawl:            "Crawl",
	TriggerClimb:            "Climb",
}

func (t TriggerType) String() string {
	if name, ok := triggerTypeNames[t]; ok {
		return name
	}

	return "Unknown (" + strconv.Itoa(int(t)) + ")"
}

// TriggerCommandType is the action performed by one trigger command.
type TriggerCommandType uint16

const (
	CommandObject TriggerCommandType = iota
	CommandCamera
	CommandUnderwaterCurrent
	CommandFlipMap
	CommandFlipOn
	CommandFlipOff
	CommandLookAtItem
	CommandEndLevel
	CommandPlaySoundtrack
	CommandFlipeffect
	CommandSecretFound
	CommandClearBodies
	CommandFlyby
	CommandCutscene
)

var commandTypeNames = map[TriggerCommandType]string{
	CommandObject:            "Item",
	CommandCamera:            "Camera",
	CommandUnderwaterCurrent: "Current",
	CommandFlipMap:           "Flip Map",
	CommandFlipOn:            "Flip On",
	CommandFlipOff:           "Flip Off",
	CommandLookAtItem:        "Look at Item",
	CommandEndLevel:          "End Level",
	CommandPlaySoundtrack:    "Music",
	CommandFlipeffect:        "Flipeffect",
	CommandSecretFound:       "Secret",
	CommandClearBodies:       "Clear Bodies",
	CommandFlyby:             "Flyby",
	CommandCutscene:          "Cutscene",
}

func (c TriggerCommandType) String() string {
	if name, ok := commandTypeNames[c]; ok {
		return name
	}

	return "Unknown (" + strconv.Itoa(int(c)) + ")"
}

// HasIndex reports whether the command carries a meaningful index.
func (c TriggerCommandType) HasIndex() bool {
	return c != CommandClearBodies && c != CommandEndLevel
}

// IsItem reports whether the command's index refers to an item.
func (c TriggerCommandType) IsItem() bool {
	return c == CommandObject || c == CommandLookAtItem
}

// hasExtraWord reports whether the action is followed by a second word.
func (c TriggerCommandType) hasExtraWord(trng bool) bool {
	return c == CommandCamera || c == CommandFlyby || (trng && c == CommandFlipeffect)
}

func actionType(word uint16) TriggerCommandType {
	return TriggerCommandType((word >> 10) & 0x1F)
}

// TriggerCommand is one decoded trigger action. Data holds the index and,
// for actions followed by a second word, that word's value.
type TriggerCommand struct {
	Type TriggerCommandType
	Data []uint16
}

// Index is the first data value of the command.
func (c TriggerCommand) Index() uint16 {
	if len(c.Data) == 0 {
		return 0
	}

	return c.Data[0]
}

// TriggerInfo is the decoded trigger setup of a sector.
type TriggerInfo struct {
	Timer    uint8
	Oneshot  bool
	Mask     uint8
	Type     TriggerType
	SectorID uint16
	Commands []TriggerCommand
}

// TriggersItem reports whether any item command targets the item index.
func (t TriggerInfo) TriggersItem(index uint16) bool {
	for _, c := range t.Commands {
		if c.Type == CommandObject && c.Index() == index {
			return true
		}
	}

	return false
}

// parseTriggerInfo builds the trigger info from the words of a decoded
// trigger command: header, setup, optional lock/switch reference, actions.
func parseTriggerInfo(data []uint16, sectorID uint16, trng bool) TriggerInfo {
	header := data[0]
	info := TriggerInfo{
		Type:     TriggerType((header >> 8) & 0x7F),
		SectorID: sectorID,
	}

	if len(data) < 2 {
		return info
	}

	setup := data[1]
	info.Timer = uint8(setup & 0xFF)
	info.Oneshot = setup&0x100 != 0
	info.Mask = uint8((setup & 0x3E00) >> 9)

	i := 2
	if info.Type == TriggerKey || info.Type == TriggerSwitch {
		// lock or switch reference, not an action
		if i >= len(data) || data[i]&0x8000 != 0 {
			return info
		}
		i++
	}

	for i < len(data) {
		word := data[i]
		action := actionType(word)
		command := TriggerCommand{Type: action, Data: []uint16{word & 0x3FF}}

		if action.hasExtraWord(trng) && i+1 < len(data) {
			command.Data = append(command.Data, data[i+1]&0x7FF)
			i++
		}

		info.Commands = append(info.Commands, command)
		i++
	}

	return info
}
