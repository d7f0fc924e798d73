package trsector

// Platform is the platform a level file was built for.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformPC
	PlatformPSX
	PlatformSaturn
	PlatformDreamcast
)

// LevelVersion is the game a level file belongs to. Values are ordered so
// that later games compare greater.
type LevelVersion int

const (
	VersionUnknown LevelVersion = iota
	Tomb1
	Tomb2
	Tomb3
	Tomb4
	Tomb5
)

const tr1May1996RawVersion = 11

// PlatformAndVersion identifies the exact build of a level file.
type PlatformAndVersion struct {
	Platform   Platform     `yaml:"platform"`
	Version    LevelVersion `yaml:"version"`
	RawVersion int32        `yaml:"raw_version"`
}

// IsTR1May1996 reports whether the level comes from the May 1996 TR1
// prerelease, which assigns floordata function codes differently.
func (v PlatformAndVersion) IsTR1May1996() bool {
	return v.Platform == PlatformPSX && v.Version == Tomb1 && v.RawVersion == tr1May1996RawVersion
}
