package models

// Format represents the match length class
type Format string

const (
	// FormatT20 is the short limited-overs format
	FormatT20 Format = "t20"

	// FormatODI is the long limited-overs format
	FormatODI Format = "odi"

	// FormatTest is the unlimited-overs format
	FormatTest Format = "test"
)

// AllFormats lists every supported format in display order
var AllFormats = []Format{FormatT20, FormatODI, FormatTest}

// IsValid reports whether the format is one of the known formats
func (f Format) IsValid() bool {
	switch f {
	case FormatT20, FormatODI, FormatTest:
		return true
	}
	return false
}

// Overs returns the over limit per innings, 0 meaning unlimited
func (f Format) Overs() int {
	switch f {
	case FormatT20:
		return 20
	case FormatODI:
		return 50
	default:
		return 0
	}
}

// IsUnlimited reports whether innings in this format never end by over count
func (f Format) IsUnlimited() bool {
	return f.Overs() == 0
}

// SupportsSuperOver reports whether a tie is broken by a super over
func (f Format) SupportsSuperOver() bool {
	return f == FormatT20 || f == FormatODI
}

// DisplayName returns the conventional name of the format
func (f Format) DisplayName() string {
	switch f {
	case FormatT20:
		return "T20"
	case FormatODI:
		return "ODI"
	case FormatTest:
		return "Test"
	default:
		return string(f)
	}
}

// Days is the number of calendar days a match in this format takes
func (f Format) Days() int {
	if f == FormatTest {
		return 5
	}
	return 1
}

// Experience is the experience a player earns from one match in this format
func (f Format) Experience() int {
	switch f {
	case FormatT20:
		return 1
	case FormatODI:
		return 2
	case FormatTest:
		return 3
	default:
		return 0
	}
}

// Competition returns the competition type a tournament of this format counts towards
func (f Format) Competition() CompetitionType {
	switch f {
	case FormatT20:
		return CompetitionT20League
	case FormatODI:
		return CompetitionODICup
	default:
		return CompetitionTestChampionship
	}
}

// CompetitionType identifies the kind of trophy a tournament awards
type CompetitionType string

const (
	CompetitionT20League        CompetitionType = "t20_league"
	CompetitionODICup           CompetitionType = "odi_cup"
	CompetitionTestChampionship CompetitionType = "test_championship"
)
