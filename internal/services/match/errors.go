package match

// MatchError is a custom error type for match-related errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

const (
	ErrNilConfig             MatchError = "config cannot be nil"
	ErrNilRoller             MatchError = "dice roller cannot be nil"
	ErrNilInnings            MatchError = "innings service cannot be nil"
	ErrNilInput              MatchError = "input cannot be nil"
	ErrNilTeam               MatchError = "both teams are required"
	ErrSameTeam              MatchError = "a team cannot play itself"
	ErrInvalidFormat         MatchError = "invalid format"
	ErrNilDecider            MatchError = "a decider is required when a human player takes part"
	ErrTooManyInvalidChoices MatchError = "decider kept returning illegal toss choices"
)
