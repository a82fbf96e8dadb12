package innings

// InningsError is a custom error type for innings-related errors
type InningsError string

// Error implements the error interface
func (e InningsError) Error() string {
	return string(e)
}

const (
	ErrNilConfig             InningsError = "config cannot be nil"
	ErrNilRoller             InningsError = "dice roller cannot be nil"
	ErrNilInput              InningsError = "input cannot be nil"
	ErrNilTeam               InningsError = "batting and bowling teams are required"
	ErrSquadTooSmall         InningsError = "batting side needs two players and bowling side one"
	ErrInvalidFormat         InningsError = "invalid format"
	ErrNilDecider            InningsError = "a decider is required when a human player takes part"
	ErrTooManyInvalidChoices InningsError = "decider kept returning illegal choices"
)
