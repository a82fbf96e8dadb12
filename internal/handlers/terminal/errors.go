package terminal

// TerminalError is a custom error type for terminal errors
type TerminalError string

// Error implements the error interface
func (e TerminalError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           TerminalError = "config cannot be nil"
	ErrNilCareerService    TerminalError = "career service cannot be nil"
	ErrNilMessagingService TerminalError = "messaging service cannot be nil"
	ErrNilRoller           TerminalError = "dice roller cannot be nil"
	ErrNilInput            TerminalError = "input cannot be nil"
	ErrNilOutput           TerminalError = "output cannot be nil"
	ErrMissingOwner        TerminalError = "owner id is required"

	// errAutoPlay signals the user handed the rest of the match to the simulator
	errAutoPlay TerminalError = "auto play"
)
