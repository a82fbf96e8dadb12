package messaging

// MessagingError is a custom error type for messaging errors
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       MessagingError = "config cannot be nil"
	ErrNilRoller       MessagingError = "dice roller cannot be nil"
	ErrNilInput        MessagingError = "input cannot be nil"
	ErrUnknownHeadline MessagingError = "unknown headline kind"
)
