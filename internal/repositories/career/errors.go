package career

import "errors"

var (
	// ErrCareerNotFound is returned when no career matches the lookup
	ErrCareerNotFound = errors.New("career not found")

	// ErrCorruptCareer is returned when a stored document cannot be decoded
	ErrCorruptCareer = errors.New("career document is corrupt")

	// ErrHumanPlayerMissing is returned when a document has no human player
	ErrHumanPlayerMissing = errors.New("career has no human player")
)
