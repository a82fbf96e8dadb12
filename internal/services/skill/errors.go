package skill

// SkillError is a custom error type for skill-related errors
type SkillError string

// Error implements the error interface
func (e SkillError) Error() string {
	return string(e)
}

const (
	ErrInvalidSkillType SkillError = "invalid skill type"
	ErrInvalidIntensity SkillError = "intensity must be between 1 and 3"
	ErrPlayerInjured    SkillError = "cannot train while injured"
	ErrNilPlayer        SkillError = "player cannot be nil"
	ErrNilConfig        SkillError = "config cannot be nil"
	ErrNilRoller        SkillError = "dice roller cannot be nil"
)
