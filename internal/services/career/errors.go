package career

// CareerError represents errors returned by the career service
type CareerError string

func (e CareerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig            CareerError = "config cannot be nil"
	ErrNilRepository        CareerError = "career repository cannot be nil"
	ErrNilTournamentService CareerError = "tournament service cannot be nil"
	ErrNilSkillService      CareerError = "skill service cannot be nil"
	ErrNilMessagingService  CareerError = "messaging service cannot be nil"
	ErrNilRoller            CareerError = "dice roller cannot be nil"
	ErrNilClock             CareerError = "clock cannot be nil"
	ErrNilUUIDGenerator     CareerError = "uuid generator cannot be nil"
	ErrInvalidTeamCounts    CareerError = "tournament needs at least 2 teams and the world at least as many"

	ErrNilInput             CareerError = "input cannot be nil"
	ErrMissingOwner         CareerError = "owner ID is required"
	ErrMissingName          CareerError = "player name is required"
	ErrInvalidRole          CareerError = "invalid player role"
	ErrInvalidBackground    CareerError = "invalid player background"
	ErrInvalidFormat        CareerError = "invalid match format"
	ErrCareerExists         CareerError = "an active career already exists"
	ErrNoCareer             CareerError = "no career found"
	ErrCorruptSave          CareerError = "saved career could not be read"
	ErrCareerRetired        CareerError = "career is retired"
	ErrNoTournament         CareerError = "not entered in a tournament"
	ErrTournamentInProgress CareerError = "current tournament is still in progress"
	ErrTournamentComplete   CareerError = "tournament is complete"
	ErrPlayerInjured        CareerError = "player is injured"
)
