package tournament

// TournamentError is a custom error type for tournament-related errors
type TournamentError string

// Error implements the error interface
func (e TournamentError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           TournamentError = "config cannot be nil"
	ErrNilMatchService     TournamentError = "match service cannot be nil"
	ErrNilUUIDGenerator    TournamentError = "uuid generator cannot be nil"
	ErrInvalidTieBreak     TournamentError = "invalid tie-break policy"
	ErrNilInput            TournamentError = "input cannot be nil"
	ErrNilTournament       TournamentError = "tournament cannot be nil"
	ErrNotEnoughTeams      TournamentError = "a tournament needs at least two teams"
	ErrDuplicateTeam       TournamentError = "team entered twice"
	ErrInvalidFormat       TournamentError = "invalid format"
	ErrTournamentComplete  TournamentError = "tournament is complete"
	ErrTeamNotInTournament TournamentError = "team is not part of the tournament"
)
