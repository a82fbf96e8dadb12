package models

import "strconv"

// TossDecision is the toss winner's choice
type TossDecision string

const (
	TossBat  TossDecision = "bat"
	TossBowl TossDecision = "bowl"
)

// MatchStatus represents the stage a match has reached
type MatchStatus string

const (
	MatchStatusToss      MatchStatus = "toss"
	MatchStatusInnings1  MatchStatus = "innings_1"
	MatchStatusInnings2  MatchStatus = "innings_2"
	MatchStatusSuperOver MatchStatus = "super_over"
	MatchStatusResult    MatchStatus = "result"
)

// DecidedBy records how a match result was reached
type DecidedBy string

const (
	DecidedByRuns      DecidedBy = "runs"
	DecidedBySuperOver DecidedBy = "super_over"
	DecidedByFallback  DecidedBy = "fallback"
	DecidedByDraw      DecidedBy = "draw"
)

// Performance is one player's committed figures for an innings
type Performance struct {
	PlayerID     string          `json:"player_id"`
	PlayerName   string          `json:"player_name"`
	TeamID       string          `json:"team_id"`
	Runs         int             `json:"runs"`
	BallsFaced   int             `json:"balls_faced"`
	Wickets      int             `json:"wickets"`
	RunsConceded int             `json:"runs_conceded"`
	BallsBowled  int             `json:"balls_bowled"`
	Dismissal    DismissalStatus `json:"dismissal"`
}

// Batted reports whether the player faced a ball
func (p *Performance) Batted() bool {
	return p.BallsFaced > 0
}

// Bowled reports whether the player bowled a ball
func (p *Performance) Bowled() bool {
	return p.BallsBowled > 0
}

// InningsSummary is the scoreboard snapshot of one innings
type InningsSummary struct {
	BattingTeamID string  `json:"batting_team_id"`
	BowlingTeamID string  `json:"bowling_team_id"`
	Runs          int     `json:"runs"`
	Wickets       int     `json:"wickets"`
	Balls         int     `json:"balls"`
	Overs         float64 `json:"overs"`
	Boundaries    int     `json:"boundaries"`
	Target        int     `json:"target,omitempty"`

	// Performances holds figures for players who faced or bowled a ball
	Performances map[string]*Performance `json:"performances"`
}

// OversNotation renders balls as completed overs and balls, e.g. 18.3
func OversNotation(balls int) string {
	return strconv.Itoa(balls/6) + "." + strconv.Itoa(balls%6)
}

// MatchResult is the outcome of one played match
type MatchResult struct {
	Team1ID string `json:"team1_id"`
	Team2ID string `json:"team2_id"`
	Format  Format `json:"format"`

	TossWinnerID string       `json:"toss_winner_id"`
	TossDecision TossDecision `json:"toss_decision"`

	// Innings holds the two main innings in batting order
	Innings []*InningsSummary `json:"innings"`

	// SuperOvers holds super-over innings in batting order, two per round
	SuperOvers []*InningsSummary `json:"super_overs,omitempty"`

	Target          int       `json:"target"`
	WinnerID        string    `json:"winner_id,omitempty"`
	LoserID         string    `json:"loser_id,omitempty"`
	Drawn           bool      `json:"drawn"`
	SuperOverNeeded bool      `json:"super_over_needed"`
	DecidedBy       DecidedBy `json:"decided_by"`

	// PlayerOfMatchID is set when the award went to the human player
	PlayerOfMatchID string `json:"player_of_match_id,omitempty"`
}

// SuperOverRounds returns the number of completed super-over rounds
func (r *MatchResult) SuperOverRounds() int {
	return len(r.SuperOvers) / 2
}

// Margin returns the winning margin of a main-match result: runs when the
// side batting first won, wickets in hand against a full eleven when the
// chase succeeded. Draws and super-over results have no margin.
func (r *MatchResult) Margin() (int, string) {
	if r.DecidedBy != DecidedByRuns || len(r.Innings) < 2 {
		return 0, ""
	}
	first, second := r.Innings[0], r.Innings[1]
	if r.WinnerID == first.BattingTeamID {
		return first.Runs - second.Runs, "runs"
	}
	return SquadSize - 1 - second.Wickets, "wickets"
}
