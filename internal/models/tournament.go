package models

// Fixture is one scheduled pairing of two teams within a tournament
type Fixture struct {
	// Index is the fixture's position in the schedule
	Index int `json:"index"`

	HomeTeamID   string `json:"home_team_id"`
	HomeTeamName string `json:"home_team_name"`
	AwayTeamID   string `json:"away_team_id"`
	AwayTeamName string `json:"away_team_name"`
	Format       Format `json:"format"`

	// Played marks fixtures before the tournament cursor
	Played bool `json:"played"`
}

// StandingsEntry is one team's row in the standings ledger
type StandingsEntry struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	Played   int    `json:"played"`
	Won      int    `json:"won"`
	Lost     int    `json:"lost"`
	Drawn    int    `json:"drawn"`
	Points   int    `json:"points"`

	RunsFor     int `json:"runs_for"`
	BallsFaced  int `json:"balls_faced"`
	RunsAgainst int `json:"runs_against"`
	BallsBowled int `json:"balls_bowled"`
}

// NetRunRate returns the entry's net run rate
func (e *StandingsEntry) NetRunRate() float64 {
	return RunRate(e.RunsFor, e.BallsFaced) - RunRate(e.RunsAgainst, e.BallsBowled)
}

// Tournament is a round-robin competition between teams
type Tournament struct {
	// ID is the unique identifier for the tournament
	ID string `json:"id"`

	// Name is the display name of the tournament
	Name string `json:"name"`

	// Format is the format every fixture is played in
	Format Format `json:"format"`

	// Competition is the trophy type awarded to the champion
	Competition CompetitionType `json:"competition"`

	// Teams references the participating teams. They alias the registry's
	// objects while in memory and are embedded in full when saved.
	Teams []*Team `json:"teams"`

	// Cursor is the index of the next unplayed fixture
	Cursor int `json:"cursor"`

	// Standings is the ledger keyed by team ID
	Standings map[string]*StandingsEntry `json:"standings"`

	// Completed is set once every fixture has been played
	Completed bool `json:"completed"`

	// ChampionID is the winning team, empty when the top of the table is tied
	ChampionID string `json:"champion_id,omitempty"`
}

// TeamIDs returns the IDs of the participating teams
func (t *Tournament) TeamIDs() []string {
	ids := make([]string, 0, len(t.Teams))
	for _, team := range t.Teams {
		ids = append(ids, team.ID)
	}
	return ids
}

// Normalize synthesizes ledger rows missing from an older save document
func (t *Tournament) Normalize() {
	if t.Standings == nil {
		t.Standings = make(map[string]*StandingsEntry)
	}
	if t.Competition == "" {
		t.Competition = t.Format.Competition()
	}
	for _, team := range t.Teams {
		if _, ok := t.Standings[team.ID]; !ok {
			t.Standings[team.ID] = &StandingsEntry{TeamID: team.ID, TeamName: team.Name}
		}
	}
}
