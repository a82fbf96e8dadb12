package models

import "sort"

// SquadSize is the number of players who take the field
const SquadSize = 11

// TeamRecord is a team's aggregate competition record
type TeamRecord struct {
	Points int `json:"points"`
	Played int `json:"played"`
	Won    int `json:"won"`
	Lost   int `json:"lost"`
	Drawn  int `json:"drawn"`

	// Run rate inputs
	RunsFor     int `json:"runs_for"`
	BallsFaced  int `json:"balls_faced"`
	RunsAgainst int `json:"runs_against"`
	BallsBowled int `json:"balls_bowled"`
}

// NetRunRate returns runs per over scored minus runs per over conceded
func (r TeamRecord) NetRunRate() float64 {
	return RunRate(r.RunsFor, r.BallsFaced) - RunRate(r.RunsAgainst, r.BallsBowled)
}

// RunRate returns runs per six-ball over, 0 when no balls were bowled
func RunRate(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return float64(runs) * 6 / float64(balls)
}

// CoachPreference is the kind of player a coach favours
type CoachPreference string

const (
	CoachPrefersYouth      CoachPreference = "youth"
	CoachPrefersExperience CoachPreference = "experience"
	CoachPrefersBalance    CoachPreference = "balance"
)

// CoachPreferences lists every coach preference
var CoachPreferences = []CoachPreference{
	CoachPrefersYouth,
	CoachPrefersExperience,
	CoachPrefersBalance,
}

// Coach runs a team's selection and training
type Coach struct {
	// Strictness is how demanding the coach is, 1-10
	Strictness int `json:"strictness"`

	Preference CoachPreference `json:"preference"`
}

// Team represents a named squad of players
type Team struct {
	// ID is the stable identifier for the team
	ID string `json:"id"`

	// Name is the display name of the team
	Name string `json:"name"`

	// Level is the team's strength tier, 1-10
	Level int `json:"level"`

	// Players is the ordered squad, also the batting order
	Players []*Player `json:"players"`

	// Record is the team's competition record
	Record TeamRecord `json:"record"`

	Coach Coach `json:"coach"`
}

// FindPlayer returns the squad member with the given ID
func (t *Team) FindPlayer(playerID string) (*Player, bool) {
	for _, p := range t.Players {
		if p.ID == playerID {
			return p, true
		}
	}
	return nil, false
}

// HasHuman reports whether the human player is in the squad
func (t *Team) HasHuman() bool {
	for _, p := range t.Players {
		if p.IsHuman {
			return true
		}
	}
	return false
}

// PlayingXI returns the players who take the field. Squads larger than
// eleven field their best eleven by batting, bowling and reputation, kept
// in squad order; the human player is always selected.
func (t *Team) PlayingXI() []*Player {
	if len(t.Players) <= SquadSize {
		return t.Players
	}

	ranked := make([]int, len(t.Players))
	for i := range ranked {
		ranked[i] = i
	}
	score := func(p *Player) float64 {
		s := float64(p.Batting+p.Bowling) + p.Reputation
		if p.IsHuman {
			s += 1000
		}
		return s
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return score(t.Players[ranked[a]]) > score(t.Players[ranked[b]])
	})

	picked := make(map[int]bool, SquadSize)
	for _, idx := range ranked[:SquadSize] {
		picked[idx] = true
	}
	xi := make([]*Player, 0, SquadSize)
	for i, p := range t.Players {
		if picked[i] {
			xi = append(xi, p)
		}
	}
	return xi
}

// Normalize synthesizes missing records for every squad member
func (t *Team) Normalize() {
	t.Coach.Strictness = Clamp(t.Coach.Strictness, MinTrait, MaxTrait)
	if t.Coach.Preference == "" {
		t.Coach.Preference = CoachPrefersBalance
	}
	for _, p := range t.Players {
		p.Normalize()
	}
}
