package models

import "time"

// NewsItem is a dated headline in the world news feed
type NewsItem struct {
	Date     time.Time `json:"date"`
	Headline string    `json:"headline"`
}

// Career is the persisted document holding a whole game world
type Career struct {
	// ID is the unique identifier for the career
	ID string `json:"id"`

	// OwnerID identifies who plays the career, e.g. a Discord user ID
	OwnerID string `json:"owner_id"`

	// HumanPlayerID is the ID of the human-controlled player
	HumanPlayerID string `json:"human_player_id"`

	// UserTeamID is the ID of the team the human plays for
	UserTeamID string `json:"user_team_id"`

	// Teams is the full roster of teams in the world
	Teams []*Team `json:"teams"`

	// Tournament is the tournament in progress, if any
	Tournament *Tournament `json:"tournament,omitempty"`

	// Date is the current in-game date
	Date time.Time `json:"date"`

	// News holds world headlines, oldest first
	News []NewsItem `json:"news"`

	// Retired is set once the human player ends the career
	Retired bool `json:"retired"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindTeam returns the team with the given ID
func (c *Career) FindTeam(teamID string) (*Team, bool) {
	for _, t := range c.Teams {
		if t.ID == teamID {
			return t, true
		}
	}
	return nil, false
}

// TeamNames indexes the roster's team names by ID
func (c *Career) TeamNames() map[string]string {
	names := make(map[string]string, len(c.Teams))
	for _, t := range c.Teams {
		names[t.ID] = t.Name
	}
	return names
}

// HumanPlayer returns the human player from the user team
func (c *Career) HumanPlayer() (*Player, bool) {
	team, ok := c.FindTeam(c.UserTeamID)
	if !ok {
		return nil, false
	}
	return team.FindPlayer(c.HumanPlayerID)
}

// RecentNews returns up to n of the latest headlines, newest last
func (c *Career) RecentNews(n int) []NewsItem {
	if len(c.News) <= n {
		return c.News
	}
	return c.News[len(c.News)-n:]
}
