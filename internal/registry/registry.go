// Package registry owns the team objects of a game world. Every other
// holder of a team (tournaments, renderers, stores) resolves it here by id
// so that a stat update is visible through every path.
package registry

import (
	"fmt"

	"github.com/KirkDiggler/crease/internal/models"
)

// Registry is an id-indexed set of teams kept in insertion order
type Registry struct {
	teams map[string]*models.Team
	order []string
}

// New creates a registry holding the given teams
func New(teams ...*models.Team) (*Registry, error) {
	r := &Registry{teams: make(map[string]*models.Team, len(teams))}
	for _, t := range teams {
		if err := r.Add(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add registers a team
func (r *Registry) Add(team *models.Team) error {
	if team == nil {
		return ErrNilTeam
	}
	if team.ID == "" {
		return ErrMissingTeamID
	}
	if _, ok := r.teams[team.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTeam, team.ID)
	}
	r.teams[team.ID] = team
	r.order = append(r.order, team.ID)
	return nil
}

// Get returns the team with the given id
func (r *Registry) Get(id string) (*models.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, id)
	}
	return team, nil
}

// Teams returns every team in registration order
func (r *Registry) Teams() []*models.Team {
	teams := make([]*models.Team, 0, len(r.order))
	for _, id := range r.order {
		teams = append(teams, r.teams[id])
	}
	return teams
}

// Len returns the number of registered teams
func (r *Registry) Len() int {
	return len(r.order)
}

// Relink points the tournament's team references at the registry's objects.
// Teams the registry does not know keep their embedded copy; their ids are
// returned.
func (r *Registry) Relink(t *models.Tournament) []string {
	var missing []string
	for i, team := range t.Teams {
		if team == nil {
			continue
		}
		if owned, ok := r.teams[team.ID]; ok {
			t.Teams[i] = owned
			continue
		}
		missing = append(missing, team.ID)
	}
	return missing
}
