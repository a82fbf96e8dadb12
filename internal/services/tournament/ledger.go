package tournament

import "github.com/KirkDiggler/crease/internal/models"

const (
	winPoints  = 2
	drawPoints = 1
)

// record applies a match result to both teams' standings rows
func record(t *models.Tournament, home, away *models.Team, result *models.MatchResult) {
	for _, team := range []*models.Team{home, away} {
		e, ok := t.Standings[team.ID]
		if !ok {
			e = &models.StandingsEntry{TeamID: team.ID, TeamName: team.Name}
			t.Standings[team.ID] = e
		}

		e.Played++
		switch {
		case result.Drawn:
			e.Drawn++
			e.Points += drawPoints
		case result.WinnerID == team.ID:
			e.Won++
			e.Points += winPoints
		default:
			e.Lost++
		}

		for _, inn := range result.Innings {
			if inn.BattingTeamID == team.ID {
				e.RunsFor += inn.Runs
				e.BallsFaced += inn.Balls
			} else {
				e.RunsAgainst += inn.Runs
				e.BallsBowled += inn.Balls
			}
		}
	}
}
