package match

import (
	"math"

	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/models"
)

// matchFigures is a player's combined figures from both main innings
type matchFigures struct {
	runs, balls               int
	wickets, conceded, bowled int
	batted, bowledAtLeastOnce bool
}

// commit applies the result to every participant and both team records.
// Only the two main innings count; super-over figures are never committed.
func (s *service) commit(input *PlayInput, result *models.MatchResult, xi1, xi2 []*models.Player) {
	figures := make(map[string]*matchFigures)
	for _, inn := range result.Innings {
		for id, perf := range inn.Performances {
			f, ok := figures[id]
			if !ok {
				f = &matchFigures{}
				figures[id] = f
			}
			f.runs += perf.Runs
			f.balls += perf.BallsFaced
			f.wickets += perf.Wickets
			f.conceded += perf.RunsConceded
			f.bowled += perf.BallsBowled
			f.batted = f.batted || perf.Batted()
			f.bowledAtLeastOnce = f.bowledAtLeastOnce || perf.Bowled()
		}
	}

	format := input.Format
	for _, side := range []struct {
		team *models.Team
		xi   []*models.Player
	}{{input.Team1, xi1}, {input.Team2, xi2}} {
		for _, p := range side.xi {
			s.commitCondition(p, format, result, side.team.ID)
			if f, ok := figures[p.ID]; ok {
				commitFigures(p, format, f)
			}
		}
	}

	if human := input.HumanPlayerID; human != "" && (contains(xi1, human) || contains(xi2, human)) {
		if s.potmChance > 0 && s.roller.Float64() < s.potmChance {
			result.PlayerOfMatchID = human
			if p, ok := input.Team1.FindPlayer(human); ok {
				p.Career.PlayerOfMatch++
			} else if p, ok := input.Team2.FindPlayer(human); ok {
				p.Career.PlayerOfMatch++
			}
		}
	}

	commitRecords(input.Team1, input.Team2, result)
}

// commitCondition records the appearance and moves fitness and form
func (s *service) commitCondition(p *models.Player, format models.Format, result *models.MatchResult, teamID string) {
	p.Career.Matches++
	p.FormatRecord(format).Matches++
	p.Experience += format.Experience()

	cost := fitnessCost[format]
	p.Fitness = models.Clamp(p.Fitness-dice.Between(s.roller, cost[0], cost[1]), models.MinSkill, models.MaxSkill)

	switch {
	case result.Drawn:
		p.Form += dice.Between(s.roller, -1, 1)
	case result.WinnerID == teamID:
		p.Form++
	default:
		p.Form--
	}
	p.Form = models.Clamp(p.Form, models.MinForm, models.MaxForm)
}

// commitFigures folds one match's figures into the player's aggregates
func commitFigures(p *models.Player, format models.Format, f *matchFigures) {
	rec := p.FormatRecord(format)

	rec.Runs += f.runs
	rec.BallsFaced += f.balls
	rec.Wickets += f.wickets
	rec.RunsConceded += f.conceded
	rec.BallsBowled += f.bowled

	p.Career.Runs += f.runs
	p.Career.BallsFaced += f.balls
	p.Career.Wickets += f.wickets
	p.Career.RunsConceded += f.conceded
	p.Career.BallsBowled += f.bowled

	if f.batted {
		if f.runs > rec.HighestScore {
			rec.HighestScore = f.runs
		}
		if rec.BestBatting.Beats(f.runs, f.balls) {
			rec.BestBatting = models.BestBatting{Runs: f.runs, Balls: f.balls}
		}
	}
	if f.bowledAtLeastOnce {
		if !rec.HasBowled || rec.BestBowling.Beats(f.wickets, f.conceded) {
			rec.BestBowling = models.BestBowling{Wickets: f.wickets, Runs: f.conceded}
		}
		rec.HasBowled = true
	}

	centuries, fifties := milestones(f.runs)
	rec.Centuries += centuries
	rec.Fifties += fifties
	p.Career.Centuries += centuries
	p.Career.Fifties += fifties

	if f.wickets >= 5 {
		rec.FiveWickets++
		p.Career.FiveWickets++
	}

	p.Reputation = math.Min(p.Reputation+float64(f.runs)/100+float64(f.wickets)/5, models.MaxReputation)
}

// milestones counts a century for every full hundred and a fifty when the
// remainder reaches fifty, so 250 is two centuries and no fifty
func milestones(runs int) (centuries, fifties int) {
	for runs >= 100 {
		centuries++
		runs -= 100
	}
	if runs >= 50 {
		fifties++
	}
	return centuries, fifties
}

// commitRecords updates both teams' competition records from the main innings
func commitRecords(team1, team2 *models.Team, result *models.MatchResult) {
	for _, team := range []*models.Team{team1, team2} {
		rec := &team.Record
		rec.Played++
		switch {
		case result.Drawn:
			rec.Drawn++
			rec.Points += drawPoints
		case result.WinnerID == team.ID:
			rec.Won++
			rec.Points += winPoints
		default:
			rec.Lost++
		}

		for _, inn := range result.Innings {
			if inn.BattingTeamID == team.ID {
				rec.RunsFor += inn.Runs
				rec.BallsFaced += inn.Balls
			} else {
				rec.RunsAgainst += inn.Runs
				rec.BallsBowled += inn.Balls
			}
		}
	}
}

func contains(players []*models.Player, id string) bool {
	for _, p := range players {
		if p.ID == id {
			return true
		}
	}
	return false
}
