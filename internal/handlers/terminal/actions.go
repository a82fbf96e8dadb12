package terminal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/crease/internal/decision"
	"github.com/KirkDiggler/crease/internal/handlers/view"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/services/career"
	"github.com/KirkDiggler/crease/internal/services/innings"
	"github.com/KirkDiggler/crease/internal/services/match"
	"github.com/KirkDiggler/crease/internal/services/messaging"
	"github.com/KirkDiggler/crease/internal/services/skill"
)

func (g *Game) createCareer(ctx context.Context, replace bool) error {
	name, err := g.prompt.text("Player name: ")
	if err != nil {
		return err
	}
	role, err := g.prompt.choose("Role:", labels(models.AllRoles), false)
	if err != nil {
		return err
	}
	background, err := g.prompt.choose("Background:", labels(models.AllBackgrounds), false)
	if err != nil {
		return err
	}

	out, err := g.career.NewCareer(ctx, &career.NewCareerInput{
		OwnerID:    g.owner,
		PlayerName: name,
		Role:       models.AllRoles[role],
		Background: models.AllBackgrounds[background],
		Replace:    replace,
	})
	if err != nil {
		return err
	}

	g.prompt.printf("\n%s joins %s. The journey begins on %s.\n", out.Player.Name, out.Team.Name, view.Date(out.Career.Date))
	g.printProfile(out.Career, out.Player, out.Team)
	return nil
}

func (g *Game) replaceCareer(ctx context.Context) error {
	ok, err := g.prompt.confirm("This discards your current career. Continue?")
	if err != nil || !ok {
		return err
	}
	return g.createCareer(ctx, true)
}

func (g *Game) showProfile(ctx context.Context) error {
	out, err := g.career.GetCareer(ctx, &career.GetCareerInput{OwnerID: g.owner})
	if err != nil {
		return err
	}
	g.printProfile(out.Career, out.Player, out.Team)
	return nil
}

func (g *Game) printProfile(c *models.Career, p *models.Player, team *models.Team) {
	g.prompt.printf("\n%s (%s, %s) | %s | %s\n", p.Name, view.Title(string(p.Role)), p.Country, team.Name, view.Date(c.Date))
	g.prompt.printf("Age %d | %s | Fatigue: %s\n", p.Age, view.Status(p, c.Retired), view.Fatigue(p))
	g.prompt.printf("Batting %d | Bowling %d | Fitness %d | Form %s %d | Reputation %.1f\n",
		p.Batting, p.Bowling, p.Fitness, view.FormArrow(p.Form), p.Form, p.Reputation)
	g.prompt.printf("Coach: %s\n", view.Coach(team.Coach))
	g.prompt.printf("Career: %d matches, %d runs, %d wickets, %d trophies\n",
		p.Career.Matches, p.Career.Runs, p.Career.Wickets, p.TotalTrophies())
}

func (g *Game) showSkills(ctx context.Context) error {
	out, err := g.career.GetCareer(ctx, &career.GetCareerInput{OwnerID: g.owner})
	if err != nil {
		return err
	}
	p := out.Player
	g.prompt.printf("\nBatting  %3d\nBowling  %3d\nFielding %3d\nFitness  %3d\nMental   %3d\n",
		p.Batting, p.Bowling, p.Fielding, p.Fitness, p.Mental)
	g.prompt.printf("Fatigue: %s\n", view.Fatigue(p))
	g.prompt.printf("Traits: %s\n", view.Traits(p.Traits))
	return nil
}

func (g *Game) showStats(ctx context.Context) error {
	out, err := g.career.GetCareer(ctx, &career.GetCareerInput{OwnerID: g.owner})
	if err != nil {
		return err
	}
	for _, f := range models.AllFormats {
		g.prompt.printf("%-5s %s\n", f.DisplayName(), view.FormatLine(out.Player.Formats[f]))
	}
	return nil
}

func (g *Game) train(ctx context.Context) error {
	skills := skill.AllTypes
	idx, err := g.prompt.choose("Train which skill?", labels(skills), false)
	if err != nil {
		return err
	}
	intensity, err := g.prompt.number(fmt.Sprintf("Intensity (1-%d): ", skill.MaxIntensity), 1, skill.MaxIntensity)
	if err != nil {
		return err
	}

	out, err := g.career.Train(ctx, &career.TrainInput{
		OwnerID:   g.owner,
		Skill:     skills[idx],
		Intensity: intensity,
	})
	if err != nil {
		return err
	}

	if out.FitnessLost > 0 {
		g.prompt.printf("+%d %s, -%d fitness.\n", out.Improvement, skills[idx], out.FitnessLost)
	} else {
		g.prompt.printf("+%d %s.\n", out.Improvement, skills[idx])
	}
	g.prompt.printf("Fatigue: %d/%d\n", out.Fatigue, models.MaxFatigue)
	if out.Injured {
		g.prompt.printf("You picked up an injury. Rest before training again.\n")
	}
	g.printDay(out.Date, out.Headlines)
	return nil
}

func (g *Game) rest(ctx context.Context) error {
	out, err := g.career.Rest(ctx, &career.RestInput{OwnerID: g.owner})
	if err != nil {
		return err
	}

	g.prompt.printf("+%d fitness, now %d. Fatigue: %d/%d\n", out.FitnessGained, out.Fitness, out.Fatigue, models.MaxFatigue)
	if out.Recovered {
		g.prompt.printf("Injury cleared.\n")
	}
	g.printDay(out.Date, out.Headlines)
	return nil
}

func (g *Game) advanceWeek(ctx context.Context) error {
	out, err := g.career.AdvanceTime(ctx, &career.AdvanceTimeInput{OwnerID: g.owner})
	if err != nil {
		return err
	}
	g.printDay(out.Date, out.Headlines)
	return nil
}

func (g *Game) joinTournament(ctx context.Context) error {
	names := make([]string, len(models.AllFormats))
	for i, f := range models.AllFormats {
		names[i] = f.DisplayName()
	}
	idx, err := g.prompt.choose("Format:", names, false)
	if err != nil {
		return err
	}

	out, err := g.career.JoinTournament(ctx, &career.JoinTournamentInput{
		OwnerID: g.owner,
		Format:  models.AllFormats[idx],
	})
	if err != nil {
		return err
	}

	g.prompt.printf("Entered the %s with %d teams.\n", out.Tournament.Name, len(out.Tournament.Teams))
	g.printFixtures(out.Fixtures)
	return nil
}

func (g *Game) showFixtures(ctx context.Context) error {
	out, err := g.career.GetFixtures(ctx, &career.GetFixturesInput{OwnerID: g.owner})
	if err != nil {
		return err
	}
	g.prompt.printf("%s, %d remaining\n", out.Tournament.Name, out.Remaining)
	g.printFixtures(out.Fixtures)
	return nil
}

func (g *Game) printFixtures(fixtures []models.Fixture) {
	for _, f := range fixtures {
		g.prompt.printf("%s\n", view.FixtureLine(f))
	}
}

func (g *Game) showStandings(ctx context.Context) error {
	out, err := g.career.GetStandings(ctx, &career.GetStandingsInput{OwnerID: g.owner})
	if err != nil {
		return err
	}
	g.prompt.printf("%s standings\n", out.Tournament.Name)
	for i, e := range out.Entries {
		g.prompt.printf("%s\n", view.StandingsLine(i+1, e))
	}
	if out.Tied {
		g.prompt.printf("Level at the top.\n")
	}
	return nil
}

func (g *Game) playNext(ctx context.Context) error {
	current, err := g.career.GetCareer(ctx, &career.GetCareerInput{OwnerID: g.owner})
	if err != nil {
		return err
	}
	humanID := current.Player.ID
	names := current.Career.TeamNames()

	out, err := g.career.PlayNextFixture(ctx, &career.PlayNextFixtureInput{
		OwnerID: g.owner,
		Decider: newDecider(g.prompt, decision.NewRandom(g.roller)),
		OnBall: func(e innings.BallEvent) {
			if e.StrikerID != humanID && e.BowlerID != humanID {
				return
			}
			line, err := g.messaging.GetBallCommentary(ctx, &messaging.GetBallCommentaryInput{
				Striker: e.Striker,
				Bowler:  e.BowlerName,
				Runs:    e.Runs,
				Wicket:  e.Wicket,
				Shot:    e.Shot,
			})
			if err != nil {
				return
			}
			g.prompt.printf("%d.%d %s  [%d/%d]\n", e.Over, e.Ball, line.Message, e.TeamRuns, e.TeamWickets)
		},
		OnStage: func(e match.StageEvent) {
			if e.Completed != nil {
				g.prompt.printf("End of innings: %s\n", view.Score(e.Completed, names))
			}
			switch e.Status {
			case models.MatchStatusInnings1, models.MatchStatusInnings2:
				g.prompt.printf("%s to bat.\n", names[e.BattingTeamID])
			case models.MatchStatusSuperOver:
				g.prompt.printf("Super over: %s to bat.\n", names[e.BattingTeamID])
			}
		},
	})
	if err != nil {
		return err
	}

	g.printResult(ctx, out)
	return nil
}

func (g *Game) printResult(ctx context.Context, out *career.PlayNextFixtureOutput) {
	names := out.TeamNames
	result := out.Result
	margin, unit := result.Margin()
	msg, err := g.messaging.GetResultMessage(ctx, &messaging.GetResultMessageInput{
		WinnerName: names[result.WinnerID],
		LoserName:  names[result.LoserID],
		Drawn:      result.Drawn,
		DecidedBy:  result.DecidedBy,
		Margin:     margin,
		MarginUnit: unit,
	})
	if err == nil {
		g.prompt.printf("\n%s\n%s\n", msg.Title, msg.Message)
	}

	for _, inn := range result.Innings {
		g.prompt.printf("  %s\n", view.Score(inn, names))
	}
	if rounds := result.SuperOverRounds(); rounds > 0 {
		g.prompt.printf("  decided after %d super over round(s)\n", rounds)
	}
	if out.Figures != nil {
		g.prompt.printf("Your figures: %s\n", view.Figures(out.Figures))
	}
	if out.Completed {
		if out.ChampionID != "" {
			g.prompt.printf("Tournament over. Champions: %s\n", names[out.ChampionID])
		} else {
			g.prompt.printf("Tournament over, level at the top. No trophy awarded.\n")
		}
	}
	g.printDay(out.Date, out.Headlines)
}

func (g *Game) showNews(ctx context.Context) error {
	out, err := g.career.GetNews(ctx, &career.GetNewsInput{OwnerID: g.owner})
	if err != nil {
		return err
	}
	if len(out.Items) == 0 {
		g.prompt.printf("Nothing to report yet.\n")
	}
	for _, item := range out.Items {
		g.prompt.printf("%s  %s\n", view.Date(item.Date), item.Headline)
	}
	return nil
}

func (g *Game) save(ctx context.Context) error {
	if err := g.career.SaveCareer(ctx, &career.SaveCareerInput{OwnerID: g.owner}); err != nil {
		return err
	}
	g.prompt.printf("Career saved.\n")
	return nil
}

func (g *Game) retire(ctx context.Context) error {
	ok, err := g.prompt.confirm("Retire for good?")
	if err != nil || !ok {
		return err
	}

	out, err := g.career.RetireCareer(ctx, &career.RetireCareerInput{OwnerID: g.owner})
	if err != nil {
		return err
	}
	g.prompt.printf("%s retires after %d matches, %d runs and %d wickets.\n",
		out.Player.Name, out.Player.Career.Matches, out.Player.Career.Runs, out.Player.Career.Wickets)
	return nil
}

// printDay shows the date and any headlines an action produced
func (g *Game) printDay(date time.Time, headlines []string) {
	g.prompt.printf("Date: %s\n", view.Date(date))
	for _, h := range headlines {
		g.prompt.printf("NEWS: %s\n", h)
	}
}

// friendly turns a service error into a short line
func friendly(err error) string {
	switch {
	case errors.Is(err, career.ErrNoTournament):
		return "You are not in a tournament. Join one first."
	case errors.Is(err, career.ErrTournamentComplete):
		return "That tournament is over. Join a new one."
	case errors.Is(err, career.ErrTournamentInProgress):
		return "Finish the current tournament first."
	case errors.Is(err, career.ErrPlayerInjured), errors.Is(err, skill.ErrPlayerInjured):
		return "You are injured. Rest up first."
	case errors.Is(err, career.ErrCareerRetired):
		return "You have retired. Start a new career to play on."
	}
	return err.Error()
}
