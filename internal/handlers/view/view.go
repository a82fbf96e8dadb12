// Package view formats career state as short text lines shared by the
// terminal and Discord surfaces.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/crease/internal/models"
)

// DateLayout is how calendar dates are shown
const DateLayout = "2006-01-02"

// Date formats a calendar date
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// FormArrow shows the direction of a player's form
func FormArrow(form int) string {
	switch {
	case form > 0:
		return "↑"
	case form < 0:
		return "↓"
	default:
		return "→"
	}
}

// Status summarises whether the player can take part
func Status(p *models.Player, retired bool) string {
	switch {
	case retired:
		return "Retired"
	case p.Injured:
		return "Injured"
	default:
		return "Fit"
	}
}

// Traits renders a player's personality on one line
func Traits(t models.Traits) string {
	return fmt.Sprintf("Confidence %d | Discipline %d | Aggression %d | Leadership %d",
		t.Confidence, t.Discipline, t.Aggression, t.Leadership)
}

// Fatigue shows accumulated fatigue against the maximum
func Fatigue(p *models.Player) string {
	return fmt.Sprintf("%d/%d", p.Fatigue, models.MaxFatigue)
}

// Coach describes a team's coach
func Coach(c models.Coach) string {
	return fmt.Sprintf("Strictness %d, prefers %s", c.Strictness, c.Preference)
}

// Title turns a snake_case enum value into words
func Title(v string) string {
	words := strings.Split(v, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// StrikeRate is runs per hundred balls, 0 before a ball is faced
func StrikeRate(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return float64(runs) * 100 / float64(balls)
}

// FormatLine summarises a player's record in one format
func FormatLine(rec *models.FormatStats) string {
	if rec == nil || rec.Matches == 0 {
		return "No matches yet"
	}

	line := fmt.Sprintf("%d matches | %d runs, HS %d, SR %.1f | %d wkts",
		rec.Matches, rec.Runs, rec.HighestScore, StrikeRate(rec.Runs, rec.BallsFaced), rec.Wickets)
	if rec.HasBowled {
		line += fmt.Sprintf(", best %d/%d", rec.BestBowling.Wickets, rec.BestBowling.Runs)
	}
	return line + fmt.Sprintf(" | %dx100 %dx50 %dx5w", rec.Centuries, rec.Fifties, rec.FiveWickets)
}

// Score renders an innings as "Team 180/6 (20.0 ov)"
func Score(inn *models.InningsSummary, names map[string]string) string {
	return fmt.Sprintf("%s %d/%d (%s ov)", nameOf(names, inn.BattingTeamID), inn.Runs, inn.Wickets, models.OversNotation(inn.Balls))
}

// Figures renders a player's match figures
func Figures(p *models.Performance) string {
	var parts []string
	if p.Batted() {
		notOut := ""
		if p.Dismissal != models.DismissalOut {
			notOut = "*"
		}
		parts = append(parts, fmt.Sprintf("%d%s (%d)", p.Runs, notOut, p.BallsFaced))
	}
	if p.Bowled() {
		parts = append(parts, fmt.Sprintf("%d/%d (%s ov)", p.Wickets, p.RunsConceded, models.OversNotation(p.BallsBowled)))
	}
	if len(parts) == 0 {
		return "Did not bat or bowl"
	}
	return strings.Join(parts, " & ")
}

// FixtureLine renders one fixture, marking played ones
func FixtureLine(f models.Fixture) string {
	mark := " "
	if f.Played {
		mark = "✓"
	}
	return fmt.Sprintf("%s %2d. %s vs %s", mark, f.Index+1, f.HomeTeamName, f.AwayTeamName)
}

// StandingsLine renders one row of the table
func StandingsLine(pos int, e *models.StandingsEntry) string {
	return fmt.Sprintf("%d. %s  P%d W%d L%d D%d  Pts %d  NRR %+.2f",
		pos, e.TeamName, e.Played, e.Won, e.Lost, e.Drawn, e.Points, e.NetRunRate())
}

func nameOf(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}
