package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/crease/internal/handlers/view"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/services/career"
	"github.com/bwmarrin/discordgo"
)

// maxFieldLength is Discord's limit on an embed field value
const maxFieldLength = 1024

// renderProfile renders the human player's card
func renderProfile(c *models.Career, p *models.Player, team *models.Team) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       p.Name,
		Description: fmt.Sprintf("%s from %s, playing for **%s**", view.Title(string(p.Role)), p.Country, team.Name),
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Date", Value: view.Date(c.Date), Inline: true},
			{Name: "Age", Value: fmt.Sprintf("%d", p.Age), Inline: true},
			{Name: "Status", Value: view.Status(p, c.Retired), Inline: true},
			{Name: "Batting", Value: fmt.Sprintf("%d/100", p.Batting), Inline: true},
			{Name: "Bowling", Value: fmt.Sprintf("%d/100", p.Bowling), Inline: true},
			{Name: "Fielding", Value: fmt.Sprintf("%d/100", p.Fielding), Inline: true},
			{Name: "Fitness", Value: fmt.Sprintf("%d/100", p.Fitness), Inline: true},
			{Name: "Mental", Value: fmt.Sprintf("%d/100", p.Mental), Inline: true},
			{Name: "Fatigue", Value: view.Fatigue(p), Inline: true},
			{Name: "Form", Value: fmt.Sprintf("%s %d", view.FormArrow(p.Form), p.Form), Inline: true},
			{Name: "Reputation", Value: fmt.Sprintf("%.1f/10", p.Reputation), Inline: true},
			{Name: "Trophies", Value: fmt.Sprintf("%d", p.TotalTrophies()), Inline: true},
			{Name: "Traits", Value: view.Traits(p.Traits)},
			{Name: "Coach", Value: view.Coach(team.Coach)},
			{
				Name: "Career",
				Value: fmt.Sprintf("%d matches, %d runs, %d wickets, %d player of the match awards",
					p.Career.Matches, p.Career.Runs, p.Career.Wickets, p.Career.PlayerOfMatch),
			},
		},
	}
}

// renderStats renders per-format records
func renderStats(p *models.Player) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(models.AllFormats))
	for _, f := range models.AllFormats {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  f.DisplayName(),
			Value: view.FormatLine(p.Formats[f]),
		})
	}
	return &discordgo.MessageEmbed{
		Title:  p.Name + " by format",
		Color:  colorInfo,
		Fields: fields,
	}
}

// renderFixtures renders the schedule
func renderFixtures(out *career.GetFixturesOutput) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(out.Fixtures))
	for _, f := range out.Fixtures {
		lines = append(lines, view.FixtureLine(f))
	}
	return &discordgo.MessageEmbed{
		Title:       out.Tournament.Name + " fixtures",
		Description: codeBlock(lines),
		Color:       colorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d remaining", out.Remaining)},
	}
}

// renderStandings renders the table
func renderStandings(out *career.GetStandingsOutput) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(out.Entries))
	for i, e := range out.Entries {
		lines = append(lines, view.StandingsLine(i+1, e))
	}

	embed := &discordgo.MessageEmbed{
		Title:       out.Tournament.Name + " standings",
		Description: codeBlock(lines),
		Color:       colorInfo,
	}
	if out.Tied {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Level at the top"}
	}
	return embed
}

// renderMatch renders a played fixture with its result line and key moments
func renderMatch(out *career.PlayNextFixtureOutput, names map[string]string, userTeamID, title, message string, moments []string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{}

	var scores []string
	for _, inn := range out.Result.Innings {
		scores = append(scores, view.Score(inn, names))
	}
	fields = append(fields, &discordgo.MessageEmbedField{Name: "Scorecard", Value: strings.Join(scores, "\n")})

	if len(out.Result.SuperOvers) > 0 {
		var rounds []string
		for _, inn := range out.Result.SuperOvers {
			rounds = append(rounds, view.Score(inn, names))
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Super overs", Value: truncate(strings.Join(rounds, "\n"))})
	}

	if out.Figures != nil {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Your figures", Value: view.Figures(out.Figures)})
	}
	if len(moments) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Key moments", Value: truncate(strings.Join(moments, "\n"))})
	}
	if len(out.Headlines) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Headlines", Value: truncate(strings.Join(out.Headlines, "\n"))})
	}

	color := colorInfo
	if out.UserInvolved {
		switch {
		case out.Result.Drawn:
			color = colorWarning
		case out.Result.WinnerID == userTeamID:
			color = colorSuccess
		default:
			color = colorError
		}
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       color,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: view.Date(out.Date)},
	}
}

// renderNews renders the latest headlines
func renderNews(items []models.NewsItem) *discordgo.MessageEmbed {
	if len(items) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "Cricket World News",
			Description: "Nothing to report yet.",
			Color:       colorInfo,
		}
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("**%s** %s", view.Date(item.Date), item.Headline))
	}
	return &discordgo.MessageEmbed{
		Title:       "Cricket World News",
		Description: strings.Join(lines, "\n"),
		Color:       colorInfo,
	}
}

func codeBlock(lines []string) string {
	return "```\n" + strings.Join(lines, "\n") + "\n```"
}

func truncate(s string) string {
	if len(s) <= maxFieldLength {
		return s
	}
	return s[:maxFieldLength-3] + "..."
}
