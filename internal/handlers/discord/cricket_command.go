package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/crease/internal/decision"
	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/handlers/view"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/services/career"
	"github.com/KirkDiggler/crease/internal/services/innings"
	"github.com/KirkDiggler/crease/internal/services/messaging"
	"github.com/KirkDiggler/crease/internal/services/skill"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// ButtonPlayNext plays the caller's next fixture
const ButtonPlayNext = "play_next"

// maxKeyMoments bounds the commentary lines shown for a match
const maxKeyMoments = 6

// CricketCommand handles the /cricket command
type CricketCommand struct {
	BaseCommand
	career    career.Service
	messaging messaging.Service
	roller    dice.Roller
	log       *logrus.Entry
}

// reply is what a subcommand sends back
type reply struct {
	embeds  []*discordgo.MessageEmbed
	buttons []discordgo.MessageComponent
}

// NewCricketCommand creates a new cricket command
func NewCricketCommand(careerService career.Service, messagingService messaging.Service, roller dice.Roller, log *logrus.Entry) *CricketCommand {
	return &CricketCommand{
		BaseCommand: BaseCommand{
			Name:        "cricket",
			Description: "Play out a cricket career",
			Options:     cricketOptions(),
		},
		career:    careerService,
		messaging: messagingService,
		roller:    roller,
		log:       log,
	}
}

func cricketOptions() []*discordgo.ApplicationCommandOption {
	minIntensity := float64(1)

	roles := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.AllRoles))
	for _, r := range models.AllRoles {
		roles = append(roles, &discordgo.ApplicationCommandOptionChoice{Name: view.Title(string(r)), Value: string(r)})
	}
	backgrounds := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.AllBackgrounds))
	for _, b := range models.AllBackgrounds {
		backgrounds = append(backgrounds, &discordgo.ApplicationCommandOptionChoice{Name: view.Title(string(b)), Value: string(b)})
	}
	skills := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(skill.AllTypes))
	for _, t := range skill.AllTypes {
		skills = append(skills, &discordgo.ApplicationCommandOptionChoice{Name: view.Title(string(t)), Value: string(t)})
	}
	formats := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.AllFormats))
	for _, f := range models.AllFormats {
		formats = append(formats, &discordgo.ApplicationCommandOptionChoice{Name: f.DisplayName(), Value: string(f)})
	}

	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "new",
			Description: "Start a new career",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Your player's name", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "role", Description: "Your specialism", Required: true, Choices: roles},
				{Type: discordgo.ApplicationCommandOptionString, Name: "background", Description: "Where you learned the game", Required: true, Choices: backgrounds},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "replace", Description: "Replace your current career"},
			},
		},
		{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "profile", Description: "Show your player"},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "stats",
			Description: "Show your record by format",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "train",
			Description: "Train a skill for a day",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type: discordgo.ApplicationCommandOptionString, Name: "skill", Description: "What to work on", Required: true,
					Choices: skills,
				},
				{
					Type: discordgo.ApplicationCommandOptionInteger, Name: "intensity", Description: "1 (light) to 3 (hard)",
					MinValue: &minIntensity, MaxValue: skill.MaxIntensity,
				},
			},
		},
		{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "rest", Description: "Rest for three days"},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "tournament",
			Description: "Enter a new tournament",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "format", Description: "Match format", Required: true, Choices: formats},
			},
		},
		{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "fixtures", Description: "Show the tournament schedule"},
		{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "standings", Description: "Show the tournament table"},
		{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "play", Description: "Play the next fixture"},
		{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "news", Description: "Read the latest headlines"},
		{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "save", Description: "Save your career"},
		{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "retire", Description: "Hang up your boots"},
	}
}

// Handle processes the /cricket command
func (c *CricketCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Pick a subcommand")
	}

	sub := data.Options[0]
	ownerID, username := userOf(i)
	if ownerID == "" {
		return RespondWithError(s, i, "Could not identify you")
	}

	ctx := context.Background()
	log := c.log.WithFields(logrus.Fields{
		"subcommand": sub.Name,
		"owner_id":   ownerID,
	})

	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		options[opt.Name] = opt
	}

	var (
		r   *reply
		err error
	)
	switch sub.Name {
	case "new":
		r, err = c.newCareer(ctx, ownerID, username, options)
	case "profile":
		r, err = c.profile(ctx, ownerID)
	case "stats":
		r, err = c.stats(ctx, ownerID)
	case "train":
		r, err = c.train(ctx, ownerID, options)
	case "rest":
		r, err = c.rest(ctx, ownerID)
	case "tournament":
		r, err = c.tournament(ctx, ownerID, options)
	case "fixtures":
		r, err = c.fixtures(ctx, ownerID)
	case "standings":
		r, err = c.standings(ctx, ownerID)
	case "play":
		r, err = c.play(ctx, ownerID)
	case "news":
		r, err = c.news(ctx, ownerID)
	case "save":
		r, err = c.save(ctx, ownerID)
	case "retire":
		r, err = c.retire(ctx, ownerID)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}

	if err != nil {
		log.WithError(err).Warn("Cricket command failed")
		return RespondWithError(s, i, c.errorMessage(ctx, err))
	}
	return RespondWithEmbeds(s, i, r.embeds, r.buttons...)
}

// HandlePlayNext plays the next fixture from a button press
func (c *CricketCommand) HandlePlayNext(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ownerID, _ := userOf(i)
	if ownerID == "" {
		return RespondWithError(s, i, "Could not identify you")
	}

	ctx := context.Background()
	r, err := c.play(ctx, ownerID)
	if err != nil {
		c.log.WithError(err).WithField("owner_id", ownerID).Warn("Play button failed")
		return RespondWithError(s, i, c.errorMessage(ctx, err))
	}
	return RespondWithEmbeds(s, i, r.embeds, r.buttons...)
}

func (c *CricketCommand) newCareer(ctx context.Context, ownerID, username string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) (*reply, error) {
	name := username
	if opt, ok := options["name"]; ok && strings.TrimSpace(opt.StringValue()) != "" {
		name = strings.TrimSpace(opt.StringValue())
	}
	input := &career.NewCareerInput{
		OwnerID:    ownerID,
		PlayerName: name,
	}
	if opt, ok := options["role"]; ok {
		input.Role = models.Role(opt.StringValue())
	}
	if opt, ok := options["background"]; ok {
		input.Background = models.Background(opt.StringValue())
	}
	if opt, ok := options["replace"]; ok {
		input.Replace = opt.BoolValue()
	}

	out, err := c.career.NewCareer(ctx, input)
	if err != nil {
		return nil, err
	}

	embed := renderProfile(out.Career, out.Player, out.Team)
	embed.Title = fmt.Sprintf("Welcome, %s!", out.Player.Name)
	embed.Color = colorSuccess
	return &reply{embeds: []*discordgo.MessageEmbed{embed}}, nil
}

func (c *CricketCommand) profile(ctx context.Context, ownerID string) (*reply, error) {
	out, err := c.career.GetCareer(ctx, &career.GetCareerInput{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	return &reply{embeds: []*discordgo.MessageEmbed{renderProfile(out.Career, out.Player, out.Team)}}, nil
}

func (c *CricketCommand) stats(ctx context.Context, ownerID string) (*reply, error) {
	out, err := c.career.GetCareer(ctx, &career.GetCareerInput{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	return &reply{embeds: []*discordgo.MessageEmbed{renderStats(out.Player)}}, nil
}

func (c *CricketCommand) train(ctx context.Context, ownerID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) (*reply, error) {
	input := &career.TrainInput{OwnerID: ownerID, Intensity: 1}
	if opt, ok := options["skill"]; ok {
		input.Skill = skill.Type(opt.StringValue())
	}
	if opt, ok := options["intensity"]; ok {
		input.Intensity = int(opt.IntValue())
	}

	out, err := c.career.Train(ctx, input)
	if err != nil {
		return nil, err
	}
	c.autosave(ctx, ownerID)

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s training", view.Title(string(input.Skill))),
		Description: trainLine(input.Skill, out),
		Color:       colorSuccess,
		Footer:      &discordgo.MessageEmbedFooter{Text: view.Date(out.Date)},
	}
	if out.Injured {
		embed.Description += "\nPicked up an injury! Rest before you train again."
		embed.Color = colorWarning
	}
	return &reply{embeds: []*discordgo.MessageEmbed{withHeadlines(embed, out.Headlines)}}, nil
}

// trainLine summarises a session; fitness work costs no fitness
func trainLine(s skill.Type, out *career.TrainOutput) string {
	line := fmt.Sprintf("+%d %s", out.Improvement, s)
	if out.FitnessLost > 0 {
		line += fmt.Sprintf(", -%d fitness", out.FitnessLost)
	}
	return line + fmt.Sprintf(". Fatigue %d/%d", out.Fatigue, models.MaxFatigue)
}

func (c *CricketCommand) rest(ctx context.Context, ownerID string) (*reply, error) {
	out, err := c.career.Rest(ctx, &career.RestInput{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	c.autosave(ctx, ownerID)

	embed := &discordgo.MessageEmbed{
		Title:       "Rest days",
		Description: fmt.Sprintf("+%d fitness, now %d/100. Fatigue %d/%d", out.FitnessGained, out.Fitness, out.Fatigue, models.MaxFatigue),
		Color:       colorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: view.Date(out.Date)},
	}
	if out.Recovered {
		embed.Description += "\nInjury cleared. Back in the nets!"
	}
	return &reply{embeds: []*discordgo.MessageEmbed{withHeadlines(embed, out.Headlines)}}, nil
}

func (c *CricketCommand) tournament(ctx context.Context, ownerID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) (*reply, error) {
	input := &career.JoinTournamentInput{OwnerID: ownerID}
	if opt, ok := options["format"]; ok {
		input.Format = models.Format(opt.StringValue())
	}

	out, err := c.career.JoinTournament(ctx, input)
	if err != nil {
		return nil, err
	}
	c.autosave(ctx, ownerID)

	embed := renderFixtures(&career.GetFixturesOutput{
		Tournament: out.Tournament,
		Fixtures:   out.Fixtures,
		Remaining:  len(out.Fixtures),
	})
	embed.Title = out.Tournament.Name
	embed.Color = colorSuccess
	return &reply{embeds: []*discordgo.MessageEmbed{embed}, buttons: []discordgo.MessageComponent{playButton()}}, nil
}

func (c *CricketCommand) fixtures(ctx context.Context, ownerID string) (*reply, error) {
	out, err := c.career.GetFixtures(ctx, &career.GetFixturesInput{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	return &reply{embeds: []*discordgo.MessageEmbed{renderFixtures(out)}}, nil
}

func (c *CricketCommand) standings(ctx context.Context, ownerID string) (*reply, error) {
	out, err := c.career.GetStandings(ctx, &career.GetStandingsInput{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	return &reply{embeds: []*discordgo.MessageEmbed{renderStandings(out)}}, nil
}

// play runs the next fixture with random choices for the human, since an
// interaction cannot wait ball by ball for input
func (c *CricketCommand) play(ctx context.Context, ownerID string) (*reply, error) {
	current, err := c.career.GetCareer(ctx, &career.GetCareerInput{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	humanID := current.Player.ID

	var moments []string
	out, err := c.career.PlayNextFixture(ctx, &career.PlayNextFixtureInput{
		OwnerID: ownerID,
		Decider: decision.NewRandom(c.roller),
		OnBall: func(e innings.BallEvent) {
			if len(moments) >= maxKeyMoments {
				return
			}
			involved := e.StrikerID == humanID || e.BowlerID == humanID
			if !involved || !(e.Wicket || e.IsBoundary()) {
				return
			}
			line, err := c.messaging.GetBallCommentary(ctx, &messaging.GetBallCommentaryInput{
				Striker: e.Striker,
				Bowler:  e.BowlerName,
				Runs:    e.Runs,
				Wicket:  e.Wicket,
				Shot:    e.Shot,
			})
			if err != nil {
				return
			}
			moments = append(moments, fmt.Sprintf("`%d.%d` %s", e.Over, e.Ball, line.Message))
		},
	})
	if err != nil {
		return nil, err
	}
	c.autosave(ctx, ownerID)

	title, message := c.resultLine(ctx, out.Result, out.TeamNames)
	embed := renderMatch(out, out.TeamNames, out.UserTeamID, title, message, moments)

	r := &reply{embeds: []*discordgo.MessageEmbed{embed}}
	if !out.Completed {
		r.buttons = []discordgo.MessageComponent{playButton()}
	}
	return r, nil
}

// resultLine asks the messaging service for the result title and summary
func (c *CricketCommand) resultLine(ctx context.Context, result *models.MatchResult, names map[string]string) (string, string) {
	margin, unit := result.Margin()
	out, err := c.messaging.GetResultMessage(ctx, &messaging.GetResultMessageInput{
		WinnerName: names[result.WinnerID],
		LoserName:  names[result.LoserID],
		Drawn:      result.Drawn,
		DecidedBy:  result.DecidedBy,
		Margin:     margin,
		MarginUnit: unit,
	})
	if err != nil {
		return "Result", ""
	}
	return out.Title, out.Message
}

func (c *CricketCommand) news(ctx context.Context, ownerID string) (*reply, error) {
	out, err := c.career.GetNews(ctx, &career.GetNewsInput{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	return &reply{embeds: []*discordgo.MessageEmbed{renderNews(out.Items)}}, nil
}

func (c *CricketCommand) save(ctx context.Context, ownerID string) (*reply, error) {
	if err := c.career.SaveCareer(ctx, &career.SaveCareerInput{OwnerID: ownerID}); err != nil {
		return nil, err
	}
	return &reply{embeds: []*discordgo.MessageEmbed{{
		Title:       "Career saved",
		Description: "See you at the next session.",
		Color:       colorSuccess,
	}}}, nil
}

func (c *CricketCommand) retire(ctx context.Context, ownerID string) (*reply, error) {
	out, err := c.career.RetireCareer(ctx, &career.RetireCareerInput{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}

	embed := renderProfile(out.Career, out.Player, userTeam(out.Career))
	embed.Title = fmt.Sprintf("%s retires", out.Player.Name)
	embed.Color = colorWarning
	return &reply{embeds: []*discordgo.MessageEmbed{embed}}, nil
}

// autosave persists after a change; a failure is logged and the change
// stays in memory for the next save
func (c *CricketCommand) autosave(ctx context.Context, ownerID string) {
	if err := c.career.SaveCareer(ctx, &career.SaveCareerInput{OwnerID: ownerID}); err != nil {
		c.log.WithError(err).WithField("owner_id", ownerID).Error("Autosave failed")
	}
}

// errorMessage turns a service error into a friendly line
func (c *CricketCommand) errorMessage(ctx context.Context, err error) string {
	kind := errorType(err)
	if kind == "" {
		return err.Error()
	}

	out, msgErr := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: kind})
	if msgErr != nil {
		return err.Error()
	}
	return out.Message
}

// errorType maps a service error to a messaging error type. Validation
// errors return "" so their own text is shown.
func errorType(err error) string {
	switch {
	case errors.Is(err, career.ErrNoCareer):
		return "no_career"
	case errors.Is(err, career.ErrNoTournament):
		return "no_tournament"
	case errors.Is(err, career.ErrTournamentComplete):
		return "tournament_complete"
	case errors.Is(err, career.ErrPlayerInjured), errors.Is(err, skill.ErrPlayerInjured):
		return "player_injured"
	case errors.Is(err, career.ErrCareerRetired):
		return "career_retired"
	case errors.Is(err, skill.ErrInvalidSkillType):
		return "invalid_skill"
	case errors.Is(err, career.ErrCareerExists),
		errors.Is(err, career.ErrTournamentInProgress),
		errors.Is(err, career.ErrInvalidFormat),
		errors.Is(err, career.ErrInvalidRole),
		errors.Is(err, career.ErrInvalidBackground),
		errors.Is(err, career.ErrMissingName),
		errors.Is(err, career.ErrCorruptSave),
		errors.Is(err, skill.ErrInvalidIntensity):
		return ""
	}
	return "default"
}

func playButton() discordgo.MessageComponent {
	return discordgo.Button{
		Label:    "Play next fixture",
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonPlayNext,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🏏",
		},
	}
}

func withHeadlines(embed *discordgo.MessageEmbed, headlines []string) *discordgo.MessageEmbed {
	if len(headlines) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Headlines",
			Value: truncate(strings.Join(headlines, "\n")),
		})
	}
	return embed
}

func userTeam(c *models.Career) *models.Team {
	if team, ok := c.FindTeam(c.UserTeamID); ok {
		return team
	}
	return &models.Team{Name: "Unattached"}
}
