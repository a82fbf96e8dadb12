package career

import (
	"fmt"

	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/services/skill"
	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	minLevel     = 1
	maxLevel     = 10
	averageLevel = 5

	// levelSkillStep is the skill shift per level above or below average
	levelSkillStep = 3
)

// backgroundLevels is the starting team level for each background
var backgroundLevels = map[models.Background]int{
	models.BackgroundStreet:     2,
	models.BackgroundClub:       3,
	models.BackgroundAcademy:    4,
	models.BackgroundUniversity: 3,
}

// backgroundSpread is the base skill range of a human with the background
var backgroundSpread = map[models.Background][2]int{
	models.BackgroundStreet:     {25, 75},
	models.BackgroundClub:       {35, 65},
	models.BackgroundAcademy:    {40, 70},
	models.BackgroundUniversity: {35, 70},
}

var defaultSpread = [2]int{30, 70}

// roleBias shifts batting and bowling by role
var roleBias = map[models.Role][2]int{
	models.RoleBatter:       {10, -10},
	models.RoleBowler:       {-10, 10},
	models.RoleAllRounder:   {0, 0},
	models.RoleWicketKeeper: {5, -15},
}

// squadRoles is the make-up of a generated eleven
var squadRoles = []models.Role{
	models.RoleWicketKeeper,
	models.RoleBatter,
	models.RoleBatter,
	models.RoleBatter,
	models.RoleBatter,
	models.RoleAllRounder,
	models.RoleAllRounder,
	models.RoleBowler,
	models.RoleBowler,
	models.RoleBowler,
	models.RoleBowler,
}

var countries = []string{
	"Afghanistan",
	"Australia",
	"Bangladesh",
	"England",
	"India",
	"Ireland",
	"New Zealand",
	"Pakistan",
	"South Africa",
	"Sri Lanka",
	"West Indies",
	"Zimbabwe",
}

// generateName returns a title-cased two word name
func generateName() string {
	return cases.Title(language.English).String(petname.Generate(2, " "))
}

// newWorld builds the human player, their team and the AI teams
func (s *service) newWorld(input *NewCareerInput) (*models.Career, *models.Player, *models.Team) {
	level := backgroundLevels[input.Background]

	human := s.newPlayer(input.Role, averageLevel, backgroundSpread[input.Background], input.Background)
	human.Name = input.PlayerName
	human.IsHuman = true
	human.Background = input.Background
	human.Age = dice.Between(s.roller, 16, 22)
	human.Reputation = 1
	if input.Country != "" {
		human.Country = input.Country
	}

	user := &models.Team{
		ID:      s.uuid.NewUUID(),
		Name:    fmt.Sprintf("%s's Starting Team", input.PlayerName),
		Level:   level,
		Players: []*models.Player{human},
		Coach:   s.newCoach(),
	}
	for _, role := range withoutRole(squadRoles, input.Role) {
		user.Players = append(user.Players, s.newPlayer(role, level, defaultSpread, ""))
	}

	teams := []*models.Team{user}
	for i := 0; i < s.worldTeams; i++ {
		aiLevel := dice.Between(s.roller, max(minLevel, level-1), min(maxLevel, level+3))
		teams = append(teams, s.newTeam(s.names(), aiLevel))
	}

	now := s.clock.Now()
	c := &models.Career{
		ID:            s.uuid.NewUUID(),
		OwnerID:       input.OwnerID,
		HumanPlayerID: human.ID,
		UserTeamID:    user.ID,
		Teams:         teams,
		Date:          s.startDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return c, human, user
}

func (s *service) newTeam(name string, level int) *models.Team {
	team := &models.Team{
		ID:    s.uuid.NewUUID(),
		Name:  name,
		Level: level,
		Coach: s.newCoach(),
	}
	for _, role := range squadRoles {
		team.Players = append(team.Players, s.newPlayer(role, level, defaultSpread, ""))
	}
	return team
}

func (s *service) newCoach() models.Coach {
	return models.Coach{
		Strictness: dice.Between(s.roller, 3, 8),
		Preference: models.CoachPreferences[s.roller.Intn(len(models.CoachPreferences))],
	}
}

func (s *service) newPlayer(role models.Role, level int, spread [2]int, background models.Background) *models.Player {
	shift := (level - averageLevel) * levelSkillStep
	bias := roleBias[role]

	p := &models.Player{
		ID:           s.uuid.NewUUID(),
		Name:         s.names(),
		Country:      countries[s.roller.Intn(len(countries))],
		BattingHand:  s.hand(),
		BowlingHand:  s.hand(),
		BowlingStyle: models.AllBowlingStyles[s.roller.Intn(len(models.AllBowlingStyles))],
		Role:         role,
		Age:          dice.Between(s.roller, 18, 34),
		Batting:      dice.Between(s.roller, spread[0], spread[1]) + bias[0] + shift,
		Bowling:      dice.Between(s.roller, spread[0], spread[1]) + bias[1] + shift,
		Fielding:     dice.Between(s.roller, 40, 80),
		Mental:       dice.Between(s.roller, 40, 80),
		Fitness:      dice.Between(s.roller, 50, 90),
		Reputation:   float64(level) / 2,
		Traits:       skill.GenerateTraits(s.roller, background),
	}
	p.Normalize()
	return p
}

func (s *service) hand() models.Hand {
	if s.roller.Intn(4) == 0 {
		return models.HandLeft
	}
	return models.HandRight
}

// withoutRole drops the first slot of the given role
func withoutRole(roles []models.Role, role models.Role) []models.Role {
	out := make([]models.Role, 0, len(roles))
	dropped := false
	for _, r := range roles {
		if r == role && !dropped {
			dropped = true
			continue
		}
		out = append(out, r)
	}
	if !dropped {
		out = out[:len(out)-1]
	}
	return out
}
