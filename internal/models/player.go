package models

const (
	// MinSkill and MaxSkill bound every skill rating
	MinSkill = 0
	MaxSkill = 100

	// MinForm and MaxForm bound the short-term form modifier
	MinForm = -10
	MaxForm = 10

	// MaxReputation caps a player's reputation
	MaxReputation = 10.0

	// MinTrait and MaxTrait bound personality traits
	MinTrait = 1
	MaxTrait = 10

	// MaxFatigue is the most fatigue a player can carry
	MaxFatigue = 10
)

// Hand represents batting or bowling handedness
type Hand string

const (
	HandRight Hand = "right"
	HandLeft  Hand = "left"
)

// BowlingStyle represents a player's bowling style
type BowlingStyle string

const (
	// Pace styles
	BowlingStyleFast       BowlingStyle = "fast"
	BowlingStyleFastMedium BowlingStyle = "fast_medium"
	BowlingStyleMedium     BowlingStyle = "medium"

	// Spin styles
	BowlingStyleOffSpin         BowlingStyle = "off_spin"
	BowlingStyleLegSpin         BowlingStyle = "leg_spin"
	BowlingStyleLeftArmOrthodox BowlingStyle = "left_arm_orthodox"
	BowlingStyleLeftArmWrist    BowlingStyle = "left_arm_wrist"
)

// AllBowlingStyles lists every bowling style
var AllBowlingStyles = []BowlingStyle{
	BowlingStyleFast,
	BowlingStyleFastMedium,
	BowlingStyleMedium,
	BowlingStyleOffSpin,
	BowlingStyleLegSpin,
	BowlingStyleLeftArmOrthodox,
	BowlingStyleLeftArmWrist,
}

// IsPace reports whether the style is a pace style
func (s BowlingStyle) IsPace() bool {
	return s == BowlingStyleFast || s == BowlingStyleFastMedium || s == BowlingStyleMedium
}

// IsSpin reports whether the style is a spin style
func (s BowlingStyle) IsSpin() bool {
	switch s {
	case BowlingStyleOffSpin, BowlingStyleLegSpin, BowlingStyleLeftArmOrthodox, BowlingStyleLeftArmWrist:
		return true
	}
	return false
}

// IsValid reports whether the style is known
func (s BowlingStyle) IsValid() bool {
	return s.IsPace() || s.IsSpin()
}

// Role represents a player's specialism
type Role string

const (
	RoleBatter       Role = "batter"
	RoleBowler       Role = "bowler"
	RoleAllRounder   Role = "all_rounder"
	RoleWicketKeeper Role = "wicket_keeper"
)

// AllRoles lists every role
var AllRoles = []Role{RoleBatter, RoleBowler, RoleAllRounder, RoleWicketKeeper}

// Background represents where a player learned the game
type Background string

const (
	BackgroundStreet     Background = "street"
	BackgroundAcademy    Background = "academy"
	BackgroundClub       Background = "club"
	BackgroundUniversity Background = "university"
)

// AllBackgrounds lists every background
var AllBackgrounds = []Background{BackgroundStreet, BackgroundAcademy, BackgroundClub, BackgroundUniversity}

// DismissalStatus represents a batter's state within an innings
type DismissalStatus string

const (
	DismissalNotOut  DismissalStatus = "not_out"
	DismissalOut     DismissalStatus = "out"
	DismissalRetired DismissalStatus = "retired"
)

// CareerStats holds a player's all-format career aggregates
type CareerStats struct {
	Matches       int `json:"matches"`
	Runs          int `json:"runs"`
	BallsFaced    int `json:"balls_faced"`
	Wickets       int `json:"wickets"`
	BallsBowled   int `json:"balls_bowled"`
	RunsConceded  int `json:"runs_conceded"`
	Fifties       int `json:"fifties"`
	Centuries     int `json:"centuries"`
	FiveWickets   int `json:"five_wickets"`
	PlayerOfMatch int `json:"player_of_match"`
}

// BestBatting is a player's best single-match batting figures
type BestBatting struct {
	Runs  int `json:"runs"`
	Balls int `json:"balls"`
}

// Beats reports whether runs off balls is better than the current best.
// More runs wins; equal runs are decided by fewer balls.
func (b BestBatting) Beats(runs, balls int) bool {
	if runs != b.Runs {
		return runs > b.Runs
	}
	return b.Balls == 0 || balls < b.Balls
}

// BestBowling is a player's best single-match bowling figures
type BestBowling struct {
	Wickets int `json:"wickets"`
	Runs    int `json:"runs"`
}

// Beats reports whether wickets for runs is better than the current best.
// More wickets wins; equal wickets are decided by fewer runs conceded.
func (b BestBowling) Beats(wickets, runs int) bool {
	if wickets != b.Wickets {
		return wickets > b.Wickets
	}
	return runs < b.Runs
}

// FormatStats holds a player's record in a single format
type FormatStats struct {
	Matches      int         `json:"matches"`
	Runs         int         `json:"runs"`
	BallsFaced   int         `json:"balls_faced"`
	Wickets      int         `json:"wickets"`
	BallsBowled  int         `json:"balls_bowled"`
	RunsConceded int         `json:"runs_conceded"`
	HighestScore int         `json:"highest_score"`
	Fifties      int         `json:"fifties"`
	Centuries    int         `json:"centuries"`
	FiveWickets  int         `json:"five_wickets"`
	BestBatting  BestBatting `json:"best_batting"`
	BestBowling  BestBowling `json:"best_bowling"`

	// HasBowled marks whether BestBowling holds real figures
	HasBowled bool `json:"has_bowled"`
}

// Traits are fixed personality ratings, 1-10
type Traits struct {
	Confidence int `json:"confidence"`
	Discipline int `json:"discipline"`
	Aggression int `json:"aggression"`
	Leadership int `json:"leadership"`
}

// InningsState is a player's transient tally for the innings in progress
type InningsState struct {
	Runs         int             `json:"-"`
	BallsFaced   int             `json:"-"`
	Wickets      int             `json:"-"`
	RunsConceded int             `json:"-"`
	BallsBowled  int             `json:"-"`
	Dismissal    DismissalStatus `json:"-"`
}

// Reset zeroes the innings tally
func (s *InningsState) Reset() {
	*s = InningsState{Dismissal: DismissalNotOut}
}

// Player represents a cricketer, either the human-controlled career player
// or an AI squad member
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	Country      string       `json:"country"`
	BattingHand  Hand         `json:"batting_hand"`
	BowlingHand  Hand         `json:"bowling_hand"`
	BowlingStyle BowlingStyle `json:"bowling_style"`
	Role         Role         `json:"role"`
	Background   Background   `json:"background,omitempty"`
	Age          int          `json:"age"`

	// IsHuman marks the player controlled by the user
	IsHuman bool `json:"is_human"`

	// Skill state
	Batting    int     `json:"batting"`
	Bowling    int     `json:"bowling"`
	Fielding   int     `json:"fielding"`
	Mental     int     `json:"mental"`
	Fitness    int     `json:"fitness"`
	Fatigue    int     `json:"fatigue"`
	Form       int     `json:"form"`
	Experience int     `json:"experience"`
	Reputation float64 `json:"reputation"`
	Injured    bool    `json:"injured"`

	Traits Traits `json:"traits"`

	// Career holds the all-format aggregates
	Career CareerStats `json:"career"`

	// Formats holds the per-format records
	Formats map[Format]*FormatStats `json:"formats"`

	// Trophies counts tournament wins per competition type
	Trophies map[CompetitionType]int `json:"trophies"`

	// Innings is the transient state of the innings in progress
	Innings InningsState `json:"-"`
}

// FormatRecord returns the player's record for a format, creating it if needed
func (p *Player) FormatRecord(f Format) *FormatStats {
	if p.Formats == nil {
		p.Formats = make(map[Format]*FormatStats)
	}
	rec, ok := p.Formats[f]
	if !ok || rec == nil {
		rec = &FormatStats{}
		p.Formats[f] = rec
	}
	return rec
}

// Normalize synthesizes any record an older save document did not carry
func (p *Player) Normalize() {
	for _, f := range AllFormats {
		rec := p.FormatRecord(f)
		if rec.BallsBowled > 0 {
			rec.HasBowled = true
		}
	}
	if p.Trophies == nil {
		p.Trophies = make(map[CompetitionType]int)
	}
	if p.Innings.Dismissal == "" {
		p.Innings.Reset()
	}
	p.Batting = Clamp(p.Batting, MinSkill, MaxSkill)
	p.Bowling = Clamp(p.Bowling, MinSkill, MaxSkill)
	p.Fielding = Clamp(p.Fielding, MinSkill, MaxSkill)
	p.Mental = Clamp(p.Mental, MinSkill, MaxSkill)
	p.Fitness = Clamp(p.Fitness, MinSkill, MaxSkill)
	p.Fatigue = Clamp(p.Fatigue, 0, MaxFatigue)
	p.Form = Clamp(p.Form, MinForm, MaxForm)

	p.Traits.Confidence = Clamp(p.Traits.Confidence, MinTrait, MaxTrait)
	p.Traits.Discipline = Clamp(p.Traits.Discipline, MinTrait, MaxTrait)
	p.Traits.Aggression = Clamp(p.Traits.Aggression, MinTrait, MaxTrait)
	p.Traits.Leadership = Clamp(p.Traits.Leadership, MinTrait, MaxTrait)
}

// TotalTrophies returns the number of trophies across all competitions
func (p *Player) TotalTrophies() int {
	total := 0
	for _, n := range p.Trophies {
		total += n
	}
	return total
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
