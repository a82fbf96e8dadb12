package skill

import (
	"context"

	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/models"
)

const (
	// injuryOdds is the one-in-N injury risk of intense training
	injuryOdds = 20

	restMinFitness = 10
	restMaxFitness = 20

	// recoveryChance is the probability a rest day heals an injury
	recoveryChance = 0.3

	// restFatigue is the fatigue a rest day sheds
	restFatigue = 3

	// backgroundBonus is the trait boost a background gives
	backgroundBonus = 2
)

// EffectiveSkill is the skill a player brings to a ball: the base rating
// moved by form and by fitness above or below 50, clamped to [1, 100].
func EffectiveSkill(base, form, fitness int) int {
	return models.Clamp(base+form+floorDiv(fitness-50, 10), 1, models.MaxSkill)
}

// floorDiv divides rounding towards negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// EffectiveBatting returns the player's effective batting skill
func EffectiveBatting(p *models.Player) int {
	return EffectiveSkill(p.Batting, p.Form, p.Fitness)
}

// EffectiveBowling returns the player's effective bowling skill
func EffectiveBowling(p *models.Player) int {
	return EffectiveSkill(p.Bowling, p.Form, p.Fitness)
}

type service struct {
	roller dice.Roller
}

// New creates a new skill service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilRoller
	}
	return &service{roller: cfg.DiceRoller}, nil
}

// GenerateTraits rolls a new player's personality. Academy players gain
// discipline and street players gain aggression.
func GenerateTraits(roller dice.Roller, background models.Background) models.Traits {
	t := models.Traits{
		Confidence: dice.Between(roller, models.MinTrait, models.MaxTrait),
		Discipline: dice.Between(roller, models.MinTrait, models.MaxTrait),
		Aggression: dice.Between(roller, models.MinTrait, models.MaxTrait),
		Leadership: dice.Between(roller, models.MinTrait, models.MaxTrait),
	}
	switch background {
	case models.BackgroundAcademy:
		t.Discipline = min(t.Discipline+backgroundBonus, models.MaxTrait)
	case models.BackgroundStreet:
		t.Aggression = min(t.Aggression+backgroundBonus, models.MaxTrait)
	}
	return t
}

// Train improves one skill and adds fatigue. Fitness work raises fitness
// directly; every other session costs fitness. Invalid input leaves the
// player untouched.
func (s *service) Train(ctx context.Context, input *TrainInput) (*TrainOutput, error) {
	if input == nil || input.Player == nil {
		return nil, ErrNilPlayer
	}

	intensity := input.Intensity
	if intensity == 0 {
		intensity = 1
	}
	if intensity < 1 || intensity > MaxIntensity {
		return nil, ErrInvalidIntensity
	}

	p := input.Player
	var target *int
	switch input.Skill {
	case TypeBatting:
		target = &p.Batting
	case TypeBowling:
		target = &p.Bowling
	case TypeFielding:
		target = &p.Fielding
	case TypeMental:
		target = &p.Mental
	case TypeFitness:
		target = &p.Fitness
	default:
		return nil, ErrInvalidSkillType
	}

	if p.Injured {
		return nil, ErrPlayerInjured
	}

	improvement := s.roller.Roll(3) * intensity
	before := *target
	*target = models.Clamp(*target+improvement, models.MinSkill, models.MaxSkill)

	output := &TrainOutput{Improvement: *target - before}

	if input.Skill != TypeFitness {
		fitnessCost := s.roller.Roll(3) * intensity
		fitnessBefore := p.Fitness
		p.Fitness = models.Clamp(p.Fitness-fitnessCost, models.MinSkill, models.MaxSkill)
		output.FitnessLost = fitnessBefore - p.Fitness
	}

	fatigueBefore := p.Fatigue
	p.Fatigue = models.Clamp(p.Fatigue+intensity, 0, models.MaxFatigue)
	output.FatigueGained = p.Fatigue - fatigueBefore

	if intensity > 1 && s.roller.Roll(injuryOdds) == 1 {
		p.Injured = true
		output.Injured = true
	}

	return output, nil
}

// Rest recovers fitness, capped at the maximum, and sheds fatigue
func (s *service) Rest(ctx context.Context, input *RestInput) (*RestOutput, error) {
	if input == nil || input.Player == nil {
		return nil, ErrNilPlayer
	}

	p := input.Player
	gain := dice.Between(s.roller, restMinFitness, restMaxFitness)
	before := p.Fitness
	p.Fitness = models.Clamp(p.Fitness+gain, models.MinSkill, models.MaxSkill)

	fatigueBefore := p.Fatigue
	p.Fatigue = max(p.Fatigue-restFatigue, 0)

	output := &RestOutput{
		FitnessGained: p.Fitness - before,
		FatigueShed:   fatigueBefore - p.Fatigue,
	}
	if p.Injured && s.roller.Float64() < recoveryChance {
		p.Injured = false
		output.Recovered = true
	}
	return output, nil
}
