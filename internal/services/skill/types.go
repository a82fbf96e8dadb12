package skill

import (
	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/models"
)

// Type names a trainable skill
type Type string

const (
	TypeBatting  Type = "batting"
	TypeBowling  Type = "bowling"
	TypeFielding Type = "fielding"
	TypeFitness  Type = "fitness"
	TypeMental   Type = "mental"
)

// AllTypes lists every trainable skill in menu order
var AllTypes = []Type{TypeBatting, TypeBowling, TypeFielding, TypeFitness, TypeMental}

// MaxIntensity is the hardest training session available
const MaxIntensity = 3

// Config holds configuration for the skill service
type Config struct {
	DiceRoller dice.Roller
}

// TrainInput contains parameters for a training session
type TrainInput struct {
	Player *models.Player
	Skill  Type

	// Intensity is 1-3; zero means 1
	Intensity int
}

// TrainOutput contains the result of a training session
type TrainOutput struct {
	Improvement   int
	FitnessLost   int
	FatigueGained int
	Injured       bool
}

// RestInput contains parameters for resting
type RestInput struct {
	Player *models.Player
}

// RestOutput contains the result of resting
type RestOutput struct {
	FitnessGained int
	FatigueShed   int
	Recovered     bool
}
