// Package decision defines the suspension points of a simulation. The
// engine emits a Request carrying the legal choices and blocks until a
// Decider answers; nothing in the engine knows how the answer is produced.
package decision

import (
	"context"
	"slices"

	"github.com/KirkDiggler/crease/internal/models"
)

// Kind identifies what the engine is waiting on
type Kind string

const (
	KindToss     Kind = "toss"
	KindShot     Kind = "shot"
	KindDelivery Kind = "delivery"
)

// Situation describes the match state at a suspension point
type Situation struct {
	BattingTeam string
	BowlingTeam string
	Runs        int
	Wickets     int
	Balls       int
	Target      int
	StrikerName string
	BowlerName  string
	SuperOver   bool

	// Figures of the player the request is addressed to
	PlayerRuns    int
	PlayerBalls   int
	PlayerWickets int
}

// Request asks a Decider for a choice
type Request struct {
	Kind     Kind
	PlayerID string
	Format   models.Format
	Situation

	// Legal choices for the kind
	TossOptions []models.TossDecision
	Shots       []models.ShotDirection
	Lengths     []models.PitchLength
	Variations  []models.DeliveryVariation
}

// Choice answers a Request. Only the field matching the kind is read.
type Choice struct {
	Toss     models.TossDecision
	Shot     models.ShotDirection
	Delivery models.Delivery
}

// Decider supplies choices at suspension points
type Decider interface {
	Decide(ctx context.Context, req *Request) (*Choice, error)
}

// Valid reports whether the choice is legal for the request
func (r *Request) Valid(c *Choice) bool {
	if c == nil {
		return false
	}
	switch r.Kind {
	case KindToss:
		return slices.Contains(r.TossOptions, c.Toss)
	case KindShot:
		return slices.Contains(r.Shots, c.Shot)
	case KindDelivery:
		return slices.Contains(r.Lengths, c.Delivery.Length) && slices.Contains(r.Variations, c.Delivery.Variation)
	}
	return false
}
