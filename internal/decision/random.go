package decision

import (
	"context"

	"github.com/KirkDiggler/crease/internal/dice"
)

// Random picks uniformly among the legal choices. It is the AI strategy
// and the stand-in for a human on surfaces that cannot suspend mid-ball.
type Random struct {
	roller dice.Roller
}

// NewRandom creates a uniform random decider
func NewRandom(roller dice.Roller) *Random {
	return &Random{roller: roller}
}

// Decide returns a uniformly chosen legal choice
func (r *Random) Decide(ctx context.Context, req *Request) (*Choice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	choice := &Choice{}
	switch req.Kind {
	case KindToss:
		if len(req.TossOptions) > 0 {
			choice.Toss = req.TossOptions[r.roller.Intn(len(req.TossOptions))]
		}
	case KindShot:
		if len(req.Shots) > 0 {
			choice.Shot = req.Shots[r.roller.Intn(len(req.Shots))]
		}
	case KindDelivery:
		if len(req.Lengths) > 0 {
			choice.Delivery.Length = req.Lengths[r.roller.Intn(len(req.Lengths))]
		}
		if len(req.Variations) > 0 {
			choice.Delivery.Variation = req.Variations[r.roller.Intn(len(req.Variations))]
		}
	}
	return choice, nil
}

// Func adapts a function to the Decider interface
type Func func(ctx context.Context, req *Request) (*Choice, error)

// Decide calls f
func (f Func) Decide(ctx context.Context, req *Request) (*Choice, error) {
	return f(ctx, req)
}
