package terminal

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/crease/internal/decision"
	"github.com/KirkDiggler/crease/internal/handlers/view"
	"github.com/KirkDiggler/crease/internal/models"
)

// Decider asks the human for each choice on the terminal. Once the user
// picks auto play, every remaining request goes to the fallback.
type Decider struct {
	prompt   *prompter
	fallback decision.Decider
	auto     bool
}

func newDecider(p *prompter, fallback decision.Decider) *Decider {
	return &Decider{
		prompt:   p,
		fallback: fallback,
	}
}

// Decide implements decision.Decider
func (d *Decider) Decide(ctx context.Context, req *decision.Request) (*decision.Choice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.auto {
		return d.fallback.Decide(ctx, req)
	}

	choice, err := d.ask(req)
	if errors.Is(err, errAutoPlay) {
		d.auto = true
		return d.fallback.Decide(ctx, req)
	}
	return choice, err
}

func (d *Decider) ask(req *decision.Request) (*decision.Choice, error) {
	switch req.Kind {
	case decision.KindToss:
		idx, err := d.prompt.choose("You won the toss!", labels(req.TossOptions), true)
		if err != nil {
			return nil, err
		}
		return &decision.Choice{Toss: req.TossOptions[idx]}, nil

	case decision.KindShot:
		d.prompt.printf("\n%s\n", situation(req))
		d.prompt.printf("You have %d (%d) facing %s\n", req.PlayerRuns, req.PlayerBalls, req.BowlerName)
		idx, err := d.prompt.choose("Your shot:", labels(req.Shots), true)
		if err != nil {
			return nil, err
		}
		return &decision.Choice{Shot: req.Shots[idx]}, nil

	case decision.KindDelivery:
		d.prompt.printf("\n%s\n", situation(req))
		d.prompt.printf("You have %d wickets, bowling to %s\n", req.PlayerWickets, req.StrikerName)
		length, err := d.prompt.choose("Length:", labels(req.Lengths), true)
		if err != nil {
			return nil, err
		}
		variation, err := d.prompt.choose("Variation:", labels(req.Variations), true)
		if err != nil {
			return nil, err
		}
		return &decision.Choice{Delivery: models.Delivery{
			Length:    req.Lengths[length],
			Variation: req.Variations[variation],
		}}, nil
	}
	return nil, fmt.Errorf("unknown decision kind %q", req.Kind)
}

// situation renders the score line shown before a choice
func situation(req *decision.Request) string {
	line := fmt.Sprintf("%s %d/%d (%s ov)", req.BattingTeam, req.Runs, req.Wickets, models.OversNotation(req.Balls))
	if req.SuperOver {
		line = "SUPER OVER | " + line
	}
	if req.Target > 0 {
		line += fmt.Sprintf(" | need %d", req.Target-req.Runs)
	}
	return line
}

func labels[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = view.Title(string(v))
	}
	return out
}
