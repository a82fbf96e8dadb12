package terminal

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/KirkDiggler/crease/internal/decision"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDecider always defends and counts its calls
type countingDecider struct {
	calls int
}

func (c *countingDecider) Decide(ctx context.Context, req *decision.Request) (*decision.Choice, error) {
	c.calls++
	return &decision.Choice{Shot: models.ShotDefend, Toss: models.TossBat}, nil
}

func shotRequest() *decision.Request {
	return &decision.Request{
		Kind:   decision.KindShot,
		Shots:  models.AllShots,
		Format: models.FormatT20,
		Situation: decision.Situation{
			BattingTeam: "Harbour Hawks",
			Runs:        45,
			Wickets:     2,
			Balls:       33,
			Target:      151,
			BowlerName:  "Kai",
			PlayerRuns:  12,
			PlayerBalls: 9,
		},
	}
}

func TestDecider_Toss(t *testing.T) {
	d := newDecider(newPrompter(strings.NewReader("2\n"), io.Discard), &countingDecider{})
	req := &decision.Request{Kind: decision.KindToss, TossOptions: []models.TossDecision{models.TossBat, models.TossBowl}}

	choice, err := d.Decide(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.TossBowl, choice.Toss)
}

func TestDecider_ShotShowsSituation(t *testing.T) {
	var out bytes.Buffer
	d := newDecider(newPrompter(strings.NewReader("0\n3\n"), &out), &countingDecider{})
	req := shotRequest()

	choice, err := d.Decide(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.ShotDrive, choice.Shot)
	assert.True(t, req.Valid(choice))
	assert.Contains(t, out.String(), "Harbour Hawks 45/2 (5.3 ov) | need 106")
	assert.Contains(t, out.String(), "You have 12 (9) facing Kai")
}

func TestDecider_Delivery(t *testing.T) {
	d := newDecider(newPrompter(strings.NewReader("3\n4\n"), io.Discard), &countingDecider{})
	req := &decision.Request{
		Kind:       decision.KindDelivery,
		Lengths:    models.AllPitchLengths,
		Variations: models.VariationsFor(models.BowlingStyleFast),
	}

	choice, err := d.Decide(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.Delivery{Length: models.PitchLengthGood, Variation: models.VariationCutter}, choice.Delivery)
	assert.True(t, req.Valid(choice))
}

func TestDecider_AutoPlayHandsOver(t *testing.T) {
	fallback := &countingDecider{}
	d := newDecider(newPrompter(strings.NewReader("a\n"), io.Discard), fallback)

	for i := 0; i < 3; i++ {
		choice, err := d.Decide(context.Background(), shotRequest())
		require.NoError(t, err)
		assert.Equal(t, models.ShotDefend, choice.Shot)
	}
	assert.Equal(t, 3, fallback.calls)
}

func TestDecider_EndOfInput(t *testing.T) {
	d := newDecider(newPrompter(strings.NewReader(""), io.Discard), &countingDecider{})
	_, err := d.Decide(context.Background(), shotRequest())
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecider_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := newDecider(newPrompter(strings.NewReader("1\n"), io.Discard), &countingDecider{})
	_, err := d.Decide(ctx, shotRequest())
	assert.ErrorIs(t, err, context.Canceled)
}
