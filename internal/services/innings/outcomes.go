package innings

import (
	"sort"

	"github.com/KirkDiggler/crease/internal/models"
	"gonum.org/v1/gonum/floats"
)

// runValues are the scoring outcomes of a ball that does not take a wicket
var runValues = []int{0, 1, 2, 3, 4, 6}

// outcomeTable samples a run value from cumulative normalized weights
type outcomeTable struct {
	cumulative []float64
}

func newOutcomeTable(weights []float64) outcomeTable {
	cum := make([]float64, len(weights))
	floats.CumSum(cum, weights)
	floats.Scale(1/cum[len(cum)-1], cum)
	return outcomeTable{cumulative: cum}
}

// sample maps a uniform draw in [0, 1) onto a run value
func (t outcomeTable) sample(u float64) int {
	idx := sort.SearchFloat64s(t.cumulative, u)
	if idx >= len(runValues) {
		idx = len(runValues) - 1
	}
	if t.cumulative[idx] == u && idx < len(runValues)-1 {
		idx++
	}
	return runValues[idx]
}

// Weights for 0, 1, 2, 3, 4, 6
var outcomeTables = map[models.Intent]outcomeTable{
	models.IntentNeutral:      newOutcomeTable([]float64{38, 34, 10, 2, 11, 5}),
	models.IntentConservative: newOutcomeTable([]float64{52, 36, 6, 1, 4, 1}),
	models.IntentAggressive:   newOutcomeTable([]float64{44, 14, 6, 1, 20, 15}),
}

// intentRisk scales dismissal chance by the batter's intent
var intentRisk = map[models.Intent]float64{
	models.IntentNeutral:      1.0,
	models.IntentConservative: 0.6,
	models.IntentAggressive:   1.4,
}

type variationShot struct {
	variation models.DeliveryVariation
	shot      models.ShotDirection
}

// variationModifiers scale dismissal chance for a variation against a shot.
// Pairs not listed are neutral.
var variationModifiers = map[variationShot]float64{
	{models.VariationOutswinger, models.ShotDrive}:  1.4,
	{models.VariationOutswinger, models.ShotCut}:    1.2,
	{models.VariationOutswinger, models.ShotDefend}: 0.9,
	{models.VariationInswinger, models.ShotNudge}:   1.2,
	{models.VariationInswinger, models.ShotSweep}:   1.3,
	{models.VariationInswinger, models.ShotDrive}:   0.9,
	{models.VariationSlower, models.ShotLoft}:       1.4,
	{models.VariationSlower, models.ShotPull}:       1.2,
	{models.VariationSlower, models.ShotDefend}:     0.8,
	{models.VariationCutter, models.ShotCut}:        1.3,
	{models.VariationCutter, models.ShotDrive}:      1.1,
	{models.VariationStock, models.ShotDefend}:      0.8,
	{models.VariationStock, models.ShotSweep}:       1.1,
	{models.VariationWrongUn, models.ShotSweep}:     1.5,
	{models.VariationWrongUn, models.ShotDrive}:     1.3,
	{models.VariationWrongUn, models.ShotCut}:       1.2,
	{models.VariationArmBall, models.ShotCut}:       1.4,
	{models.VariationArmBall, models.ShotNudge}:     1.1,
	{models.VariationFlighted, models.ShotLoft}:     1.3,
	{models.VariationFlighted, models.ShotDrive}:    0.9,
}

type lengthShot struct {
	length models.PitchLength
	shot   models.ShotDirection
}

// lengthModifiers scale dismissal chance for a pitch length against a shot
var lengthModifiers = map[lengthShot]float64{
	{models.PitchLengthYorker, models.ShotLoft}:   1.5,
	{models.PitchLengthYorker, models.ShotRamp}:   1.3,
	{models.PitchLengthYorker, models.ShotDrive}:  1.2,
	{models.PitchLengthYorker, models.ShotDefend}: 0.9,
	{models.PitchLengthFull, models.ShotDrive}:    0.9,
	{models.PitchLengthFull, models.ShotLoft}:     1.1,
	{models.PitchLengthGood, models.ShotDefend}:   0.8,
	{models.PitchLengthGood, models.ShotPull}:     1.3,
	{models.PitchLengthGood, models.ShotCut}:      1.2,
	{models.PitchLengthGood, models.ShotSweep}:    1.1,
	{models.PitchLengthShort, models.ShotPull}:    0.8,
	{models.PitchLengthShort, models.ShotCut}:     0.85,
	{models.PitchLengthShort, models.ShotDrive}:   1.4,
	{models.PitchLengthBouncer, models.ShotPull}:  1.3,
	{models.PitchLengthBouncer, models.ShotRamp}:  1.1,
	{models.PitchLengthBouncer, models.ShotLoft}:  1.4,
}

// choiceModifier is the multiplier a delivery and shot pair applies to the
// base dismissal probability
func choiceModifier(d models.Delivery, shot models.ShotDirection) float64 {
	m := intentRisk[shot.Intent()]
	if v, ok := variationModifiers[variationShot{d.Variation, shot}]; ok {
		m *= v
	}
	if v, ok := lengthModifiers[lengthShot{d.Length, shot}]; ok {
		m *= v
	}
	return m
}

// dismissalChance is the probability the ball takes a wicket before choices
// are applied: rising with the bowler's skill, falling with the batter's.
func dismissalChance(difficulty float64, bowl, bat int) float64 {
	return difficulty * float64(bowl) / float64(bowl+bat)
}

func clampChance(p float64) float64 {
	if p < minDismissalChance {
		return minDismissalChance
	}
	if p > maxDismissalChance {
		return maxDismissalChance
	}
	return p
}
