package models

// PitchLength is where the bowler lands the ball
type PitchLength string

const (
	PitchLengthYorker  PitchLength = "yorker"
	PitchLengthFull    PitchLength = "full"
	PitchLengthGood    PitchLength = "good_length"
	PitchLengthShort   PitchLength = "short"
	PitchLengthBouncer PitchLength = "bouncer"
)

// AllPitchLengths lists every pitch length
var AllPitchLengths = []PitchLength{
	PitchLengthYorker,
	PitchLengthFull,
	PitchLengthGood,
	PitchLengthShort,
	PitchLengthBouncer,
}

// DeliveryVariation is the bowler's variation for a ball
type DeliveryVariation string

const (
	// Pace variations
	VariationOutswinger DeliveryVariation = "outswinger"
	VariationInswinger  DeliveryVariation = "inswinger"
	VariationSlower     DeliveryVariation = "slower_ball"
	VariationCutter     DeliveryVariation = "cutter"

	// Spin variations
	VariationStock    DeliveryVariation = "stock"
	VariationWrongUn  DeliveryVariation = "wrong_un"
	VariationArmBall  DeliveryVariation = "arm_ball"
	VariationFlighted DeliveryVariation = "flighted"
)

// VariationsFor returns the variations available to a bowling style
func VariationsFor(style BowlingStyle) []DeliveryVariation {
	if style.IsSpin() {
		return []DeliveryVariation{VariationStock, VariationWrongUn, VariationArmBall, VariationFlighted}
	}
	return []DeliveryVariation{VariationOutswinger, VariationInswinger, VariationSlower, VariationCutter}
}

// ShotDirection is the batter's shot for a ball
type ShotDirection string

const (
	ShotDefend ShotDirection = "defend"
	ShotNudge  ShotDirection = "nudge"
	ShotDrive  ShotDirection = "drive"
	ShotCut    ShotDirection = "cut"
	ShotPull   ShotDirection = "pull"
	ShotSweep  ShotDirection = "sweep"
	ShotLoft   ShotDirection = "loft"
	ShotRamp   ShotDirection = "ramp"
)

// AllShots lists every shot in menu order
var AllShots = []ShotDirection{ShotDefend, ShotNudge, ShotDrive, ShotCut, ShotPull, ShotSweep, ShotLoft, ShotRamp}

// Intent classifies how much risk a shot carries
type Intent string

const (
	IntentNeutral      Intent = "neutral"
	IntentConservative Intent = "conservative"
	IntentAggressive   Intent = "aggressive"
)

// Intent returns the risk class of the shot
func (s ShotDirection) Intent() Intent {
	switch s {
	case ShotDefend, ShotNudge:
		return IntentConservative
	case ShotLoft, ShotRamp, ShotPull, ShotSweep:
		return IntentAggressive
	case ShotDrive, ShotCut:
		return IntentNeutral
	default:
		return IntentNeutral
	}
}

// Delivery is a bowler's full choice for a ball
type Delivery struct {
	Length    PitchLength       `json:"length"`
	Variation DeliveryVariation `json:"variation"`
}
