package messaging

import (
	"context"
	"testing"

	diceMocks "github.com/KirkDiggler/crease/internal/dice/mocks"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	service        Service
	ctx            context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := NewService(&ServiceConfig{DiceRoller: s.mockDiceRoller})
	s.Require().NoError(err)
	s.service = svc

	// Always the first line
	s.mockDiceRoller.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNewService() {
	_, err := NewService(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewService(&ServiceConfig{})
	s.ErrorIs(err, ErrNilRoller)
}

func (s *MessagingServiceTestSuite) TestGetBallCommentary() {
	out, err := s.service.GetBallCommentary(s.ctx, &GetBallCommentaryInput{
		Striker: "Rahul",
		Bowler:  "Starc",
		Wicket:  true,
	})
	s.Require().NoError(err)
	s.Equal("OUT! Starc gets the breakthrough, Rahul has to go.", out.Message)
	s.Equal(ToneCelebration, out.Tone)

	out, err = s.service.GetBallCommentary(s.ctx, &GetBallCommentaryInput{
		Striker: "Rahul",
		Bowler:  "Starc",
		Runs:    2,
		Shot:    models.ShotDrive,
	})
	s.Require().NoError(err)
	s.Equal("Rahul works it away for 2. (drive)", out.Message)
	s.Equal(ToneNeutral, out.Tone)

	out, err = s.service.GetBallCommentary(s.ctx, &GetBallCommentaryInput{
		Striker:       "Rahul",
		Bowler:        "Starc",
		PreferredTone: ToneFunny,
	})
	s.Require().NoError(err)
	s.Equal("Rahul waves at it like an old friend across the street.", out.Message)
	s.NotContains(out.Message, "%!")
}

func (s *MessagingServiceTestSuite) TestGetResultMessage() {
	out, err := s.service.GetResultMessage(s.ctx, &GetResultMessageInput{
		WinnerName: "Lions",
		LoserName:  "Tigers",
		DecidedBy:  models.DecidedByRuns,
		Margin:     12,
		MarginUnit: "runs",
	})
	s.Require().NoError(err)
	s.Equal("Lions win by 12 runs", out.Title)
	s.Equal("Lions beat Tigers.", out.Message)

	out, err = s.service.GetResultMessage(s.ctx, &GetResultMessageInput{
		WinnerName: "Lions",
		LoserName:  "Tigers",
		DecidedBy:  models.DecidedBySuperOver,
	})
	s.Require().NoError(err)
	s.Equal("Lions win!", out.Title)
	s.Contains(out.Message, "super over")

	out, err = s.service.GetResultMessage(s.ctx, &GetResultMessageInput{Drawn: true})
	s.Require().NoError(err)
	s.Equal("Match Drawn", out.Title)
}

func (s *MessagingServiceTestSuite) TestGetHeadline() {
	out, err := s.service.GetHeadline(s.ctx, &GetHeadlineInput{
		Kind:       HeadlineBigScore,
		PlayerName: "Sam Crease",
		Runs:       112,
		Format:     models.FormatODI,
	})
	s.Require().NoError(err)
	s.Equal("Sam Crease smashes 112 in ODI clash", out.Headline)

	out, err = s.service.GetHeadline(s.ctx, &GetHeadlineInput{Kind: HeadlineChampion, TeamName: "Lions"})
	s.Require().NoError(err)
	s.Equal("Lions crowned champions", out.Headline)

	_, err = s.service.GetHeadline(s.ctx, &GetHeadlineInput{Kind: "gossip"})
	s.ErrorIs(err, ErrUnknownHeadline)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: "no_career"})
	s.Require().NoError(err)
	s.Contains(out.Message, "/cricket new")
	s.Equal(ToneFunny, out.Tone)

	out, err = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: "something_else"})
	s.Require().NoError(err)
	s.NotEmpty(out.Message)
}
