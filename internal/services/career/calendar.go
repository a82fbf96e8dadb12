package career

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/services/messaging"
)

// advance moves the calendar on and rolls once for a world event
func (s *service) advance(ctx context.Context, c *models.Career, days int) ([]string, error) {
	c.Date = c.Date.AddDate(0, 0, days)

	if len(c.Teams) == 0 || s.roller.Float64() >= worldEventChance {
		return nil, nil
	}

	team := c.Teams[s.roller.Intn(len(c.Teams))]
	out, err := s.messaging.GetHeadline(ctx, &messaging.GetHeadlineInput{
		Kind:     messaging.HeadlineWorldEvent,
		TeamName: team.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get headline: %w", err)
	}

	addNews(c, out.Headline)
	return []string{out.Headline}, nil
}

// performanceNews reports a big score or a big haul by the human player
func (s *service) performanceNews(ctx context.Context, c *models.Career, p *models.Player, format models.Format, figures *models.Performance) ([]string, error) {
	var requests []*messaging.GetHeadlineInput
	if figures.Runs > bigScoreRuns {
		requests = append(requests, &messaging.GetHeadlineInput{
			Kind: messaging.HeadlineBigScore, PlayerName: p.Name, Runs: figures.Runs, Format: format,
		})
	}
	if figures.Wickets > bigHaulWickets {
		requests = append(requests, &messaging.GetHeadlineInput{
			Kind: messaging.HeadlineBigHaul, PlayerName: p.Name, Wickets: figures.Wickets, Format: format,
		})
	}

	var headlines []string
	for _, in := range requests {
		out, err := s.messaging.GetHeadline(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("failed to get headline: %w", err)
		}
		addNews(c, out.Headline)
		headlines = append(headlines, out.Headline)
	}
	return headlines, nil
}

// figuresOf combines a player's figures from both main innings
func figuresOf(result *models.MatchResult, playerID string) *models.Performance {
	var figures *models.Performance
	for _, inn := range result.Innings {
		perf, ok := inn.Performances[playerID]
		if !ok {
			continue
		}
		if figures == nil {
			figures = &models.Performance{
				PlayerID:   perf.PlayerID,
				PlayerName: perf.PlayerName,
				TeamID:     perf.TeamID,
				Dismissal:  models.DismissalNotOut,
			}
		}
		figures.Runs += perf.Runs
		figures.BallsFaced += perf.BallsFaced
		figures.Wickets += perf.Wickets
		figures.RunsConceded += perf.RunsConceded
		figures.BallsBowled += perf.BallsBowled
		if perf.Batted() {
			figures.Dismissal = perf.Dismissal
		}
	}
	return figures
}

func addNews(c *models.Career, headline string) {
	c.News = append(c.News, models.NewsItem{
		Date:     c.Date,
		Headline: headline,
	})
	if len(c.News) > maxStoredNews {
		c.News = c.News[len(c.News)-maxStoredNews:]
	}
}
