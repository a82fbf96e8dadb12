package career

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/crease/internal/models"
	"github.com/KirkDiggler/crease/internal/registry"
	"github.com/sirupsen/logrus"
)

// encodeCareer serialises a career document
func encodeCareer(c *models.Career) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal career: %w", err)
	}
	return data, nil
}

// decodeCareer parses a stored document and brings it up to date: records
// older saves did not carry are synthesised with zero values and the
// tournament's team references are pointed back at the roster
func decodeCareer(data []byte, log *logrus.Entry) (*models.Career, error) {
	var c models.Career
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCareer, err)
	}
	if c.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrCorruptCareer)
	}

	for _, team := range c.Teams {
		if team == nil {
			return nil, fmt.Errorf("%w: empty team entry", ErrCorruptCareer)
		}
		team.Normalize()
	}

	if _, ok := c.HumanPlayer(); !ok {
		return nil, ErrHumanPlayerMissing
	}

	if c.Tournament != nil {
		for _, team := range c.Tournament.Teams {
			if team == nil {
				return nil, fmt.Errorf("%w: empty tournament team entry", ErrCorruptCareer)
			}
		}
		reg, err := registry.New(c.Teams...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptCareer, err)
		}
		for _, id := range reg.Relink(c.Tournament) {
			log.WithFields(logrus.Fields{
				"career_id": c.ID,
				"team_id":   id,
			}).Warn("Tournament team not in roster, keeping saved copy")
		}
		for _, team := range c.Tournament.Teams {
			team.Normalize()
		}
		c.Tournament.Normalize()
	}

	return &c, nil
}

// decodeOwner reads only the owner of a stored document
func decodeOwner(data []byte) (string, error) {
	var doc struct {
		OwnerID string `json:"owner_id"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", err
	}
	return doc.OwnerID, nil
}
