package terminal

import (
	"context"
	"errors"
	"io"

	"github.com/KirkDiggler/crease/internal/common/logger"
	"github.com/KirkDiggler/crease/internal/dice"
	"github.com/KirkDiggler/crease/internal/services/career"
	"github.com/KirkDiggler/crease/internal/services/messaging"
	"github.com/sirupsen/logrus"
)

// Config holds configuration for the terminal game
type Config struct {
	Career    career.Service
	Messaging messaging.Service

	// DiceRoller drives simulated choices once the user hands a match over
	DiceRoller dice.Roller

	// OwnerID identifies the local player's career
	OwnerID string

	In  io.Reader
	Out io.Writer

	Logger *logrus.Entry
}

// Game is the interactive terminal front end
type Game struct {
	career    career.Service
	messaging messaging.Service
	roller    dice.Roller
	owner     string
	prompt    *prompter
	log       *logrus.Entry
	menu      []menuItem
}

// menuItem is one entry of the main menu; run returning done ends the loop
type menuItem struct {
	label string
	run   func(ctx context.Context) (done bool, err error)
}

// New creates a new terminal game
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Career == nil {
		return nil, ErrNilCareerService
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessagingService
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilRoller
	}
	if cfg.In == nil {
		return nil, ErrNilInput
	}
	if cfg.Out == nil {
		return nil, ErrNilOutput
	}
	if cfg.OwnerID == "" {
		return nil, ErrMissingOwner
	}

	log := cfg.Logger
	if log == nil {
		log = logger.WithService("terminal")
	}

	g := &Game{
		career:    cfg.Career,
		messaging: cfg.Messaging,
		roller:    cfg.DiceRoller,
		owner:     cfg.OwnerID,
		prompt:    newPrompter(cfg.In, cfg.Out),
		log:       log,
	}
	g.menu = []menuItem{
		{"View profile", g.continueAfter(g.showProfile)},
		{"View skills", g.continueAfter(g.showSkills)},
		{"View stats by format", g.continueAfter(g.showStats)},
		{"Train", g.continueAfter(g.train)},
		{"Rest", g.continueAfter(g.rest)},
		{"Join a tournament", g.continueAfter(g.joinTournament)},
		{"View fixtures", g.continueAfter(g.showFixtures)},
		{"View standings", g.continueAfter(g.showStandings)},
		{"Play next fixture", g.continueAfter(g.playNext)},
		{"Read the news", g.continueAfter(g.showNews)},
		{"Advance a week", g.continueAfter(g.advanceWeek)},
		{"Save", g.continueAfter(g.save)},
		{"Retire", g.continueAfter(g.retire)},
		{"Start a new career", g.continueAfter(g.replaceCareer)},
		{"Exit", g.exit},
	}
	return g, nil
}

// Run loads or creates the career and serves the menu until the user
// exits or input ends
func (g *Game) Run(ctx context.Context) error {
	g.prompt.printf("Welcome to Crease, the cricket career simulator.\n")

	if err := g.ensureCareer(ctx); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	labels := make([]string, len(g.menu))
	for i, item := range g.menu {
		labels[i] = item.label
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		idx, err := g.prompt.choose("\nWhat next?", labels, false)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		done, err := g.menu[idx].run(ctx)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			g.report(err)
		case done:
			return nil
		}
	}
}

func (g *Game) continueAfter(action func(ctx context.Context) error) func(ctx context.Context) (bool, error) {
	return func(ctx context.Context) (bool, error) {
		return false, action(ctx)
	}
}

// ensureCareer loads the owner's career, starting one when none can be read
func (g *Game) ensureCareer(ctx context.Context) error {
	out, err := g.career.GetCareer(ctx, &career.GetCareerInput{OwnerID: g.owner})
	switch {
	case err == nil:
		g.prompt.printf("Welcome back, %s.\n", out.Player.Name)
		return nil
	case errors.Is(err, career.ErrCorruptSave):
		g.log.WithError(err).Warn("Save could not be read")
		g.prompt.printf("Your save could not be read, so a new career begins.\n")
	case errors.Is(err, career.ErrNoCareer):
	default:
		return err
	}
	return g.createCareer(ctx, false)
}

// report shows a service error to the user
func (g *Game) report(err error) {
	g.log.WithError(err).Debug("Action failed")
	g.prompt.printf("! %s\n", friendly(err))
}

func (g *Game) exit(ctx context.Context) (bool, error) {
	save, err := g.prompt.confirm("Save before exiting?")
	if err != nil {
		return true, err
	}
	if save {
		if err := g.save(ctx); err != nil {
			g.report(err)
			return false, nil
		}
	}
	g.prompt.printf("Thanks for playing.\n")
	return true, nil
}
