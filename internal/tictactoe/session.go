package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	answerYes = "y"
	answerNo  = "n"
)

// Session runs matches for the same players until they stop asking for another one.
type Session struct {
	logger    *slog.Logger
	prompt    prompter
	picker    picker
	snapshots snapshotStore
	setup     *Setup
	options   Options
}

func NewSession(
	logger *slog.Logger,
	input lineReader,
	output lineWriter,
	picker picker,
	snapshots snapshotStore,
	setup *Setup,
	options Options,
) *Session {
	log := logger.With("component", "session")

	return &Session{
		logger:    log,
		prompt:    prompter{logger: log, input: input, output: output},
		picker:    picker,
		snapshots: snapshots,
		setup:     setup,
		options:   options,
	}
}

// Run - plays matches until the players decline another one.
func (that *Session) Run(ctx context.Context) error {
	that.prompt.say("Welcome to Tic Tac Toe!", "")

	first, second, err := that.setup.Players(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up players: %w", err)
	}

	var match *Match
	for {
		if match, err = that.nextMatch(ctx, match, first, second); err != nil {
			return err
		}

		winner, err := match.Play(ctx)
		if err != nil {
			return fmt.Errorf("match %s failed: %w", match.ID(), err)
		}

		that.prompt.say(fmt.Sprintf("%s is the grand winner! Congratulations!", winner.Name))

		again, err := that.playAgain(ctx)
		if err != nil {
			return err
		}

		if !again {
			break
		}

		that.prompt.say("Let's play again!", "")
	}

	that.prompt.say("Thanks for playing Tic Tac Toe! Goodbye!")

	return nil
}

func (that *Session) nextMatch(ctx context.Context, previous *Match, first, second *entity.Player) (*Match, error) {
	if previous != nil {
		previous.Rematch()
	}

	options, starter, err := that.setup.MatchOptions(ctx, that.options, first, second)
	if err != nil {
		return nil, fmt.Errorf("failed to set up match: %w", err)
	}

	if previous == nil {
		match, err := NewMatch(that.logger, that.prompt.output, that.picker, that.snapshots, options, first, second, starter)
		if err != nil {
			return nil, fmt.Errorf("failed to create match: %w", err)
		}

		return match, nil
	}

	if err = previous.Configure(options, starter); err != nil {
		return nil, fmt.Errorf("failed to configure match: %w", err)
	}

	return previous, nil
}

func (that *Session) playAgain(ctx context.Context) (bool, error) {
	that.prompt.say("Would you like to play again? (y/n)")

	answer, err := ask(ctx, that.prompt, "Sorry, must be y or n", func(raw string) (string, error) {
		return parseChoice(raw, answerYes, answerNo)
	})
	if err != nil {
		return false, err
	}

	return answer == answerYes, nil
}
