package tictactoe

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/strategy"
)

const (
	modeTwoPlayers = "1"
	modeComputer   = "2"

	firstMoverFirst  = "1"
	firstMoverSecond = "2"
	firstMoverRandom = "3"
)

// Setup collects everything a match needs before the first round.
type Setup struct {
	logger  *slog.Logger
	prompt  prompter
	picker  picker
	markers []string
}

func NewSetup(logger *slog.Logger, input lineReader, output lineWriter, picker picker, markers []string) (*Setup, error) {
	distinct := make([]string, 0, len(markers))
	for _, marker := range markers {
		if _, err := ParseMarker(marker); err != nil {
			return nil, fmt.Errorf("%w: default marker: %w", apperror.ErrInvalidSettings, err)
		}

		if !slices.Contains(distinct, marker) {
			distinct = append(distinct, marker)
		}
	}

	if len(distinct) < 2 {
		return nil, fmt.Errorf("%w: need at least two distinct default markers, got %v", apperror.ErrInvalidSettings, markers)
	}

	log := logger.With("component", "setup")

	return &Setup{
		logger:  log,
		prompt:  prompter{logger: log, input: input, output: output},
		picker:  picker,
		markers: distinct,
	}, nil
}

// Players - asks for the human's name and the kind of opponent.
func (that *Setup) Players(ctx context.Context) (*entity.Player, *entity.Player, error) {
	that.prompt.say("What's your name?")

	name, err := ask(ctx, that.prompt, "Sorry, must enter a value.", parseName)
	if err != nil {
		return nil, nil, err
	}

	first := entity.NewPlayer(name, that.newHuman())

	second, err := that.opponent(ctx)
	if err != nil {
		return nil, nil, err
	}

	that.logger.Info("players ready", "first", first.Name, "second", second.Name)

	return first, second, nil
}

func (that *Setup) opponent(ctx context.Context) (*entity.Player, error) {
	that.prompt.say(
		"Would you like to play against another player or a computer opponent?",
		`Enter "1" for a two-player game, and "2" to challenge the computer.`,
	)

	mode, err := ask(ctx, that.prompt, `Please enter "1" or "2".`, func(raw string) (string, error) {
		return parseChoice(raw, modeTwoPlayers, modeComputer)
	})
	if err != nil {
		return nil, err
	}

	if mode == modeTwoPlayers {
		that.prompt.say("Player two, what's your name?")

		name, err := ask(ctx, that.prompt, "Sorry, must enter a value.", parseName)
		if err != nil {
			return nil, err
		}

		return entity.NewPlayer(name, that.newHuman()), nil
	}

	that.prompt.say("Please choose a difficulty setting for the computer:")
	for _, difficulty := range strategy.Difficulties {
		that.prompt.say(fmt.Sprintf("%d: %s", difficulty, difficulty))
	}

	difficulty, err := ask(ctx, that.prompt, "Please enter a number between 1 and 4.", parseDifficulty)
	if err != nil {
		return nil, err
	}

	return strategy.NewComputer(difficulty, that.picker)
}

// MatchOptions - asks for the winning score, the markers and who moves first.
func (that *Setup) MatchOptions(ctx context.Context, base Options, first, second *entity.Player) (Options, *entity.Player, error) {
	options := base

	that.prompt.say(fmt.Sprintf("What would you like to play to? Enter a number between %d and %d: ", MinWinningScore, MaxWinningScore))

	score, err := ask(ctx, that.prompt,
		fmt.Sprintf("That won't work! Please choose a winning score between %d and %d:", MinWinningScore, MaxWinningScore),
		ParseWinningScore)
	if err != nil {
		return Options{}, nil, err
	}
	options.WinningScore = score

	if err = that.assignMarkers(ctx, first, second); err != nil {
		return Options{}, nil, err
	}

	starter, err := that.firstMover(ctx, first, second)
	if err != nil {
		return Options{}, nil, err
	}

	that.logger.Info("match options ready", "winningScore", score, "firstMover", starter.Name,
		"firstMarker", first.Marker, "secondMarker", second.Marker)

	return options, starter, nil
}

func (that *Setup) assignMarkers(ctx context.Context, first, second *entity.Player) error {
	that.prompt.say(fmt.Sprintf("%s, which marker would you like? %s?", first.Name, console.JoinOr(that.markers, ", ", "or")))

	marker, err := ask(ctx, that.prompt,
		fmt.Sprintf("Please choose a single character, like %s", console.JoinOr(that.markers, ", ", "or")),
		ParseMarker)
	if err != nil {
		return err
	}

	first.Marker = marker
	second.Marker = ComplementMarker(marker, that.markers)

	return nil
}

// ComplementMarker - returns the first default marker that differs from chosen.
func ComplementMarker(chosen string, defaults []string) string {
	for _, marker := range defaults {
		if marker != chosen {
			return marker
		}
	}

	return entity.NoMarker
}

func (that *Setup) firstMover(ctx context.Context, first, second *entity.Player) (*entity.Player, error) {
	that.prompt.say(
		"Who should go first?",
		fmt.Sprintf("Press '1' for %s", first.Name),
		fmt.Sprintf("Press '2' for %s", second.Name),
		"Press '3' to let the computer choose",
	)

	choice, err := ask(ctx, that.prompt, "Please enter 1, 2 or 3.", func(raw string) (string, error) {
		return parseChoice(raw, firstMoverFirst, firstMoverSecond, firstMoverRandom)
	})
	if err != nil {
		return nil, err
	}

	switch choice {
	case firstMoverFirst:
		return first, nil
	case firstMoverSecond:
		return second, nil
	}

	index, err := that.picker.PickOne([]int{0, 1})
	if err != nil {
		return nil, fmt.Errorf("failed to pick the first mover: %w", err)
	}

	starter := [2]*entity.Player{first, second}[index]
	that.prompt.say(fmt.Sprintf("%s goes first.", starter.Name))

	return starter, nil
}

func (that *Setup) newHuman() *strategy.Human {
	return strategy.NewHuman(that.logger, that.prompt.input, that.prompt.output)
}
