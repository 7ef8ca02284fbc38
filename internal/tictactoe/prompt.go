package tictactoe

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/strategy"
)

type prompter struct {
	logger *slog.Logger
	input  lineReader
	output lineWriter
}

func (that prompter) say(lines ...string) {
	for _, line := range lines {
		that.output.WriteLine(line)
	}
}

// ask - reads lines until parse accepts one, printing retry after every rejected line.
func ask[T any](ctx context.Context, p prompter, retry string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.input.ReadLine(ctx)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("failed to read answer: %w", err)
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}

		p.logger.Debug("rejected answer", "input", line, "error", err)
		p.say(retry)
	}
}

func parseName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("%w: empty name", apperror.ErrInvalidInput)
	}

	return name, nil
}

func parseChoice(raw string, choices ...string) (string, error) {
	answer := strings.ToLower(strings.TrimSpace(raw))
	for _, choice := range choices {
		if answer == choice {
			return answer, nil
		}
	}

	return "", fmt.Errorf("%w: %q is not one of %v", apperror.ErrInvalidInput, raw, choices)
}

func parseInt(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, raw)
	}

	return value, nil
}

// ParseWinningScore - accepts whole numbers between MinWinningScore and MaxWinningScore.
func ParseWinningScore(raw string) (int, error) {
	score, err := parseInt(raw)
	if err != nil {
		return 0, err
	}

	if err = ValidateWinningScore(score); err != nil {
		return 0, err
	}

	return score, nil
}

func parseDifficulty(raw string) (strategy.Difficulty, error) {
	level, err := parseInt(raw)
	if err != nil {
		return 0, err
	}

	for _, difficulty := range strategy.Difficulties {
		if strategy.Difficulty(level) == difficulty {
			return difficulty, nil
		}
	}

	return 0, fmt.Errorf("%w: no difficulty %d", apperror.ErrInvalidInput, level)
}

// ParseMarker - accepts exactly one visible character.
func ParseMarker(raw string) (string, error) {
	marker := strings.TrimSpace(raw)
	if utf8.RuneCountInString(marker) != 1 {
		return "", fmt.Errorf("%w: marker must be a single character, got %q", apperror.ErrInvalidInput, raw)
	}

	if r, _ := utf8.DecodeRuneInString(marker); !unicode.IsGraphic(r) {
		return "", fmt.Errorf("%w: marker %q is not printable", apperror.ErrInvalidInput, raw)
	}

	return marker, nil
}
