package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	MinWinningScore = 1
	MaxWinningScore = 10
)

type State int

const (
	AwaitingSetup State = iota
	RoundInProgress
	RoundEnded
	MatchEnded
)

func (s State) String() string {
	switch s {
	case AwaitingSetup:
		return "awaiting_setup"
	case RoundInProgress:
		return "round_in_progress"
	case RoundEnded:
		return "round_ended"
	case MatchEnded:
		return "match_ended"
	default:
		return "unknown"
	}
}

type lineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type lineWriter interface {
	WriteLine(line string)
}

type picker interface {
	PickOne(candidates []int) (int, error)
}

type snapshotStore interface {
	Save(ctx context.Context, snapshot *entity.MatchSnapshot) error
	Delete(ctx context.Context, id string) error
}

// interactive is implemented by strategies that wait for a person.
type interactive interface {
	IsInteractive() bool
}

type Options struct {
	WinningScore         int
	TurnTimeout          time.Duration
	AlternateFirstPlayer bool
}

// Move is one applied move. Forced is set when the engine picked it after a turn timeout.
type Move struct {
	Player   *entity.Player
	Position int
	Forced   bool
}

type RoundResult struct {
	Round  int
	Moves  []Move
	Winner *entity.Player
}

func (that *RoundResult) IsTie() bool {
	return that.Winner == nil
}

// Match owns one board and two players and plays rounds until a player reaches the winning score.
type Match struct {
	id        string
	logger    *slog.Logger
	output    lineWriter
	picker    picker
	snapshots snapshotStore

	options Options
	board   *entity.Board
	players [2]*entity.Player

	starter      *entity.Player
	roundStarter *entity.Player
	current      *entity.Player

	state      State
	configured bool
	round      int
	winner     *entity.Player
}

func NewMatch(
	logger *slog.Logger,
	output lineWriter,
	picker picker,
	snapshots snapshotStore,
	options Options,
	first, second, starter *entity.Player,
) (*Match, error) {
	if first == nil || second == nil || first == second {
		return nil, fmt.Errorf("%w: a match needs two different players", apperror.ErrInvalidSettings)
	}

	if snapshots == nil {
		snapshots = nopSnapshots{}
	}

	match := &Match{
		logger:    logger.With("component", "match"),
		output:    output,
		picker:    picker,
		snapshots: snapshots,
		board:     entity.NewBoard(),
		players:   [2]*entity.Player{first, second},
		state:     AwaitingSetup,
	}

	if err := match.Configure(options, starter); err != nil {
		return nil, err
	}

	return match, nil
}

// Configure - applies settings for the next match; only allowed while awaiting setup.
func (that *Match) Configure(options Options, starter *entity.Player) error {
	if that.state != AwaitingSetup {
		return fmt.Errorf("%w: cannot configure a match in state %s", apperror.ErrInvalidSettings, that.state)
	}

	if err := ValidateWinningScore(options.WinningScore); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidSettings, err)
	}

	first, second := that.players[0], that.players[1]
	if first.Marker == entity.NoMarker || second.Marker == entity.NoMarker || first.Marker == second.Marker {
		return fmt.Errorf("%w: players need two distinct markers, got %q and %q",
			apperror.ErrInvalidSettings, first.Marker, second.Marker)
	}

	if first.Strategy == nil || second.Strategy == nil {
		return fmt.Errorf("%w: every player needs a move strategy", apperror.ErrInvalidSettings)
	}

	if starter != first && starter != second {
		return fmt.Errorf("%w: the first mover must be one of the match players", apperror.ErrInvalidSettings)
	}

	that.id = uuid.NewString()
	that.options = options
	that.starter = starter
	that.roundStarter = starter
	that.current = starter
	that.configured = true

	return nil
}

func ValidateWinningScore(score int) error {
	if score < MinWinningScore || score > MaxWinningScore {
		return fmt.Errorf("%w: winning score must be between %d and %d, got %d",
			apperror.ErrInvalidInput, MinWinningScore, MaxWinningScore, score)
	}

	return nil
}

func (that *Match) ID() string {
	return that.id
}

func (that *Match) State() State {
	return that.state
}

func (that *Match) Board() *entity.Board {
	return that.board
}

func (that *Match) Players() [2]*entity.Player {
	return that.players
}

func (that *Match) CurrentPlayer() *entity.Player {
	return that.current
}

func (that *Match) Round() int {
	return that.round
}

// Winner - returns the player that reached the winning score, nil until the match ends.
func (that *Match) Winner() *entity.Player {
	return that.winner
}

// Play - plays rounds until the match ends and returns the grand winner.
func (that *Match) Play(ctx context.Context) (*entity.Player, error) {
	for that.state != MatchEnded {
		if _, err := that.PlayRound(ctx); err != nil {
			return nil, err
		}

		if that.state != MatchEnded {
			that.output.WriteLine("Time for another round!")
			that.output.WriteLine("")
		}
	}

	return that.winner, nil
}

// PlayRound - plays one round from an empty board to a win or a tie.
func (that *Match) PlayRound(ctx context.Context) (*RoundResult, error) {
	if that.state == MatchEnded {
		return nil, apperror.ErrMatchOver
	}

	if !that.configured {
		return nil, fmt.Errorf("%w: match %s is waiting for setup", apperror.ErrInvalidSettings, that.id)
	}

	that.round++
	that.state = RoundInProgress
	that.current = that.roundStarter

	log := that.logger.With("method", "PlayRound", "matchID", that.id, "round", that.round)
	log.Info("round started", "firstMover", that.current.Name)
	that.publish(ctx)

	result := &RoundResult{Round: that.round}
	for !that.board.HasWinner() && !that.board.IsFull() {
		move, err := that.takeTurn(ctx)
		if err != nil {
			that.abort(ctx, err)
			return nil, fmt.Errorf("round %d aborted: %w", that.round, err)
		}

		result.Moves = append(result.Moves, move)
		that.current = that.opponentOf(that.current)
	}

	that.state = RoundEnded
	that.finishRound(ctx, result)

	if result.IsTie() {
		log.Info("round ended in a tie", "moves", len(result.Moves))
	} else {
		log.Info("round won", "winner", result.Winner.Name, "moves", len(result.Moves))
	}

	return result, nil
}

// Rematch - resets scores and the board so the same players can start a new match.
func (that *Match) Rematch() {
	for _, player := range that.players {
		player.ResetScore()
	}

	that.board.Reset()
	that.state = AwaitingSetup
	that.configured = false
	that.round = 0
	that.winner = nil
}

func (that *Match) takeTurn(ctx context.Context) (Move, error) {
	player := that.current
	opponent := that.opponentOf(player)
	isHuman := isInteractive(player.Strategy)

	if isHuman {
		that.displayBoard()
	}

	position, forced, err := that.chooseMove(ctx, player, opponent)
	if err != nil {
		return Move{}, err
	}

	if err = that.board.Place(position, player.Marker); err != nil {
		return Move{}, fmt.Errorf("%s made an illegal move: %w", player.Name, err)
	}

	if !isHuman && !forced {
		that.output.WriteLine(fmt.Sprintf("%s chose square %d.", player.Name, position))
	}

	that.logger.Debug("move applied", "matchID", that.id, "player", player.Name, "position", position, "forced", forced)

	return Move{Player: player, Position: position, Forced: forced}, nil
}

// chooseMove - asks the strategy for a move, picking a random free square when the turn times out.
func (that *Match) chooseMove(ctx context.Context, player, opponent *entity.Player) (int, bool, error) {
	if that.options.TurnTimeout <= 0 {
		position, err := player.Strategy.ChooseMove(ctx, that.board, player.Marker, opponent.Marker)
		if err != nil {
			return 0, false, fmt.Errorf("%s failed to choose a move: %w", player.Name, err)
		}

		return position, false, nil
	}

	turnCtx, cancel := context.WithTimeout(ctx, that.options.TurnTimeout)
	defer cancel()

	position, err := player.Strategy.ChooseMove(turnCtx, that.board, player.Marker, opponent.Marker)
	if err == nil {
		return position, false, nil
	}

	if !errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return 0, false, fmt.Errorf("%s failed to choose a move: %w", player.Name, err)
	}

	that.logger.Warn("turn timed out", "matchID", that.id, "player", player.Name, "timeout", that.options.TurnTimeout)

	position, err = that.picker.PickOne(that.board.FreePositions())
	if err != nil {
		return 0, false, fmt.Errorf("failed to pick a move after timeout: %w", err)
	}

	that.output.WriteLine("")
	that.output.WriteLine(fmt.Sprintf("Time's up, %s! Square %d was picked for you.", player.Name, position))

	return position, true, nil
}

func (that *Match) finishRound(ctx context.Context, result *RoundResult) {
	that.displayBoard()

	if winner := that.playerByMarker(that.board.WinningMarker()); winner != nil {
		winner.RecordRoundWin()
		result.Winner = winner
		that.output.WriteLine(fmt.Sprintf("%s won!", winner.Name))
	} else {
		that.output.WriteLine("It's a tie!")
	}

	that.displayScore()
	that.board.Reset()

	if grand := that.grandWinner(); grand != nil {
		that.state = MatchEnded
		that.winner = grand
		that.logger.Info("match ended", "matchID", that.id, "winner", grand.Name, "rounds", that.round)
		that.unpublish(ctx)

		return
	}

	if that.options.AlternateFirstPlayer {
		that.roundStarter = that.opponentOf(that.roundStarter)
	}

	that.state = RoundInProgress
	that.current = that.roundStarter
	that.publish(ctx)
}

func (that *Match) abort(ctx context.Context, err error) {
	that.logger.Error("match aborted", "matchID", that.id, "round", that.round, "error", err)
	that.state = MatchEnded
	that.unpublish(ctx)
}

func (that *Match) grandWinner() *entity.Player {
	for _, player := range that.players {
		if player.Score >= that.options.WinningScore {
			return player
		}
	}

	return nil
}

func (that *Match) opponentOf(player *entity.Player) *entity.Player {
	if player == that.players[0] {
		return that.players[1]
	}

	return that.players[0]
}

func (that *Match) playerByMarker(marker string) *entity.Player {
	if marker == entity.NoMarker {
		return nil
	}

	for _, player := range that.players {
		if player.Marker == marker {
			return player
		}
	}

	return nil
}

func isInteractive(strategy entity.MoveStrategy) bool {
	human, ok := strategy.(interactive)
	return ok && human.IsInteractive()
}
