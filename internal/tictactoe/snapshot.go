package tictactoe

import (
	"context"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const cleanupTimeout = 5 * time.Second

type nopSnapshots struct{}

func (nopSnapshots) Save(context.Context, *entity.MatchSnapshot) error { return nil }

func (nopSnapshots) Delete(context.Context, string) error { return nil }

// Snapshot - returns the current public state of the match.
func (that *Match) Snapshot() *entity.MatchSnapshot {
	snapshot := &entity.MatchSnapshot{
		ID:           that.id,
		State:        that.state.String(),
		Round:        that.round,
		WinningScore: that.options.WinningScore,
		Board:        that.board.Snapshot(),
		Players:      make([]entity.PlayerSnapshot, 0, len(that.players)),
		UpdatedAt:    time.Now().UTC(),
	}

	for _, player := range that.players {
		snapshot.Players = append(snapshot.Players, entity.NewPlayerSnapshot(player))
	}

	if that.winner != nil {
		snapshot.Winner = that.winner.Name
	}

	return snapshot
}

// Snapshot failures are logged, never returned.
func (that *Match) publish(ctx context.Context) {
	if err := that.snapshots.Save(ctx, that.Snapshot()); err != nil {
		that.logger.Error("failed to save match snapshot", "matchID", that.id, "error", err)
	}
}

// unpublish still runs when ctx was cancelled by a shutdown.
func (that *Match) unpublish(ctx context.Context) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := that.snapshots.Delete(cleanupCtx, that.id); err != nil {
		that.logger.Error("failed to delete match snapshot", "matchID", that.id, "error", err)
	}
}
