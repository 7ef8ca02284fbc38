package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrSnapshotNotFound = errors.New("match snapshot not found")

const matchKeyPrefix = "match:"

type MatchSnapshotRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMatchSnapshotRepository - stores snapshots under "match:<id>"; a zero ttl keeps them until deleted.
func NewMatchSnapshotRepository(client *redis.Client, ttl time.Duration) *MatchSnapshotRepository {
	return &MatchSnapshotRepository{
		client: client,
		ttl:    ttl,
	}
}

func (that *MatchSnapshotRepository) Save(ctx context.Context, snapshot *entity.MatchSnapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal match snapshot: %w", err)
	}

	if err = that.client.Set(ctx, matchKeyPrefix+snapshot.ID, snapshotJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set match snapshot: %w", err)
	}

	return nil
}

func (that *MatchSnapshotRepository) Get(ctx context.Context, id string) (*entity.MatchSnapshot, error) {
	response, err := that.client.Get(ctx, matchKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match snapshot %s: %w", id, err)
	}

	var snapshot entity.MatchSnapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match snapshot: %w", err)
	}

	return &snapshot, nil
}

func (that *MatchSnapshotRepository) Delete(ctx context.Context, id string) error {
	if err := that.client.Del(ctx, matchKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete match snapshot %s: %w", id, err)
	}

	return nil
}
