package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrMoveNotFound = fmt.Errorf("move %w", apperror.ErrNotFound)

type MoveRepository interface {
	Get(ctx context.Context, board string) (*entity.Suggestion, error)
	Save(ctx context.Context, suggestion *entity.Suggestion) error
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveRepository stores best moves keyed by board notation. A zero ttl keeps them forever.
func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMove) Save(ctx context.Context, suggestion *entity.Suggestion) error {
	suggestionJSON, err := json.Marshal(suggestion)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, moveKey(suggestion.Board), suggestionJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) Get(ctx context.Context, board string) (*entity.Suggestion, error) {
	response, err := that.client.Get(ctx, moveKey(board)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrMoveNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get move: %w", err)
	}

	var suggestion entity.Suggestion
	if err = json.Unmarshal([]byte(response), &suggestion); err != nil {
		return nil, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return &suggestion, nil
}

func moveKey(board string) string {
	return "move:" + board
}
