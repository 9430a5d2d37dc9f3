package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type moveRepo interface {
	Get(ctx context.Context, board string) (*entity.Suggestion, error)
	Save(ctx context.Context, suggestion *entity.Suggestion) error
}

// MoveAdvisor answers best-move queries for arbitrary boards.
type MoveAdvisor struct {
	logger   *slog.Logger
	moveRepo moveRepo
}

// NewMoveAdvisor returns an advisor. moveRepo may be nil, every query is then searched.
func NewMoveAdvisor(logger *slog.Logger, moveRepo moveRepo) *MoveAdvisor {
	return &MoveAdvisor{
		logger:   logger.With("component", "advisor"),
		moveRepo: moveRepo,
	}
}

// BestMove returns the computer's optimal reply on board. Terminal boards are
// rejected with apperror.ErrGameFinished.
func (that *MoveAdvisor) BestMove(ctx context.Context, board engine.Board) (*entity.Suggestion, error) {
	log := that.logger.With("method", "BestMove", "board", board.String())

	if board.Terminal() {
		return nil, apperror.ErrGameFinished
	}

	notation := board.String()

	if that.moveRepo != nil {
		cached, err := that.moveRepo.Get(ctx, notation)
		switch {
		case err == nil:
			log.DebugContext(ctx, "cached move found", "cell", cached.Cell)
			return cached, nil
		case errors.Is(err, apperror.ErrNotFound):
		default:
			log.WarnContext(ctx, "failed to read cached move", "error", err)
		}
	}

	cell, score := engine.Search(&board)
	suggestion := &entity.Suggestion{
		Board: notation,
		Cell:  cell,
		Score: score,
	}

	if that.moveRepo != nil {
		if err := that.moveRepo.Save(ctx, suggestion); err != nil {
			log.WarnContext(ctx, "failed to cache move", "error", err)
		}
	}

	return suggestion, nil
}
