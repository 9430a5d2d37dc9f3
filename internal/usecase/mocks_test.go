package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type mockBotService struct {
	mock.Mock
}

func (m *mockBotService) MakeTurn(game *entity.Game) error {
	return m.Called(game).Error(0)
}

type mockMoveRepo struct {
	mock.Mock
}

func (m *mockMoveRepo) Get(ctx context.Context, board string) (*entity.Suggestion, error) {
	args := m.Called(ctx, board)

	suggestion, _ := args.Get(0).(*entity.Suggestion)

	return suggestion, args.Error(1)
}

func (m *mockMoveRepo) Save(ctx context.Context, suggestion *entity.Suggestion) error {
	return m.Called(ctx, suggestion).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
