package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	commandQuit    = "q"
	commandNewGame = "n"

	helpMessage = "Type 1-9 to play a cell, n for a new game, q to quit."
)

type gamePlay interface {
	NewGame(ctx context.Context) *entity.Game
	Restart(ctx context.Context, game *entity.Game)
	MakeTurn(ctx context.Context, game *entity.Game, cell int) error
}

// Shell plays human-vs-computer games on a terminal. The human is X and always starts.
type Shell struct {
	logger   *slog.Logger
	gamePlay gamePlay

	in  io.Reader
	out *termenv.Output
}

func New(logger *slog.Logger, gamePlay gamePlay, in io.Reader, out *termenv.Output) *Shell {
	return &Shell{
		logger:   logger.With("component", "console"),
		gamePlay: gamePlay,
		in:       in,
		out:      out,
	}
}

// Run reads commands until q, end of input or ctx is done.
func (that *Shell) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(that.in)

	game := that.gamePlay.NewGame(ctx)
	that.printBoard(game)

	for ctx.Err() == nil {
		that.printPrompt(game)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			return nil
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch {
		case input == commandQuit:
			that.println("Bye!")
			return nil
		case input == commandNewGame, game.IsFinished():
			// any input after the end of a game starts the next one
			that.gamePlay.Restart(ctx, game)
			that.printBoard(game)
			continue
		}

		that.handleTurn(ctx, game, input)
	}

	return nil
}

func (that *Shell) handleTurn(ctx context.Context, game *entity.Game, input string) {
	key, err := strconv.Atoi(input)
	if err != nil || key < 1 || key > 9 {
		that.println(helpMessage)
		return
	}

	if err = that.gamePlay.MakeTurn(ctx, game, key-1); err != nil {
		that.printTurnError(err)
		return
	}

	that.printBoard(game)

	if game.IsFinished() {
		that.println(resultMessage(game))
	}
}

func (that *Shell) printTurnError(err error) {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		that.println("That cell is already taken.")
	case errors.Is(err, apperror.ErrGameFinished):
		that.println("The game is over.")
	default:
		that.logger.Error("failed to make turn", "error", err)
		that.println("Move rejected: " + err.Error())
	}
}

func (that *Shell) printBoard(game *entity.Game) {
	that.println("")
	_, _ = that.out.WriteString(renderBoard(that.out, game))
}

func (that *Shell) printPrompt(game *entity.Game) {
	if game.IsFinished() {
		_, _ = that.out.WriteString("Press enter for a new game, q to quit: ")
		return
	}

	_, _ = that.out.WriteString("Your move (1-9): ")
}

func (that *Shell) println(s string) {
	_, _ = that.out.WriteString(s + "\n")
}
