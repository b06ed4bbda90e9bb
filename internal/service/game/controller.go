package game

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
)

// Mode selects who controls the second piece.
type Mode string

const (
	ModePvAI Mode = "pvai"
	ModePvP  Mode = "pvp"
)

// FirstTurn decides which side opens a game.
type FirstTurn string

const (
	FirstPlayer FirstTurn = "player"
	FirstAI     FirstTurn = "ai"
	FirstRandom FirstTurn = "random"
)

type Options struct {
	Mode      Mode
	FirstTurn FirstTurn
	// Selector picks AI moves, the clock seeded heuristic selector when nil.
	Selector bot.MoveSelector
	// Rand drives the random first turn. Only the controller touches it.
	Rand *rand.Rand
}

// State is the snapshot handed to presentation layers after every change.
type State struct {
	Board        domain.Board
	Turn         domain.Piece
	Result       domain.GameResult
	LastMove     *domain.Position
	MoveCount    int
	Mode         Mode
	WinningCells []domain.Position
	Label        string
}

// Controller sequences turns for one game. Every operation runs under a
// single lock so a validity check and the drop that follows it can never be
// interleaved with another move.
type Controller struct {
	mu           sync.Mutex
	game         *domain.Game
	opts         Options
	lastActivity time.Time
	logger       zerolog.Logger
}

func NewController(opts Options) *Controller {
	if opts.Mode != ModePvP {
		opts.Mode = ModePvAI
	}
	switch opts.FirstTurn {
	case FirstPlayer, FirstAI, FirstRandom:
	default:
		opts.FirstTurn = FirstPlayer
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Selector == nil {
		opts.Selector = bot.NewGreedySelector(bot.HeuristicScorer{}, nil)
	}

	c := &Controller{
		opts:   opts,
		logger: log.With().Str("component", "controller").Str("mode", string(opts.Mode)).Logger(),
	}
	c.game = domain.NewGame(c.openingPiece())
	c.lastActivity = time.Now()
	return c
}

func (c *Controller) openingPiece() domain.Piece {
	switch c.opts.FirstTurn {
	case FirstAI:
		return domain.AIPiece
	case FirstRandom:
		if c.opts.Rand.Intn(2) == 1 {
			return domain.AIPiece
		}
	}
	return domain.PlayerPiece
}

// Start plays the AI opening when the AI moves first.
func (c *Controller) Start() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.aiToMove() {
		c.playAITurnLocked()
	}
	return c.stateLocked()
}

// SubmitMove applies a human move for the side to move. In pvai mode the AI
// replies before SubmitMove returns. Rejected moves change nothing.
func (c *Controller) SubmitMove(column int) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.game.IsFinished() {
		return c.stateLocked(), domain.ErrGameOver
	}
	if c.aiToMove() {
		return c.stateLocked(), domain.ErrNotYourTurn
	}

	mover := c.game.Turn
	row, err := c.game.MakeMove(mover, column)
	if err != nil {
		c.logger.Debug().Err(err).Int("column", column).Msg("Move rejected")
		return c.stateLocked(), err
	}
	c.lastActivity = time.Now()
	c.logger.Debug().Str("piece", mover.String()).Int("row", row).Int("column", column).Msg("Move applied")

	if c.aiToMove() {
		c.playAITurnLocked()
	}
	c.logResultLocked()

	return c.stateLocked(), nil
}

// PlayAITurn makes the AI move when it is the AI's turn.
func (c *Controller) PlayAITurn() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.game.IsFinished() {
		return c.stateLocked(), domain.ErrGameOver
	}
	if !c.aiToMove() {
		return c.stateLocked(), domain.ErrNotYourTurn
	}

	c.playAITurnLocked()
	c.logResultLocked()
	return c.stateLocked(), nil
}

func (c *Controller) aiToMove() bool {
	return c.opts.Mode == ModePvAI && !c.game.IsFinished() && c.game.Turn == domain.AIPiece
}

// playAITurnLocked never asks the selector about a full board; a full board
// at this point is a draw.
func (c *Controller) playAITurnLocked() {
	if c.game.Board.IsFull() {
		c.logger.Warn().Msg("AI to move on a full board, declaring draw")
		c.game.ForceDraw()
		return
	}

	column, err := c.opts.Selector.PickBestMove(c.game.Board, domain.AIPiece)
	if err != nil {
		c.logger.Error().Err(err).Msg("AI could not pick a move, declaring draw")
		c.game.ForceDraw()
		return
	}

	row, err := c.game.MakeMove(domain.AIPiece, column)
	if err != nil {
		c.logger.Error().Err(err).Int("column", column).Msg("AI picked an unplayable column, declaring draw")
		c.game.ForceDraw()
		return
	}
	c.lastActivity = time.Now()
	c.logger.Debug().Int("row", row).Int("column", column).Msg("AI move applied")
}

func (c *Controller) logResultLocked() {
	if c.game.IsFinished() {
		c.logger.Info().Str("result", string(c.game.Result)).Int("moves", c.game.MoveCount).
			Msgf("Game over\n%s", c.game.Board)
	}
}

// Reset discards the current game and starts a new one.
func (c *Controller) Reset() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.game = domain.NewGame(c.openingPiece())
	c.lastActivity = time.Now()
	if c.aiToMove() {
		c.playAITurnLocked()
	}
	return c.stateLocked()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// IsHumanTurn reports whether the next input event should be accepted.
func (c *Controller) IsHumanTurn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.game.IsFinished() && !c.aiToMove()
}

func (c *Controller) Mode() Mode {
	return c.opts.Mode
}

func (c *Controller) LastActivity() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActivity
}

func (c *Controller) stateLocked() State {
	state := State{
		Board:     c.game.Board,
		Turn:      c.game.Turn,
		Result:    c.game.Result,
		MoveCount: c.game.MoveCount,
		Mode:      c.opts.Mode,
	}
	if c.game.LastMove != nil {
		last := *c.game.LastMove
		state.LastMove = &last
	}
	if winner := c.game.Winner(); winner != domain.Empty {
		if line, ok := domain.WinningLine(c.game.Board, winner); ok {
			state.WinningCells = line[:]
		}
	}
	state.Label = ResultLabel(c.opts.Mode, state.Result, state.Turn)
	return state
}

// SideName names the side playing piece in the given mode.
func SideName(mode Mode, piece domain.Piece) string {
	if mode == ModePvP {
		if piece == domain.AIPiece {
			return "Player 2"
		}
		return "Player 1"
	}
	if piece == domain.AIPiece {
		return "AI"
	}
	return "You"
}

// ResultLabel is the status line shown by presentation layers.
func ResultLabel(mode Mode, result domain.GameResult, turn domain.Piece) string {
	switch result {
	case domain.PlayerWins, domain.AIWins:
		winner := domain.PlayerPiece
		if result == domain.AIWins {
			winner = domain.AIPiece
		}
		if mode == ModePvP {
			return SideName(mode, winner) + " wins!!"
		}
		if winner == domain.AIPiece {
			return "AI wins!!"
		}
		return "You win!!"
	case domain.Draw:
		return "Draw"
	}
	if mode == ModePvAI && turn == domain.PlayerPiece {
		return "Your turn"
	}
	return SideName(mode, turn) + " to move"
}

// IsRejection reports whether err is one of the move rejections a
// presentation layer may safely ignore.
func IsRejection(err error) bool {
	return errors.Is(err, domain.ErrInvalidColumn) ||
		errors.Is(err, domain.ErrColumnFull) ||
		errors.Is(err, domain.ErrGameOver) ||
		errors.Is(err, domain.ErrNotYourTurn)
}
