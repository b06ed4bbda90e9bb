package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
)

type stubSelector struct {
	column int
	err    error
	calls  int
}

func (s *stubSelector) PickBestMove(domain.Board, domain.Piece) (int, error) {
	s.calls++
	return s.column, s.err
}

func newTestController(mode Mode, first FirstTurn) *Controller {
	return NewController(Options{
		Mode:      mode,
		FirstTurn: first,
		Selector:  bot.NewSeededSelector(1),
		Rand:      rand.New(rand.NewSource(1)),
	})
}

func TestPvPVerticalWin(t *testing.T) {
	c := newTestController(ModePvP, FirstPlayer)
	state := c.Start()
	assert.Equal(t, "Player 1 to move", state.Label)

	for _, col := range []int{3, 0, 3, 0, 3, 1} {
		_, err := c.SubmitMove(col)
		require.NoError(t, err)
	}
	state, err := c.SubmitMove(3)
	require.NoError(t, err)

	assert.Equal(t, domain.PlayerWins, state.Result)
	assert.True(t, domain.WinningMove(state.Board, domain.PlayerPiece))
	assert.Equal(t, "Player 1 wins!!", state.Label)
	assert.Len(t, state.WinningCells, domain.ToWin)
	assert.Equal(t, domain.Position{Row: 3, Column: 3}, *state.LastMove)

	_, err = c.SubmitMove(4)
	assert.ErrorIs(t, err, domain.ErrGameOver)
	assert.Equal(t, 7, c.State().MoveCount)
}

func TestPvPDrawOnFullBoard(t *testing.T) {
	c := newTestController(ModePvP, FirstPlayer)
	c.Start()

	var state State
	var err error
	for r := 0; r < domain.Rows; r++ {
		for _, col := range []int{0, 2, 1, 3, 4, 6, 5} {
			state, err = c.SubmitMove(col)
			require.NoError(t, err)
		}
	}

	assert.Equal(t, domain.Draw, state.Result)
	assert.True(t, state.Board.IsFull())
	assert.Equal(t, "Draw", state.Label)
	assert.Empty(t, state.WinningCells)
}

func TestInvalidHumanInputIsIgnored(t *testing.T) {
	c := newTestController(ModePvP, FirstPlayer)
	c.Start()
	for i := 0; i < domain.Rows; i++ {
		_, err := c.SubmitMove(6)
		require.NoError(t, err)
	}
	before := c.State()

	_, err := c.SubmitMove(6)
	assert.ErrorIs(t, err, domain.ErrColumnFull)
	assert.True(t, IsRejection(err))

	_, err = c.SubmitMove(7)
	assert.ErrorIs(t, err, domain.ErrInvalidColumn)

	assert.Equal(t, before, c.State())
}

func TestPvAIRepliesImmediately(t *testing.T) {
	c := newTestController(ModePvAI, FirstPlayer)
	c.Start()
	assert.True(t, c.IsHumanTurn())

	state, err := c.SubmitMove(3)
	require.NoError(t, err)

	assert.Equal(t, 2, state.MoveCount)
	assert.Equal(t, domain.PlayerPiece, state.Turn)
	assert.Equal(t, domain.AIPiece, state.Board[1][3])
	assert.Equal(t, "Your turn", state.Label)
}

func TestPvAIOpeningMoveWhenAIFirst(t *testing.T) {
	c := newTestController(ModePvAI, FirstAI)
	assert.False(t, c.IsHumanTurn())

	state := c.Start()
	assert.Equal(t, 1, state.MoveCount)
	assert.Equal(t, domain.AIPiece, state.Board[0][3])
	assert.True(t, c.IsHumanTurn())
}

func TestPlayAITurnRequiresAITurn(t *testing.T) {
	c := newTestController(ModePvAI, FirstPlayer)
	_, err := c.PlayAITurn()
	assert.ErrorIs(t, err, domain.ErrNotYourTurn)

	pvp := newTestController(ModePvP, FirstPlayer)
	pvp.SubmitMove(0)
	_, err = pvp.PlayAITurn()
	assert.ErrorIs(t, err, domain.ErrNotYourTurn)
}

func TestAIWithoutMovesDeclaresDraw(t *testing.T) {
	selector := &stubSelector{column: -1, err: domain.ErrNoValidMoves}
	c := NewController(Options{Mode: ModePvAI, FirstTurn: FirstAI, Selector: selector})

	state := c.Start()
	assert.Equal(t, 1, selector.calls)
	assert.Equal(t, domain.Draw, state.Result)
	assert.Equal(t, 0, state.MoveCount)
}

func TestAIUnplayableColumnDeclaresDraw(t *testing.T) {
	selector := &stubSelector{column: 42}
	c := NewController(Options{Mode: ModePvAI, FirstTurn: FirstPlayer, Selector: selector})
	c.Start()

	state, err := c.SubmitMove(0)
	require.NoError(t, err)
	assert.Equal(t, domain.Draw, state.Result)
	assert.Equal(t, 1, state.MoveCount)
}

func TestAIWinIsReported(t *testing.T) {
	// the stub always answers column 6, so the AI stacks four there
	selector := &stubSelector{column: 6}
	c := NewController(Options{Mode: ModePvAI, FirstTurn: FirstAI, Selector: selector})
	c.Start()

	var state State
	for _, col := range []int{0, 1, 0} {
		var err error
		state, err = c.SubmitMove(col)
		require.NoError(t, err)
	}

	assert.Equal(t, domain.AIWins, state.Result)
	assert.Equal(t, "AI wins!!", state.Label)
	_, err := c.SubmitMove(2)
	assert.ErrorIs(t, err, domain.ErrGameOver)
}

func TestResetStartsNewGame(t *testing.T) {
	c := newTestController(ModePvAI, FirstAI)
	c.Start()
	c.SubmitMove(0)
	require.Equal(t, 3, c.State().MoveCount)

	state := c.Reset()
	assert.Equal(t, 1, state.MoveCount)
	assert.Equal(t, domain.InProgress, state.Result)
	assert.Equal(t, domain.Empty, state.Board[0][0])
	assert.Equal(t, domain.AIPiece, state.Board[0][3])
}

func TestRandomFirstTurnIsSeeded(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		want := domain.PlayerPiece
		if rand.New(rand.NewSource(seed)).Intn(2) == 1 {
			want = domain.AIPiece
		}
		c := NewController(Options{Mode: ModePvP, FirstTurn: FirstRandom, Rand: rand.New(rand.NewSource(seed))})
		assert.Equal(t, want, c.State().Turn, "seed %d", seed)
	}
}

func TestResultLabels(t *testing.T) {
	assert.Equal(t, "Player 2 wins!!", ResultLabel(ModePvP, domain.AIWins, domain.AIPiece))
	assert.Equal(t, "You win!!", ResultLabel(ModePvAI, domain.PlayerWins, domain.PlayerPiece))
	assert.Equal(t, "Player 2 to move", ResultLabel(ModePvP, domain.InProgress, domain.AIPiece))
	assert.Equal(t, "AI to move", ResultLabel(ModePvAI, domain.InProgress, domain.AIPiece))
	assert.Equal(t, "Draw", ResultLabel(ModePvAI, domain.Draw, domain.AIPiece))
}

func TestUnknownOptionsFallBack(t *testing.T) {
	c := NewController(Options{Mode: "chess", FirstTurn: "nobody"})
	assert.Equal(t, ModePvAI, c.Mode())
	assert.Equal(t, domain.PlayerPiece, c.State().Turn)
}
