package bot

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// columnScorer scores a simulated board by the column holding the new piece
// in the bottom row.
type columnScorer map[int]int

func (s columnScorer) Score(board domain.Board, piece domain.Piece) int {
	for col, score := range s {
		if board[0][col] == piece {
			return score
		}
	}
	return 0
}

type constantScorer int

func (s constantScorer) Score(domain.Board, domain.Piece) int { return int(s) }

func TestGetValidLocationsAscending(t *testing.T) {
	board := domain.NewBoard()
	for i := 0; i < domain.Rows; i++ {
		board.Place(0, domain.Piece(i%2+1))
		board.Place(6, domain.Piece((i+1)%2+1))
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, GetValidLocations(board))
}

func TestPickBestMoveTieGoesToLowestColumn(t *testing.T) {
	scorer := columnScorer{0: 1, 1: 3, 2: 50, 3: 7, 4: 50, 5: 2, 6: 0}
	selector := NewGreedySelector(scorer, rand.New(rand.NewSource(1)))

	col, err := selector.PickBestMove(domain.NewBoard(), domain.AIPiece)
	require.NoError(t, err)
	assert.Equal(t, 2, col)
}

func TestPickBestMovePrefersCenterOnEmptyBoard(t *testing.T) {
	selector := NewSeededSelector(7)
	col, err := selector.PickBestMove(domain.NewBoard(), domain.AIPiece)
	require.NoError(t, err)
	assert.Equal(t, 3, col)
}

func TestPickBestMoveBlocksThree(t *testing.T) {
	board, err := domain.ParseBoard(`
		0000000
		0000000
		0000000
		0000000
		0000000
		1110000`)
	require.NoError(t, err)

	col, err := NewSeededSelector(3).PickBestMove(board, domain.AIPiece)
	require.NoError(t, err)
	assert.Equal(t, 3, col)
}

func TestPickBestMoveDoesNotMutateBoard(t *testing.T) {
	board, err := domain.ParseBoard(`
		0000000
		0000000
		0000000
		0002000
		0021100
		0121210`)
	require.NoError(t, err)
	before := board

	selector := NewSeededSelector(11)
	first, err := selector.PickBestMove(board, domain.AIPiece)
	require.NoError(t, err)
	assert.Equal(t, before, board)

	for i := 0; i < 10; i++ {
		col, err := selector.PickBestMove(board, domain.AIPiece)
		require.NoError(t, err)
		assert.Equal(t, first, col)
	}
	assert.Equal(t, before, board)
}

func TestPickBestMoveFullBoard(t *testing.T) {
	board := domain.NewBoard()
	for c := 0; c < domain.Columns; c++ {
		for r := 0; r < domain.Rows; r++ {
			board.Drop(r, c, domain.PlayerPiece)
		}
	}

	col, err := NewSeededSelector(1).PickBestMove(board, domain.AIPiece)
	assert.ErrorIs(t, err, domain.ErrNoValidMoves)
	assert.Equal(t, -1, col)
}

func TestPickBestMoveRandomFallbackIsSeeded(t *testing.T) {
	const seed = 99
	selector := NewGreedySelector(constantScorer(FloorScore-1), rand.New(rand.NewSource(seed)))

	col, err := selector.PickBestMove(domain.NewBoard(), domain.AIPiece)
	require.NoError(t, err)

	want := rand.New(rand.NewSource(seed)).Intn(domain.Columns)
	assert.Equal(t, want, col)
}

func TestPickBestMoveFloorTieKeepsFallback(t *testing.T) {
	const seed = 5
	board := domain.NewBoard()
	board.Place(0, domain.PlayerPiece)

	selector := NewGreedySelector(constantScorer(FloorScore), rand.New(rand.NewSource(seed)))
	col, err := selector.PickBestMove(board, domain.AIPiece)
	require.NoError(t, err)

	valid := board.ValidLocations()
	assert.Equal(t, valid[rand.New(rand.NewSource(seed)).Intn(len(valid))], col)
}

func TestGreedySelectorConcurrentUse(t *testing.T) {
	selector := NewSeededSelector(21)
	board := domain.NewBoard()

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = selector.PickBestMove(board, domain.AIPiece)
		}(i)
	}
	wg.Wait()

	for _, col := range results {
		assert.Equal(t, 3, col)
	}
}
