package bot

import (
	"math/rand"
	"sync"
	"time"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// FloorScore is the baseline every real candidate has to beat. Only when no
// column scores above it does the random fallback survive.
const FloorScore = -10000

// MoveSelector picks a column for piece on board without modifying it.
type MoveSelector interface {
	PickBestMove(board domain.Board, piece domain.Piece) (int, error)
}

// GreedySelector looks one ply ahead: it scores the board after each legal
// drop and keeps the first column with the strictly highest score. It does
// not consider the opponent's reply.
type GreedySelector struct {
	scorer Scorer

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGreedySelector builds a selector. A nil scorer means the heuristic
// evaluator, a nil rng is seeded from the clock.
func NewGreedySelector(scorer Scorer, rng *rand.Rand) *GreedySelector {
	if scorer == nil {
		scorer = HeuristicScorer{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GreedySelector{scorer: scorer, rng: rng}
}

// NewSeededSelector is the heuristic selector with a reproducible fallback.
func NewSeededSelector(seed int64) *GreedySelector {
	return NewGreedySelector(HeuristicScorer{}, rand.New(rand.NewSource(seed)))
}

// GetValidLocations lists the playable columns in ascending order.
func GetValidLocations(board domain.Board) []int {
	return board.ValidLocations()
}

func (s *GreedySelector) PickBestMove(board domain.Board, piece domain.Piece) (int, error) {
	validColumns := GetValidLocations(board)
	if len(validColumns) == 0 {
		return -1, domain.ErrNoValidMoves
	}

	bestScore := FloorScore
	bestCol := validColumns[s.intn(len(validColumns))]

	for _, col := range validColumns {
		// board is a value, so the simulation never touches the caller's grid
		simulated := board
		if _, err := simulated.Place(col, piece); err != nil {
			continue
		}

		score := s.scorer.Score(simulated, piece)
		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	return bestCol, nil
}

func (s *GreedySelector) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
