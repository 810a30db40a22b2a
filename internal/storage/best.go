package storage

import "github.com/vovakirdan/tui-snake/internal/game"

// Best adapts one board of a Store to game.BestScoreStore.
type Best struct {
	store *Store
	board string
}

// Best returns the best-score record for board.
func (s *Store) Best(board string) *Best {
	return &Best{store: s, board: board}
}

// Get implements game.BestScoreStore.
func (b *Best) Get() (int, error) {
	return b.store.BestScore(b.board)
}

// Set implements game.BestScoreStore.
func (b *Best) Set(score int) error {
	return b.store.SetBestScore(b.board, score)
}

var _ game.BestScoreStore = (*Best)(nil)
