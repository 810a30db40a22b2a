// Package tui provides the Bubble Tea front end for the snake game: the play
// screen, the scoreboard and an SSH server that hosts both.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ScoreRecorder saves finished games.
type ScoreRecorder interface {
	SaveScore(board string, score, length int) (int64, error)
}

// BoardMsg tells the model that the controller state changed. It carries no
// data; the model reads a fresh snapshot.
type BoardMsg struct{}

// Session subscribes to a controller and turns its events into Bubble Tea
// messages. Notifications coalesce: a slow UI sees the latest board, never a
// backlog.
type Session struct {
	ctrl     *game.Controller
	recorder ScoreRecorder
	board    string
	logger   *log.Logger
	notify   chan struct{}
	done     chan struct{}
	cancel   func()
	once     sync.Once

	mu        sync.Mutex
	newBest   bool
	collision snake.Collision
}

// NewSession attaches to ctrl. recorder may be nil.
func NewSession(ctrl *game.Controller, recorder ScoreRecorder, board string, logger *log.Logger) *Session {
	s := &Session{
		ctrl:     ctrl,
		recorder: recorder,
		board:    board,
		logger:   logger,
		notify:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	s.cancel = ctrl.Subscribe(s.handle)
	return s
}

// handle runs on the controller's listener path.
func (s *Session) handle(ev game.Event) {
	switch ev := ev.(type) {
	case game.SnapshotEvent:
		if ev.Snapshot.Tick == 0 {
			s.mu.Lock()
			s.newBest = false
			s.collision = snake.CollisionNone
			s.mu.Unlock()
		}
	case game.NewBestEvent:
		s.mu.Lock()
		s.newBest = true
		s.mu.Unlock()
	case game.GameOverEvent:
		s.mu.Lock()
		s.collision = ev.Collision
		s.mu.Unlock()
		s.record(ev)
	}

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// record saves a finished game once. Empty games are not kept.
func (s *Session) record(ev game.GameOverEvent) {
	if s.recorder == nil || ev.Score <= 0 {
		return
	}
	if _, err := s.recorder.SaveScore(s.board, ev.Score, ev.Length); err != nil {
		s.logger.Warn("could not save score", "board", s.board, "score", ev.Score, "error", err)
		return
	}
	s.logger.Debug("score saved", "board", s.board, "score", ev.Score, "length", ev.Length)
}

// Wait returns a command that blocks until the next change or Close.
func (s *Session) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s.notify:
			return BoardMsg{}
		case <-s.done:
			return nil
		}
	}
}

// Notice returns the overlay text for snap, including new-best and
// collision details on game over.
func (s *Session) Notice(snap game.Snapshot) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case snap.Status == game.StatusOver && s.newBest:
		return "NEW BEST! r TO RESTART"
	case snap.Status == game.StatusOver && s.collision == snake.CollisionSelf:
		return "BIT YOURSELF - r TO RESTART"
	case snap.Status == game.StatusOver:
		return "HIT THE WALL - r TO RESTART"
	}
	return snap.Notice()
}

// Close detaches from the controller and stops it.
func (s *Session) Close() {
	s.once.Do(func() {
		s.cancel()
		s.ctrl.Close()
		close(s.done)
	})
}
