package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// Game is the base configuration for every session. A zero Seed gives
	// each session its own time-based seed.
	Game core.RuntimeConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:         ":23234",
		IdleTimeout:     30 * time.Minute,
		ShutdownTimeout: 10 * time.Second,
		Game:            core.DefaultConfig(),
	}
}

// SSHServer serves one independent snake game per SSH session.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	logger   *log.Logger
	sessions atomic.Int64
}

// NewSSHServer creates a new SSH server. store may be nil, in which case
// best scores live only for the length of a session.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a controller and a Bubble Tea program for each session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	if _, _, ok := sshSession.Pty(); !ok {
		wish.Fatalln(sshSession, "snake needs a terminal: connect with ssh -t")
		return nil, nil
	}

	id := s.sessions.Add(1)
	cfg := s.config.Game
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	board := storage.BoardID(cfg.GridSize)
	logger := s.logger.With("user", sshSession.User(), "session", id)

	var best game.BestScoreStore
	var recorder ScoreRecorder
	if s.store != nil {
		best = s.store.Best(board)
		recorder = s.store
	}

	ctrl := game.NewController(game.Options{
		Config: cfg,
		Best:   best,
		Logger: logger,
	})
	session := NewSession(ctrl, recorder, board, logger)

	// The program ends with the connection.
	go func() {
		<-sshSession.Context().Done()
		session.Close()
	}()

	return NewModel(ctrl, session), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down...")
		return s.Shutdown()
	})

	return g.Wait()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
