package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/storage"
)

// SSHServerConfig controls the remote play server.
type SSHServerConfig struct {
	Address string

	// HostKeyPath defaults to ~/.mazechase/host_key; wish generates the key
	// on first start.
	HostKeyPath string

	// DBPath is shared by every session. An unusable database only disables
	// run recording.
	DBPath string

	IdleTimeout time.Duration
	MaxSessions int // 0 means unlimited

	TickRate int
}

// DefaultSSHServerConfig returns the settings used by `mazechase serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.mazechase/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer hosts one independent game session per SSH connection.
type SSHServer struct {
	cfg    SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	log    *log.Logger
	active atomic.Int32
}

// NewSSHServer prepares the server without listening yet. A nil logger
// writes to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}
	logger = logger.WithPrefix("ssh")

	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{cfg: cfg, log: logger}
	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("runs will not be recorded", "db", cfg.DBPath, "err", err)
		s.store = nil
	}

	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			s.limitSessions,
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("tui: create ssh server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" || strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: resolve home directory: %w", err)
		}
		if path == "" {
			path = filepath.Join(home, ".mazechase", "host_key")
		} else {
			path = filepath.Join(home, path[1:])
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: create host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the Bubble Tea program for one connection.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "mazechase needs an interactive terminal; connect with ssh -t")
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	model := NewSessionModel(s.store, cfg, sess.User(), s.log)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// limitSessions turns away connections once MaxSessions are playing.
func (s *SSHServer) limitSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)

		if s.cfg.MaxSessions > 0 && int(n) > s.cfg.MaxSessions {
			s.log.Warn("session rejected", "user", sess.User(), "active", n-1)
			wish.Fatalln(sess, "server is full, try again later")
			return
		}
		next(sess)
	}
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (s *SSHServer) Serve(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Address)
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: ssh server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down", "sessions", s.active.Load())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.server.Shutdown(shutdownCtx)
	s.closeStore()
	if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("tui: shutdown: %w", err)
	}
	return nil
}

// ActiveSessions reports how many connections are being served.
func (s *SSHServer) ActiveSessions() int {
	return int(s.active.Load())
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}
