package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"log/slog"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"draftd/internal/api"
	"draftd/internal/config"
	"draftd/internal/logging"
)

// Daemon owns the HTTP server and enforces single-instance execution via a
// file lock in the data directory.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
	svc    *api.DraftService

	lockPath string
	lock     *flock.Flock

	listener net.Listener
	server   *http.Server
}

// New constructs a daemon around an already-wired draft service.
func New(cfg *config.Config, svc *api.DraftService, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || svc == nil {
		return nil, errors.New("daemon requires config and draft service")
	}

	lockPath := filepath.Join(cfg.Paths.DataDir, "draftd.lock")
	d := &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		svc:      svc,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}
	d.server = &http.Server{
		Handler:           NewRouter(svc, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return d, nil
}

// Run serves until ctx is canceled, then shuts the server down gracefully.
func (d *Daemon) Run(ctx context.Context) error {
	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock %q: %w", d.lockPath, err)
	}
	if !ok {
		return fmt.Errorf("another draftd instance holds %q", d.lockPath)
	}
	defer func() {
		if unlockErr := d.lock.Unlock(); unlockErr != nil {
			d.logger.Warn("failed to release instance lock", logging.Error(unlockErr))
		}
	}()

	listener, err := net.Listen("tcp", d.cfg.Paths.APIBind)
	if err != nil {
		return fmt.Errorf("listen on %q: %w", d.cfg.Paths.APIBind, err)
	}
	d.listener = listener
	d.logger.Info("api server listening", slog.String("address", listener.Addr().String()))

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if serveErr := d.server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", serveErr)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(d.cfg.Server.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if shutdownErr := d.server.Shutdown(shutdownCtx); shutdownErr != nil {
			return fmt.Errorf("shutdown: %w", shutdownErr)
		}
		return nil
	})

	err = group.Wait()
	d.logger.Info("daemon stopped")
	return err
}

// Addr returns the bound listener address, or empty before Run.
func (d *Daemon) Addr() string {
	if d.listener == nil {
		return ""
	}
	return d.listener.Addr().String()
}

// LockPath returns the single-instance lock file path.
func (d *Daemon) LockPath() string {
	return d.lockPath
}
