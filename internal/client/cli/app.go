package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/portalauth/internal/client/config"
	"github.com/dmitrijs2005/portalauth/internal/client/services"
	"github.com/dmitrijs2005/portalauth/internal/client/ui"
	"github.com/dmitrijs2005/portalauth/internal/logging"
	"github.com/dmitrijs2005/portalauth/internal/session"
	"github.com/dmitrijs2005/portalauth/internal/transport"
	"github.com/dmitrijs2005/portalauth/internal/users"
)

// navState reports who the presentation layer shows as logged in.
type navState interface {
	CurrentEmail() string
}

type App struct {
	config      *config.Config
	authService services.AuthService
	nav         navState
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	closers     []io.Closer
}

// NewApp opens both storage tiers and wires the services on top of them.
// Output goes to stdout, logs go to stderr.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, c.LogLevel)

	persistent, pc, err := openPersistent(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening persistent store", "backend", c.PersistentBackend, "error", err)
		return nil, err
	}

	volatile, vc, err := openVolatile(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening volatile store", "backend", c.VolatileBackend, "error", err)
		if pc != nil {
			_ = pc.Close()
		}
		return nil, err
	}

	presenter := ui.NewTerminalPresenter(os.Stdout)

	sessions := session.NewStore(persistent, volatile,
		session.WithTTL(c.RememberTTL, c.SessionTTL),
		session.WithLogger(log))
	dir := users.NewDirectory(persistent, log)

	tr := transport.NewSimulator(c.SimulatedDelay)
	tr.Delays = map[string]time.Duration{"signup": c.SignupDelay}

	app := &App{
		config:      c,
		authService: services.NewAuthService(dir, sessions, tr, presenter, log),
		nav:         presenter,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}
	for _, cl := range []io.Closer{pc, vc} {
		if cl != nil {
			app.closers = append(app.closers, cl)
		}
	}
	return app, nil
}

// Run restores the saved session and serves the REPL until the user exits
// or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Error(ctx, "error closing stores", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to the portal (type 'help' for commands)")
	a.authService.Restore(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the storage tiers.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.nav != nil && a.nav.CurrentEmail() != ""
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s)", a.nav.CurrentEmail())
}
