package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/popx/internal/client/config"
	"github.com/dmitrijs2005/popx/internal/client/router"
	"github.com/dmitrijs2005/popx/internal/client/services"
	"github.com/dmitrijs2005/popx/internal/client/storage"
	"github.com/dmitrijs2005/popx/internal/client/views"
	"github.com/dmitrijs2005/popx/internal/logging"
)

// App is the terminal client: it owns the session database, the auth service
// and the controller of the screen currently shown.
type App struct {
	config *config.Config
	root   logging.Logger
	logger logging.Logger
	db     *sql.DB
	auth   services.AuthService
	reader *bufio.Reader
	out    io.Writer

	path    string
	view    router.View
	landing *views.Landing
	login   *views.LoginView
	signup  *views.SignupView
	profile *views.ProfileView
}

// NewApp opens the session database named by c and wires the services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.SessionDSN)
	if err != nil {
		logger.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	a := newApp(c, logger, services.NewAuthService(db, logger), os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, logger logging.Logger, auth services.AuthService, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		root:   logger,
		logger: logger.With("module", "cli"),
		auth:   auth,
		reader: bufio.NewReader(in),
		out:    out,
		path:   router.PathLanding,
	}
}

// Run restores the session and runs the REPL until the user exits, input
// ends, ctx is cancelled or the process gets SIGINT/SIGTERM.
func (a *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer a.initSignalHandler(ctx, cancelFunc)()
	defer a.Close()

	renderLoading(a.out)
	if err := a.auth.Initialize(ctx); err != nil {
		a.logger.Warn(ctx, "starting with an empty session", "error", err)
	}

	runREPL(ctx, a, func(ctx context.Context) (string, error) {
		return await(ctx, func() (string, error) { return readLine(a.reader) })
	})
}

// initSignalHandler cancels the run on SIGINT or SIGTERM. The returned func
// stops the signal delivery.
func (a *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigs:
			a.logger.Info(ctx, "signal received, leaving", "signal", sig.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()

	return func() { signal.Stop(sigs) }
}

// Close releases the session database. With the default in-memory DSN this
// ends the session.
func (a *App) Close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error(context.Background(), "closing session database", "error", err)
	}
	a.db = nil
}

// Path is the path of the screen currently shown.
func (a *App) Path() string {
	return a.path
}

// Screen resolves the current path through the route guard, switches the
// active controller when the view changes and renders it.
func (a *App) Screen(ctx context.Context) router.View {
	d, path, err := router.Navigate(a.path, a.auth.State())
	if err != nil {
		a.logger.Error(ctx, "navigation failed", "path", a.path, "error", err)
		d, path = router.Render(router.ViewLanding), router.PathLanding
	}
	a.path = path

	if d.Kind == router.KindLoading {
		renderLoading(a.out)
		return router.ViewLoading
	}
	if d.View != a.view {
		a.enter(d.View)
	}
	a.render()
	return a.view
}

// enter builds a fresh controller for v; leaving a form discards its input.
func (a *App) enter(v router.View) {
	a.view = v
	a.landing, a.login, a.signup, a.profile = nil, nil, nil, nil

	switch v {
	case router.ViewLanding:
		a.landing = views.NewLanding()
	case router.ViewLogin:
		a.login = views.NewLoginView(a.auth, a.root, a.config.SubmitDelay)
	case router.ViewSignup:
		a.signup = views.NewSignupView(a.auth, a.root, a.config.SubmitDelay)
	case router.ViewProfile:
		a.profile = views.NewProfileView(a.auth)
	}
}

func (a *App) render() {
	switch a.view {
	case router.ViewLanding:
		renderLanding(a.out, a.landing)
	case router.ViewLogin:
		renderLogin(a.out, a.login)
	case router.ViewSignup:
		renderSignup(a.out, a.signup)
	case router.ViewProfile:
		renderProfile(a.out, a.profile)
	}
}

// Go moves to path. The guard decides what is shown on the next Screen.
func (a *App) Go(path string) {
	a.path = path
}

func (a *App) follow(out views.Outcome) {
	if out.Next != "" {
		a.Go(out.Next)
	}
}

// Users prints every registered user of the session.
func (a *App) Users(ctx context.Context) error {
	users, err := a.auth.RegisteredUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	renderUsers(a.out, users)
	return nil
}

// Reset wipes the session store and goes back to the landing page.
func (a *App) Reset(ctx context.Context) error {
	if err := a.auth.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Session cleared")
	a.Go(router.PathLanding)
	return nil
}
