package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/vrocha/admincli/internal/client/config"
	"github.com/vrocha/admincli/internal/client/credstore"
	"github.com/vrocha/admincli/internal/client/form"
	"github.com/vrocha/admincli/internal/client/gateway"
	"github.com/vrocha/admincli/internal/client/gateway/httpapi"
	"github.com/vrocha/admincli/internal/client/models"
	"github.com/vrocha/admincli/internal/client/session"
	"github.com/vrocha/admincli/internal/client/usecase"
	"github.com/vrocha/admincli/internal/logging"
)

// userSession is the slice of session.Session the commands need; tests can
// provide a lightweight stub.
type userSession interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Current() *session.Identity
	LoggedIn() bool
}

// App is the interactive client: the composition of session, user gateway
// and form controller behind the REPL commands.
type App struct {
	config  *config.Config
	session userSession
	users   gateway.UserGateway
	form    *form.Controller
	reader  *bufio.Reader
	log     logging.Logger
	closeFn func() error
}

// NewApp is the composition root: it builds each collaborator once and
// passes references down. No service registry; everything is explicit.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	var store credstore.Store
	var closeFn func() error

	sqliteStore, err := credstore.OpenSQLite(ctx, cfg.DatabasePath, log)
	if err != nil {
		// The app must keep working without persistence; fall back to an
		// in-memory store for the lifetime of the process.
		log.Warn(ctx, "credential store unavailable, continuing without persistence",
			"path", cfg.DatabasePath, "error", err)
		store = credstore.NewMemoryStore()
	} else {
		store = sqliteStore
		closeFn = sqliteStore.Close
	}

	api := httpapi.New(cfg.APIBaseURL, cfg.RequestTimeout, store, log)

	loginUC, err := usecase.NewLogin(api)
	if err != nil {
		return nil, err
	}
	createUC, err := usecase.NewCreateUser(api)
	if err != nil {
		return nil, err
	}
	updateUC, err := usecase.NewUpdateUser(api)
	if err != nil {
		return nil, err
	}

	sess := session.New(loginUC, api, store, log)

	app := &App{
		config:  cfg,
		session: sess,
		users:   api,
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
		closeFn: closeFn,
	}
	app.form = form.NewController(createUC, updateUC, app.onFormSuccess, app.onFormError)
	return app, nil
}

func (a *App) onFormSuccess(u *models.User) {
	printlnFn("Usuário salvo com sucesso!")
	if u != nil {
		printlnFn(formatUser(*u))
	}
}

func (a *App) onFormError(msg string) {
	printlnFn("Erro ao salvar usuário:", msg)
}

// Run restores the session and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closeFn != nil {
			_ = a.closeFn()
		}
	}()

	a.session.Restore(ctx)
	printlnFn("Bem-vindo ao admincli (digite 'help' para ver os comandos)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

// getStatus renders the prompt suffix: the signed-in user, when known.
func (a *App) getStatus() string {
	u := a.session.Current()
	if u == nil {
		return ""
	}
	label := u.Name
	if label == "" {
		label = u.Email
	}
	if label == "" {
		return "(autenticado)"
	}
	return fmt.Sprintf("(%s)", label)
}

func formatUser(u models.User) string {
	s := fmt.Sprintf("  #%s  %s  <%s>", u.ID, u.Name, u.Email)
	if u.CPF != "" {
		s += "  CPF " + u.CPF
	}
	return s
}
