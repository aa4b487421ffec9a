// Package cli implements the interactive DMA console: a REPL over the REST
// backend with durable login, view navigation, tabular output and an
// activity feed.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/chandra/dmacli/internal/client/activity"
	"github.com/chandra/dmacli/internal/client/api"
	"github.com/chandra/dmacli/internal/client/config"
	"github.com/chandra/dmacli/internal/client/models"
	"github.com/chandra/dmacli/internal/client/render"
	"github.com/chandra/dmacli/internal/client/session"
	"github.com/chandra/dmacli/internal/logging"
	"github.com/tidwall/gjson"

	_ "modernc.org/sqlite"
)

// backend is the command surface the console needs from the request
// pipeline. *api.Client satisfies it; tests provide fakes.
type backend interface {
	Register(ctx context.Context, req models.RegisterRequest) (gjson.Result, error)
	Login(ctx context.Context, req models.LoginRequest) (api.LoginResult, error)
	Summary(ctx context.Context) (gjson.Result, error)
	NewLoan(ctx context.Context, req models.LoanRequest) (gjson.Result, error)
	ExistingLoan(ctx context.Context, req models.LoanRequest) (gjson.Result, error)
	LoanHealth(ctx context.Context, loanID string) (gjson.Result, error)
	Schedule(ctx context.Context, loanID string) (gjson.Result, error)
	RepaymentHistory(ctx context.Context, loanID string) (gjson.Result, error)
	PayEMI(ctx context.Context, emiID string, req models.PaymentRequest) (gjson.Result, error)
	PartPayment(ctx context.Context, loanID string, req models.PaymentRequest) (gjson.Result, error)
	Foreclose(ctx context.Context, loanID string, req models.PaymentRequest) (gjson.Result, error)
	MarkPaid(ctx context.Context, emiID string, req models.MarkPaidRequest) (gjson.Result, error)
	MarkMissed(ctx context.Context, emiID string) (gjson.Result, error)
}

// sessionStore is the durable auth state contract. *session.Store satisfies it.
type sessionStore interface {
	Load(ctx context.Context) error
	Set(ctx context.Context, token, identity string) error
	Clear(ctx context.Context) error
	Token() string
	Identity() string
	Authenticated() bool
}

// App owns all console state: the session, the active view, the display
// areas and the shared loan/EMI identifiers the forms default to. Everything
// runs on the REPL goroutine.
type App struct {
	config  *config.Config
	api     backend
	session sessionStore
	feed    *activity.Log
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	activeView   View
	summaryArea  *render.Area
	healthArea   *render.Area
	scheduleArea *render.Area
	historyArea  *render.Area

	// last fetched summary rows; select resolves loan ids against these
	summaryRows []render.Row

	// shared identifiers copied from a selected summary row
	loanID string
	emiID  string
}

// NewApp wires the console together: local database, session store, request
// pipeline and display areas. The persisted session decides the initial
// view: summary when a token survived, login/registration otherwise.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(db)
	if err := store.Load(ctx); err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	feed := activity.New(logger)
	apiClient := api.New(c.ServerBaseURL, store, feed)

	a := &App{
		config:       c,
		api:          apiClient,
		session:      store,
		feed:         feed,
		logger:       logger,
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		activeView:   ViewAuth,
		summaryArea:  render.NewArea("Loan summary"),
		healthArea:   render.NewArea("Loan health"),
		scheduleArea: render.NewArea("EMI schedule"),
		historyArea:  render.NewArea("Repayment history"),
	}

	if store.Authenticated() {
		a.activeView = ViewSummary
	}
	return a, nil
}

// Run prints the welcome line, refreshes the summary when a session
// survived the restart, and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the DMA console (type 'help' for commands)")

	if a.session.Authenticated() {
		if err := a.RefreshSummary(ctx); err != nil {
			alertFn(err.Error())
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.promptStatus, scanner)
}

// Authenticated reports whether a session token is present.
func (a *App) Authenticated() bool {
	return a.session.Authenticated()
}

// promptStatus is the short status shown in the REPL prompt.
func (a *App) promptStatus() string {
	if id := a.session.Identity(); a.session.Authenticated() && id != "" {
		return "(" + id + ")"
	}
	return "(guest)"
}

// rawPayload converts a decoded response into a feed payload: the raw JSON
// when a payload exists, nil otherwise.
func rawPayload(res gjson.Result) any {
	if !res.Exists() {
		return nil
	}
	return json.RawMessage(res.Raw)
}
