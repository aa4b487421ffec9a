package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// Indirections used to facilitate testing.
var (
	printlnFn = func(a ...any) { fmt.Println(a...) }
	alertFn   = func(msg string) { fmt.Println(alertStyle.Render(msg)) }
)

// commander is the command surface the REPL dispatches to. *App satisfies
// it; tests use a fake to verify routing without a backend.
type commander interface {
	Authenticated() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status() string

	RefreshSummary(ctx context.Context) error
	SelectLoan(ctx context.Context, id string) error
	NewLoan(ctx context.Context) error
	ExistingLoan(ctx context.Context) error
	LoanHealth(ctx context.Context, id string) error
	Schedule(ctx context.Context, id string) error
	History(ctx context.Context, id string) error

	PayEMI(ctx context.Context, id string) error
	PartPayment(ctx context.Context, id string) error
	Foreclose(ctx context.Context, id string) error
	MarkPaid(ctx context.Context, id string) error
	MarkMissed(ctx context.Context, id string) error

	ShowView(ctx context.Context, name string) error
	ShowLog(ctx context.Context) error
	ClearLog(ctx context.Context) error
}

const guestHelp = `Available commands:
  register          create a new account
  login             authenticate and persist the session
  status            show authentication state
  view [name]       show a view (auth, summary, loans, repayment, activity)
  log               show the activity feed
  clearlog          empty the activity feed
  help              this text
  exit              leave the console`

const memberHelp = `Available commands:
  summary               fetch and render the loan summary
  select <loanId>       target a loan for the commands below
  newloan               register a brand-new loan
  existingloan          import a loan already running
  health [loanId]       loan health snapshot
  schedule [loanId]     EMI schedule
  history [loanId]      repayment history
  pay [emiId]           pay a scheduled EMI
  partpayment [loanId]  extra principal payment
  foreclose [loanId]    close a loan early
  markpaid [emiId]      mark an EMI paid on a date
  markmissed [emiId]    mark an EMI missed
  status                show authentication state
  view [name]           show a view (auth, summary, loans, repayment, activity)
  log                   show the activity feed
  clearlog              empty the activity feed
  logout                clear the session
  help                  this text
  exit                  leave the console`

// runREPL reads commands line by line until exit or EOF. Every handler error
// lands in exactly one alert; handlers themselves never print errors.
func runREPL(ctx context.Context, c commander, status func() string, scanner *bufio.Scanner) {
	for {
		fmt.Printf("dma %s> ", status())
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd := strings.ToLower(fields[0])
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		if cmd == "exit" || cmd == "quit" {
			return
		}
		dispatch(ctx, c, cmd, arg)
	}
}

// dispatch routes one command. Unknown commands alert without touching any
// state.
func dispatch(ctx context.Context, c commander, cmd, arg string) {
	notify := func(err error) {
		if err != nil {
			alertFn(err.Error())
		}
	}

	switch cmd {
	case "help":
		if c.Authenticated() {
			printlnFn(memberHelp)
		} else {
			printlnFn(guestHelp)
		}
	case "register":
		notify(c.Register(ctx))
	case "login":
		notify(c.Login(ctx))
	case "logout":
		notify(c.Logout(ctx))
	case "status":
		printlnFn(c.Status())
	case "summary":
		notify(c.RefreshSummary(ctx))
	case "select":
		notify(c.SelectLoan(ctx, arg))
	case "newloan":
		notify(c.NewLoan(ctx))
	case "existingloan":
		notify(c.ExistingLoan(ctx))
	case "health":
		notify(c.LoanHealth(ctx, arg))
	case "schedule":
		notify(c.Schedule(ctx, arg))
	case "history":
		notify(c.History(ctx, arg))
	case "pay":
		notify(c.PayEMI(ctx, arg))
	case "partpayment":
		notify(c.PartPayment(ctx, arg))
	case "foreclose":
		notify(c.Foreclose(ctx, arg))
	case "markpaid":
		notify(c.MarkPaid(ctx, arg))
	case "markmissed":
		notify(c.MarkMissed(ctx, arg))
	case "view":
		notify(c.ShowView(ctx, arg))
	case "log":
		notify(c.ShowLog(ctx))
	case "clearlog":
		notify(c.ClearLog(ctx))
	default:
		alertFn(fmt.Sprintf("unknown command: %s (type 'help')", cmd))
	}
}
