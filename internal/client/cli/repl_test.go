package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeCommander records which handlers the REPL invoked.
type fakeCommander struct {
	authenticated bool
	calls         []string
	err           error
}

func (f *fakeCommander) note(s string) error {
	f.calls = append(f.calls, s)
	return f.err
}

func (f *fakeCommander) Authenticated() bool { return f.authenticated }

func (f *fakeCommander) Register(ctx context.Context) error { return f.note("register") }
func (f *fakeCommander) Login(ctx context.Context) error    { return f.note("login") }
func (f *fakeCommander) Logout(ctx context.Context) error   { return f.note("logout") }
func (f *fakeCommander) Status() string                     { f.note("status"); return "ok" }

func (f *fakeCommander) RefreshSummary(ctx context.Context) error { return f.note("summary") }
func (f *fakeCommander) SelectLoan(ctx context.Context, id string) error {
	return f.note("select " + id)
}
func (f *fakeCommander) NewLoan(ctx context.Context) error      { return f.note("newloan") }
func (f *fakeCommander) ExistingLoan(ctx context.Context) error { return f.note("existingloan") }
func (f *fakeCommander) LoanHealth(ctx context.Context, id string) error {
	return f.note("health " + id)
}
func (f *fakeCommander) Schedule(ctx context.Context, id string) error {
	return f.note("schedule " + id)
}
func (f *fakeCommander) History(ctx context.Context, id string) error {
	return f.note("history " + id)
}

func (f *fakeCommander) PayEMI(ctx context.Context, id string) error { return f.note("pay " + id) }
func (f *fakeCommander) PartPayment(ctx context.Context, id string) error {
	return f.note("partpayment " + id)
}
func (f *fakeCommander) Foreclose(ctx context.Context, id string) error {
	return f.note("foreclose " + id)
}
func (f *fakeCommander) MarkPaid(ctx context.Context, id string) error {
	return f.note("markpaid " + id)
}
func (f *fakeCommander) MarkMissed(ctx context.Context, id string) error {
	return f.note("markmissed " + id)
}

func (f *fakeCommander) ShowView(ctx context.Context, name string) error {
	return f.note("view " + name)
}
func (f *fakeCommander) ShowLog(ctx context.Context) error  { return f.note("log") }
func (f *fakeCommander) ClearLog(ctx context.Context) error { return f.note("clearlog") }

func captureAlerts(t *testing.T) *[]string {
	t.Helper()
	var alerts []string
	orig := alertFn
	alertFn = func(msg string) { alerts = append(alerts, msg) }
	t.Cleanup(func() { alertFn = orig })
	return &alerts
}

func TestREPLDispatch(t *testing.T) {
	silence(t)

	input := strings.Join([]string{
		"summary",
		"select L1",
		"health",
		"pay E9",
		"view activity",
		"log",
		"exit",
		"summary", // never reached
	}, "\n")

	c := &fakeCommander{authenticated: true}
	runREPL(context.Background(), c, func() string { return "(x)" }, bufio.NewScanner(strings.NewReader(input)))

	assert.Equal(t, []string{
		"summary",
		"select L1",
		"health ",
		"pay E9",
		"view activity",
		"log",
	}, c.calls)
}

func TestREPLUnknownCommandAlerts(t *testing.T) {
	silence(t)
	alerts := captureAlerts(t)

	c := &fakeCommander{}
	runREPL(context.Background(), c, func() string { return "" },
		bufio.NewScanner(strings.NewReader("frobnicate\nexit\n")))

	assert.Empty(t, c.calls)
	assert.Len(t, *alerts, 1)
	assert.Contains(t, (*alerts)[0], "unknown command: frobnicate")
}

func TestREPLHandlerErrorAlertsOnce(t *testing.T) {
	silence(t)
	alerts := captureAlerts(t)

	c := &fakeCommander{err: assert.AnError}
	runREPL(context.Background(), c, func() string { return "" },
		bufio.NewScanner(strings.NewReader("summary\nexit\n")))

	assert.Equal(t, []string{"summary"}, c.calls)
	assert.Len(t, *alerts, 1)
}

func TestREPLIgnoresBlankLinesAndStopsOnEOF(t *testing.T) {
	silence(t)

	c := &fakeCommander{}
	runREPL(context.Background(), c, func() string { return "" },
		bufio.NewScanner(strings.NewReader("\n   \nlog\n")))

	assert.Equal(t, []string{"log"}, c.calls)
}

func TestHelpFollowsAuthState(t *testing.T) {
	var printed []string
	origPrintln := printlnFn
	printlnFn = func(a ...any) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				printed = append(printed, s)
			}
		}
	}
	t.Cleanup(func() { printlnFn = origPrintln })

	dispatch(context.Background(), &fakeCommander{authenticated: false}, "help", "")
	dispatch(context.Background(), &fakeCommander{authenticated: true}, "help", "")

	assert.Equal(t, []string{guestHelp, memberHelp}, printed)
}
