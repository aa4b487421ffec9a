package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/chandra/dmacli/internal/client/activity"
	"github.com/chandra/dmacli/internal/client/api"
	"github.com/chandra/dmacli/internal/client/models"
	"github.com/chandra/dmacli/internal/client/render"
	"github.com/tidwall/gjson"
)

// fakeBackend records every call and serves canned results per method name.
type fakeBackend struct {
	calls   []string
	results map[string]gjson.Result
	errs    map[string]error

	lastLoan    models.LoanRequest
	lastPayment models.PaymentRequest
	loginResult api.LoginResult
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		results: make(map[string]gjson.Result),
		errs:    make(map[string]error),
	}
}

func (f *fakeBackend) record(name string) (gjson.Result, error) {
	f.calls = append(f.calls, name)
	return f.results[name], f.errs[name]
}

func (f *fakeBackend) Register(ctx context.Context, req models.RegisterRequest) (gjson.Result, error) {
	return f.record("register")
}

func (f *fakeBackend) Login(ctx context.Context, req models.LoginRequest) (api.LoginResult, error) {
	f.calls = append(f.calls, "login")
	return f.loginResult, f.errs["login"]
}

func (f *fakeBackend) Summary(ctx context.Context) (gjson.Result, error) {
	return f.record("summary")
}

func (f *fakeBackend) NewLoan(ctx context.Context, req models.LoanRequest) (gjson.Result, error) {
	f.lastLoan = req
	return f.record("newloan")
}

func (f *fakeBackend) ExistingLoan(ctx context.Context, req models.LoanRequest) (gjson.Result, error) {
	f.lastLoan = req
	return f.record("existingloan")
}

func (f *fakeBackend) LoanHealth(ctx context.Context, loanID string) (gjson.Result, error) {
	return f.record("health " + loanID)
}

func (f *fakeBackend) Schedule(ctx context.Context, loanID string) (gjson.Result, error) {
	return f.record("schedule " + loanID)
}

func (f *fakeBackend) RepaymentHistory(ctx context.Context, loanID string) (gjson.Result, error) {
	return f.record("history " + loanID)
}

func (f *fakeBackend) PayEMI(ctx context.Context, emiID string, req models.PaymentRequest) (gjson.Result, error) {
	f.lastPayment = req
	return f.record("pay " + emiID)
}

func (f *fakeBackend) PartPayment(ctx context.Context, loanID string, req models.PaymentRequest) (gjson.Result, error) {
	f.lastPayment = req
	return f.record("partpayment " + loanID)
}

func (f *fakeBackend) Foreclose(ctx context.Context, loanID string, req models.PaymentRequest) (gjson.Result, error) {
	f.lastPayment = req
	return f.record("foreclose " + loanID)
}

func (f *fakeBackend) MarkPaid(ctx context.Context, emiID string, req models.MarkPaidRequest) (gjson.Result, error) {
	return f.record("markpaid " + emiID)
}

func (f *fakeBackend) MarkMissed(ctx context.Context, emiID string) (gjson.Result, error) {
	return f.record("markmissed " + emiID)
}

// fakeSession keeps the token and identity in memory.
type fakeSession struct {
	token    string
	identity string
}

func (f *fakeSession) Load(ctx context.Context) error { return nil }

func (f *fakeSession) Set(ctx context.Context, token, identity string) error {
	f.token = token
	f.identity = identity
	return nil
}

func (f *fakeSession) Clear(ctx context.Context) error {
	f.token = ""
	f.identity = ""
	return nil
}

func (f *fakeSession) Token() string       { return f.token }
func (f *fakeSession) Identity() string    { return f.identity }
func (f *fakeSession) Authenticated() bool { return f.token != "" }

// newTestApp wires an App over the fakes with output discarded.
func newTestApp(b *fakeBackend, s *fakeSession) *App {
	return &App{
		api:          b,
		session:      s,
		feed:         activity.New(nil),
		reader:       bufio.NewReader(strings.NewReader("")),
		out:          io.Discard,
		activeView:   ViewAuth,
		summaryArea:  render.NewArea("Loan summary"),
		healthArea:   render.NewArea("Loan health"),
		scheduleArea: render.NewArea("EMI schedule"),
		historyArea:  render.NewArea("Repayment history"),
	}
}

// stubText scripts successive getSimpleText answers and restores the seam on
// cleanup.
func stubText(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected prompt: %s", prompt)
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(w io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func stubNumbers(t *testing.T, answers ...*float64) {
	t.Helper()
	orig := getNumber
	i := 0
	getNumber = func(reader *bufio.Reader, prompt string, w io.Writer) (*float64, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected numeric prompt: %s", prompt)
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getNumber = orig })
}

func stubBools(t *testing.T, answers ...bool) {
	t.Helper()
	orig := getBool
	i := 0
	getBool = func(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected boolean prompt: %s", prompt)
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getBool = orig })
}

// silence discards console output for the duration of the test.
func silence(t *testing.T) {
	t.Helper()
	origPrintln, origAlert := printlnFn, alertFn
	printlnFn = func(a ...any) {}
	alertFn = func(msg string) {}
	t.Cleanup(func() {
		printlnFn = origPrintln
		alertFn = origAlert
	})
}

func ptr(v float64) *float64 { return &v }
