package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/chandra/dmacli/internal/client/models"
	"github.com/tidwall/gjson"
)

// LoginResult is the backend's answer to a successful login.
type LoginResult struct {
	Token  string
	UserID int64
	Email  string
	// Raw keeps the full payload for feed logging.
	Raw gjson.Result
}

// Register creates a new account. It does not authenticate.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (gjson.Result, error) {
	return c.do(ctx, http.MethodPost, "/api/auth/register", req)
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (LoginResult, error) {
	res, err := c.do(ctx, http.MethodPost, "/api/auth/login", req)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{
		Token:  res.Get("token").String(),
		UserID: res.Get("userId").Int(),
		Email:  res.Get("email").String(),
		Raw:    res,
	}, nil
}

// Summary fetches the loan summary list.
func (c *Client) Summary(ctx context.Context) (gjson.Result, error) {
	return c.do(ctx, http.MethodGet, "/api/loans/summary", nil)
}

// NewLoan registers a brand-new loan. The EMI amount is computed server-side,
// so it is stripped from the payload here no matter what the form collected.
func (c *Client) NewLoan(ctx context.Context, req models.LoanRequest) (gjson.Result, error) {
	return c.do(ctx, http.MethodPost, "/api/loans/new", req.WithoutEMIAmount())
}

// ExistingLoan imports a loan already running mid-life; the EMI amount is
// sent when present.
func (c *Client) ExistingLoan(ctx context.Context, req models.LoanRequest) (gjson.Result, error) {
	return c.do(ctx, http.MethodPost, "/api/loans/existing", req)
}

// LoanHealth fetches the health snapshot of one loan.
func (c *Client) LoanHealth(ctx context.Context, loanID string) (gjson.Result, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/api/loans/%s/health", url.PathEscape(loanID)), nil)
}

// Schedule fetches a loan's EMI schedule.
func (c *Client) Schedule(ctx context.Context, loanID string) (gjson.Result, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/api/loans/%s/schedule", url.PathEscape(loanID)), nil)
}

// RepaymentHistory fetches a loan's repayment history.
func (c *Client) RepaymentHistory(ctx context.Context, loanID string) (gjson.Result, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/api/repayment/history/%s", url.PathEscape(loanID)), nil)
}

// PayEMI settles one scheduled EMI.
func (c *Client) PayEMI(ctx context.Context, emiID string, req models.PaymentRequest) (gjson.Result, error) {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/repayment/emi/%s", url.PathEscape(emiID)), req)
}

// PartPayment applies an extra principal payment outside the schedule.
func (c *Client) PartPayment(ctx context.Context, loanID string, req models.PaymentRequest) (gjson.Result, error) {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/repayment/part-payment/%s", url.PathEscape(loanID)), req)
}

// Foreclose repays a loan's remaining principal early.
func (c *Client) Foreclose(ctx context.Context, loanID string, req models.PaymentRequest) (gjson.Result, error) {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/repayment/foreclose/%s", url.PathEscape(loanID)), req)
}

// MarkPaid records an EMI as settled on the given date.
func (c *Client) MarkPaid(ctx context.Context, emiID string, req models.MarkPaidRequest) (gjson.Result, error) {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/emi/%s/mark-paid", url.PathEscape(emiID)), req)
}

// MarkMissed flags an EMI as missed. The endpoint takes no body.
func (c *Client) MarkMissed(ctx context.Context, emiID string) (gjson.Result, error) {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/emi/%s/mark-missed", url.PathEscape(emiID)), nil)
}
