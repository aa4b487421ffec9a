package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/chandra/dmacli/internal/client/models"
	"github.com/chandra/dmacli/internal/client/render"
)

// RefreshSummary fetches and renders the loan summary list. Without a
// session token it appends an advisory feed line and performs no request.
func (a *App) RefreshSummary(ctx context.Context) error {
	if !a.session.Authenticated() {
		a.feed.Add("Please log in to view loan summaries", nil)
		return nil
	}

	res, err := a.api.Summary(ctx)
	if err != nil {
		return err
	}

	rows := render.RowsFromResult(res)
	a.summaryRows = rows
	a.summaryArea.Render(rows)

	printlnFn(a.summaryArea.Content())
	if len(rows) > 0 {
		printlnFn(dimStyle.Render("Use 'select <loanId>' to target a loan in the other forms."))
	}
	return nil
}

// SelectLoan copies a summary row's loan identifier (and, when present, its
// next-EMI identifier) into the shared fields every other form defaults to.
// Rows are matched by loan id, so a re-rendered summary cannot desync the
// selection.
func (a *App) SelectLoan(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("usage: select <loanId>")
	}

	for _, row := range a.summaryRows {
		if row.Get("loanId") != id {
			continue
		}
		a.loanID = id
		if next := row.Get("nextEmiId"); next != "" {
			a.emiID = next
		}
		a.feed.Add(fmt.Sprintf("Selected loan %s from summary", id), nil)
		return nil
	}
	return fmt.Errorf("loan %s is not in the last fetched summary", id)
}

// collectLoanPayload prompts for the common loan form shape shared by the
// new-loan and existing-loan commands. Numeric fields go through coercion;
// empty dates become null.
func (a *App) collectLoanPayload() (models.LoanRequest, error) {
	var req models.LoanRequest
	var err error

	if req.LoanName, err = getSimpleText(a.reader, "Loan name", a.out); err != nil {
		return req, err
	}
	if req.Category, err = getSimpleText(a.reader, "Category", a.out); err != nil {
		return req, err
	}
	if req.Lender, err = getSimpleText(a.reader, "Lender", a.out); err != nil {
		return req, err
	}
	if req.Principal, err = getNumber(a.reader, "Principal", a.out); err != nil {
		return req, err
	}
	if req.AnnualInterestRate, err = getNumber(a.reader, "Annual interest rate (%)", a.out); err != nil {
		return req, err
	}
	if req.TenureMonths, err = getNumber(a.reader, "Tenure (months)", a.out); err != nil {
		return req, err
	}
	if req.EMIAmount, err = getNumber(a.reader, "EMI amount (leave empty if unknown)", a.out); err != nil {
		return req, err
	}

	startDate, err := getSimpleText(a.reader, "Start date (YYYY-MM-DD, optional)", a.out)
	if err != nil {
		return req, err
	}
	req.StartDate = models.OptionalDate(startDate)

	emiStartDate, err := getSimpleText(a.reader, "EMI start date (YYYY-MM-DD, optional)", a.out)
	if err != nil {
		return req, err
	}
	req.EMIStartDate = models.OptionalDate(emiStartDate)

	if req.EMIDayOfMonth, err = getNumber(a.reader, "EMI day of month (1-28)", a.out); err != nil {
		return req, err
	}
	if req.ForeclosureAllowed, err = getBool(a.reader, "Foreclosure allowed", a.out); err != nil {
		return req, err
	}
	if req.ForeclosurePenaltyPercent, err = getNumber(a.reader, "Foreclosure penalty (%)", a.out); err != nil {
		return req, err
	}
	if req.PartPaymentAllowed, err = getBool(a.reader, "Part payment allowed", a.out); err != nil {
		return req, err
	}

	return req, nil
}

// NewLoan collects the loan form and registers a brand-new loan. The EMI
// amount is dropped by the pipeline; the backend computes it.
func (a *App) NewLoan(ctx context.Context) error {
	payload, err := a.collectLoanPayload()
	if err != nil {
		return err
	}

	res, err := a.api.NewLoan(ctx, payload)
	if err != nil {
		return err
	}

	a.feed.Add("Created new loan", rawPayload(res))
	return a.RefreshSummary(ctx)
}

// ExistingLoan collects the loan form and imports a loan already running
// mid-life; an entered EMI amount is sent along.
func (a *App) ExistingLoan(ctx context.Context) error {
	payload, err := a.collectLoanPayload()
	if err != nil {
		return err
	}

	res, err := a.api.ExistingLoan(ctx, payload)
	if err != nil {
		return err
	}

	a.feed.Add("Added existing loan", rawPayload(res))
	return a.RefreshSummary(ctx)
}

// LoanHealth renders the health snapshot of one loan as a single-row table.
func (a *App) LoanHealth(ctx context.Context, id string) error {
	id, err := a.resolveLoanID(id)
	if err != nil {
		return err
	}

	res, err := a.api.LoanHealth(ctx, id)
	if err != nil {
		return err
	}

	a.healthArea.Render(render.RowsFromResult(res))
	printlnFn(a.healthArea.Content())
	a.feed.Add(fmt.Sprintf("Fetched health for loan %s", id), rawPayload(res))
	return nil
}

// Schedule renders a loan's EMI schedule.
func (a *App) Schedule(ctx context.Context, id string) error {
	id, err := a.resolveLoanID(id)
	if err != nil {
		return err
	}

	res, err := a.api.Schedule(ctx, id)
	if err != nil {
		return err
	}

	a.scheduleArea.Render(render.RowsFromResult(res))
	printlnFn(a.scheduleArea.Content())
	a.feed.Add(fmt.Sprintf("Loaded schedule for loan %s", id), rawPayload(res))
	return nil
}

// History renders a loan's repayment history.
func (a *App) History(ctx context.Context, id string) error {
	id, err := a.resolveLoanID(id)
	if err != nil {
		return err
	}

	res, err := a.api.RepaymentHistory(ctx, id)
	if err != nil {
		return err
	}

	a.historyArea.Render(render.RowsFromResult(res))
	printlnFn(a.historyArea.Content())
	a.feed.Add(fmt.Sprintf("Loaded repayment history for loan %s", id), rawPayload(res))
	return nil
}

// resolveLoanID picks the loan id for a command: the explicit argument, then
// the shared selection, then an interactive prompt.
func (a *App) resolveLoanID(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if a.loanID != "" {
		return a.loanID, nil
	}
	id, err := getSimpleText(a.reader, "Enter loan id", a.out)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errors.New("a loan id is required")
	}
	return id, nil
}

// resolveEMIID picks the EMI id for a command, same precedence as
// resolveLoanID.
func (a *App) resolveEMIID(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if a.emiID != "" {
		return a.emiID, nil
	}
	id, err := getSimpleText(a.reader, "Enter EMI id", a.out)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errors.New("an EMI id is required")
	}
	return id, nil
}
