package cli

import (
	"context"
	"fmt"

	"github.com/chandra/dmacli/internal/client/models"
)

// PayEMI settles one scheduled EMI and refreshes the summary.
func (a *App) PayEMI(ctx context.Context, id string) error {
	id, err := a.resolveEMIID(id)
	if err != nil {
		return err
	}
	amount, err := getNumber(a.reader, "Amount paid", a.out)
	if err != nil {
		return err
	}

	res, err := a.api.PayEMI(ctx, id, models.PaymentRequest{AmountPaid: amount})
	if err != nil {
		return err
	}

	a.feed.Add(fmt.Sprintf("Paid EMI %s", id), rawPayload(res))
	return a.RefreshSummary(ctx)
}

// PartPayment applies an extra principal payment and refreshes the summary.
func (a *App) PartPayment(ctx context.Context, id string) error {
	id, err := a.resolveLoanID(id)
	if err != nil {
		return err
	}
	amount, err := getNumber(a.reader, "Amount paid", a.out)
	if err != nil {
		return err
	}

	res, err := a.api.PartPayment(ctx, id, models.PaymentRequest{AmountPaid: amount})
	if err != nil {
		return err
	}

	a.feed.Add(fmt.Sprintf("Part payment for loan %s", id), rawPayload(res))
	return a.RefreshSummary(ctx)
}

// Foreclose repays a loan's remaining principal early and refreshes the
// summary.
func (a *App) Foreclose(ctx context.Context, id string) error {
	id, err := a.resolveLoanID(id)
	if err != nil {
		return err
	}
	amount, err := getNumber(a.reader, "Amount paid", a.out)
	if err != nil {
		return err
	}

	res, err := a.api.Foreclose(ctx, id, models.PaymentRequest{AmountPaid: amount})
	if err != nil {
		return err
	}

	a.feed.Add(fmt.Sprintf("Foreclosed loan %s", id), rawPayload(res))
	return a.RefreshSummary(ctx)
}

// MarkPaid records an EMI as settled on a given date and refreshes the
// summary.
func (a *App) MarkPaid(ctx context.Context, id string) error {
	id, err := a.resolveEMIID(id)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Actual payment date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}

	res, err := a.api.MarkPaid(ctx, id, models.MarkPaidRequest{ActualPaymentDate: date})
	if err != nil {
		return err
	}

	a.feed.Add(fmt.Sprintf("Marked EMI %s as paid", id), rawPayload(res))
	return a.RefreshSummary(ctx)
}

// MarkMissed flags an EMI as missed (no body) and refreshes the summary.
func (a *App) MarkMissed(ctx context.Context, id string) error {
	id, err := a.resolveEMIID(id)
	if err != nil {
		return err
	}

	res, err := a.api.MarkMissed(ctx, id)
	if err != nil {
		return err
	}

	a.feed.Add(fmt.Sprintf("Marked EMI %s as missed", id), rawPayload(res))
	return a.RefreshSummary(ctx)
}
