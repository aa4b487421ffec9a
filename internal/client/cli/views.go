package cli

import (
	"context"
	"fmt"
	"strings"
)

// View identifies one logical screen of the console. Exactly one view is
// active at any time; navigation is free-form with no history or guards.
type View string

const (
	ViewAuth      View = "auth"
	ViewSummary   View = "summary"
	ViewLoans     View = "loans"
	ViewRepayment View = "repayment"
	ViewActivity  View = "activity"
)

// viewOrder fixes the navigation bar layout.
var viewOrder = []View{ViewAuth, ViewSummary, ViewLoans, ViewRepayment, ViewActivity}

func validView(v View) bool {
	for _, known := range viewOrder {
		if known == v {
			return true
		}
	}
	return false
}

// SetActiveView switches the console to the given view. Unknown ids are
// rejected and leave the active view unchanged.
func (a *App) SetActiveView(v View) error {
	if !validView(v) {
		return fmt.Errorf("unknown view: %s", v)
	}
	a.activeView = v
	return nil
}

// ActiveView returns the currently visible view.
func (a *App) ActiveView() View {
	return a.activeView
}

// navBar renders the navigation line with exactly the active view
// highlighted.
func (a *App) navBar() string {
	parts := make([]string, 0, len(viewOrder))
	for _, v := range viewOrder {
		if v == a.activeView {
			parts = append(parts, navActiveStyle.Render(string(v)))
		} else {
			parts = append(parts, navStyle.Render(string(v)))
		}
	}
	return strings.Join(parts, " ")
}

// viewBody returns the active view's display content.
func (a *App) viewBody() string {
	switch a.activeView {
	case ViewAuth:
		return a.authPill() + "\n" + dimStyle.Render("Commands: register, login")
	case ViewSummary:
		return a.summaryArea.Content()
	case ViewLoans:
		return a.healthArea.Content() + "\n\n" + a.scheduleArea.Content()
	case ViewRepayment:
		return a.historyArea.Content()
	case ViewActivity:
		return a.feedText()
	}
	return ""
}

// ShowView switches to the named view when one is given and prints the
// navigation bar plus the (new) active view's content.
func (a *App) ShowView(ctx context.Context, name string) error {
	if name != "" {
		if err := a.SetActiveView(View(name)); err != nil {
			return err
		}
	}
	printlnFn(a.navBar())
	printlnFn(a.viewBody())
	return nil
}
