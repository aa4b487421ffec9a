package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chandra/dmacli/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

// Register prompts for name, email and password and creates a new account.
// Success is logged to the feed; it never authenticates the user.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	res, err := a.api.Register(ctx, models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return err
	}

	a.feed.Add("Registered user", rawPayload(res))
	printlnFn("Registration successful! Please log in.")
	return nil
}

// Login prompts for credentials and authenticates. On success the returned
// token and email are persisted, the console switches to the summary view
// and the summary refreshes. A failed login leaves the session untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	res, err := a.api.Login(ctx, models.LoginRequest{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return err
	}

	if err := a.session.Set(ctx, res.Token, res.Email); err != nil {
		return err
	}

	a.feed.Add("Logged in successfully", rawPayload(res.Raw))
	if err := a.SetActiveView(ViewSummary); err != nil {
		return err
	}
	return a.RefreshSummary(ctx)
}

// Logout clears the persisted session and returns to the auth view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.feed.Add("Logged out", nil)
	return a.SetActiveView(ViewAuth)
}

// Status returns the auth pill text shown by the status command.
func (a *App) Status() string {
	if !a.session.Authenticated() {
		return pillWarnStyle.Render("Not authenticated")
	}

	s := "Authenticated"
	if id := a.session.Identity(); id != "" {
		s += " as " + id
	}
	if hint := tokenAdvisory(a.session.Token()); hint != "" {
		s += " " + dimStyle.Render("["+hint+"]")
	}
	return pillOkStyle.Render(s)
}

// authPill is the auth view's status line.
func (a *App) authPill() string {
	return a.Status()
}

// tokenAdvisory decodes the session token without verifying it and returns a
// short display hint (subject, expiry). Purely informational: tokens are
// opaque to this client and stay trusted until the backend rejects one, so
// undecodable tokens simply produce no hint.
func tokenAdvisory(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}

	var parts []string
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		parts = append(parts, "sub="+sub)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		parts = append(parts, fmt.Sprintf("expires %s", exp.Format(time.RFC3339)))
	}
	return strings.Join(parts, ", ")
}
