package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/metricsdash/internal/client/dashboard"
	"github.com/dmitrijs2005/metricsdash/internal/client/i18n"
	"github.com/dmitrijs2005/metricsdash/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, optional name and password, creates the
// account and, as the backend returns a session, opens the dashboard.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Register(ctx, email, password, name)
	if err != nil {
		printlnFn("Registration failed:", err)
		return err
	}

	printlnFn(a.msgs.T(i18n.KeyRegisterSuccess, u.DisplayName()))
	return a.Dashboard(ctx)
}

// Login prompts for credentials, stores the session and opens the dashboard.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Login(ctx, email, password)
	if err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	printlnFn(a.msgs.T(i18n.KeyLoginSuccess, u.DisplayName()))
	return a.Dashboard(ctx)
}

// Logout clears the session. With a mounted dashboard the view performs
// the teardown; otherwise the auth service does.
func (a *App) Logout(ctx context.Context) error {
	if a.view != nil {
		if err := a.view.Logout(ctx); err != nil {
			printlnFn("Logout failed:", err)
			return err
		}
		a.view = nil
	} else {
		if err := a.auth.Logout(ctx); err != nil {
			printlnFn("Logout failed:", err)
			return err
		}
		a.router.Navigate(dashboard.RouteLogin)
	}
	a.router.takeChange()

	printlnFn(a.msgs.T(i18n.KeyLoggedOut))
	return nil
}

// WhoAmI prints the stored user and whatever the token reveals about itself.
func (a *App) WhoAmI(ctx context.Context) error {
	id, err := a.auth.WhoAmI(ctx)
	if err != nil {
		printlnFn(err)
		return err
	}

	printlnFn("id:   ", id.User.ID)
	printlnFn("email:", id.User.Email)
	if id.User.Name != "" {
		printlnFn("name: ", id.User.Name)
	}
	if id.Token.IsJWT {
		if id.Token.Subject != "" {
			printlnFn("token subject:", id.Token.Subject)
		}
		if !id.Token.ExpiresAt.IsZero() {
			printlnFn("token expires:", id.Token.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
		}
	}
	return nil
}
