package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/prepshare/prepshare/internal/common"
)

// Login asks for an ID token issued by the identity provider and signs the
// session in. The token is read without echo.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in. Use 'logout' first.")
		return nil
	}

	raw, err := GetSecret(a.reader, "Paste your ID token", a.out)
	if err != nil {
		return err
	}
	if raw == "" {
		fmt.Fprintln(a.out, "No token entered.")
		return nil
	}

	principal, err := a.provider.SignIn(ctx, raw)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrTokenExpired):
			fmt.Fprintln(a.out, "That token has already expired. Request a fresh one and try again.")
		case errors.Is(err, common.ErrInvalidToken):
			fmt.Fprintln(a.out, "That does not look like a valid token.")
		default:
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", principal.UID())
	return nil
}

// Logout signs the session out and clears the persisted token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.provider.SignOut(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
