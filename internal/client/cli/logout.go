package cli

import (
	"context"
	"fmt"
)

// Logout drops the session token.
func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
