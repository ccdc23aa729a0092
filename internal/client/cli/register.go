package cli

import (
	"context"
	"fmt"

	"github.com/avasquez/taskkeeper/internal/common"
)

// Register prompts for credentials and creates an account. The user still
// has to log in afterwards; registration does not start a session.
func (a *App) Register(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Register(ctx, username, string(password)); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Registered. Use 'login' to start a session.")
	return nil
}
