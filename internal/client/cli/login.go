package cli

import (
	"context"
	"fmt"

	"github.com/avasquez/taskkeeper/internal/common"
)

// Login prompts for credentials and obtains a session token.
func (a *App) Login(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Login(ctx, username, string(password)); err != nil {
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Logged in.")
	return nil
}
