package cli

import (
	"context"
	"fmt"
)

// List prints the user's tasks in insertion order.
func (a *App) List(ctx context.Context) error {

	tasks, err := a.client.Tasks(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not list tasks: %v\n", err)
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks.")
		return nil
	}

	for _, t := range tasks {
		fmt.Fprintf(a.out, "%4d  %s\n", t.ID, t.Text)
	}
	return nil
}
