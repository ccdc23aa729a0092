package cli

import (
	"context"
	"fmt"
)

// Add prompts for task text and creates the task.
func (a *App) Add(ctx context.Context) error {

	text, err := GetSimpleText(a.reader, "Enter task text", a.out)
	if err != nil {
		return err
	}

	task, err := a.client.AddTask(ctx, text)
	if err != nil {
		fmt.Fprintf(a.out, "Could not add task: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Added task %d.\n", task.ID)
	return nil
}
