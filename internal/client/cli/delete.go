package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Delete prompts for a task id and removes that task.
func (a *App) Delete(ctx context.Context) error {

	raw, err := GetSimpleText(a.reader, "Enter task id", a.out)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Not a task id: %q\n", raw)
		return err
	}

	if err := a.client.DeleteTask(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Could not delete task: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Deleted task %d.\n", id)
	return nil
}
