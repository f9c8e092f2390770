package cli

import (
	"context"
)

// ClearCommand handles the clear command
type ClearCommand struct {
	app *App
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{app: app}
}

// Execute runs the clear command
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	activity, dateKey, err := c.app.resolveCell(args)
	if err != nil {
		return err
	}

	tracker, err := c.app.tracker(ctx)
	if err != nil {
		return err
	}

	if err := c.app.saved(tracker.ClearEntry(ctx, activity, dateKey)); err != nil {
		return c.app.errorHandler.Handle("clear entry", err)
	}

	c.app.printf("Cleared %s on %s\n", activity, dateKey)
	return nil
}
