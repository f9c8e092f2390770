package cli

import (
	"context"
)

// ResetCommand handles the reset command
type ResetCommand struct {
	app *App
	yes bool
}

// NewResetCommand creates a new reset command handler
func NewResetCommand(app *App) *ResetCommand {
	return &ResetCommand{app: app}
}

// Execute runs the reset command
func (c *ResetCommand) Execute(ctx context.Context, args []string) error {
	tracker, err := c.app.tracker(ctx)
	if err != nil {
		return err
	}

	if !c.yes && !c.app.confirm("Delete all activities and entries?") {
		c.app.println("Reset cancelled.")
		return nil
	}

	if err := tracker.Reset(ctx); err != nil {
		return c.app.errorHandler.Handle("reset", err)
	}

	c.app.println("All tracker data deleted.")
	return nil
}
