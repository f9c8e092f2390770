package cli

import (
	"context"
	"fmt"
	"strings"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
	yes bool
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	tracker, err := c.app.tracker(ctx)
	if err != nil {
		return err
	}

	name := strings.Join(args, " ")
	if name == "" {
		return fmt.Errorf("an activity name is required")
	}

	if !c.yes && !c.app.confirm(fmt.Sprintf("Delete %q and all of its entries?", name)) {
		c.app.println("Delete cancelled.")
		return nil
	}

	if err := c.app.saved(tracker.DeleteActivity(ctx, name)); err != nil {
		return c.app.errorHandler.Handle("delete activity", err)
	}

	c.app.printf("Deleted activity: %s\n", name)
	return nil
}
