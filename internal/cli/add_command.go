package cli

import (
	"context"
	"strings"

	"challenge-tracker/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	tracker, err := c.app.tracker(ctx)
	if err != nil {
		return err
	}

	name, err := tracker.CreateActivity(ctx, strings.Join(args, " "))
	if err = c.app.saved(err); err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeAlreadyExists) {
			return c.app.errorHandler.HandleSimple(err)
		}
		return c.app.errorHandler.Handle("add activity", err)
	}

	c.app.printf("Added activity: %s\n", name)
	return nil
}
