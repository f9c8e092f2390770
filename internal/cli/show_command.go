package cli

import (
	"context"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app *App
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	activity, dateKey, err := c.app.resolveCell(args)
	if err != nil {
		return err
	}

	tracker, err := c.app.tracker(ctx)
	if err != nil {
		return err
	}

	editor, err := tracker.OpenEditor(activity, dateKey)
	if err != nil {
		return c.app.errorHandler.Handle("show entry", err)
	}

	c.app.printf("%s", c.app.renderer().Editor(editor))
	return nil
}
