package cli

import (
	"context"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tracker, err := c.app.tracker(ctx)
	if err != nil {
		return err
	}

	activities := tracker.ListActivities()
	if len(activities) == 0 {
		c.app.println("No activities yet. Add one with: ct add <name>")
		return nil
	}

	for _, activity := range activities {
		c.app.println(activity)
	}
	return nil
}
