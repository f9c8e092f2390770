package cli

import (
	"context"
	"time"
)

// monthFlags selects the month a view command renders
type monthFlags struct {
	month  string
	offset int
}

func (f *monthFlags) resolve(app *App) (time.Time, error) {
	month, err := app.services.CalendarService.ResolveMonth(f.month, f.offset)
	if err != nil {
		return time.Time{}, app.errorHandler.HandleSimple(err)
	}
	return month, nil
}

// GridCommand handles the grid command
type GridCommand struct {
	app *App
	monthFlags
}

// NewGridCommand creates a new grid command handler
func NewGridCommand(app *App) *GridCommand {
	return &GridCommand{app: app}
}

// Execute runs the grid command
func (c *GridCommand) Execute(ctx context.Context, args []string) error {
	month, err := c.resolve(c.app)
	if err != nil {
		return err
	}

	tracker, err := c.app.tracker(ctx)
	if err != nil {
		return err
	}

	c.app.printf("%s", c.app.renderer().Grid(tracker.MonthGrid(month)))
	return nil
}
