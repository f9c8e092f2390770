package cli

import (
	"context"
	"fmt"
	"strings"
)

// CalendarCommand handles the calendar command
type CalendarCommand struct {
	app *App
	monthFlags
}

// NewCalendarCommand creates a new calendar command handler
func NewCalendarCommand(app *App) *CalendarCommand {
	return &CalendarCommand{app: app}
}

// Execute runs the calendar command
func (c *CalendarCommand) Execute(ctx context.Context, args []string) error {
	activity := strings.Join(args, " ")
	if activity == "" {
		return fmt.Errorf("an activity name is required")
	}

	month, err := c.resolve(c.app)
	if err != nil {
		return err
	}

	tracker, err := c.app.tracker(ctx)
	if err != nil {
		return err
	}

	cal, err := tracker.ActivityCalendar(activity, month)
	if err != nil {
		return c.app.errorHandler.Handle("show calendar", err)
	}

	c.app.printf("%s", c.app.renderer().Calendar(cal))
	return nil
}
