package cli

import (
	"context"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	app *App
	monthFlags
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{app: app}
}

// Execute runs the summary command
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	month, err := c.resolve(c.app)
	if err != nil {
		return err
	}

	tracker, err := c.app.tracker(ctx)
	if err != nil {
		return err
	}

	summary := tracker.Summary(month)
	c.app.printf("%s", c.app.renderer().Summary(summary, c.app.services.CalendarService.FormatHours))
	return nil
}
