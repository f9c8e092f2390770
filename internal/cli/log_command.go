package cli

import (
	"context"
	"fmt"

	"challenge-tracker/internal/api"
)

// LogCommand handles the log command. The flags make up the whole entry:
// whatever is not given is stored empty.
type LogCommand struct {
	app      *App
	done     bool
	duration string
	unit     string
	notes    string
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App) *LogCommand {
	return &LogCommand{app: app, unit: "hours"}
}

// Execute runs the log command
func (c *LogCommand) Execute(ctx context.Context, args []string) error {
	activity, dateKey, err := c.app.resolveCell(args)
	if err != nil {
		return err
	}

	tracker, err := c.app.tracker(ctx)
	if err != nil {
		return err
	}

	editor, err := tracker.LogEntry(ctx, api.EntryInput{
		Activity:  activity,
		DateKey:   dateKey,
		Completed: c.done,
		Amount:    c.duration,
		Unit:      c.unit,
		Notes:     c.notes,
	})
	if err = c.app.saved(err); err != nil {
		return c.app.errorHandler.Handle("log entry", err)
	}

	if !editor.Exists {
		c.app.printf("Nothing to record, cleared %s on %s\n", activity, dateKey)
		return nil
	}
	c.app.printf("%s", c.app.renderer().Editor(editor))
	return nil
}

// resolveCell reads "<activity> [date]" arguments
func (a *App) resolveCell(args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", "", fmt.Errorf("an activity name is required")
	}

	date := ""
	if len(args) > 1 {
		date = args[1]
	}
	dateKey, err := a.services.CalendarService.ResolveDateKey(date)
	if err != nil {
		return "", "", a.errorHandler.HandleSimple(err)
	}
	return args[0], dateKey, nil
}
