package cli

import (
	"context"
	"io"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app    *App
	dir    string
	stdout bool
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	tracker, err := c.app.tracker(ctx)
	if err != nil {
		return err
	}

	if c.stdout {
		_, err := io.WriteString(c.app.out, tracker.ExportCSV())
		return err
	}

	dir := c.dir
	if dir == "" {
		dir = c.app.config.Export.Dir
	}
	path, err := tracker.WriteExport(dir, timeNow())
	if err != nil {
		return c.app.errorHandler.Handle("export", err)
	}

	c.app.printf("Exported to %s\n", path)
	return nil
}
