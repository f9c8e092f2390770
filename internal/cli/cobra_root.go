package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"challenge-tracker/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "ct",
		Short: "A command-line habit and challenge tracker",
		Long: `Challenge Tracker (ct) keeps a monthly grid of activities and days.

For every activity and day you can mark the day completed, log how long you
spent on it and attach notes. Data is stored locally and can be exported to CSV.

EXAMPLES:
  ct add "Running"                         # Add an activity
  ct log Running --done                    # Mark today completed
  ct log Running yesterday --duration 30 --unit minutes --notes "easy pace"
  ct grid                                  # Show this month's grid
  ct grid --offset -1                      # Show last month's grid
  ct calendar Running --month 2024-02      # One activity's calendar
  ct summary                               # Completion and streaks for the month
  ct export                                # Write tracker_export_YYYY-MM-DD.csv

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  Config file: $CT_CONFIG or ~/.ct/config.yaml

  Storage Configuration:
    CT_DB_DIR                              Database directory (default: ~/.ct)
    CT_DB_FILENAME                         Database filename (default: ct.db)
    CT_STORAGE_KEY                         Storage key (default: challenge_tracker_data)
    CT_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    CT_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Display Configuration:
    CT_DISPLAY_COLORS                      Colored output (default: true, NO_COLOR disables)
    CT_DISPLAY_COMPLETED_MARK              Completed cell mark (default: ✓)
    CT_DISPLAY_CELL_WIDTH                  Grid cell width (default: 4)

  Validation Configuration:
    CT_VALIDATION_NAME_MIN                 Min activity name length (default: 1)
    CT_VALIDATION_NAME_MAX                 Max activity name length (default: 100)

  Application Configuration:
    CT_EXPORT_DIR                          Export directory (default: .)
    CT_APP_TIMEOUT                         Application timeout (default: 60s)
    CT_APP_VERBOSE                         Enable verbose output (default: false)
    CT_LOG_LEVEL                           Log level (default: warn)
    CT_LOG_FORMAT                          Log format, console or json (default: console)

DATES AND MONTHS:
  Dates are YYYY-MM-DD, "today" or "yesterday"; months are YYYY-MM.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.app.Close()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if closeErr := r.app.Close(); err == nil {
		err = closeErr
	}
	return err
}

// SetArgs sets the arguments the root command parses, mainly for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetOutput redirects cobra's own help and usage output
func (r *RootCommand) SetOutput(out, errOut io.Writer) {
	r.cmd.SetOut(out)
	r.cmd.SetErr(errOut)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("db-dir", "", "Database directory (overrides CT_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides CT_DB_FILENAME)")
	flags.String("storage-key", "", "Storage key (overrides CT_STORAGE_KEY)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides CT_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides CT_DB_WRITE_TIMEOUT)")

	// Display configuration
	flags.Bool("no-color", false, "Disable colored output (overrides CT_DISPLAY_COLORS)")

	// Export configuration
	flags.String("export-dir", "", "Export directory (overrides CT_EXPORT_DIR)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides CT_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides CT_APP_VERBOSE)")
	flags.String("log-level", "", "Log level: debug, info, warn or error (overrides CT_LOG_LEVEL)")
	flags.String("log-format", "", "Log format: console or json (overrides CT_LOG_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addHandler := NewAddCommand(r.app)
	addCmd := &cobra.Command{
		Use:   "add [activity name]",
		Short: "Add a new activity",
		Long:  "Add a new activity to the tracker. Names are case-sensitive and must be unique.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.run("add"),
	}
	r.app.registry.Register("add", addHandler)

	deleteHandler := NewDeleteCommand(r.app)
	deleteCmd := &cobra.Command{
		Use:   "delete [activity name]",
		Short: "Delete an activity and all its entries",
		Long: `Delete an activity and every entry logged for it.

This operation cannot be undone. You will be asked to confirm unless --yes is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: r.run("delete"),
	}
	deleteCmd.Flags().BoolVarP(&deleteHandler.yes, "yes", "y", false, "Delete without asking for confirmation")
	r.app.registry.Register("delete", deleteHandler)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		Args:  cobra.NoArgs,
		RunE:  r.run("list"),
	}
	r.app.registry.Register("list", NewListCommand(r.app))

	logHandler := NewLogCommand(r.app)
	logCmd := &cobra.Command{
		Use:   "log [activity] [date]",
		Short: "Record an activity's entry for a day",
		Long: `Record whether an activity was completed on a day, how long was spent and any notes.

The flags describe the whole entry and replace what was stored for that day.
An entry that is not completed, has no duration and no notes is removed.
Invalid or negative durations are recorded as 0.

Examples:
  ct log Running --done                          # Today, completed
  ct log Reading 2024-03-01 --duration 1.5       # 1.5 hours, in progress
  ct log Yoga yesterday --duration 20 --unit minutes --notes "stretching"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: r.run("log"),
	}
	logCmd.Flags().BoolVar(&logHandler.done, "done", false, "Mark the day completed")
	logCmd.Flags().StringVarP(&logHandler.duration, "duration", "d", "", "Time spent")
	logCmd.Flags().StringVarP(&logHandler.unit, "unit", "u", "hours", "Duration unit: hours or minutes")
	logCmd.Flags().StringVarP(&logHandler.notes, "notes", "n", "", "Notes for the day")
	r.app.registry.Register("log", logHandler)

	clearCmd := &cobra.Command{
		Use:   "clear [activity] [date]",
		Short: "Remove an activity's entry for a day",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  r.run("clear"),
	}
	r.app.registry.Register("clear", NewClearCommand(r.app))

	showCmd := &cobra.Command{
		Use:   "show [activity] [date]",
		Short: "Show an activity's entry for a day",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  r.run("show"),
	}
	r.app.registry.Register("show", NewShowCommand(r.app))

	gridHandler := NewGridCommand(r.app)
	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "Show the month grid of all activities",
		Long: `Show every activity across the days of a month.

Completed days show a check mark, days with logged time show the hours.

Examples:
  ct grid                  # This month
  ct grid --offset -1      # Last month
  ct grid --month 2024-02  # February 2024`,
		Args: cobra.NoArgs,
		RunE: r.run("grid"),
	}
	addMonthFlags(gridCmd, &gridHandler.monthFlags)
	r.app.registry.Register("grid", gridHandler)

	calendarHandler := NewCalendarCommand(r.app)
	calendarCmd := &cobra.Command{
		Use:   "calendar [activity]",
		Short: "Show one activity's month calendar",
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.run("calendar"),
	}
	addMonthFlags(calendarCmd, &calendarHandler.monthFlags)
	r.app.registry.Register("calendar", calendarHandler)

	summaryHandler := NewSummaryCommand(r.app)
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show completion, hours and streaks for a month",
		Args:  cobra.NoArgs,
		RunE:  r.run("summary"),
	}
	addMonthFlags(summaryCmd, &summaryHandler.monthFlags)
	r.app.registry.Register("summary", summaryHandler)

	exportHandler := NewExportCommand(r.app)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all entries to CSV",
		Long: `Export every entry as CSV with the columns Date,Activity,Status,Hours,Notes.

The file is named tracker_export_YYYY-MM-DD.csv after today's date.`,
		Args: cobra.NoArgs,
		RunE: r.run("export"),
	}
	exportCmd.Flags().StringVar(&exportHandler.dir, "dir", "", "Directory to write the export to (default: CT_EXPORT_DIR)")
	exportCmd.Flags().BoolVar(&exportHandler.stdout, "stdout", false, "Write the CSV to standard output instead of a file")
	r.app.registry.Register("export", exportHandler)

	resetHandler := NewResetCommand(r.app)
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all activities and entries",
		Args:  cobra.NoArgs,
		RunE:  r.run("reset"),
	}
	resetCmd.Flags().BoolVarP(&resetHandler.yes, "yes", "y", false, "Reset without asking for confirmation")
	r.app.registry.Register("reset", resetHandler)

	r.cmd.AddCommand(
		addCmd,
		deleteCmd,
		listCmd,
		logCmd,
		clearCmd,
		showCmd,
		gridCmd,
		calendarCmd,
		summaryCmd,
		exportCmd,
		resetCmd,
	)
}

func addMonthFlags(cmd *cobra.Command, flags *monthFlags) {
	cmd.Flags().StringVarP(&flags.month, "month", "m", "", "Month to show as YYYY-MM (default: current month)")
	cmd.Flags().IntVarP(&flags.offset, "offset", "o", 0, "Months to move from the selected month, e.g. -1 for the previous one")
}

// run dispatches a cobra invocation to the registered handler
func (r *RootCommand) run(name string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
		defer cancel()

		return r.app.Run(ctx, append([]string{name}, args...))
	}
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.app.config != nil && r.app.config.Application.Timeout > 0 {
		return r.app.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.app.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	// Storage configuration
	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		overrides.DBDir = &dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		overrides.DBFilename = &dbFilename
	}
	if storageKey, _ := flags.GetString("storage-key"); storageKey != "" {
		overrides.StorageKey = &storageKey
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		overrides.DBQueryTimeout = &queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		overrides.DBWriteTimeout = &writeTimeout
	}

	// Display configuration
	if noColor, _ := flags.GetBool("no-color"); noColor {
		colors := false
		overrides.Colors = &colors
	}

	// Export configuration
	if exportDir, _ := flags.GetString("export-dir"); exportDir != "" {
		overrides.ExportDir = &exportDir
	}

	// Application configuration
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		overrides.Timeout = &appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		overrides.Verbose = &verbose
	}
	if logLevel, _ := flags.GetString("log-level"); logLevel != "" {
		overrides.LogLevel = &logLevel
	}
	if logFormat, _ := flags.GetString("log-format"); logFormat != "" {
		overrides.LogFormat = &logFormat
	}

	config.ApplyOverrides(r.app.config, overrides)
	return r.app.config.Validate()
}
