package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"challenge-tracker/internal/api"
	"challenge-tracker/internal/config"
	"challenge-tracker/internal/errors"
	"challenge-tracker/internal/services"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// APIOpener opens the tracker for one session. The closer releases the
// underlying storage and may be nil.
type APIOpener func(ctx context.Context, cfg *config.Config) (api.TrackerAPI, io.Closer, error)

// App represents the main CLI application
type App struct {
	config       *config.Config
	opener       APIOpener
	api          api.TrackerAPI
	closer       io.Closer
	services     *services.ServiceContainer
	errorHandler *ErrorHandler
	registry     *CommandRegistry

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewApp creates a new CLI application. The tracker is opened on first use
// so that flag overrides are applied before storage is touched.
func NewApp(cfg *config.Config, opener APIOpener) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		config:       cfg,
		opener:       opener,
		services:     services.NewServiceContainer(func() time.Time { return timeNow() }),
		errorHandler: NewErrorHandler(),
		registry:     NewCommandRegistry(),
		in:           bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		errOut:       os.Stderr,
	}
}

// NewAppWithAPI creates an application bound to an already opened tracker
func NewAppWithAPI(apiInstance api.TrackerAPI, cfg *config.Config) *App {
	return NewApp(cfg, func(context.Context, *config.Config) (api.TrackerAPI, io.Closer, error) {
		return apiInstance, nil, nil
	})
}

// SetIO redirects the application's input and output streams
func (a *App) SetIO(in io.Reader, out, errOut io.Writer) {
	a.in = bufio.NewReader(in)
	a.out = out
	a.errOut = errOut
}

// Config returns the live configuration
func (a *App) Config() *config.Config {
	return a.config
}

// tracker returns the session's tracker, opening it on first use
func (a *App) tracker(ctx context.Context) (api.TrackerAPI, error) {
	if a.api != nil {
		return a.api, nil
	}
	if a.opener == nil {
		return nil, fmt.Errorf("no tracker storage configured")
	}

	apiInstance, closer, err := a.opener(ctx, a.config)
	if err != nil {
		return nil, err
	}
	a.api = apiInstance
	a.closer = closer
	return a.api, nil
}

// Close releases the tracker storage, if it was opened
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	a.api = nil
	return err
}

// Run dispatches args to the registered command of the same name
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

// renderer builds a renderer from the current display settings
func (a *App) renderer() *Renderer {
	return NewRenderer(a.config.Display)
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

// saved turns a failed save into a warning. The change is kept in memory
// for the rest of the session, so the command still succeeds.
func (a *App) saved(err error) error {
	if err == nil || !errors.IsErrorType(err, errors.ErrorTypePersistenceWrite) {
		return err
	}
	fmt.Fprintf(a.errOut, "Warning: %s\n", errors.GetUserMessage(err))
	return nil
}

// confirm asks a yes/no question on the input stream. Anything other than
// y or yes counts as no.
func (a *App) confirm(question string) bool {
	a.printf("%s [y/N]: ", question)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		a.println()
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
