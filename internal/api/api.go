// Package api is the session-level surface of the tracker. It owns the
// loaded store, applies every mutation in memory first and then saves a
// full snapshot through the persistence adapter.
package api

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"challenge-tracker/internal/config"
	"challenge-tracker/internal/errors"
	"challenge-tracker/internal/export"
	"challenge-tracker/internal/persistence"
	"challenge-tracker/internal/services"
	"challenge-tracker/internal/tracker"
	"challenge-tracker/internal/validation"
	"challenge-tracker/internal/view"
)

// EntryInput is the raw content of the editor form
type EntryInput struct {
	Activity  string
	DateKey   string
	Completed bool
	Amount    string
	Unit      string
	Notes     string
}

// TrackerAPI defines the operations a shell runs against the tracker
type TrackerAPI interface {
	// ========== Activity Management ==========

	// CreateActivity adds a new activity and returns its trimmed name
	CreateActivity(ctx context.Context, name string) (string, error)

	// DeleteActivity removes an activity and all of its entries
	DeleteActivity(ctx context.Context, name string) error

	// ListActivities returns activity names in creation order
	ListActivities() []string

	// ========== Entry Operations ==========

	// LogEntry records a day from editor input and returns the editor state
	// after the write
	LogEntry(ctx context.Context, input EntryInput) (view.Editor, error)

	// ClearEntry removes the entry for one day
	ClearEntry(ctx context.Context, activity, dateKey string) error

	// OpenEditor returns the pre-filled editor for one day
	OpenEditor(activity, dateKey string) (view.Editor, error)

	// ========== Views ==========

	// MonthGrid projects all activities across a month
	MonthGrid(month time.Time) view.Grid

	// ActivityCalendar projects one activity across a month
	ActivityCalendar(activity string, month time.Time) (view.Calendar, error)

	// Summary returns monthly statistics for every activity
	Summary(month time.Time) *services.MonthSummary

	// ========== Export and Reset ==========

	// ExportCSV renders the whole store as CSV
	ExportCSV() string

	// WriteExport writes the CSV export into dir and returns its path
	WriteExport(dir string, now time.Time) (string, error)

	// Reset discards every activity and the persisted snapshot
	Reset(ctx context.Context) error
}

// trackerAPIImpl implements the TrackerAPI interface
type trackerAPIImpl struct {
	store             *tracker.Store
	adapter           *persistence.Adapter
	activityValidator *validation.ActivityValidator
	entryValidator    *validation.EntryValidator
	summaryService    services.SummaryService
	logger            *zap.Logger
}

// NewTrackerAPI loads the persisted store and returns an API bound to it
func NewTrackerAPI(ctx context.Context, adapter *persistence.Adapter, cfg *config.Config, container *services.ServiceContainer, logger *zap.Logger) TrackerAPI {
	if logger == nil {
		logger = zap.NewNop()
	}
	if container == nil {
		container = services.NewServiceContainer(time.Now)
	}

	activityValidator := validation.NewActivityValidator()
	if cfg != nil {
		activityValidator = validation.NewActivityValidatorWithConfig(cfg)
	}

	return &trackerAPIImpl{
		store:             adapter.Load(ctx),
		adapter:           adapter,
		activityValidator: activityValidator,
		entryValidator:    validation.NewEntryValidator(),
		summaryService:    container.SummaryService,
		logger:            logger,
	}
}

// ========== Activity Management ==========

func (a *trackerAPIImpl) CreateActivity(ctx context.Context, name string) (string, error) {
	cleaned, err := a.activityValidator.GetValidActivityName(name)
	if err != nil {
		return "", toAppError(err)
	}

	if err := a.store.CreateActivity(cleaned); err != nil {
		return "", err
	}
	a.logger.Debug("activity created", zap.String("activity", cleaned))

	return cleaned, a.save(ctx)
}

func (a *trackerAPIImpl) DeleteActivity(ctx context.Context, name string) error {
	if !a.store.DeleteActivity(name) {
		return errors.NewNotFoundError("activity", name)
	}
	a.logger.Debug("activity deleted", zap.String("activity", name))

	return a.save(ctx)
}

func (a *trackerAPIImpl) ListActivities() []string {
	return a.store.Activities()
}

// ========== Entry Operations ==========

func (a *trackerAPIImpl) LogEntry(ctx context.Context, input EntryInput) (view.Editor, error) {
	if err := a.entryValidator.ValidateDateKey(input.DateKey); err != nil {
		return view.Editor{}, toAppError(err)
	}
	unit, err := a.entryValidator.ParseUnit(input.Unit)
	if err != nil {
		return view.Editor{}, toAppError(err)
	}

	if err := a.store.UpsertEntry(input.Activity, input.DateKey, input.Completed, input.Amount, unit, input.Notes); err != nil {
		return view.Editor{}, err
	}
	a.logger.Debug("entry logged",
		zap.String("activity", input.Activity),
		zap.String("date", input.DateKey),
		zap.Bool("completed", input.Completed))

	editor := view.EditorFor(a.store, input.Activity, input.DateKey)
	return editor, a.save(ctx)
}

func (a *trackerAPIImpl) ClearEntry(ctx context.Context, activity, dateKey string) error {
	if err := a.entryValidator.ValidateDateKey(dateKey); err != nil {
		return toAppError(err)
	}
	if err := a.store.ClearEntry(activity, dateKey); err != nil {
		return err
	}
	a.logger.Debug("entry cleared", zap.String("activity", activity), zap.String("date", dateKey))

	return a.save(ctx)
}

func (a *trackerAPIImpl) OpenEditor(activity, dateKey string) (view.Editor, error) {
	if !a.store.HasActivity(activity) {
		return view.Editor{}, errors.NewNotFoundError("activity", activity)
	}
	if err := a.entryValidator.ValidateDateKey(dateKey); err != nil {
		return view.Editor{}, toAppError(err)
	}
	return view.EditorFor(a.store, activity, dateKey), nil
}

// ========== Views ==========

func (a *trackerAPIImpl) MonthGrid(month time.Time) view.Grid {
	return view.MonthGrid(a.store, month)
}

func (a *trackerAPIImpl) ActivityCalendar(activity string, month time.Time) (view.Calendar, error) {
	return view.ActivityCalendar(a.store, activity, month)
}

func (a *trackerAPIImpl) Summary(month time.Time) *services.MonthSummary {
	return a.summaryService.SummarizeMonth(a.store, month)
}

// ========== Export and Reset ==========

func (a *trackerAPIImpl) ExportCSV() string {
	return export.CSV(a.store)
}

func (a *trackerAPIImpl) WriteExport(dir string, now time.Time) (string, error) {
	path, err := export.WriteFile(dir, now, a.store)
	if err != nil {
		return "", errors.WrapError(err, errors.ErrorTypeInvalidInput, fmt.Sprintf("could not write the export to %s", dir))
	}
	a.logger.Debug("export written", zap.String("path", path))
	return path, nil
}

func (a *trackerAPIImpl) Reset(ctx context.Context) error {
	a.store = tracker.New()
	a.logger.Debug("tracker reset")
	return a.adapter.Clear(ctx)
}

// save persists the current store. The in-memory change stands even when
// the write fails.
func (a *trackerAPIImpl) save(ctx context.Context) error {
	return a.adapter.Save(ctx, a.store)
}

func toAppError(err error) error {
	if ve, ok := err.(*validation.ValidationError); ok {
		return ve.AsAppError()
	}
	return err
}
