package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/oaiiae/address-book/contacts"
	"github.com/oaiiae/address-book/datastores"
	"github.com/oaiiae/address-book/handlers"
)

// App is the address book opened from one file.
type App struct {
	Store   *datastores.ContactsFile
	Metrics *metrics.Set

	logger  *slog.Logger
	handler *handlers.Contacts
}

// New opens the address book stored at path.
func New(path string, logger *slog.Logger, now func() time.Time) (*App, error) {
	store, err := datastores.OpenContactsFile(path)
	if err != nil {
		return nil, err
	}

	set := metrics.NewSet()
	set.NewGauge("address_book_contacts", func() float64 {
		records, _ := store.List(context.Background())
		return float64(len(records))
	})
	logger.Info("address book opened", slog.String("path", store.Path()))

	return &App{
		Store:   store,
		Metrics: set,
		logger:  logger,
		handler: &handlers.Contacts{
			Store:        store,
			ErrorHandler: ctxlog{}.errorHandler(logger),
			Metrics:      set,
			Now:          now,
		},
	}, nil
}

// Handle runs one command with a command-scoped logger in ctx.
func (a *App) Handle(ctx context.Context, command string, args []string) (reply handlers.Reply) {
	key := ctxlog{}
	logger := a.logger.With("command", command)
	ctx = context.WithValue(ctx, key, logger)

	defer key.recover(ctx, a.logger, &reply)

	start := time.Now()
	reply = a.handler.Handle(ctx, command, args)
	logger.LogAttrs(ctx, slog.LevelDebug, "command handled",
		slog.Int("args", len(args)),
		slog.Bool("quit", reply.Quit),
		slog.Duration("dur", time.Since(start)),
	)
	return reply
}

// ctxlog is a [context.Context] key and acts as a virtual package for operations related to it.
type ctxlog struct{}

func (key ctxlog) logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	logger, ok := ctx.Value(key).(*slog.Logger)
	if !ok {
		return fallback
	}
	return logger
}

// recover logs the value from panic and replaces the reply with an error message.
// It must be deferred directly.
func (key ctxlog) recover(ctx context.Context, fallback *slog.Logger, reply *handlers.Reply) {
	v := recover()
	if v != nil {
		key.logger(ctx, fallback).LogAttrs(ctx, slog.LevelError, "panic occurred", slog.Any("recovered", v))
		*reply = handlers.Reply{Text: "Internal error."}
	}
}

// errorHandler returns a function that gets the [slog.Logger] from [context.Context] and logs the error.
// Mistakes in user input are logged at info level, anything else is an error.
func (key ctxlog) errorHandler(fallback *slog.Logger) func(context.Context, error) {
	return func(ctx context.Context, err error) {
		level := slog.LevelError
		switch {
		case errors.Is(err, handlers.ErrMissingArguments),
			errors.Is(err, datastores.ErrContactNotFound),
			errors.Is(err, contacts.ErrInvalidPhoneFormat),
			errors.Is(err, contacts.ErrInvalidBirthdayFormat),
			errors.Is(err, contacts.ErrInvalidDate):
			level = slog.LevelInfo
		}
		key.logger(ctx, fallback).LogAttrs(ctx, level, "error occurred", slog.Any("err", err))
	}
}
