package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

// ErrMissingArguments reports a command called with the wrong number of arguments.
var ErrMissingArguments = errors.New("handlers: missing arguments")

type handler = func(ctx context.Context, args []string) (string, error)

func handlerWithErrorHandler(handler handler, do func(context.Context, error)) handler {
	if do == nil {
		return handler
	}

	return func(ctx context.Context, args []string) (string, error) {
		o, err := handler(ctx, args)
		if err != nil {
			do(ctx, err)
		}
		return o, err
	}
}

var buckets = metrics.ExponentialBuckets(1e-5, 5, 6) //nolint: gochecknoglobals,mnd // arbitrary

func handlerWithMetrics(handler handler, set *metrics.Set, command string) handler {
	if set == nil {
		return handler
	}

	labels := `{command="` + command + `"}`
	calls := set.GetOrCreateCounter("address_book_commands_total" + labels)
	failures := set.GetOrCreateCounter("address_book_command_errors_total" + labels)
	durations := set.GetOrCreatePrometheusHistogramExt("address_book_command_duration_seconds"+labels, buckets)

	return func(ctx context.Context, args []string) (string, error) {
		start := time.Now()
		o, err := handler(ctx, args)
		calls.Inc()
		if err != nil {
			failures.Inc()
		}
		durations.UpdateDuration(start)
		return o, err
	}
}

// exactly returns [ErrMissingArguments] unless args holds n values.
func exactly(args []string, n int) error {
	if len(args) != n {
		return ErrMissingArguments
	}
	return nil
}
