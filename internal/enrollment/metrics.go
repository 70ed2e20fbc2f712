package enrollment

import (
	"errors"
	"fmt"

	"topics/pkg/metrics"

	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "topics/internal/enrollment"

type instruments struct {
	requests            metric.Int64Counter
	linked              metric.Int64Counter
	notFound            metric.Int64Counter
	duplicateIdentities metric.Int64Counter
	duration            metric.Float64Histogram
}

func newInstruments(meter metric.Meter) (instruments, error) {
	var (
		ins  instruments
		errs []error
		err  error
	)

	ins.requests, err = meter.Int64Counter("enrollment.requests",
		metric.WithDescription("Number of enrollment requests by result."))
	errs = append(errs, err)
	ins.linked, err = meter.Int64Counter("enrollment.subscribers.linked",
		metric.WithDescription("Number of subscriber records linked to topics."))
	errs = append(errs, err)
	ins.notFound, err = meter.Int64Counter("enrollment.subscribers.not_found",
		metric.WithDescription("Number of requested identities missing from the directory."))
	errs = append(errs, err)
	ins.duplicateIdentities, err = meter.Int64Counter("enrollment.directory.duplicate_identities",
		metric.WithDescription("Number of identities the directory resolved to several subscriber records."))
	errs = append(errs, err)
	ins.duration, err = meter.Float64Histogram("enrollment.duration",
		metric.WithDescription("Duration of enrollment requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return instruments{}, fmt.Errorf("could not create instruments: %w", err)
	}

	return ins, nil
}
