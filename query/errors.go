package query

import "github.com/pkg/errors"

// Builder validation errors. These are the only failures the builder
// can produce; execution errors are a separate channel and never
// overlap with these.
var (
	// ErrInvalidMetricName is returned when the metric name is a
	// reserved PromQL keyword.
	ErrInvalidMetricName = errors.New("metric name is a reserved PromQL keyword")
	// ErrInvalidTimeSpecifier is returned when an evaluation time is
	// neither a unix timestamp nor an RFC3339 datetime.
	ErrInvalidTimeSpecifier = errors.New("time is not a unix timestamp or an RFC3339 datetime")
	// ErrInvalidTimeDuration is returned when a PromQL duration literal
	// can't be parsed.
	ErrInvalidTimeDuration = errors.New("invalid PromQL duration literal")
	// ErrIllegalVectorSelector is returned when a selector has neither
	// a metric name nor a label matcher.
	ErrIllegalVectorSelector = errors.New("vector selector needs a metric name or at least one label matcher")
)
