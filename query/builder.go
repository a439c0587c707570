package query

import "github.com/pkg/errors"

// Reserved PromQL keywords that can't be used as a bare metric name
// (selecting one of those requires the `{__name__="on"}` label form).
var reservedKeywords = map[string]struct{}{
	"bool":        {},
	"on":          {},
	"ignoring":    {},
	"group_left":  {},
	"group_right": {},
}

// Builder assembles an InstantQuery step by step. Validating steps
// (Metric, At, Timeout) return the builder and an error, matcher steps
// can't fail. Build doesn't consume the builder and can be called more
// than once; the returned query owns all its strings and outlives the
// builder.
type Builder struct {
	metric    string
	hasMetric bool
	matchers  labelMatchers
	time      string
	timeout   string
}

// NewBuilder returns an empty instant query builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Metric sets the metric name of the time series selector. Reserved
// PromQL keywords are rejected with ErrInvalidMetricName, any other
// string, the empty one included, is stored verbatim.
func (b *Builder) Metric(name string) (*Builder, error) {
	if _, ok := reservedKeywords[name]; ok {
		return b, errors.Wrapf(ErrInvalidMetricName, "%q", name)
	}

	b.metric = name
	b.hasMetric = true
	return b, nil
}

// WithLabel appends a matcher that selects series whose label exactly
// matches the value. Matchers are chainable and a label name may appear
// multiple times in one selector.
func (b *Builder) WithLabel(name, value string) *Builder {
	b.matchers = append(b.matchers, labelMatcher{op: opEqual, name: name, value: value})
	return b
}

// WithoutLabel appends a matcher that selects series whose label does
// not match the value.
func (b *Builder) WithoutLabel(name, value string) *Builder {
	b.matchers = append(b.matchers, labelMatcher{op: opNotEqual, name: name, value: value})
	return b
}

// MatchLabel appends a matcher that selects series whose label
// regex-matches the value.
func (b *Builder) MatchLabel(name, value string) *Builder {
	b.matchers = append(b.matchers, labelMatcher{op: opRegexp, name: name, value: value})
	return b
}

// NoMatchLabel appends a matcher that selects series whose label does
// not regex-match the value.
func (b *Builder) NoMatchLabel(name, value string) *Builder {
	b.matchers = append(b.matchers, labelMatcher{op: opNotRegexp, name: name, value: value})
	return b
}

// At sets the evaluation time of the query, either a unix timestamp
// with optional decimal places or an RFC3339 datetime. The stored value
// is the canonical form returned by ParseTime.
func (b *Builder) At(t string) (*Builder, error) {
	ct, err := ParseTime(t)
	if err != nil {
		return b, err
	}

	b.time = ct
	return b, nil
}

// Timeout sets the evaluation timeout from a PromQL duration literal.
// The stored value is the canonical rendering, units sorted ascending
// by rank. Invalid literals fail with ErrInvalidTimeDuration, like
// every other validating step.
func (b *Builder) Timeout(d string) (*Builder, error) {
	ds, err := ParseDuration(d)
	if err != nil {
		return b, err
	}

	b.timeout = ds.String()
	return b, nil
}

// Build validates the vector selector and returns the immutable query.
// A selector needs at least a metric name or one label matcher,
// otherwise it fails with ErrIllegalVectorSelector.
func (b *Builder) Build() (InstantQuery, error) {
	var q string
	switch {
	case b.hasMetric && len(b.matchers) > 0:
		q = b.metric + "{" + b.matchers.String() + "}"
	case b.hasMetric:
		q = b.metric
	case len(b.matchers) > 0:
		q = "{" + b.matchers.String() + "}"
	default:
		return InstantQuery{}, ErrIllegalVectorSelector
	}

	return InstantQuery{
		Query:   q,
		Time:    b.time,
		Timeout: b.timeout,
	}, nil
}
