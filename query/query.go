// Package query builds and executes queries against the Prometheus
// HTTP query API. Queries are composed with Builder (or created
// directly for range queries), validated up front, and executed with
// the generic Execute function.
package query

import "net/url"

// Query is a fully validated, self contained request description. The
// parameter set is final at construction time, Execute sends it as is
// without further validation.
type Query interface {
	// Params returns the wire query parameters.
	Params() url.Values
	// Endpoint returns the API path the query is sent to.
	Endpoint() string
}

// InstantQuery evaluates an expression at a single point in time. Time
// and Timeout are optional, empty means unset and the parameter is not
// sent.
type InstantQuery struct {
	Query   string
	Time    string
	Timeout string
}

// Params satisfies the Query interface.
func (q InstantQuery) Params() url.Values {
	v := url.Values{}
	v.Set("query", q.Query)
	if q.Time != "" {
		v.Set("time", q.Time)
	}
	if q.Timeout != "" {
		v.Set("timeout", q.Timeout)
	}
	return v
}

// Endpoint satisfies the Query interface.
func (q InstantQuery) Endpoint() string { return "/query" }

// RangeQuery evaluates an expression repeatedly over a time interval
// with a fixed step. Unlike InstantQuery it is created directly from
// caller supplied strings, not through the builder. Start, End and Step
// are mandatory, Timeout is optional.
type RangeQuery struct {
	Query   string
	Start   string
	End     string
	Step    string
	Timeout string
}

// Params satisfies the Query interface.
func (q RangeQuery) Params() url.Values {
	v := url.Values{}
	v.Set("query", q.Query)
	v.Set("start", q.Start)
	v.Set("end", q.End)
	v.Set("step", q.Step)
	if q.Timeout != "" {
		v.Set("timeout", q.Timeout)
	}
	return v
}

// Endpoint satisfies the Query interface.
func (q RangeQuery) Endpoint() string { return "/query_range" }
