package query

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// ParseTime canonicalizes an evaluation time given either as a unix
// timestamp with optional decimal places or as an RFC3339 datetime,
// e.g. "1618922012" or "2021-04-20T14:33:32+02:00". Numeric parsing is
// tried first, so "5.0" normalizes to "5" and never reaches the
// datetime path. RFC3339 input is re-serialized, which normalizes the
// surface form but keeps the represented instant.
func ParseTime(s string) (string, error) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidTimeSpecifier, "%q", s)
	}

	return t.Format(time.RFC3339Nano), nil
}
