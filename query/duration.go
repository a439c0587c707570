package query

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DurationUnit is one PromQL duration unit. The declaration order is
// the unit rank (ms < s < m < h < d < w < y); canonical rendering sorts
// by this rank, not by elapsed time.
type DurationUnit int

// Known duration units, ascending by rank.
const (
	Milliseconds DurationUnit = iota
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Years
)

var unitSuffixes = [...]string{"ms", "s", "m", "h", "d", "w", "y"}

func (u DurationUnit) String() string { return unitSuffixes[u] }

// Duration is a single `<value><unit>` token of a composite PromQL
// duration literal.
type Duration struct {
	Value uint64
	Unit  DurationUnit
}

func (d Duration) String() string {
	return strconv.FormatUint(d.Value, 10) + d.Unit.String()
}

// Durations is a parsed composite duration.
type Durations []Duration

// String renders the literal as the tokens concatenated without
// separators, e.g. "500ms30s1m".
func (ds Durations) String() string {
	var b strings.Builder
	for _, d := range ds {
		b.WriteString(d.String())
	}
	return b.String()
}

// ParseDuration parses a composite PromQL duration literal such as
// "1m30s500ms" or "2d": zero or more `<integer><unit>` tokens with no
// separators. Tokens may appear in any order, the result is sorted
// ascending by unit rank so "2d1m" and "1m2d" parse to the same
// canonical sequence. A token with an unknown suffix or a non-integer
// value fails the whole parse with ErrInvalidTimeDuration.
func ParseDuration(s string) (Durations, error) {
	ds := Durations{}

	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == len(s) {
			return nil, errors.Wrapf(ErrInvalidTimeDuration, "missing unit after %q", s[i:j])
		}

		unit, next, ok := cutUnit(s, j)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidTimeDuration, "unknown unit in %q", s[i:])
		}

		v, err := strconv.ParseUint(s[i:j], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidTimeDuration, "invalid value in %q", s[i:next])
		}

		ds = append(ds, Duration{Value: v, Unit: unit})
		i = next
	}

	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].Unit != ds[j].Unit {
			return ds[i].Unit < ds[j].Unit
		}
		return ds[i].Value < ds[j].Value
	})

	return ds, nil
}

// cutUnit reads the unit suffix starting at i. The two character "ms"
// suffix must win over the single character "m" so that "30s500ms"
// splits into "30s" and "500ms" instead of "30s5" and "00ms".
func cutUnit(s string, i int) (DurationUnit, int, bool) {
	if strings.HasPrefix(s[i:], "ms") {
		return Milliseconds, i + 2, true
	}

	switch s[i] {
	case 's':
		return Seconds, i + 1, true
	case 'm':
		return Minutes, i + 1, true
	case 'h':
		return Hours, i + 1, true
	case 'd':
		return Days, i + 1, true
	case 'w':
		return Weeks, i + 1, true
	case 'y':
		return Years, i + 1, true
	}

	return 0, 0, false
}
