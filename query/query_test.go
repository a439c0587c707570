package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstantQueryParams(t *testing.T) {
	tests := []struct {
		name      string
		query     InstantQuery
		expParams url.Values
	}{
		{
			name:  "Only the expression is mandatory",
			query: InstantQuery{Query: "up"},
			expParams: url.Values{
				"query": []string{"up"},
			},
		},
		{
			name: "Optional parameters are sent when set",
			query: InstantQuery{
				Query:   `up{job="node"}`,
				Time:    "1618922012",
				Timeout: "30s",
			},
			expParams: url.Values{
				"query":   []string{`up{job="node"}`},
				"time":    []string{"1618922012"},
				"timeout": []string{"30s"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expParams, test.query.Params())
			assert.Equal(t, "/query", test.query.Endpoint())
		})
	}
}

func TestRangeQueryParams(t *testing.T) {
	q := RangeQuery{
		Query: "up",
		Start: "2021-04-09T11:30:00.000+02:00",
		End:   "2021-04-09T12:30:00.000+02:00",
		Step:  "5m",
	}

	assert.Equal(t, url.Values{
		"query": []string{"up"},
		"start": []string{"2021-04-09T11:30:00.000+02:00"},
		"end":   []string{"2021-04-09T12:30:00.000+02:00"},
		"step":  []string{"5m"},
	}, q.Params())
	assert.Equal(t, "/query_range", q.Endpoint())

	q.Timeout = "30s"
	assert.Equal(t, "30s", q.Params().Get("timeout"))
}
