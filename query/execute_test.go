package query_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/common/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/promquery/client"
	"github.com/slok/promquery/query"
)

func newTestClient(t *testing.T, address string) *client.Client {
	cli, err := client.New(client.Config{Address: address})
	require.NoError(t, err)
	return cli
}

func TestExecuteInstantQuery(t *testing.T) {
	const body = `{
		"status": "success",
		"data": {
			"resultType": "vector",
			"result": [
				{"metric": {"__name__": "up", "job": "node"}, "value": [1618922012, "1"]}
			]
		}
	}`

	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	q := query.InstantQuery{
		Query: `up{job="node"}`,
		Time:  "1618922012",
	}

	resp, err := query.Execute[query.InstantQueryResponse](context.Background(), newTestClient(t, srv.URL), q)
	require.NoError(t, err)

	assert.Equal(t, "/query", gotPath)
	assert.Equal(t, []string{`up{job="node"}`}, gotQuery["query"])
	assert.Equal(t, []string{"1618922012"}, gotQuery["time"])
	assert.NotContains(t, gotQuery, "timeout")

	assert.True(t, resp.IsSuccess())
	assert.Equal(t, model.ValVector, resp.Data.ResultType)

	vector, ok := resp.Data.Result.(model.Vector)
	require.True(t, ok)
	require.Len(t, vector, 1)
	assert.Equal(t, model.LabelValue("node"), vector[0].Metric["job"])
	assert.Equal(t, model.SampleValue(1), vector[0].Value)
}

func TestExecuteRangeQuery(t *testing.T) {
	const body = `{
		"status": "success",
		"data": {
			"resultType": "matrix",
			"result": [
				{"metric": {"__name__": "up"}, "values": [[1618922012, "1"], [1618922312, "0"]]}
			]
		}
	}`

	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(body))
	}))
	defer srv.Close()

	q := query.RangeQuery{
		Query: "up",
		Start: "1618922012",
		End:   "1618925612",
		Step:  "5m",
	}

	resp, err := query.Execute[query.RangeQueryResponse](context.Background(), newTestClient(t, srv.URL), q)
	require.NoError(t, err)

	assert.Equal(t, "/query_range", gotPath)
	assert.Equal(t, []string{"1618922012"}, gotQuery["start"])
	assert.Equal(t, []string{"1618925612"}, gotQuery["end"])
	assert.Equal(t, []string{"5m"}, gotQuery["step"])

	matrix, ok := resp.Data.Result.(model.Matrix)
	require.True(t, ok)
	require.Len(t, matrix, 1)
	assert.Len(t, matrix[0].Values, 2)
}

func TestExecuteStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "something went wrong", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := query.Execute[query.APIResponse](context.Background(), newTestClient(t, srv.URL), query.InstantQuery{Query: "up"})

	var statusErr *query.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestExecuteDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	_, err := query.Execute[query.APIResponse](context.Background(), newTestClient(t, srv.URL), query.InstantQuery{Query: "up"})

	require.Error(t, err)
	var statusErr *query.StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestExecuteTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := query.Execute[query.APIResponse](context.Background(), newTestClient(t, srv.URL), query.InstantQuery{Query: "up"})
	require.Error(t, err)
}
