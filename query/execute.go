package query

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/slok/promquery/client"
)

// StatusError is returned by Execute when the server answers with a
// non success HTTP status. The response body is not interpreted.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned HTTP status code %d (%s)", e.Code, e.Status)
}

// Execute sends the query to the client's API server and decodes the
// JSON response body into T. The three failure modes are distinct:
// transport errors are wrapped and propagated, non success statuses are
// returned as *StatusError without reading the body, and decode
// failures are wrapped JSON errors. There is no retry or caching,
// cancellation and timeouts belong to ctx and the client's transport.
func Execute[T any](ctx context.Context, cli *client.Client, q Query) (T, error) {
	var result T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cli.BaseURL()+q.Endpoint(), nil)
	if err != nil {
		return result, errors.Wrap(err, "error creating request")
	}
	req.URL.RawQuery = q.Params().Encode()

	cli.Logger().Debugf("executing query: %s", req.URL.String())

	resp, err := cli.HTTPClient().Do(req)
	if err != nil {
		return result, errors.Wrap(err, "error executing request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return result, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, errors.Wrap(err, "error decoding response body")
	}

	return result, nil
}
