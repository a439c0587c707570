package query

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/prometheus/common/model"
)

const statusSuccess = "success"

// APIResponse is the standard Prometheus API response envelope with the
// data section left undecoded. Use it when the result shape is not
// known up front or should be passed through as is.
type APIResponse struct {
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data,omitempty"`
	ErrorType string          `json:"errorType,omitempty"`
	Error     string          `json:"error,omitempty"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// IsSuccess returns whether the server reported a successful
// evaluation.
func (r APIResponse) IsSuccess() bool { return r.Status == statusSuccess }

// QueryData is the data section of a query response with the result
// decoded into the matching prometheus model value type.
type QueryData struct {
	ResultType model.ValueType
	Result     model.Value
}

// UnmarshalJSON decodes the result based on the reported result type.
func (d *QueryData) UnmarshalJSON(b []byte) error {
	raw := struct {
		ResultType model.ValueType `json:"resultType"`
		Result     json.RawMessage `json:"result"`
	}{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	d.ResultType = raw.ResultType

	switch raw.ResultType {
	case model.ValScalar:
		var v model.Scalar
		if err := json.Unmarshal(raw.Result, &v); err != nil {
			return err
		}
		d.Result = &v
	case model.ValString:
		var v model.String
		if err := json.Unmarshal(raw.Result, &v); err != nil {
			return err
		}
		d.Result = &v
	case model.ValVector:
		var v model.Vector
		if err := json.Unmarshal(raw.Result, &v); err != nil {
			return err
		}
		d.Result = v
	case model.ValMatrix:
		var v model.Matrix
		if err := json.Unmarshal(raw.Result, &v); err != nil {
			return err
		}
		d.Result = v
	default:
		return errors.Errorf("unknown result type %q", raw.ResultType)
	}

	return nil
}

// InstantQueryResponse is the typed response of an instant query, the
// result is usually a vector.
type InstantQueryResponse struct {
	Status    string    `json:"status"`
	Data      QueryData `json:"data"`
	ErrorType string    `json:"errorType,omitempty"`
	Error     string    `json:"error,omitempty"`
	Warnings  []string  `json:"warnings,omitempty"`
}

// IsSuccess returns whether the server reported a successful
// evaluation.
func (r InstantQueryResponse) IsSuccess() bool { return r.Status == statusSuccess }

// RangeQueryResponse is the typed response of a range query, the result
// is usually a matrix.
type RangeQueryResponse struct {
	Status    string    `json:"status"`
	Data      QueryData `json:"data"`
	ErrorType string    `json:"errorType,omitempty"`
	Error     string    `json:"error,omitempty"`
	Warnings  []string  `json:"warnings,omitempty"`
}

// IsSuccess returns whether the server reported a successful
// evaluation.
func (r RangeQueryResponse) IsSuccess() bool { return r.Status == statusSuccess }
