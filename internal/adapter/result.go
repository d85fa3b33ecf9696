package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Outcome tags a [Result].
type Outcome int

const (
	// OutcomeEmpty means no usable payload: no response at all, an empty
	// body, or a body that is not JSON.
	OutcomeEmpty Outcome = iota
	// OutcomeSuccess is a 2xx response with a JSON body.
	OutcomeSuccess
	// OutcomeProviderError is a non-2xx response with a JSON body.
	OutcomeProviderError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeProviderError:
		return "provider_error"
	default:
		return "empty"
	}
}

// Result is the normalized outcome of one upstream call.
//
// StatusCode is 0 when no response was received. Body holds the raw JSON
// payload for Success and ProviderError results and is nil for Empty ones.
type Result struct {
	Outcome    Outcome
	StatusCode int
	Body       json.RawMessage
}

func (r Result) IsSuccess() bool       { return r.Outcome == OutcomeSuccess }
func (r Result) IsProviderError() bool { return r.Outcome == OutcomeProviderError }
func (r Result) IsEmpty() bool         { return r.Outcome == OutcomeEmpty }

// Responded reports whether the upstream answered with any HTTP status.
func (r Result) Responded() bool { return r.StatusCode != 0 }

// Value returns the payload decoded into generic Go values (maps, slices,
// float64, string, bool), or nil for an Empty result.
func (r Result) Value() any {
	if len(r.Body) == 0 {
		return nil
	}

	var v any
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return nil
	}
	return v
}

// Get extracts the value at path from the payload using gjson path syntax,
// e.g. "responseBody.accessToken". A missing path or an Empty result yields
// a gjson.Result whose Exists reports false.
func (r Result) Get(path string) gjson.Result {
	if len(r.Body) == 0 {
		return gjson.Result{}
	}
	return gjson.GetBytes(r.Body, path)
}

// Decode views the payload of r as T. The payload is not validated against
// any schema: any JSON that fits T decodes, whatever the outcome. It fails
// only when r has no payload or the JSON cannot be unmarshalled into T.
func Decode[T any](r Result) (T, error) {
	var v T
	if len(r.Body) == 0 {
		return v, ErrNoPayload
	}
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrDecodePayload, err)
	}
	return v, nil
}

func emptyResult(statusCode int) Result {
	return Result{Outcome: OutcomeEmpty, StatusCode: statusCode}
}

// newResult classifies a received response.
func newResult(statusCode int, body []byte) Result {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || !json.Valid(body) {
		return emptyResult(statusCode)
	}

	payload := make(json.RawMessage, len(body))
	copy(payload, body)

	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return Result{Outcome: OutcomeSuccess, StatusCode: statusCode, Body: payload}
	}
	return Result{Outcome: OutcomeProviderError, StatusCode: statusCode, Body: payload}
}
