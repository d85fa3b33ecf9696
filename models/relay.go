package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// NINDetailsRequest is the inbound body of POST /nin-details.
type NINDetailsRequest struct {
	// NIN is the National Identification Number to look up. When empty, only
	// the provider login is performed.
	NIN NIN `json:"nin,omitempty" swaggertype:"string" example:"12345678901"`
}

// NIN is a National Identification Number as sent by callers, who may post
// it as a JSON string or a JSON number. Numbers keep their literal digits.
// Zero, null and every other JSON type decode to the empty NIN.
type NIN string

func (n *NIN) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = ""
	if len(data) == 0 {
		return nil
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NIN(s)
	case c == '-' || (c >= '0' && c <= '9'):
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		if f != 0 {
			*n = NIN(data)
		}
	}
	return nil
}

// NINLookupRequest is the body sent to the provider's NIN lookup endpoint.
type NINLookupRequest struct {
	NIN string `json:"nin"`
}

// NINDetailsResponse is returned by POST /nin-details.
type NINDetailsResponse struct {
	AccessToken string `json:"accessToken"`

	// ExpiresIn is copied verbatim from the provider login response and is
	// omitted when the provider sent none.
	ExpiresIn json.RawMessage `json:"expiresIn,omitempty" swaggertype:"integer" example:"3599"`

	// NINDetails is the provider lookup payload, error payloads included.
	// It is null when no lookup was made or the provider sent nothing usable.
	NINDetails json.RawMessage `json:"ninDetails" swaggertype:"object"`
}

// IdentityDetails is what the identity service hands back to the handler.
type IdentityDetails struct {
	AccessToken string
	ExpiresIn   json.RawMessage
	NINDetails  json.RawMessage
}

// MessageResponse is a plain {"message": ...} body.
type MessageResponse struct {
	Message string `json:"message" example:"API is Live!"`
}

// DemoResponse is returned by GET /api.
type DemoResponse struct {
	Message string `json:"message" example:"Demo API called (httpbin.org)"`

	// Data is the HTTP status the demo upstream answered with.
	Data int `json:"data" example:"200"`
}

// ErrorResponse is the body of GET /api when the demo upstream is unreachable.
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to call external API"`
}

// FailureResponse is the envelope for unknown routes and recovered panics.
type FailureResponse struct {
	Success bool   `json:"success"`
	Status  int    `json:"status,omitempty"`
	Message string `json:"message"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
	Date    string `json:"date" example:"2026-10-15"`
	Commit  string `json:"commit" example:"a1b2c3d"`
}
