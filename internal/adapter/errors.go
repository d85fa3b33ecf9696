package adapter

import "errors"

var (
	ErrInvalidBaseURL     = errors.New("invalid base url")
	ErrUnsupportedMethod  = errors.New("unsupported http method")
	ErrAbsoluteRequestURL = errors.New("request path must be relative to the base url")
	ErrEncodeBody         = errors.New("error encoding request body")
	ErrNoPayload          = errors.New("result carries no payload")
	ErrDecodePayload      = errors.New("error decoding result payload")
)
