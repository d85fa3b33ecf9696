// Package utils provides small helpers shared by the relay's packages:
// the resty HTTP client wrapper, JSON response writing, request body
// decoding and trace id generation.
package utils
