package service

import "errors"

var (
	ErrAuthenticationFailed = errors.New("authentication failed, no access token received")
	ErrDemoUnreachable      = errors.New("failed to call external API")
)
