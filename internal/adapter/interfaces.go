// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the generic request client the relay uses to talk
// to upstream HTTP APIs.
//
// An [APIClient] is bound to one base URL at construction time and exposes
// [APIClient.Request] plus one wrapper per HTTP verb. Every call performs
// exactly one round trip and yields a [Result] tagged with an [Outcome]:
// transport faults, provider error responses and undecodable bodies are
// logged and folded into the result instead of being returned as errors, so
// callers branch on Result.Outcome.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/requester_mock.go -package=mock

// Requester is the contract route services depend on. [APIClient] is the
// production implementation; tests use the generated mock.
type Requester interface {
	// Request performs one call with the given method against path, which is
	// resolved against the client's base URL. body is JSON-encoded for POST,
	// PUT and PATCH and ignored for GET and DELETE.
	Request(ctx context.Context, method, path string, body any, opts ...RequestOption) Result

	Get(ctx context.Context, path string, opts ...RequestOption) Result
	Post(ctx context.Context, path string, body any, opts ...RequestOption) Result
	Put(ctx context.Context, path string, body any, opts ...RequestOption) Result
	Patch(ctx context.Context, path string, body any, opts ...RequestOption) Result
	Delete(ctx context.Context, path string, opts ...RequestOption) Result
}
