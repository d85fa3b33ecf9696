// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Response messages fixed by the public API.
const (
	msgAPILive           = "API is Live!"
	msgDemoCalled        = "Demo API called (httpbin.org)"
	msgDemoFailed        = "Failed to call external API"
	msgAuthFailed        = "Authentication failed, no access token received."
	msgRouteDoesNotExist = "API route does not exist"
)
