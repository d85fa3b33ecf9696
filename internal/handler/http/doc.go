// Package http implements the inbound HTTP transport of the relay.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, panic recovery, CORS and
// response compression are handled here before requests are delegated to the
// service layer.
package http
