// Package http implements the JSON API of the blog server.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, metrics, response compression and session resolution are
// handled in this package before requests are delegated to the service layer.
package http
