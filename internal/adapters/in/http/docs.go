// Package http is the service's REST adapter on echo. Requests on documented
// routes are checked against the embedded OpenAPI document before they reach
// a handler, and every answer uses the {success, data, error} envelope.
package http
