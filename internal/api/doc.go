// Package api handles incoming HTTP requests, request validation, and
// response formatting for the todo API. It adapts HTTP concerns to the
// service layer: handlers decode and validate payloads, call services with
// the authenticated user's ID, and map service errors to status codes.
package api
