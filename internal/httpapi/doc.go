// Package httpapi is the HTTP boundary of the todo service.
//
// It maps verbs and paths to service calls, encodes results as JSON and is
// the only place where errors become status codes:
//
//	GET    /             200 "OK"
//	GET    /todos        200 [Todo]
//	POST   /todos        200 Todo          400 bad body
//	GET    /todos/{id}   200 Todo          400 bad id, 404 unknown id
//	PUT    /todos/{id}   200 Todo          400 bad id or body, 404 unknown id
//	DELETE /todos/{id}   200 removed Todo  400 bad id, 404 unknown id
//
// Request bodies are validated against an embedded JSON schema before they
// are decoded. Id path segments are parsed before the service is called, so
// a malformed id never reaches it. Failures are reported as
// {"code": "...", "message": "..."}.
package httpapi
