package httpapi

import (
	"errors"
	"net/http"

	"github.com/dreamware/todo/internal/todo"
)

// Error codes carried in error response bodies
const (
	CodeInvalidID        = "INVALID_ID"
	CodeInvalidBody      = "INVALID_BODY"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternal         = "INTERNAL"
)

// ErrorResponse is the JSON body written for every failed request
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errInvalidBody marks request bodies that are not acceptable input
var errInvalidBody = errors.New("invalid request body")

// classify maps an error to its status code and response code
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, todo.ErrInvalidID):
		return http.StatusBadRequest, CodeInvalidID
	case errors.Is(err, errInvalidBody):
		return http.StatusBadRequest, CodeInvalidBody
	case errors.Is(err, todo.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
