package httpapi

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dreamware/todo/internal/todo"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

//go:embed schema/todo_input.schema.json
var todoInputSchemaText string

var todoInputSchema = jsonschema.MustCompileString("todo_input.schema.json", todoInputSchemaText)

// decodeInput reads, validates and decodes a todo.Input request body.
// Every failure wraps errInvalidBody.
func decodeInput(w http.ResponseWriter, r *http.Request) (todo.Input, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return todo.Input{}, fmt.Errorf("%w: body exceeds %d bytes", errInvalidBody, tooLarge.Limit)
		}
		return todo.Input{}, fmt.Errorf("%w: %v", errInvalidBody, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return todo.Input{}, fmt.Errorf("%w: malformed json: %v", errInvalidBody, err)
	}
	if err := todoInputSchema.Validate(doc); err != nil {
		return todo.Input{}, fmt.Errorf("%w: %s", errInvalidBody, schemaMessage(err))
	}

	var in todo.Input
	if err := json.Unmarshal(data, &in); err != nil {
		return todo.Input{}, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return in, nil
}

// schemaMessage returns the most specific message of a validation error
func schemaMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return ve.InstanceLocation + ": " + ve.Message
}
