package server

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/todo_payload.json
var todoPayloadSchema string

const maxBodyBytes = 1 << 20

// todoPayload is the body shared by create and update.
// An absent "completed" decodes as false on both.
type todoPayload struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// FieldError points at one invalid location in a request
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RequestError is a request that failed validation; it renders as a 422
type RequestError struct {
	Message string
	Fields  []FieldError
}

func (e *RequestError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

// payloadValidator checks request bodies against the embedded JSON schema
type payloadValidator struct {
	schema *jsonschema.Schema
}

func newPayloadValidator() (*payloadValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if err := compiler.AddResource("todo_payload.json", strings.NewReader(todoPayloadSchema)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	schema, err := compiler.Compile("todo_payload.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &payloadValidator{schema: schema}, nil
}

// decode reads, validates and decodes a todo payload
func (v *payloadValidator) decode(body io.Reader) (todoPayload, error) {
	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes+1))
	if err != nil {
		return todoPayload{}, &RequestError{Message: "could not read request body"}
	}
	if len(data) > maxBodyBytes {
		return todoPayload{}, &RequestError{Message: "request body too large"}
	}
	if !utf8.Valid(data) {
		return todoPayload{}, &RequestError{
			Message: "request body is not valid UTF-8",
			Fields:  []FieldError{{Field: "/", Message: "invalid UTF-8 byte sequence"}},
		}
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return todoPayload{}, &RequestError{
			Message: "request body is not valid JSON",
			Fields:  []FieldError{{Field: "/", Message: err.Error()}},
		}
	}

	if err := v.schema.Validate(doc); err != nil {
		return todoPayload{}, schemaError(err)
	}

	var payload todoPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return todoPayload{}, &RequestError{Message: "request body does not match schema"}
	}
	return payload, nil
}

// schemaError flattens a jsonschema error tree into its leaf causes
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &RequestError{Message: err.Error()}
	}

	reqErr := &RequestError{Message: "request body failed validation"}
	collectSchemaErrors(reqErr, ve)
	return reqErr
}

func collectSchemaErrors(reqErr *RequestError, ve *jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		field := ve.InstanceLocation
		if field == "" {
			field = "/"
		}
		reqErr.Fields = append(reqErr.Fields, FieldError{Field: field, Message: ve.Message})
		return
	}

	for _, cause := range ve.Causes {
		collectSchemaErrors(reqErr, cause)
	}
}
