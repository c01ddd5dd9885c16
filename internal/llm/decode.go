package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// MalformedResponseError reports that a model returned text that does not
// parse or validate as the expected structure. Callers use errors.As to
// distinguish this from transport failures.
type MalformedResponseError struct {
	TaskID string
	Reason string
	Raw    string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response for %s: %s", e.TaskID, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// ExtractJSON strips a markdown code fence from around a model response.
// Models frequently wrap JSON output in ```json fences despite being told
// not to.
func ExtractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		parts := strings.Split(raw, "```")
		if len(parts) > 1 {
			raw = parts[1]
		}
		raw = strings.TrimPrefix(raw, "json")
	}
	return strings.TrimSpace(raw)
}

// MustCompileSchema compiles an embedded JSON schema document. Panics on
// error; schemas are compile-time constants, so a failure is a programming
// bug.
func MustCompileSchema(name, schemaJSON string) *jsonschema.Schema {
	var schemaValue any
	if err := json.Unmarshal([]byte(schemaJSON), &schemaValue); err != nil {
		panic(fmt.Sprintf("parsing schema %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaValue); err != nil {
		panic(fmt.Sprintf("adding schema resource %s: %v", name, err))
	}

	schema, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compiling schema %s: %v", name, err))
	}
	return schema
}

// Decode strips fences, validates the response against the schema, and
// unmarshals it into out. Any failure is reported as a
// [MalformedResponseError].
func Decode(taskID, raw string, schema *jsonschema.Schema, out any) error {
	cleaned := ExtractJSON(raw)

	var value any
	if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
		return &MalformedResponseError{
			TaskID: taskID,
			Reason: "response is not valid JSON",
			Raw:    raw,
			Err:    err,
		}
	}

	if err := schema.Validate(value); err != nil {
		return &MalformedResponseError{
			TaskID: taskID,
			Reason: "response does not match the expected shape",
			Raw:    raw,
			Err:    err,
		}
	}

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &MalformedResponseError{
			TaskID: taskID,
			Reason: "response does not decode into the target type",
			Raw:    raw,
			Err:    err,
		}
	}
	return nil
}
