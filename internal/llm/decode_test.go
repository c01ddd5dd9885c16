package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare json", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"anonymous fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n{\"a\": 1}\n  ", `{"a": 1}`},
		{"fence with trailing chatter", "```json\n{\"a\": 1}\n``` hope that helps!", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExtractJSON(tt.raw))
		})
	}
}

var testSchema = MustCompileSchema("test.json", `{
  "type": "object",
  "required": ["count"],
  "properties": {"count": {"type": "integer", "minimum": 0}}
}`)

func TestDecode(t *testing.T) {
	var out struct {
		Count int `json:"count"`
	}
	err := Decode("task/1", "```json\n{\"count\": 3}\n```", testSchema, &out)
	require.NoError(t, err)
	require.Equal(t, 3, out.Count)
}

func TestDecodeInvalidJSON(t *testing.T) {
	var out struct{}
	err := Decode("task/1", "the skill looks great!", testSchema, &out)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, "task/1", malformed.TaskID)
	require.Contains(t, malformed.Reason, "not valid JSON")
	require.Equal(t, "the skill looks great!", malformed.Raw)
}

func TestDecodeSchemaViolation(t *testing.T) {
	var out struct{}
	err := Decode("task/1", `{"count": -5}`, testSchema, &out)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	require.Contains(t, malformed.Reason, "expected shape")
	require.NotNil(t, errors.Unwrap(malformed))
}

func TestMustCompileSchemaPanicsOnBadSchema(t *testing.T) {
	require.Panics(t, func() {
		MustCompileSchema("bad.json", "{not json")
	})
}
