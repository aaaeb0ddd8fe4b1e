package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hay-kot/todolist/internal/core/task"
)

const documentSchemaURL = "tasks.schema.json"

// documentSchema describes the on-disk task list. Only the description is
// constrained; due_date and completed are coerced per record by decodeRecord
// so one odd value never discards the rest of the list. Unknown keys are
// allowed so files edited by hand keep loading.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["description"],
    "properties": {
      "description": {"type": "string"}
    }
  }
}`

var schema = jsonschema.MustCompileString(documentSchemaURL, documentSchema)

// record is the loose on-disk shape of one task.
type record struct {
	Description string          `json:"description"`
	DueDate     json.RawMessage `json:"due_date"`
	Completed   json.RawMessage `json:"completed"`
}

// DecodeDocument validates data against the task list schema and decodes it.
// Missing due_date keys decode as absent and missing completed keys as false.
func DecodeDocument(data []byte) ([]task.Task, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("validate document: %s", schemaErrorString(err))
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	tasks := make([]task.Task, len(records))
	for i, r := range records {
		tasks[i] = decodeRecord(r)
	}

	return tasks, nil
}

// decodeRecord coerces loosely typed values. A due date keeps strings
// verbatim and the literal text of numbers and booleans; null, objects and
// arrays are absent. Completed is true only for the JSON literal true.
func decodeRecord(r record) task.Task {
	t := task.Task{Description: r.Description}

	due := bytes.TrimSpace(r.DueDate)
	if len(due) > 0 {
		switch due[0] {
		case '"':
			var s string
			if err := json.Unmarshal(due, &s); err == nil {
				t.DueDate = &s
			}
		case 'n', '{', '[':
			// absent
		default:
			s := string(due)
			t.DueDate = &s
		}
	}

	var completed bool
	if err := json.Unmarshal(r.Completed, &completed); err == nil {
		t.Completed = completed
	}

	return t
}

// EncodeDocument renders tasks in the canonical on-disk form: a JSON array
// indented with four spaces. A nil slice encodes as [].
func EncodeDocument(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(tasks); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	return buf.Bytes(), nil
}

// schemaErrorString flattens a validation error into "path: message" pairs.
func schemaErrorString(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}

	var msgs []string
	collectSchemaErrors(ve, &msgs)
	if len(msgs) == 0 {
		return ve.Message
	}
	return strings.Join(msgs, "; ")
}

func collectSchemaErrors(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*msgs = append(*msgs, fmt.Sprintf("%s: %s", loc, ve.Message))
		return
	}

	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, msgs)
	}
}
