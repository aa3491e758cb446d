// Package batchfile parses the batch operations file: a JSON array of
// records {type, startIndex, endIndex?, text?}.
package batchfile

import (
	"fmt"

	"github.com/tidwall/gjson"

	"tableflip.dev/redline/pkg/edit"
)

// ParseError reports the first offending record in a batch file.
type ParseError struct {
	Record int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("batch record %d: %v", e.Record, e.Err)
	}
	return fmt.Sprintf("batch record %d: %s", e.Record, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse validates data and constructs the operations it describes, in
// file order. Validation matches the single-operation commands: the
// same constructors run per record.
func Parse(data []byte) ([]edit.Operation, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Record: 0, Reason: "file is not valid JSON"}
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, &ParseError{Record: 0, Reason: "expected a JSON array of operations"}
	}

	var ops []edit.Operation
	for i, rec := range root.Array() {
		op, err := parseRecord(rec)
		if err != nil {
			return nil, &ParseError{Record: i, Err: err}
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseRecord(rec gjson.Result) (edit.Operation, error) {
	if !rec.IsObject() {
		return edit.Operation{}, fmt.Errorf("expected an object")
	}
	start := rec.Get("startIndex")
	if !start.Exists() {
		return edit.Operation{}, fmt.Errorf("missing startIndex")
	}

	switch typ := rec.Get("type").String(); typ {
	case "insert":
		text := rec.Get("text")
		if !text.Exists() {
			return edit.Operation{}, fmt.Errorf("insert requires text")
		}
		return edit.NewInsert(start.Int(), text.String(), nil)
	case "delete":
		end := rec.Get("endIndex")
		if !end.Exists() {
			return edit.Operation{}, fmt.Errorf("delete requires endIndex")
		}
		return edit.NewDelete(start.Int(), end.Int())
	case "replace":
		end := rec.Get("endIndex")
		if !end.Exists() {
			return edit.Operation{}, fmt.Errorf("replace requires endIndex")
		}
		text := rec.Get("text")
		if !text.Exists() {
			return edit.Operation{}, fmt.Errorf("replace requires text")
		}
		return edit.NewReplace(start.Int(), end.Int(), text.String(), nil)
	case "":
		return edit.Operation{}, fmt.Errorf("missing type")
	default:
		return edit.Operation{}, fmt.Errorf("unknown type %q", typ)
	}
}
