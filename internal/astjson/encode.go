package astjson

import (
	"github.com/tidwall/sjson"
	"github.com/tmclane/pixie/pkg/value"
)

// EncodeException renders an Exception value as a JSON error report for
// cmd/pixie eval --json's non-zero exit path (spec.md §7: rendering a
// terminal Exception is the caller's job, not the core's). Built
// incrementally with sjson.Set rather than encoding/json + a struct,
// matching gjson's decode side and avoiding a throwaway struct type for
// a three- or four-field, write-once document.
func EncodeException(exc *value.ExceptionValue) (string, error) {
	doc := "{}"
	var err error

	doc, err = sjson.Set(doc, "kind", string(exc.Kind))
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "message", exc.Message)
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "location", exc.Location)
	if err != nil {
		return "", err
	}
	if exc.Payload != nil {
		doc, err = sjson.Set(doc, "payload", exc.Payload.String())
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}
