package dto

import (
	"bytes"
	"encoding/json"
)

// Optional tracks whether a JSON field was present, present as null, or
// absent. The zero value is "absent"; UnmarshalJSON only runs for keys that
// appear in the document.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}
