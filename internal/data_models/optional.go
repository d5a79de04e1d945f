package dto

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes a field absent from the payload from one explicitly
// set to null: Set is true whenever the key appeared, Valid is false when the
// value was null. Absent fields keep their current value on update; null
// clears the value where the field is nullable.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		var zero T
		o.Value = zero
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
