package dto

import "encoding/json"

// Optional distinguishes a JSON field that is absent from one that is
// explicitly null. Set is true whenever the key was present; Value is nil
// when the key carried null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON implements json.Unmarshaler
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// IsNull reports whether the field was present and null
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

// Apply writes the field into dst when it was present, clearing dst on null
func (o Optional[T]) Apply(dst **T) {
	if o.Set {
		*dst = o.Value
	}
}

// ApplyValue writes a non-null field into dst. Null is ignored.
func (o Optional[T]) ApplyValue(dst *T) {
	if o.Set && o.Value != nil {
		*dst = *o.Value
	}
}
