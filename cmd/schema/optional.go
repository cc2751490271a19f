package schema

import "encoding/json"

// Optional is a field of an update payload. Set is true when the key was
// present in the JSON body, Null when its value was null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) IsNull() bool {
	return o.Set && o.Null
}

// Changes maps column names to new values for a partial update.
type Changes map[string]interface{}

// Put records o under column when it was supplied. An explicit null is
// recorded as nil.
func Put[T any](c Changes, column string, o Optional[T]) {
	if !o.Set {
		return
	}
	if o.Null {
		c[column] = nil
		return
	}
	c[column] = o.Value
}
