// Package domain defines the record shapes stored for each portfolio
// resource, the payloads accepted when creating them, and the patch
// shapes used for partial updates.
//
// Patch fields are pointers so that "absent" and "explicit zero value"
// are distinguishable: a nil pointer means the caller did not send the
// field (leave it unchanged), while a pointer to "" or false is an
// explicit value and must be written.
package domain

// A Patch reports the set of fields a partial update intends to change.
type Patch interface {
	// Fields returns only the fields present in the request, keyed by
	// their stored document key. An empty map means the request carried
	// no usable data.
	Fields() map[string]any
}

func setField[T any](fields map[string]any, key string, v *T) {
	if v != nil {
		fields[key] = *v
	}
}
