package devkit

import "reflect"

// ValidatePath reports whether path is a non-empty textual value.
//
// Values whose dynamic type is string, or a defined type with an underlying
// string kind, are textual. Everything else, including nil, byte slices and
// string pointers, is rejected. No syntactic or filesystem checks are made.
func ValidatePath(path any) bool {
	s, ok := asText(path)
	if !ok {
		return false
	}

	return s != ""
}

func asText(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}

	return rv.String(), true
}
