package propctl

import (
	"fmt"
	"reflect"

	"go.starlark.net/starlark"
)

// toStringDict converts sibling values into predicate globals. Slices,
// arrays and maps are seen as their length.
func toStringDict(values map[string]interface{}) (starlark.StringDict, error) {
	globals := starlark.StringDict{}
	for k, v := range values {
		val, err := toStarlarkValue(v)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", k, err)
		}
		globals[k] = val
	}
	return globals, nil
}

// Helpers for type conversion
func toStarlarkValue(v interface{}) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case int64:
		return starlark.MakeInt64(val), nil
	case float64:
		return starlark.Float(val), nil
	case float32:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	case fmt.Stringer:
		return starlark.String(val.String()), nil
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return starlark.MakeInt(rv.Len()), nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}
