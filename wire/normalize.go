package wire

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	goxapi "github.com/reoring/goxapi"
)

// normalizeIn rewrites library-specific containers into map[string]any and
// []any so that codecs only ever see one shape.
func normalizeIn(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeIn(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeIn(val)
		}
		return out
	case primitive.M:
		return normalizeIn(map[string]any(t))
	case primitive.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = normalizeIn(e.Value)
		}
		return out
	case primitive.A:
		return normalizeIn([]any(t))
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeIn(val)
		}
		return out
	default:
		return v
	}
}

// normalizeOut turns codec output into plain maps and slices every library
// can marshal. The EmptyObject marker becomes an empty map, i.e. {}.
func normalizeOut(v any) any {
	switch t := v.(type) {
	case goxapi.EmptyObject, *goxapi.EmptyObject:
		return map[string]any{}
	case goxapi.Document:
		return normalizeOut(map[string]any(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeOut(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeOut(val)
		}
		return out
	default:
		return v
	}
}
