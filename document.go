package goxapi

// Document is the wire form of an entity: a string-keyed mapping whose values
// are strings, numbers, booleans, nil, []any or nested documents.
type Document map[string]any

// EmptyObject marks a valid entity that has no fields set. Encoders return
// it instead of an empty Document so that embedders keep an explicit {} in
// the parent document rather than dropping the key.
type EmptyObject struct{}

// MarshalJSON renders the marker as an empty JSON object.
func (EmptyObject) MarshalJSON() ([]byte, error) { return []byte("{}"), nil }

// AsDocument returns v as a Document when it is a mapping. The EmptyObject
// marker yields an empty, non-nil Document.
func AsDocument(v any) (Document, bool) {
	switch t := v.(type) {
	case Document:
		return t, t != nil
	case map[string]any:
		return Document(t), t != nil
	case EmptyObject, *EmptyObject:
		return Document{}, true
	default:
		return nil, false
	}
}
