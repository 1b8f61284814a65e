package goxapi

// Presence is the bit flag describing how a key appeared in a document.
type Presence uint8

const (
	PresenceSeen    Presence = 1 << iota // Key appeared in the input.
	PresenceWasNull                      // Key's value was null.
)

// Absent reports whether the key did not appear at all.
func (p Presence) Absent() bool { return p&PresenceSeen == 0 }

// Null reports whether the key appeared with an explicit null.
func (p Presence) Null() bool { return p&PresenceWasNull != 0 }

// HasValue reports whether the key appeared with a non-null value.
func (p Presence) HasValue() bool { return p&PresenceSeen != 0 && p&PresenceWasNull == 0 }

// PresenceMap maps JSON Pointers to Presence flags.
type PresenceMap map[string]Presence

// Decoded carries the decoded value along with presence metadata.
type Decoded[T any] struct {
	Value    T
	Presence PresenceMap
}

// Lookup distinguishes a missing key, a key holding null and a key holding a
// value. A nil document has no keys.
func Lookup(doc Document, key string) (any, Presence) {
	v, ok := doc[key]
	if !ok {
		return nil, 0
	}
	if v == nil {
		return nil, PresenceSeen | PresenceWasNull
	}
	return v, PresenceSeen
}

// CollectPresence records the presence of every top-level key of doc. The
// root pointer "/" is always marked seen.
func CollectPresence(doc Document) PresenceMap {
	pm := make(PresenceMap, len(doc)+1)
	pm["/"] = PresenceSeen
	for k := range doc {
		_, p := Lookup(doc, k)
		pm[Root().Field(k).Pointer()] = p
	}
	return pm
}
