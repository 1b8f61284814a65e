package goxapi

import "maps"

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// SerializationContext carries options for one encode or decode call. The
// context codec never inspects it; it is forwarded untouched to every nested
// codec invocation.
type SerializationContext struct {
	// Format names the wire format being produced or consumed (e.g. "json").
	Format string

	attrs map[string]any
}

// With returns a copy of sc with key set to v.
func (sc SerializationContext) With(key string, v any) SerializationContext {
	attrs := make(map[string]any, len(sc.attrs)+1)
	maps.Copy(attrs, sc.attrs)
	attrs[key] = v
	sc.attrs = attrs
	return sc
}

// Value returns the attribute stored under key.
func (sc SerializationContext) Value(key string) (any, bool) {
	v, ok := sc.attrs[key]
	return v, ok
}
