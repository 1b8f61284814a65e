// Package wire moves statement contexts across content types.
//
// A Format turns bytes into the generic document tree the context codec
// consumes and back. JSON, YAML, MessagePack and BSON are provided. A
// Processor ties a Format to a codec.ContextCodec and reports every
// receive and send through capitan signals.
package wire

import (
	"mime"
	"strings"
)

// Format provides content-type aware conversion between bytes and document
// trees. Unmarshal yields maps as map[string]any and arrays as []any,
// whatever the underlying library produces. Marshal accepts the values the
// codecs produce, including goxapi.Document and goxapi.EmptyObject.
type Format interface {
	// Name is the short format name forwarded as SerializationContext.Format.
	Name() string
	// ContentType returns the MIME type (e.g. "application/json").
	ContentType() string
	Unmarshal(data []byte) (any, error)
	Marshal(v any) ([]byte, error)
}

// Formats returns all built-in formats.
func Formats() []Format {
	return []Format{JSON(), YAML(), MsgPack(), BSON()}
}

// ByContentType returns the built-in format for a MIME type. Parameters
// such as charset are ignored.
func ByContentType(contentType string) (Format, bool) {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(contentType))
	}
	for _, f := range Formats() {
		if f.ContentType() == mt {
			return f, true
		}
	}
	// Common aliases.
	switch mt {
	case "application/x-yaml", "text/yaml":
		return YAML(), true
	case "application/x-msgpack", "application/vnd.msgpack":
		return MsgPack(), true
	}
	return nil, false
}
