package wire

import goxapi "github.com/reoring/goxapi"

// Options configures a Processor.
type Options struct {
	// DuplicateKeys controls duplicate object keys in JSON input. Ignore
	// lets the last value win, Warn emits SignalDuplicateKey and continues,
	// Error rejects the document. Other formats cannot carry duplicates
	// through their decoders and are not checked.
	DuplicateKeys goxapi.Severity
	// MaxBytes rejects larger inputs before decoding; zero disables the limit.
	MaxBytes int64
	// MaxDepth rejects JSON input nested deeper than this; zero disables the limit.
	MaxDepth int
	// Serialization is forwarded to the codecs. Its Format defaults to the
	// processor's format name.
	Serialization goxapi.SerializationContext
}
