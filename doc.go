// Package goxapi converts xAPI statement contexts between their in-memory
// form (model.Context) and their wire form (a Document), validating every
// field on the way in.
//
// The root package holds the shared contracts:
//
// - Document / EmptyObject: the wire value and the explicit empty-object marker
// - Presence / Lookup: missing vs null vs present keys
// - Issue / Issues: the error model (JSON Pointer, code, message template)
// - NestedCodec / EntityCodec: the seam through which sub-entities are (de)serialized
//
// Design policy:
// - Keep only contracts in the root package; the context codec lives in codec/,
// kind-based dispatch in nested/, content types (JSON, YAML, MessagePack, BSON) in wire/.
// - Nested codec errors are returned as-is, never wrapped.
//
// Typical usage:
//
//	nc := nested.New().
//		Register(model.KindActor, actorCodec).
//		Register(model.KindGroup, groupCodec)
//	cc := codec.Context(nc)
//	c, err := cc.Decode(ctx, doc, goxapi.SerializationContext{Format: "json"})
//	out := cc.Encode(ctx, c, goxapi.SerializationContext{Format: "json"})
package goxapi
