package goxapi

import (
	"context"

	"github.com/reoring/goxapi/model"
)

//go:generate mockgen -source=api.go -destination=mocks/mocks.go -package=mocks NestedCodec,EntityCodec

// NestedCodec converts the sub-entities embedded in a document. Decode is
// given the expected kind explicitly and must fully validate the
// sub-document; its errors are handed to the caller unchanged.
type NestedCodec interface {
	Encode(ctx context.Context, e model.Entity, sc SerializationContext) any
	Decode(ctx context.Context, doc any, kind model.Kind, sc SerializationContext) (model.Entity, error)
}

// EntityCodec converts a single entity kind.
type EntityCodec interface {
	Encode(ctx context.Context, e model.Entity, sc SerializationContext) any
	Decode(ctx context.Context, doc any, sc SerializationContext) (model.Entity, error)
}

// EntityCodecFuncs adapts a pair of functions to EntityCodec.
type EntityCodecFuncs struct {
	EncodeFunc func(ctx context.Context, e model.Entity, sc SerializationContext) any
	DecodeFunc func(ctx context.Context, doc any, sc SerializationContext) (model.Entity, error)
}

func (f EntityCodecFuncs) Encode(ctx context.Context, e model.Entity, sc SerializationContext) any {
	return f.EncodeFunc(ctx, e, sc)
}

func (f EntityCodecFuncs) Decode(ctx context.Context, doc any, sc SerializationContext) (model.Entity, error) {
	return f.DecodeFunc(ctx, doc, sc)
}
