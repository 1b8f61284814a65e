package wire

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"

	goxapi "github.com/reoring/goxapi"
	"github.com/reoring/goxapi/internal/engine"
)

// Signals for wire events.
var (
	SignalReceiveStart    = capitan.NewSignal("goxapi.receive.start", "Context decode from bytes beginning")
	SignalReceiveComplete = capitan.NewSignal("goxapi.receive.complete", "Context decode from bytes finished")
	SignalSendStart       = capitan.NewSignal("goxapi.send.start", "Context encode to bytes beginning")
	SignalSendComplete    = capitan.NewSignal("goxapi.send.complete", "Context encode to bytes finished")
	SignalDuplicateKey    = capitan.NewSignal("goxapi.receive.duplicate_key", "Duplicate object key tolerated")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
	KeyIssueCode   = capitan.NewStringKey("issue_code")
	KeyIssuePath   = capitan.NewStringKey("issue_path")
	KeyFieldCount  = capitan.NewIntKey("field_count")
)

func emitReceiveStart(ctx context.Context, contentType string, size int) {
	capitan.Emit(ctx, SignalReceiveStart,
		KeyContentType.Field(contentType),
		KeySize.Field(size),
	)
}

// emitReceiveComplete reports the outcome of a receive. Issues raised while
// decoding add their code and pointer so failures can be grouped.
func emitReceiveComplete(ctx context.Context, contentType string, size int, duration time.Duration, fields int, err error) {
	fs := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyFieldCount.Field(fields),
	}
	if err != nil {
		fs = append(fs, KeyError.Field(err))
		if is, ok := goxapi.AsIssue(err); ok {
			fs = append(fs, KeyIssueCode.Field(string(is.Code)), KeyIssuePath.Field(is.Path))
		}
		capitan.Error(ctx, SignalReceiveComplete, fs...)
		return
	}
	capitan.Emit(ctx, SignalReceiveComplete, fs...)
}

func emitSendStart(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalSendStart,
		KeyContentType.Field(contentType),
	)
}

func emitSendComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fs := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fs = append(fs, KeyError.Field(err))
		capitan.Error(ctx, SignalSendComplete, fs...)
		return
	}
	capitan.Emit(ctx, SignalSendComplete, fs...)
}

func emitDuplicateKeys(ctx context.Context, contentType string, issues []engine.SimpleIssue) {
	for _, si := range issues {
		capitan.Emit(ctx, SignalDuplicateKey,
			KeyContentType.Field(contentType),
			KeyIssueCode.Field(si.Code),
			KeyIssuePath.Field(si.Path),
		)
	}
}
