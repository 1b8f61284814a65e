package wire

import (
	"context"
	"errors"
	"testing"
	"time"

	goxapi "github.com/reoring/goxapi"
	"github.com/reoring/goxapi/internal/engine"
)

func TestEmitReceive(_ *testing.T) {
	ctx := context.Background()
	emitReceiveStart(ctx, "application/json", 42)
	emitReceiveComplete(ctx, "application/json", 42, 10*time.Millisecond, 3, nil)
}

func TestEmitReceiveComplete_Error(_ *testing.T) {
	ctx := context.Background()
	emitReceiveComplete(ctx, "application/json", 0, time.Millisecond, 0, errors.New("test error"))
	is := goxapi.IssueAt(goxapi.Root().Field("language"), goxapi.CodeInvalidFormat, "bad", nil)
	emitReceiveComplete(ctx, "application/json", 0, time.Millisecond, 0, is)
}

func TestEmitSend(_ *testing.T) {
	ctx := context.Background()
	emitSendStart(ctx, "application/yaml")
	emitSendComplete(ctx, "application/yaml", 128, time.Millisecond, nil)
	emitSendComplete(ctx, "application/yaml", 0, time.Millisecond, errors.New("test error"))
}

func TestEmitDuplicateKeys(_ *testing.T) {
	emitDuplicateKeys(context.Background(), "application/json", []engine.SimpleIssue{
		{Code: engine.CodeDuplicateKey, Path: "/platform", Key: "platform"},
	})
}

func TestSignalVariables(t *testing.T) {
	signals := map[string]any{
		"SignalReceiveStart":    SignalReceiveStart,
		"SignalReceiveComplete": SignalReceiveComplete,
		"SignalSendStart":       SignalSendStart,
		"SignalSendComplete":    SignalSendComplete,
		"SignalDuplicateKey":    SignalDuplicateKey,
	}
	for name, s := range signals {
		if s == nil {
			t.Errorf("%s is nil", name)
		}
	}
}
