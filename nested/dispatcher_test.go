package nested_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	goxapi "github.com/reoring/goxapi"
	"github.com/reoring/goxapi/codec"
	"github.com/reoring/goxapi/mocks"
	"github.com/reoring/goxapi/model"
	"github.com/reoring/goxapi/nested"
)

func TestDispatcher_RoutesByKind(t *testing.T) {
	ctx := context.Background()
	sc := goxapi.SerializationContext{Format: "json"}
	ctrl := gomock.NewController(t)

	actors := mocks.NewMockEntityCodec(ctrl)
	groups := mocks.NewMockEntityCodec(ctrl)
	d := nested.New().
		Register(model.KindActor, actors).
		Register(model.KindGroup, groups)

	doc := map[string]any{"mbox": "mailto:a@example.com"}
	actors.EXPECT().Decode(gomock.Any(), doc, sc).Return(model.Agent{Identifier: model.Identifier{Mbox: "mailto:a@example.com"}}, nil)
	e, err := d.Decode(ctx, doc, model.KindActor, sc)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if e.EntityKind() != model.KindActor {
		t.Fatalf("unexpected entity %#v", e)
	}

	groups.EXPECT().Encode(gomock.Any(), model.Group{Name: "g"}, sc).Return(map[string]any{"objectType": "Group"})
	if out := d.Encode(ctx, model.Group{Name: "g"}, sc); out == nil {
		t.Fatalf("expected encoded group")
	}
}

func TestDispatcher_DecodeUnsupportedKind(t *testing.T) {
	_, err := nested.New().Decode(context.Background(), map[string]any{}, model.KindExtensions, goxapi.SerializationContext{})
	if !errors.Is(err, goxapi.ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
	is, ok := goxapi.AsIssue(err)
	if !ok || is.Params["kind"] != "Extensions" {
		t.Fatalf("unexpected issue %+v", is)
	}
}

func TestDispatcher_EncodeUnregisteredPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unregistered kind")
		}
	}()
	nested.New().Encode(context.Background(), model.StatementReference{}, goxapi.SerializationContext{})
}

func TestDispatcher_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := nested.New().Register(model.KindActor, mocks.NewMockEntityCodec(ctrl))

	err := d.Validate(nested.ContextKinds...)
	iss, ok := goxapi.AsIssues(err)
	if !ok || len(iss) != len(nested.ContextKinds)-1 {
		t.Fatalf("expected one issue per missing kind, got %v", err)
	}
	if !errors.Is(err, goxapi.ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind inside Issues")
	}

	for _, k := range nested.ContextKinds {
		d.Register(k, mocks.NewMockEntityCodec(ctrl))
	}
	if err := d.Validate(nested.ContextKinds...); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestDispatcher_DelegateErrorUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	groups := mocks.NewMockEntityCodec(ctrl)
	want := errors.New("group: member list malformed")
	groups.EXPECT().Decode(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, want)

	cc := codec.Context(nested.New().Register(model.KindGroup, groups))
	_, err := cc.Decode(context.Background(), map[string]any{"team": map[string]any{"member": 1}}, goxapi.SerializationContext{})
	if err != want {
		t.Fatalf("expected delegate error unchanged, got %v", err)
	}
}

func TestDispatcher_ContextRegisteredAsEntity(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	statements := mocks.NewMockEntityCodec(ctrl)

	d := nested.New().Register(model.KindStatementReference, statements)
	d.Register(model.KindContext, codec.Context(d).Entity())

	ref := model.StatementReference{StatementID: "16fd2706-8baf-433b-82eb-8c7fada847da"}
	statements.EXPECT().Decode(gomock.Any(), gomock.Any(), gomock.Any()).Return(ref, nil)
	e, err := d.Decode(ctx, map[string]any{"statement": map[string]any{"id": ref.StatementID}}, model.KindContext, goxapi.SerializationContext{})
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	c, ok := e.(model.Context)
	if !ok {
		t.Fatalf("expected model.Context, got %T", e)
	}
	if got, _ := c.Statement(); got != ref {
		t.Fatalf("statement: got %+v", got)
	}

	if out := d.Encode(ctx, model.Context{}, goxapi.SerializationContext{}); out != (goxapi.EmptyObject{}) {
		t.Fatalf("expected EmptyObject, got %#v", out)
	}
}
