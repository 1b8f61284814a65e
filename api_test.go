package goxapi_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	j "github.com/goccy/go-json"

	goxapi "github.com/reoring/goxapi"
	"github.com/reoring/goxapi/model"
)

func TestIssue_ErrorAndSentinel(t *testing.T) {
	cause := errors.New("bad uuid")
	is := goxapi.IssueAt(goxapi.Root().Field("registration"), goxapi.CodeInvalidFormat, "UUID is not valid.", nil)
	is.Cause = cause

	if got, want := is.Error(), "invalid_format at /registration: UUID is not valid."; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if is.Field != "registration" {
		t.Fatalf("Field = %q", is.Field)
	}
	if !errors.Is(is, goxapi.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat")
	}
	if !errors.Is(is, cause) {
		t.Fatalf("expected cause to be reachable")
	}
	if errors.Is(is, goxapi.ErrMissingValue) {
		t.Fatalf("unexpected ErrMissingValue")
	}

	wrapped := fmt.Errorf("decode: %w", is)
	got, ok := goxapi.AsIssue(wrapped)
	if !ok || got != is {
		t.Fatalf("AsIssue did not find the issue")
	}
}

func TestIssues_ErrorAndUnwrap(t *testing.T) {
	var iss goxapi.Issues
	iss = goxapi.AppendIssues(iss,
		goxapi.Issue{Code: goxapi.CodeDuplicateKey, Path: "/a"},
		goxapi.Issue{Code: goxapi.CodeDuplicateKey, Path: "/b"},
		goxapi.Issue{Code: goxapi.CodeTooDeep, Path: "/c/d"},
		goxapi.Issue{Code: goxapi.CodeDuplicateKey, Path: "/e"},
	)
	want := "duplicate_key at /a; duplicate_key at /b; too_deep at /c/d; ... (total 4)"
	if got := iss.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(iss, goxapi.ErrTooDeep) || !errors.Is(iss, goxapi.ErrDuplicateKey) {
		t.Fatalf("expected both sentinels")
	}
	first, ok := goxapi.AsIssue(iss)
	if !ok || first.Path != "/a" {
		t.Fatalf("AsIssue on Issues = %v, %v", first, ok)
	}
	if _, ok := goxapi.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error is not Issues")
	}
}

func TestPathRef(t *testing.T) {
	p := goxapi.Root().Field("extensions").Field("http://x/y~z").Index(2)
	if got, want := p.Pointer(), "/extensions/http:~1~1x~1y~0z/2"; got != want {
		t.Fatalf("Pointer() = %q, want %q", got, want)
	}
	if got := goxapi.At(p.Pointer()).Pointer(); got != p.Pointer() {
		t.Fatalf("At round trip = %q", got)
	}
	if got := goxapi.Root().Field("a/b").Top(); got != "a/b" {
		t.Fatalf("Top() = %q", got)
	}
	if got := goxapi.Root().Pointer(); got != "/" {
		t.Fatalf("root pointer = %q", got)
	}
}

func TestLookupPresence(t *testing.T) {
	doc := goxapi.Document{"a": "x", "b": nil}
	if _, p := goxapi.Lookup(doc, "a"); !p.HasValue() || p.Null() || p.Absent() {
		t.Fatalf("a: %v", p)
	}
	if _, p := goxapi.Lookup(doc, "b"); p.HasValue() || !p.Null() || p.Absent() {
		t.Fatalf("b: %v", p)
	}
	if _, p := goxapi.Lookup(doc, "c"); !p.Absent() {
		t.Fatalf("c: %v", p)
	}
	if _, p := goxapi.Lookup(nil, "a"); !p.Absent() {
		t.Fatalf("nil doc: %v", p)
	}

	pm := goxapi.CollectPresence(doc)
	if !pm["/"].HasValue() || !pm["/a"].HasValue() || !pm["/b"].Null() || !pm["/c"].Absent() {
		t.Fatalf("unexpected presence map %v", pm)
	}
}

func TestAsDocument(t *testing.T) {
	cases := []struct {
		in   any
		ok   bool
		size int
	}{
		{goxapi.Document{"k": 1}, true, 1},
		{map[string]any{"k": 1, "l": 2}, true, 2},
		{goxapi.EmptyObject{}, true, 0},
		{&goxapi.EmptyObject{}, true, 0},
		{map[string]any(nil), false, 0},
		{"str", false, 0},
		{[]any{}, false, 0},
		{nil, false, 0},
	}
	for i, c := range cases {
		d, ok := goxapi.AsDocument(c.in)
		if ok != c.ok || len(d) != c.size {
			t.Errorf("case %d: got (%v, %v), want ok=%v size=%d", i, d, ok, c.ok, c.size)
		}
	}
}

func TestEmptyObject_MarshalJSON(t *testing.T) {
	b, err := j.Marshal(map[string]any{"extensions": goxapi.EmptyObject{}})
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	if string(b) != `{"extensions":{}}` {
		t.Fatalf("got %s", b)
	}
}

func TestSerializationContext_WithCopies(t *testing.T) {
	base := goxapi.SerializationContext{Format: "json"}
	a := base.With("version", "1.0.3")
	b := a.With("version", "2.0.0")

	if _, ok := base.Value("version"); ok {
		t.Fatalf("base must stay untouched")
	}
	if v, _ := a.Value("version"); v != "1.0.3" {
		t.Fatalf("a = %v", v)
	}
	if v, _ := b.Value("version"); v != "2.0.0" {
		t.Fatalf("b = %v", v)
	}
	if b.Format != "json" {
		t.Fatalf("format lost")
	}
}

func TestEntityCodecFuncs(t *testing.T) {
	var gotFormat string
	ec := goxapi.EntityCodecFuncs{
		EncodeFunc: func(_ context.Context, e model.Entity, sc goxapi.SerializationContext) any {
			gotFormat = sc.Format
			return map[string]any{"id": e.(model.StatementReference).StatementID}
		},
		DecodeFunc: func(_ context.Context, doc any, _ goxapi.SerializationContext) (model.Entity, error) {
			d, _ := goxapi.AsDocument(doc)
			id, _ := d["id"].(string)
			return model.StatementReference{StatementID: id}, nil
		},
	}
	sc := goxapi.SerializationContext{Format: "yaml"}
	doc := ec.Encode(context.Background(), model.StatementReference{StatementID: "abc"}, sc)
	if gotFormat != "yaml" {
		t.Fatalf("format not forwarded: %q", gotFormat)
	}
	e, err := ec.Decode(context.Background(), doc, sc)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if e.(model.StatementReference).StatementID != "abc" {
		t.Fatalf("unexpected entity %+v", e)
	}
}
