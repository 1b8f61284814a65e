package codec

import (
	"context"
	"fmt"

	goxapi "github.com/reoring/goxapi"
	"github.com/reoring/goxapi/format"
	"github.com/reoring/goxapi/i18n"
	"github.com/reoring/goxapi/model"
)

// Wire keys of a statement context, in decoding order.
const (
	KeyRegistration      = "registration"
	KeyInstructor        = "instructor"
	KeyTeam              = "team"
	KeyContextActivities = "contextActivities"
	KeyRevision          = "revision"
	KeyPlatform          = "platform"
	KeyLanguage          = "language"
	KeyStatement         = "statement"
	KeyExtensions        = "extensions"
)

const keyObjectType = "objectType"

// ContextCodec converts model.Context values to and from documents.
// Sub-entities are handed to the NestedCodec. A ContextCodec holds no
// mutable state and is safe for concurrent use.
type ContextCodec struct {
	nested goxapi.NestedCodec
}

// Context returns a codec for statement contexts that delegates nested
// entities to nested.
func Context(nested goxapi.NestedCodec) *ContextCodec {
	return &ContextCodec{nested: nested}
}

// Encode produces the wire form of v. Only fields that are set are written.
// A Context without fields encodes to goxapi.EmptyObject{}.
func (c *ContextCodec) Encode(ctx context.Context, v model.Context, sc goxapi.SerializationContext) any {
	out := goxapi.Document{}
	if s, ok := v.Registration(); ok {
		out[KeyRegistration] = s
	}
	if a, ok := v.Instructor(); ok {
		out[KeyInstructor] = c.nested.Encode(ctx, a, sc)
	}
	if g, ok := v.Team(); ok {
		out[KeyTeam] = c.nested.Encode(ctx, g, sc)
	}
	if ca, ok := v.ContextActivities(); ok {
		out[KeyContextActivities] = c.nested.Encode(ctx, ca, sc)
	}
	if s, ok := v.Revision(); ok {
		out[KeyRevision] = s
	}
	if s, ok := v.Platform(); ok {
		out[KeyPlatform] = s
	}
	if s, ok := v.Language(); ok {
		out[KeyLanguage] = s
	}
	if st, ok := v.Statement(); ok {
		out[KeyStatement] = c.nested.Encode(ctx, st, sc)
	}
	if ext, ok := v.Extensions(); ok {
		out[KeyExtensions] = c.nested.Encode(ctx, ext, sc)
	}
	if len(out) == 0 {
		return goxapi.EmptyObject{}
	}
	return out
}

// Decode validates doc and builds a Context from it. Fields are checked in
// the fixed order registration, instructor, team, contextActivities,
// revision, platform, language, statement, extensions and the first
// violation is returned. Unknown keys are ignored.
//
// Violations found here are reported as *goxapi.Issue. Errors from the
// nested codec are returned unchanged.
func (c *ContextCodec) Decode(ctx context.Context, doc any, sc goxapi.SerializationContext) (model.Context, error) {
	d, ok := goxapi.AsDocument(doc)
	if !ok {
		return model.Context{}, newIssue(goxapi.Root(), goxapi.CodeTypeMismatch, i18n.DocumentNotObject, nil, nil)
	}
	var out model.Context
	for _, f := range contextFields {
		v, p := goxapi.Lookup(d, f.key)
		// registration only needs the key; an explicit null is reported
		// as a missing value. Everywhere else null means absent.
		if p.Absent() || (p.Null() && !f.keyPresence) {
			continue
		}
		var err error
		if out, err = f.decode(c, ctx, v, out, sc); err != nil {
			return model.Context{}, err
		}
	}
	return out, nil
}

// DecodeWithMeta decodes doc and records which top-level keys were present
// and which held an explicit null.
func (c *ContextCodec) DecodeWithMeta(ctx context.Context, doc any, sc goxapi.SerializationContext) (goxapi.Decoded[model.Context], error) {
	v, err := c.Decode(ctx, doc, sc)
	if err != nil {
		return goxapi.Decoded[model.Context]{}, err
	}
	d, _ := goxapi.AsDocument(doc)
	return goxapi.Decoded[model.Context]{Value: v, Presence: goxapi.CollectPresence(d)}, nil
}

// EncodePreserving encodes db.Value and writes back an explicit null for
// every recognized key that arrived as null and is still unset.
func (c *ContextCodec) EncodePreserving(ctx context.Context, db goxapi.Decoded[model.Context], sc goxapi.SerializationContext) any {
	out := c.Encode(ctx, db.Value, sc)
	if db.Presence == nil {
		return out
	}
	d, _ := goxapi.AsDocument(out)
	for _, f := range contextFields {
		if !db.Presence[goxapi.Root().Field(f.key).Pointer()].Null() {
			continue
		}
		if _, set := d[f.key]; !set {
			d[f.key] = nil
		}
	}
	if len(d) == 0 {
		return goxapi.EmptyObject{}
	}
	return d
}

// Entity exposes c as the codec for model.KindContext so it can be
// registered in a nested dispatcher.
func (c *ContextCodec) Entity() goxapi.EntityCodec {
	return goxapi.EntityCodecFuncs{
		EncodeFunc: func(ctx context.Context, e model.Entity, sc goxapi.SerializationContext) any {
			v, ok := e.(model.Context)
			if !ok {
				return nil
			}
			return c.Encode(ctx, v, sc)
		},
		DecodeFunc: func(ctx context.Context, doc any, sc goxapi.SerializationContext) (model.Entity, error) {
			v, err := c.Decode(ctx, doc, sc)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

type decodeFunc func(c *ContextCodec, ctx context.Context, v any, out model.Context, sc goxapi.SerializationContext) (model.Context, error)

type contextField struct {
	key string
	// keyPresence decodes the field as soon as its key exists, even when
	// the value is null.
	keyPresence bool
	decode      decodeFunc
}

var contextFields = []contextField{
	{key: KeyRegistration, keyPresence: true, decode: decodeRegistration},
	{key: KeyInstructor, decode: decodeInstructor},
	{key: KeyTeam, decode: decodeTeam},
	{key: KeyContextActivities, decode: decodeContextActivities},
	{key: KeyRevision, decode: decodeRevision},
	{key: KeyPlatform, decode: decodePlatform},
	{key: KeyLanguage, decode: decodeLanguage},
	{key: KeyStatement, decode: decodeStatement},
	{key: KeyExtensions, decode: decodeExtensions},
}

func decodeRegistration(_ *ContextCodec, _ context.Context, v any, out model.Context, _ goxapi.SerializationContext) (model.Context, error) {
	at := goxapi.Root().Field(KeyRegistration)
	if format.IsEmpty(v) {
		return out, newIssue(at, goxapi.CodeMissingValue, i18n.RegistrationMissing, nil, nil)
	}
	s, ok := format.String(v)
	if !ok {
		return out, newIssue(at, goxapi.CodeInvalidFormat, i18n.RegistrationInvalid, map[string]string{"value": fmt.Sprint(v)}, nil)
	}
	if err := format.UUID(s); err != nil {
		return out, newIssue(at, goxapi.CodeInvalidFormat, i18n.RegistrationInvalid, map[string]string{"value": s}, err)
	}
	return out.WithRegistration(s), nil
}

func decodeInstructor(c *ContextCodec, ctx context.Context, v any, out model.Context, sc goxapi.SerializationContext) (model.Context, error) {
	e, err := c.nested.Decode(ctx, v, model.KindActor, sc)
	if err != nil {
		return out, err
	}
	a, ok := e.(model.Actor)
	if !ok {
		return out, unexpectedEntity(KeyInstructor, model.KindActor, e)
	}
	return out.WithInstructor(a), nil
}

func decodeTeam(c *ContextCodec, ctx context.Context, v any, out model.Context, sc goxapi.SerializationContext) (model.Context, error) {
	if sub, ok := format.Object(v); ok {
		if ot, p := goxapi.Lookup(sub, keyObjectType); p.HasValue() && ot != "Group" {
			at := goxapi.Root().Field(KeyTeam).Field(keyObjectType)
			return out, newIssue(at, goxapi.CodeTypeMismatch, i18n.TeamNotGroup, map[string]string{"value": fmt.Sprint(ot)}, nil)
		}
	}
	e, err := c.nested.Decode(ctx, v, model.KindGroup, sc)
	if err != nil {
		return out, err
	}
	g, ok := e.(model.Group)
	if !ok {
		return out, unexpectedEntity(KeyTeam, model.KindGroup, e)
	}
	return out.WithTeam(g), nil
}

func decodeContextActivities(c *ContextCodec, ctx context.Context, v any, out model.Context, sc goxapi.SerializationContext) (model.Context, error) {
	e, err := c.nested.Decode(ctx, v, model.KindContextActivities, sc)
	if err != nil {
		return out, err
	}
	ca, ok := e.(model.ContextActivities)
	if !ok {
		return out, unexpectedEntity(KeyContextActivities, model.KindContextActivities, e)
	}
	return out.WithContextActivities(ca), nil
}

func decodeRevision(_ *ContextCodec, _ context.Context, v any, out model.Context, _ goxapi.SerializationContext) (model.Context, error) {
	s, err := requireString(KeyRevision, v)
	if err != nil {
		return out, err
	}
	return out.WithRevision(s), nil
}

func decodePlatform(_ *ContextCodec, _ context.Context, v any, out model.Context, _ goxapi.SerializationContext) (model.Context, error) {
	s, err := requireString(KeyPlatform, v)
	if err != nil {
		return out, err
	}
	return out.WithPlatform(s), nil
}

func decodeLanguage(_ *ContextCodec, _ context.Context, v any, out model.Context, _ goxapi.SerializationContext) (model.Context, error) {
	at := goxapi.Root().Field(KeyLanguage)
	s, ok := format.String(v)
	if !ok {
		return out, newIssue(at, goxapi.CodeInvalidFormat, i18n.LanguageInvalid, map[string]string{"value": fmt.Sprint(v)}, nil)
	}
	if err := format.LanguageTag(s); err != nil {
		return out, newIssue(at, goxapi.CodeInvalidFormat, i18n.LanguageInvalid, map[string]string{"value": s}, err)
	}
	return out.WithLanguage(s), nil
}

func decodeStatement(c *ContextCodec, ctx context.Context, v any, out model.Context, sc goxapi.SerializationContext) (model.Context, error) {
	e, err := c.nested.Decode(ctx, v, model.KindStatementReference, sc)
	if err != nil {
		return out, err
	}
	st, ok := e.(model.StatementReference)
	if !ok {
		return out, unexpectedEntity(KeyStatement, model.KindStatementReference, e)
	}
	return out.WithStatement(st), nil
}

func decodeExtensions(c *ContextCodec, ctx context.Context, v any, out model.Context, sc goxapi.SerializationContext) (model.Context, error) {
	e, err := c.nested.Decode(ctx, v, model.KindExtensions, sc)
	if err != nil {
		return out, err
	}
	ext, ok := e.(model.Extensions)
	if !ok {
		return out, unexpectedEntity(KeyExtensions, model.KindExtensions, e)
	}
	return out.WithExtensions(ext), nil
}

func requireString(key string, v any) (string, error) {
	s, ok := format.String(v)
	if !ok {
		return "", newIssue(goxapi.Root().Field(key), goxapi.CodeTypeMismatch, i18n.NotAString, map[string]string{"field": key}, nil)
	}
	return s, nil
}

func unexpectedEntity(key string, want model.Kind, got model.Entity) error {
	gotName := "nil"
	if got != nil {
		gotName = got.EntityKind().String()
	}
	return newIssue(goxapi.Root().Field(key), goxapi.CodeTypeMismatch, i18n.UnexpectedEntity, map[string]string{
		"field": key,
		"want":  want.String(),
		"got":   gotName,
	}, nil)
}

func newIssue(at goxapi.PathRef, code goxapi.Code, key string, data map[string]string, cause error) *goxapi.Issue {
	var params map[string]any
	if len(data) > 0 {
		params = make(map[string]any, len(data))
		for k, v := range data {
			params[k] = v
		}
	}
	is := goxapi.IssueAt(at, code, i18n.T(key, data), params)
	is.Template = key
	is.Cause = cause
	return is
}
