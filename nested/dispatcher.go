// Package nested routes sub-entity conversion to per-kind codecs.
//
// A Dispatcher is the NestedCodec handed to the context codec. The codecs
// for actors, groups, context activities, statement references and
// extensions are supplied by the embedding system and registered by kind:
//
//	d := nested.New().
//		Register(model.KindActor, actors).
//		Register(model.KindGroup, groups)
//	if err := d.Validate(nested.ContextKinds...); err != nil {
//		// fail at startup
//	}
package nested

import (
	"context"
	"fmt"
	"sync"

	goxapi "github.com/reoring/goxapi"
	"github.com/reoring/goxapi/i18n"
	"github.com/reoring/goxapi/model"
)

// ContextKinds lists the kinds a statement context can embed.
var ContextKinds = []model.Kind{
	model.KindActor,
	model.KindGroup,
	model.KindContextActivities,
	model.KindStatementReference,
	model.KindExtensions,
}

// Dispatcher implements goxapi.NestedCodec by kind.
//
// Dispatchers are safe for concurrent use. Register may be called at any
// time, though codecs are normally registered once at startup.
type Dispatcher struct {
	mu     sync.RWMutex
	codecs map[model.Kind]goxapi.EntityCodec
}

var _ goxapi.NestedCodec = (*Dispatcher)(nil)

// New returns an empty Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{codecs: make(map[model.Kind]goxapi.EntityCodec)}
}

// Register sets the codec for kind, replacing any previous one.
// Returns the dispatcher for chaining.
func (d *Dispatcher) Register(kind model.Kind, c goxapi.EntityCodec) *Dispatcher {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.codecs[kind] = c
	return d
}

func (d *Dispatcher) lookup(kind model.Kind) (goxapi.EntityCodec, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.codecs[kind]
	return c, ok
}

// Validate checks that a codec is registered for every kind given.
func (d *Dispatcher) Validate(kinds ...model.Kind) error {
	var iss goxapi.Issues
	for _, k := range kinds {
		if _, ok := d.lookup(k); !ok {
			iss = goxapi.AppendIssues(iss, *unsupported(k))
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// Encode converts e with the codec registered for e.EntityKind().
// It panics when no codec is registered; use Validate at startup.
func (d *Dispatcher) Encode(ctx context.Context, e model.Entity, sc goxapi.SerializationContext) any {
	c, ok := d.lookup(e.EntityKind())
	if !ok {
		panic(fmt.Sprintf("nested: no codec registered for %s", e.EntityKind()))
	}
	return c.Encode(ctx, e, sc)
}

// Decode converts doc with the codec registered for kind. Errors from that
// codec are returned unchanged.
func (d *Dispatcher) Decode(ctx context.Context, doc any, kind model.Kind, sc goxapi.SerializationContext) (model.Entity, error) {
	c, ok := d.lookup(kind)
	if !ok {
		return nil, unsupported(kind)
	}
	return c.Decode(ctx, doc, sc)
}

func unsupported(kind model.Kind) *goxapi.Issue {
	data := map[string]string{"kind": kind.String()}
	is := goxapi.IssueAt(goxapi.Root(), goxapi.CodeUnsupportedKind, i18n.T(i18n.UnsupportedKind, data), map[string]any{"kind": kind.String()})
	is.Template = i18n.UnsupportedKind
	return is
}
