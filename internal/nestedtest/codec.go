// Package nestedtest provides a small NestedCodec for tests. It knows just
// enough of each sibling entity to round trip a statement context.
package nestedtest

import (
	"context"
	"errors"

	goxapi "github.com/reoring/goxapi"
	"github.com/reoring/goxapi/model"
)

// ErrShape is returned when a document does not look like the requested kind.
var ErrShape = errors.New("nestedtest: unexpected shape")

// Codec implements goxapi.NestedCodec.
type Codec struct{}

func (Codec) Encode(_ context.Context, e model.Entity, _ goxapi.SerializationContext) any {
	switch v := e.(type) {
	case model.Agent:
		return map[string]any{"objectType": "Agent", "name": v.Name, "mbox": v.Mbox}
	case model.Group:
		members := make([]any, 0, len(v.Members))
		for _, m := range v.Members {
			members = append(members, map[string]any{"objectType": "Agent", "name": m.Name, "mbox": m.Mbox})
		}
		return map[string]any{"objectType": "Group", "name": v.Name, "member": members}
	case model.ContextActivities:
		parents := make([]any, 0, len(v.Parent))
		for _, a := range v.Parent {
			parents = append(parents, map[string]any{"id": a.ID})
		}
		return map[string]any{"parent": parents}
	case model.StatementReference:
		return map[string]any{"objectType": "StatementRef", "id": v.StatementID}
	case model.Extensions:
		if v.Len() == 0 {
			return goxapi.EmptyObject{}
		}
		return v.Map()
	}
	return nil
}

func (Codec) Decode(_ context.Context, doc any, kind model.Kind, _ goxapi.SerializationContext) (model.Entity, error) {
	d, ok := goxapi.AsDocument(doc)
	if !ok {
		return nil, ErrShape
	}
	switch kind {
	case model.KindActor:
		if d["objectType"] == "Group" {
			return decodeGroup(d), nil
		}
		return decodeAgent(d), nil
	case model.KindGroup:
		return decodeGroup(d), nil
	case model.KindContextActivities:
		var ca model.ContextActivities
		parents, _ := d["parent"].([]any)
		for _, p := range parents {
			pd, _ := goxapi.AsDocument(p)
			id, _ := pd["id"].(string)
			ca.Parent = append(ca.Parent, model.Activity{ID: id})
		}
		return ca, nil
	case model.KindStatementReference:
		id, _ := d["id"].(string)
		return model.StatementReference{StatementID: id}, nil
	case model.KindExtensions:
		return model.NewExtensions(d), nil
	}
	return nil, ErrShape
}

func decodeAgent(d goxapi.Document) model.Agent {
	name, _ := d["name"].(string)
	mbox, _ := d["mbox"].(string)
	return model.Agent{Name: name, Identifier: model.Identifier{Mbox: mbox}}
}

func decodeGroup(d goxapi.Document) model.Group {
	g := model.Group{}
	g.Name, _ = d["name"].(string)
	members, _ := d["member"].([]any)
	for _, m := range members {
		md, _ := goxapi.AsDocument(m)
		g.Members = append(g.Members, decodeAgent(md))
	}
	return g
}
